package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitedesk/sitedesk/internal/infrastructure/database"
	"github.com/sitedesk/sitedesk/internal/shared/config"
)

func TestNewGooseStrategy_UnknownDriver(t *testing.T) {
	_, err := NewGooseStrategy("oracle")
	assert.Error(t, err)
}

func TestScriptsEmbeddedForEveryDriver(t *testing.T) {
	for _, driver := range []string{config.DriverMySQL, config.DriverPostgres, config.DriverSQLite} {
		s, err := NewGooseStrategy(driver)
		require.NoError(t, err)

		data, err := scripts.ReadFile(s.dir + "/00001_init_schema.sql")
		require.NoError(t, err, driver)
		assert.Contains(t, string(data), "-- +goose Up")
		assert.Contains(t, string(data), "work order not allowed for PRIVATE complaint")
	}
}

func TestManager_MigrateAndRollbackSQLite(t *testing.T) {
	db, err := database.Open(&config.DatabaseConfig{Driver: config.DriverSQLite, Database: ":memory:"})
	require.NoError(t, err)

	m, err := NewManager(config.DriverSQLite)
	require.NoError(t, err)

	require.NoError(t, m.Migrate(db))
	version, err := m.Version(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	assert.True(t, db.Migrator().HasTable("complaints"))
	assert.True(t, db.Migrator().HasTable("notification_queue"))

	// idempotent
	require.NoError(t, m.Migrate(db))

	require.NoError(t, m.Rollback(db, 1))
	assert.False(t, db.Migrator().HasTable("complaints"))

	assert.Error(t, m.Rollback(db, 0))
}
