// Package dbtest opens migrated in-memory databases for repository tests.
package dbtest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sitedesk/sitedesk/internal/infrastructure/database"
	"github.com/sitedesk/sitedesk/internal/infrastructure/migration"
	"github.com/sitedesk/sitedesk/internal/shared/config"
)

// NewSQLite returns a fresh :memory: database with the full schema applied.
// The database is closed when the test ends.
func NewSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Open(&config.DatabaseConfig{
		Driver:   config.DriverSQLite,
		Database: ":memory:",
	})
	require.NoError(t, err)

	m, err := migration.NewManager(config.DriverSQLite)
	require.NoError(t, err)
	require.NoError(t, m.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
