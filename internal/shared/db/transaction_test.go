package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Exec("CREATE TABLE items (id INTEGER PRIMARY KEY, name TEXT NOT NULL)").Error)
	return database
}

func countItems(t *testing.T, database *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, database.Table("items").Count(&n).Error)
	return n
}

func TestRunInTransaction_Commits(t *testing.T) {
	database := newTestDB(t)
	tm := NewTransactionManager(database)
	ctx := context.Background()

	assert.False(t, InTransaction(ctx))
	err := tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		assert.True(t, InTransaction(txCtx))
		return GetTxFromContext(txCtx, database).Exec("INSERT INTO items (name) VALUES ('a')").Error
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), countItems(t, database))
}

func TestRunInTransaction_NestedCallJoinsOuter(t *testing.T) {
	database := newTestDB(t)
	tm := NewTransactionManager(database)
	boom := errors.New("boom")

	err := tm.RunInTransaction(context.Background(), func(outer context.Context) error {
		if err := GetTxFromContext(outer, database).Exec("INSERT INTO items (name) VALUES ('outer')").Error; err != nil {
			return err
		}
		err := tm.RunInTransaction(outer, func(inner context.Context) error {
			assert.Same(t, GetTxFromContext(outer, database), GetTxFromContext(inner, database))
			return GetTxFromContext(inner, database).Exec("INSERT INTO items (name) VALUES ('inner')").Error
		})
		if err != nil {
			return err
		}
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Zero(t, countItems(t, database))
}
