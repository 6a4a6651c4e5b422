package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestRunMigrations_FreshDatabase(t *testing.T) {
	db, err := InitDatabase(DBConfig{Path: ":memory:", LogLevel: logger.Silent})
	require.NoError(t, err)

	err = RunMigrations(db, 0)
	require.NoError(t, err)

	for _, table := range []string{"migrations", "targets", "promotions", "builds"} {
		assert.True(t, db.Migrator().HasTable(table), "expected table %s to exist", table)
	}
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db, err := InitDatabase(DBConfig{Path: ":memory:", LogLevel: logger.Silent})
	require.NoError(t, err)

	require.NoError(t, RunMigrations(db, 0))
	require.NoError(t, RunMigrations(db, 0))
}

func TestInitDatabase_ForeignKeysEnabled(t *testing.T) {
	db, err := InitDatabase(DBConfig{Path: ":memory:", LogLevel: logger.Silent})
	require.NoError(t, err)

	var enabled int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	assert.Equal(t, 1, enabled)
}
