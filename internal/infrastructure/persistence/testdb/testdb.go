// Package testdb opens a migrated in-memory SQLite database for repository
// and use case tests.
package testdb

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ledgerpos/ledgerpos/internal/infrastructure/database"
	"github.com/ledgerpos/ledgerpos/internal/infrastructure/migration"
	"github.com/ledgerpos/ledgerpos/internal/shared/config"
	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
)

// New returns a fresh database with every migration applied. It is closed
// when the test ends.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	log := logger.NewNopLogger()
	gdb, err := database.Open(&config.DatabaseConfig{Driver: database.DriverSQLite, Path: ":memory:"}, log)
	require.NoError(t, err)

	m, err := migration.NewMigrator(database.DriverSQLite, log)
	require.NoError(t, err)
	require.NoError(t, m.Up(gdb))

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}
