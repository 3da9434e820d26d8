package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
)

func openMemory(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return gdb
}

func TestMigrator_UpAndDown(t *testing.T) {
	gdb := openMemory(t)
	m, err := NewMigrator("sqlite", logger.NewNopLogger())
	require.NoError(t, err)

	require.NoError(t, m.Up(gdb))

	v, err := m.Version(gdb)
	require.NoError(t, err)
	assert.Equal(t, int64(7), v)

	for _, table := range []string{"local_settings", "profiles", "user_sessions", "categories", "audit_logs", "sync_operations", "subscriptions"} {
		assert.True(t, gdb.Migrator().HasTable(table), table)
	}

	require.NoError(t, m.Up(gdb), "re-running is a no-op")

	assert.True(t, gdb.Migrator().HasColumn("sync_operations", "failed_at"))

	require.NoError(t, m.Down(gdb, 1))
	assert.False(t, gdb.Migrator().HasColumn("sync_operations", "failed_at"))

	require.NoError(t, m.Down(gdb, 1))
	assert.False(t, gdb.Migrator().HasTable("subscriptions"))
	assert.True(t, gdb.Migrator().HasTable("sync_operations"))
}

func TestNewMigrator_UnsupportedDriver(t *testing.T) {
	_, err := NewMigrator("postgres", logger.NewNopLogger())
	assert.Error(t, err)
}
