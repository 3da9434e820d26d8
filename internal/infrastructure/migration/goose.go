// Package migration applies the embedded SQL migrations with goose. The same
// scripts run on SQLite and MySQL, so they stick to the common subset of both.
package migration

import (
	"embed"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
)

//go:embed scripts/*.sql
var scripts embed.FS

const scriptsDir = "scripts"

// goose keeps its dialect and base FS in package globals.
var gooseMu sync.Mutex

type Migrator struct {
	dialect string
	logger  logger.Interface
}

// NewMigrator returns a migrator for the given database driver name
// ("sqlite" or "mysql").
func NewMigrator(driver string, log logger.Interface) (*Migrator, error) {
	var dialect string
	switch driver {
	case "sqlite", "":
		dialect = "sqlite3"
	case "mysql":
		dialect = "mysql"
	default:
		return nil, fmt.Errorf("unsupported migration driver: %s", driver)
	}
	return &Migrator{dialect: dialect, logger: log}, nil
}

func (m *Migrator) prepare() {
	goose.SetBaseFS(scripts)
	goose.SetLogger(&gooseLogger{log: m.logger})
}

func (m *Migrator) Up(db *gorm.DB) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()
	m.prepare()

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := goose.SetDialect(m.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	from, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}
	if err := goose.Up(sqlDB, scriptsDir); err != nil {
		m.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	to, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	m.logger.Infow("migrations applied", "from_version", from, "to_version", to)
	return nil
}

func (m *Migrator) Version(db *gorm.DB) (int64, error) {
	gooseMu.Lock()
	defer gooseMu.Unlock()
	m.prepare()

	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := goose.SetDialect(m.dialect); err != nil {
		return 0, fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return goose.GetDBVersion(sqlDB)
}

// Status prints the applied/pending state of every script through the logger.
func (m *Migrator) Status(db *gorm.DB) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()
	m.prepare()

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := goose.SetDialect(m.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Status(sqlDB, scriptsDir); err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}
	return nil
}

// Down rolls back steps migrations.
func (m *Migrator) Down(db *gorm.DB, steps int) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()
	m.prepare()

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := goose.SetDialect(m.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	for i := 0; i < steps; i++ {
		if err := goose.Down(sqlDB, scriptsDir); err != nil {
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}
	return nil
}

type gooseLogger struct {
	log logger.Interface
}

func (l *gooseLogger) Printf(format string, v ...any) {
	l.log.Infow(fmt.Sprintf(format, v...))
}

func (l *gooseLogger) Fatalf(format string, v ...any) {
	l.log.Errorw(fmt.Sprintf(format, v...))
}
