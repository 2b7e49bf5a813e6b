package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/storefrontlabs/catalog-backend/internal/config"
	"github.com/storefrontlabs/catalog-backend/internal/models"
)

// Manager owns the pooled database handle. One Manager is constructed at
// startup and passed to every component that touches persisted state;
// repositories never open their own connections.
type Manager struct {
	db *gorm.DB
}

func Connect(cfg *config.Config) (*Manager, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	if cfg.DBPrePing {
		if err := sqlDB.Ping(); err != nil {
			return nil, fmt.Errorf("database ping failed: %w", err)
		}
	}

	slog.Info("database connected", "host", cfg.DBHost, "database", cfg.DBName)
	return &Manager{db: db}, nil
}

// NewManager wraps an already-open GORM handle. Used by tests.
func NewManager(db *gorm.DB) *Manager {
	return &Manager{db: db}
}

// DB returns the underlying handle for read paths that run outside an
// explicit unit of work.
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Transaction runs fn inside a scoped unit of work: commit on nil return,
// rollback on error or panic. If the handle is already inside an open
// transaction, fn joins it instead of nesting a second one.
func (m *Manager) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return m.db.WithContext(ctx).Transaction(fn)
}

// Migrate creates or updates the schema for every registered model.
func (m *Manager) Migrate() error {
	return m.db.AutoMigrate(models.All()...)
}

func (m *Manager) Ping() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
