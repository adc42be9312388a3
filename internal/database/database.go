package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/killallgit/recipe-search/internal/models"
	"github.com/killallgit/recipe-search/pkg/logger"
)

type DB struct {
	*gorm.DB
	log *zap.Logger
}

// TableStatus describes whether a model's table exists
type TableStatus struct {
	Table   string
	Present bool
}

// Initialize creates a new database connection with the provided configuration
func Initialize(dbPath string, verbose bool, log *zap.Logger) (*DB, error) {
	log = logger.OrNop(log)

	dir := filepath.Dir(dbPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	logLevel := gormlogger.Error
	if verbose {
		logLevel = gormlogger.Info
	}

	gormConfig := &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(sqlite.Open(dbPath), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	// sqlite serialises writers; one connection keeps :memory: databases shared
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Debug("database connected", zap.String("path", dbPath))
	return &DB{DB: db, log: log}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}
	return sqlDB.Close()
}

// HealthCheck verifies the database connection is working
func (db *DB) HealthCheck(ctx context.Context) error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("database not initialized")
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 1*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// AutoMigrate runs GORM auto migration for the provided models
func (db *DB) AutoMigrate(models ...any) error {
	if err := db.DB.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	db.log.Info("database migrated", zap.Int("models", len(models)))
	return nil
}

// Migrate applies the schema for every application model. Preferences stored
// before last_seen_at existed count as seen when they were last written.
func (db *DB) Migrate() error {
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		return err
	}
	err := db.DB.Model(&models.Preference{}).
		Where("last_seen_at IS NULL").
		Update("last_seen_at", gorm.Expr("updated_at")).Error
	if err != nil {
		return fmt.Errorf("backfill preference last_seen_at: %w", err)
	}
	return nil
}

// Status reports which application tables exist
func (db *DB) Status() ([]TableStatus, error) {
	var out []TableStatus
	for _, m := range models.AllModels() {
		stmt := &gorm.Statement{DB: db.DB}
		if err := stmt.Parse(m); err != nil {
			return nil, fmt.Errorf("failed to parse model: %w", err)
		}
		out = append(out, TableStatus{
			Table:   stmt.Schema.Table,
			Present: db.DB.Migrator().HasTable(m),
		})
	}
	return out, nil
}
