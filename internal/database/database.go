package database

import (
	"fmt"
	"time"

	"smart-hospital-display/internal/config"
	"smart-hospital-display/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the relational store selected by cfg.Database.Driver
func Connect(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		return OpenSQLite(cfg.Database.Path, cfg.Database.LogLevel)
	case config.DriverMySQL:
		return openMySQL(cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}
}

func openMySQL(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.Database,
	)

	db, err := gorm.Open(mysql.Open(dsn), gormConfig(cfg.Database.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info().Str("driver", config.DriverMySQL).Str("host", cfg.Database.Host).Msg("Connected to database")
	return db, nil
}

// OpenSQLite opens (or creates) a single-file SQLite store.
// The pool is pinned to one connection so writers never see SQLITE_BUSY.
func OpenSQLite(path, logLevel string) (*gorm.DB, error) {
	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"

	db, err := gorm.Open(sqlite.Open(dsn), gormConfig(logLevel))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	log.Debug().Str("driver", config.DriverSQLite).Str("path", path).Msg("Opened database")
	return db, nil
}

func gormConfig(logLevel string) *gorm.Config {
	var gormLogger logger.Interface
	switch logLevel {
	case "silent":
		gormLogger = logger.Default.LogMode(logger.Silent)
	case "error":
		gormLogger = logger.Default.LogMode(logger.Error)
	case "warn":
		gormLogger = logger.Default.LogMode(logger.Warn)
	default:
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	return &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// AutoMigrate creates or updates the tables for every record kind
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// ResetSchema drops every table and recreates it empty
func ResetSchema(db *gorm.DB) error {
	if err := db.Migrator().DropTable(Models()...); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	return AutoMigrate(db)
}

// Models lists the persisted record kinds
func Models() []interface{} {
	return []interface{}{
		&models.Token{},
		&models.InventoryItem{},
		&models.Alert{},
		&models.Schedule{},
		&models.AuditLog{},
	}
}

// Ping reports whether the underlying connection is usable
func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Close releases the underlying connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
