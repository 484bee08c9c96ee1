package db

import (
	"fmt"
	"time"

	"dare/enterprisehub/internal/logging"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PgDB is the GORM handle used by repositories.
var PgDB *gorm.DB

// zapWriter routes GORM's logger through the structured logger.
type zapWriter struct{}

func (zapWriter) Printf(format string, args ...interface{}) {
	logging.Named("gorm").Debugf(format, args...)
}

func gormConfig(appEnv string) *gorm.Config {
	level := logger.Warn
	if appEnv == "development" {
		level = logger.Info
	}
	return &gorm.Config{
		TranslateError: true,
		Logger: logger.New(zapWriter{}, logger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
	}
}

func InitPostgresORM(dsn string, appEnv string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), gormConfig(appEnv))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	PgDB = db
	logging.Info("Connected to Postgres via GORM")
	return db, nil
}

// InitSQLiteORM opens a single-file (or in-memory) store. SQLite allows one
// writer, so the pool is pinned to one connection.
func InitSQLiteORM(path string, appEnv string) (*gorm.DB, error) {
	dsn := path
	if dsn != ":memory:" {
		dsn = fmt.Sprintf("file:%s?_foreign_keys=1&_busy_timeout=5000", path)
	}

	db, err := gorm.Open(sqlite.Open(dsn), gormConfig(appEnv))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	PgDB = db
	logging.Info("Opened SQLite store", "path", path)
	return db, nil
}
