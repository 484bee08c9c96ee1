package db

import (
	"fmt"

	"dare/enterprisehub/internal/config"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

// Connect opens the GORM and sqlx handles for the configured driver.
func Connect(cfg *config.Config) (*gorm.DB, *sqlx.DB, error) {
	switch cfg.Database.Driver {
	case "sqlite":
		orm, err := InitSQLiteORM(cfg.Database.SQLitePath, cfg.AppEnv)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := InitSQLxFromORM(orm, "sqlite3")
		if err != nil {
			return nil, nil, err
		}
		return orm, sqlDB, nil

	case "postgres":
		dsn := cfg.PostgresDSN()
		if err := InitPostgres(dsn); err != nil {
			return nil, nil, fmt.Errorf("failed to connect to postgres (sqlx): %w", err)
		}
		orm, err := InitPostgresORM(dsn, cfg.AppEnv)
		if err != nil {
			return nil, nil, err
		}
		return orm, DB, nil
	}
	return nil, nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
}
