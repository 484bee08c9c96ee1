package db

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"gorm.io/gorm"
)

// DB is the sqlx handle used for raw aggregate queries and health checks.
var DB *sqlx.DB

// InitPostgres connects sqlx to Postgres, retrying while the database starts up.
func InitPostgres(dsn string) error {
	var err error

	for i := 0; i < 10; i++ {
		DB, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			DB.SetMaxOpenConns(10)
			DB.SetConnMaxIdleTime(5 * time.Minute)
			return nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return err
}

// InitSQLxFromORM shares GORM's connection pool with sqlx. Used in sqlite mode,
// where a second pool would see a different in-memory database.
func InitSQLxFromORM(orm *gorm.DB, driverName string) (*sqlx.DB, error) {
	sqlDB, err := orm.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB from gorm: %w", err)
	}
	DB = sqlx.NewDb(sqlDB, driverName)
	return DB, nil
}
