package cmd

import (
	"database/sql"
	"errors"
	"fmt"

	"fastfood/internal/adapters/out/postgres"

	"github.com/glebarez/sqlite"
	"github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const maintenanceDB = "postgres"

// OpenDatabase connects to the configured database, creating the postgres
// database when it does not exist yet, and migrates the schema.
func OpenDatabase(cfg Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}

	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case DBDriverPostgres:
		if err := CreateDatabaseIfNotExists(cfg); err != nil {
			return nil, err
		}
		dialector = gormpostgres.Open(cfg.PostgresDSN(cfg.DBName))
	case DBDriverSQLite:
		dialector = sqlite.Open(cfg.SQLitePath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.DBDriver, err)
	}

	if cfg.DBDriver == DBDriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// sqlite allows one writer at a time.
		sqlDB.SetMaxOpenConns(1)
	}

	if err := postgres.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// CreateDatabaseIfNotExists connects to the maintenance database and creates
// cfg.DBName when it is missing.
func CreateDatabaseIfNotExists(cfg Config) (err error) {
	db, err := sql.Open("postgres", cfg.PostgresDSN(maintenanceDB))
	if err != nil {
		return fmt.Errorf("connect to %s: %w", maintenanceDB, err)
	}
	defer func() {
		err = errors.Join(err, db.Close())
	}()

	var exists bool
	if err = db.QueryRow("SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists); err != nil {
		return fmt.Errorf("look up database %s: %w", cfg.DBName, err)
	}
	if exists {
		return nil
	}

	if _, err = db.Exec("CREATE DATABASE " + pq.QuoteIdentifier(cfg.DBName)); err != nil {
		return fmt.Errorf("create database %s: %w", cfg.DBName, err)
	}
	return nil
}
