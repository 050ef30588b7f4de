package database

import (
	"context"
	"fmt"
	"time"

	"verse-journal/internal/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/sijms/go-ora/v2" // Oracle driver, registered as "oracle"
	_ "modernc.org/sqlite"         // SQLite driver, registered as "sqlite"
)

const (
	DriverSQLite = "sqlite"
	DriverOracle = "oracle"
)

func init() {
	// go-ora takes :name placeholders, modernc takes ?.
	sqlx.BindDriver(DriverOracle, sqlx.NAMED)
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// NewDB opens the configured database and checks the connection.
func NewDB(cfg config.DBConfig, dsn string) (*sqlx.DB, error) {
	switch cfg.Driver {
	case DriverSQLite, DriverOracle:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := sqlx.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.Driver, err)
	}

	if cfg.Driver == DriverSQLite {
		// SQLite allows a single writer.
		db.SetMaxOpenConns(1)
	} else if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxOpenConns / 2)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", cfg.Driver, err)
	}

	return db, nil
}

// NewInMemorySQLite opens a private in-memory SQLite database for tests.
func NewInMemorySQLite() (*sqlx.DB, error) {
	db, err := sqlx.Open(DriverSQLite, "file::memory:?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, err
	}
	// Every connection to :memory: is a different database.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
