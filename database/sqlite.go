package database

import (
	"database/sql"
	"fmt"
	"net/url"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Supported drivers: "sqlite3" is mattn/go-sqlite3 (cgo), "sqlite" is modernc.org/sqlite (pure Go).
const (
	DriverMattn   = "sqlite3"
	DriverModernc = "sqlite"
)

var db *sql.DB

// DSN builds a data source name with busy timeout, immediate write
// transactions and foreign keys enabled for the given driver.
func DSN(driver, path string) (string, error) {
	q := url.Values{}
	switch driver {
	case DriverMattn:
		q.Set("_busy_timeout", "5000")
		q.Set("_txlock", "immediate")
		q.Set("_foreign_keys", "on")
	case DriverModernc:
		q.Add("_pragma", "busy_timeout(5000)")
		q.Add("_pragma", "foreign_keys(1)")
		q.Set("_txlock", "immediate")
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
	return "file:" + path + "?" + q.Encode(), nil
}

// Open opens and pings a SQLite database
func Open(driver, path string) (*sql.DB, error) {
	dsn, err := DSN(driver, path)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite has a single writer; one connection keeps transactions serialized
	// instead of failing with SQLITE_BUSY.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	if err = conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err = conn.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return conn, nil
}

// InitializeDatabase opens the database connection and runs migrations
func InitializeDatabase(driver, path string, logger *zap.Logger) (*sql.DB, error) {
	conn, err := Open(driver, path)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(conn, logger); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	db = conn
	logger.Info("Database initialized", zap.String("driver", driver), zap.String("path", path))
	return conn, nil
}

// GetDB returns the connection opened by InitializeDatabase
func GetDB() *sql.DB {
	return db
}

// CloseDB closes the database connection
func CloseDB() error {
	if db != nil {
		err := db.Close()
		db = nil
		return err
	}
	return nil
}
