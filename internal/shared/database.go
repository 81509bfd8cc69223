package shared

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// NewDatabase opens a connection to a SQLite database at the specified path.
// The path can be ":memory:" for an in-memory database.
// Returns an open database connection or an error wrapping [ErrStorageUnavailable] if connection fails.
func NewDatabase(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open database: %v", ErrStorageUnavailable, err)
	}

	if IsMemoryPath(path) {
		// each connection to :memory: is its own empty database
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: failed to ping database: %v", ErrStorageUnavailable, err)
	}

	return db, nil
}

// ConfigureDatabase sets connection pool settings for the database.
//
// In-memory databases stay pinned to a single connection regardless of the requested sizes.
func ConfigureDatabase(db *sql.DB, path string, maxOpenConns, maxIdleConns int) {
	if IsMemoryPath(path) {
		return
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
}

// IsMemoryPath reports whether path names a private in-memory SQLite database.
func IsMemoryPath(path string) bool {
	return path == ":memory:" || strings.Contains(path, "mode=memory")
}
