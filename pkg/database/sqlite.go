package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS businesses (
    id                INTEGER PRIMARY KEY,
    name              TEXT NOT NULL,
    category          TEXT,
    address           TEXT,
    city              TEXT,
    country           TEXT,
    country_code      TEXT,
    phone             TEXT,
    website           TEXT,
    email             TEXT,
    latitude          REAL,
    longitude         REAL,
    description       TEXT,
    opening_hours     TEXT,
    source            TEXT,
    plan_type         TEXT NOT NULL DEFAULT 'free',
    visibility_radius INTEGER NOT NULL DEFAULT 0,
    created_at        TEXT NOT NULL,
    updated_at        TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS reviews (
    id            INTEGER PRIMARY KEY,
    business_id   INTEGER NOT NULL REFERENCES businesses(id),
    reviewer_name TEXT NOT NULL DEFAULT 'Anonymous',
    rating        INTEGER NOT NULL CHECK(rating BETWEEN 1 AND 5),
    comment       TEXT,
    created_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
    id            INTEGER PRIMARY KEY,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    business_id   INTEGER REFERENCES businesses(id),
    plan_type     TEXT NOT NULL DEFAULT 'free',
    created_at    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_businesses_country_code ON businesses(country_code);
CREATE INDEX IF NOT EXISTS idx_businesses_category ON businesses(category);
CREATE INDEX IF NOT EXISTS idx_businesses_created_at ON businesses(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_reviews_business_id ON reviews(business_id);
`

// SQLIface interface untuk abstraction database
type SQLIface interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PingContext(ctx context.Context) error
	Close() error
}

// Open opens or creates the SQLite database file and initializes the schema.
// Safe to call against an existing file, schema statements are idempotent.
func Open(dbPath string) (*sql.DB, error) {
	if dir := filepath.Dir(dbPath); dir != "" && dir != "." && dbPath != ":memory:" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}
