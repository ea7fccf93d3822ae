// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of passdesk

package dao

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	_ "modernc.org/sqlite"             // registers the "sqlite" driver
)

// Supported driver names.
const (
	DriverSQLite = "sqlite"
	DriverPgx    = "pgx"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS offers (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		city TEXT,
		category TEXT,
		type TEXT,
		status TEXT NOT NULL,
		price INTEGER NOT NULL DEFAULT 0,
		created_at TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS grants (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		kind TEXT,
		city TEXT,
		status TEXT NOT NULL,
		amount INTEGER NOT NULL DEFAULT 0,
		created_at TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS passholders (
		id TEXT PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		city TEXT,
		grant_kind TEXT,
		status TEXT NOT NULL,
		created_at TEXT
	)`,
}

// Store wraps a database handle and the SQL dialect it speaks.
type Store struct {
	db      *sql.DB
	dialect Dialect
	driver  string
}

// Open connects to the database and ensures the schema exists.
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	var d Dialect
	switch driver {
	case DriverSQLite, "":
		driver, d = DriverSQLite, SQLite
	case DriverPgx, "postgres":
		driver, d = DriverPgx, Postgres
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database: %w", driver, err)
	}

	s := &Store{db: db, dialect: d, driver: driver}
	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

// DB returns the underlying handle.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Dialect returns the store SQL flavour.
func (s *Store) Dialect() Dialect {
	return s.dialect
}

// Driver returns the database driver name.
func (s *Store) Driver() string {
	return s.driver
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) insert(ctx context.Context, tx *sql.Tx, table string, cols []string, vals ...any) error {
	marks := make([]string, len(cols))
	for i := range cols {
		marks[i] = s.dialect.Placeholder(i + 1)
	}
	q := "INSERT INTO " + table + " (" + strings.Join(cols, ", ") + ") VALUES (" + strings.Join(marks, ", ") + ")"
	_, err := tx.ExecContext(ctx, q, vals...)
	return err
}
