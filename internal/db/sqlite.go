// Package db is the SQLite store behind the reference backend.
package db

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pressly/goose/v3"
	"github.com/thesavant42/pokedex-ng/migrations"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a lookup matches no record
var ErrNotFound = errors.New("record not found")

// DB wraps the SQLite database connection
type DB struct {
	conn *sql.DB
}

// New opens the database at dbPath, applies pragmas and runs migrations.
// ":memory:" opens a private in-memory database.
func New(dbPath string) (*DB, error) {
	memory := dbPath == ":memory:"

	if !memory {
		if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if memory {
		// Every connection to :memory: is a separate database
		conn.SetMaxOpenConns(1)
	}

	if err := enablePragmas(conn, memory); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to enable pragmas: %w", err)
	}

	if err := runMigrations(conn); err != nil {
		conn.Close()
		return nil, err
	}

	return &DB{conn: conn}, nil
}

func enablePragmas(conn *sql.DB, memory bool) error {
	pragmas := []string{
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
		"PRAGMA synchronous=NORMAL",
	}
	if !memory {
		pragmas = append([]string{"PRAGMA journal_mode=WAL"}, pragmas...)
	}

	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			return fmt.Errorf("execute %s: %w", pragma, err)
		}
	}
	return nil
}

func runMigrations(conn *sql.DB) error {
	goose.SetLogger(goose.NopLogger())
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("sqlite"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}
	if err := goose.Up(conn, "."); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// Ping checks that the database is reachable
func (db *DB) Ping() error {
	return db.conn.Ping()
}
