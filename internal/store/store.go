// Package store is the SQLite persistence adapter. The core never
// assumes which backend is active; it talks to the repo interfaces in
// repo.go, and this package provides the local single-file
// implementation.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store owns the database handle and hands out repositories.
type Store struct {
	db *sql.DB
}

// Open connects to the SQLite database at dsn, applies the recommended
// pragmas and creates the schema if needed.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Profiles returns the profile repository backed by this store.
func (s *Store) Profiles() ProfileRepo {
	return &profileRepo{db: s.db}
}

// Tasks returns the task repository backed by this store.
func (s *Store) Tasks() TaskRepo {
	return &taskRepo{db: s.db}
}

// Subjects returns the subject repository backed by this store.
func (s *Store) Subjects() SubjectRepo {
	return &subjectRepo{db: s.db}
}

// Ledger returns the achievement ledger repository backed by this store.
func (s *Store) Ledger() LedgerRepo {
	return &ledgerRepo{db: s.db}
}

// Reset wipes all persisted state. Used by the reset command.
func (s *Store) Reset(ctx context.Context) error {
	for _, table := range []string{"tasks", "subjects", "achievements", "profile"} {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("reset %s: %w", table, err)
		}
	}
	return nil
}

// applyPragmas configures SQLite for single-user durability and
// concurrency with the debounced profile writer.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func createSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS profile (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			xp INTEGER NOT NULL DEFAULT 0,
			level INTEGER NOT NULL DEFAULT 1,
			streak INTEGER NOT NULL DEFAULT 0,
			last_active_date TEXT NOT NULL DEFAULT '',
			total_pomodoros INTEGER NOT NULL DEFAULT 0,
			weekly_minutes TEXT NOT NULL DEFAULT '{}',
			pomo_day_count INTEGER NOT NULL DEFAULT 0,
			pomo_day_date TEXT NOT NULL DEFAULT '',
			pomo_xp_total INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS subjects (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			color TEXT NOT NULL,
			position INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			subject_id TEXT NOT NULL DEFAULT '',
			due_date TEXT NOT NULL DEFAULT '',
			priority TEXT NOT NULL DEFAULT 'medium',
			estimated_minutes INTEGER NOT NULL DEFAULT 0,
			completed INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL,
			position INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS achievements (
			id TEXT PRIMARY KEY,
			unlocked_at INTEGER NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("schema: %w", err)
		}
	}
	return nil
}

/// DefaultDBPath resolves the database file path in priority order:
// 1. STUDYOS_DB environment variable
// 2. $XDG_DATA_HOME/studyos/studyos.db
// 3. ~/.local/share/studyos/studyos.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("STUDYOS_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "studyos", "studyos.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
