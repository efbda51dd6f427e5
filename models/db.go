package models

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// Typed not-found sentinels so handlers can branch on missing rows instead of
// inspecting sql.ErrNoRows themselves.
var (
	ErrFolderNotFound = errors.New("folder not found")
	ErrFileNotFound   = errors.New("file not found")
)

const schema = `
CREATE TABLE IF NOT EXISTS folders (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_folders_name ON folders (name);

CREATE TABLE IF NOT EXISTS files (
	id TEXT PRIMARY KEY,
	folder TEXT NOT NULL,
	original_name TEXT NOT NULL,
	content_type TEXT NOT NULL,
	size INTEGER NOT NULL,
	data BLOB NOT NULL,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_files_folder ON files (folder);
`

// Store wraps the SQLite connection. It is constructed once at startup and
// handed to every consumer; Close releases the connection on shutdown.
type Store struct {
	db *sql.DB
}

// NewStore wraps an existing connection. Used by Open and by tests that
// substitute a mock driver.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open connects to the SQLite database at path and creates the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// WAL keeps readers from blocking the single writer
	if _, err := db.Exec(`PRAGMA journal_mode = WAL`); err != nil {
		db.Close()
		return nil, fmt.Errorf("set journal mode: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return NewStore(db), nil
}

// Ping verifies the database connection is still alive.
func (s *Store) Ping() error {
	return s.db.Ping()
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// countRecord runs a single-value aggregate query.
func (s *Store) countRecord(query string, args ...interface{}) (int64, error) {
	var count int64
	err := s.db.QueryRow(query, args...).Scan(&count)
	return count, err
}
