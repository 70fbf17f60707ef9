package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fluxoryn/vibe-fuse/internal/database"
)

// SQLite implements Store on the shared application database
// (~/.config/vibefuse/vibefuse.db, table kv).
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens the store at the default database path.
func OpenSQLite() (*SQLite, error) {
	path, err := database.DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("kvstore: %w", err)
	}
	return OpenSQLiteAt(path)
}

// OpenSQLiteAt opens or creates the database at path.
func OpenSQLiteAt(path string) (*SQLite, error) {
	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("kvstore: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLite) migrate() error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS kv (
			key        TEXT PRIMARY KEY,
			value      BLOB NOT NULL,
			updated_at TEXT NOT NULL DEFAULT (datetime('now'))
		);
	`
	if _, err := s.db.Exec(ddl); err != nil {
		return fmt.Errorf("kvstore: migration failed: %w", err)
	}
	return nil
}

// Get returns the value stored under key.
func (s *SQLite) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("kvstore: query failed: %w", err)
	}
	return value, true, nil
}

// Set upserts the value stored under key.
func (s *SQLite) Set(key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	err := database.Write(context.Background(), func() error {
		_, err := s.db.Exec(`
			INSERT INTO kv (key, value, updated_at)
			VALUES (?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET
				value = excluded.value,
				updated_at = excluded.updated_at`,
			key, value, time.Now().UTC().Format(time.RFC3339Nano),
		)
		return err
	})
	if err != nil {
		return fmt.Errorf("kvstore: upsert failed: %w", err)
	}
	return nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}
