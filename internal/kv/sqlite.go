package kv

import (
	"database/sql"
	"fmt"
	"time"
)

// SQLite stores records in the records table created by the database
// package migrations.
type SQLite struct {
	db *sql.DB
}

var _ Backend = (*SQLite)(nil)

func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{db: db}
}

func (s *SQLite) Get(key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM records WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get record %q: %w", key, err)
	}
	return value, nil
}

func (s *SQLite) Set(key string, value []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO records (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("set record %q: %w", key, err)
	}
	return nil
}

func (s *SQLite) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM records WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("delete record %q: %w", key, err)
	}
	return nil
}
