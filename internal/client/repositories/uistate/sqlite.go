package uistate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dkravets/internhub/internal/dbx"
)

// SQLiteStore implements Store using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteStore struct {
	db dbx.DBTX
}

// NewSQLiteStore returns a new SQLiteStore bound to the given DBTX.
func NewSQLiteStore(db dbx.DBTX) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// InitDatabase opens (creating if needed) the local UI-state database and
// ensures the schema exists. The caller owns the returned handle.
func InitDatabase(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening ui state db: %w", err)
	}
	// modernc sqlite is happiest with a single writer connection.
	db.SetMaxOpenConns(1)

	_, err = db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS ui_state (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);`)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating ui state schema: %w", err)
	}
	return db, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM ui_state WHERE key = ?`, key)

	var value string
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("reading ui state %q: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO ui_state (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("writing ui state %q: %w", key, err)
	}
	return nil
}
