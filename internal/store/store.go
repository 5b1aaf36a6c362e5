package store

import (
	"context"
	"database/sql"
)

// Snapshot keys. The whole dashboard state lives under these three keys,
// each holding a JSON document. A missing key means "use the default".
const (
	KeyRecords       = "uploadedData"
	KeyCollaborators = "collaborators"
	KeyPlan          = "projectPlanData"
)

// Store is the persisted key-value snapshot the dashboard state is kept in.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}

// DBStore implements Store on a single snapshots table.
type DBStore struct {
	db *sql.DB
}

// NewDBStore creates the snapshots table if needed and returns the store.
func NewDBStore(ctx context.Context, db *sql.DB) (*DBStore, error) {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS snapshots (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`)
	if err != nil {
		return nil, err
	}
	return &DBStore{db: db}, nil
}

func (s *DBStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := WithRetry(ctx, 3, func() (string, error) {
		var v string
		err := s.db.QueryRowContext(ctx, `SELECT value FROM snapshots WHERE key = ?`, key).Scan(&v)
		return v, err
	})
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(value), true, nil
}

func (s *DBStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := WithRetry(ctx, 3, func() (sql.Result, error) {
		return s.db.ExecContext(ctx, `
			INSERT INTO snapshots (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, key, string(value))
	})
	return err
}

func (s *DBStore) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		_, err := WithRetry(ctx, 3, func() (sql.Result, error) {
			return s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE key = ?`, key)
		})
		if err != nil {
			return err
		}
	}
	return nil
}
