package store

import (
	"context"
	"database/sql"
	"strings"
	"time"

	_ "github.com/tursodatabase/go-libsql"
)

// Open connects to the snapshot database. The URL is either a local
// "file:..." path (the default, single-user mode) or a remote libsql URL
// with an auth token.
func Open(databaseURL, authToken string) (*sql.DB, error) {
	connStr := databaseURL
	if authToken != "" {
		connStr = databaseURL + "?authToken=" + authToken
	}

	db, err := sql.Open("libsql", connStr)
	if err != nil {
		return nil, err
	}

	// Configure connection pool for the Hrana protocol. Remote servers
	// aggressively close idle streams, causing "stream not found" errors on
	// stale connections, so keep no idle connections around.
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(0)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(0)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

// IsStreamError checks if an error is a libsql "stream not found" error.
func IsStreamError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "stream not found")
}

// WithRetry executes a function with retry logic for stream errors.
// It retries up to maxRetries times when encountering "stream not found"
// errors.
func WithRetry[T any](ctx context.Context, maxRetries int, fn func() (T, error)) (T, error) {
	var result T
	var err error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		result, err = fn()
		if err == nil {
			return result, nil
		}

		if !IsStreamError(err) || attempt == maxRetries {
			return result, err
		}

		// Brief pause before retry to allow the connection pool to refresh
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-time.After(10 * time.Millisecond):
		}
	}

	return result, err
}
