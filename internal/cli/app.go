package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lferraz/prodash/internal/app"
	"github.com/lferraz/prodash/internal/ports"
	"github.com/lferraz/prodash/internal/service"
	"github.com/lferraz/prodash/internal/store"
)

// AppContext holds the shared dependencies for CLI commands.
type AppContext struct {
	Service *service.Service
	Close   func() error
}

// NewAppContext connects to the snapshot database and wires the service. The
// local snapshot directory is created on first use. A nil exporter disables
// metrics export.
func NewAppContext(ctx context.Context, exporter ports.MetricsExporter) (*AppContext, error) {
	cfg, err := app.New()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if path, ok := localDBPath(cfg.DatabaseURL); ok {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := store.Open(cfg.DatabaseURL, cfg.AuthToken)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	st, err := store.NewDBStore(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initializing snapshot store: %w", err)
	}

	return &AppContext{
		Service: service.New(st, exporter),
		Close:   db.Close,
	}, nil
}

func localDBPath(databaseURL string) (string, bool) {
	const prefix = "file:"
	if len(databaseURL) > len(prefix) && databaseURL[:len(prefix)] == prefix {
		return databaseURL[len(prefix):], true
	}
	return "", false
}
