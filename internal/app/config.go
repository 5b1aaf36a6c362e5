package app

import (
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/lferraz/prodash/internal/util"
)

type Config struct {
	Addr            string        `envconfig:"ADDR" default:":8080"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	// DatabaseURL accepts a libsql:// remote URL or a local file path. Empty
	// means the default snapshot file under the XDG data dir.
	DatabaseURL string `envconfig:"DATABASE_URL"`
	AuthToken   string `envconfig:"AUTH_TOKEN"`
}

func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("PRODASH", &cfg); err != nil {
		return nil, err
	}
	if cfg.DatabaseURL == "" {
		dataDir, err := util.GetXDGDataDir()
		if err != nil {
			return nil, err
		}
		cfg.DatabaseURL = "file:" + filepath.Join(dataDir, "prodash.db")
	}
	return &cfg, nil
}
