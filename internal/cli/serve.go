package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lferraz/prodash/internal/adapters/otel"
	"github.com/lferraz/prodash/internal/app"
	"github.com/lferraz/prodash/internal/ports"
	"github.com/lferraz/prodash/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard API server",
	Long: `Start the local dashboard API server.

Examples:
  prodash serve                 # Listen on PRODASH_ADDR (default :8080)
  prodash serve --addr :3000    # Listen on :3000`,
	RunE: runServe,
}

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides PRODASH_ADDR)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := app.New()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}

	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")
		cancel()
	}()

	exporter := newMetricsExporter(ctx)
	defer func() { _ = exporter.Close(context.Background()) }()

	appCtx, err := NewAppContext(ctx, exporter)
	if err != nil {
		return err
	}
	defer func() { _ = appCtx.Close() }()

	server := web.NewServer(appCtx.Service, cfg.Addr, cfg.ShutdownTimeout)
	return server.Start(ctx)
}

// newMetricsExporter builds the OTEL exporter when configured, falling back
// to a no-op so the dashboard works without a collector.
func newMetricsExporter(ctx context.Context) ports.MetricsExporter {
	otelCfg := otel.LoadConfig()
	if !otelCfg.Enabled {
		return otel.NewNoOpExporter()
	}

	exporter, err := otel.NewExporter(ctx, otelCfg)
	if err != nil {
		log.Printf("Warning: OTEL exporter unavailable, metrics disabled: %v", err)
		return otel.NewNoOpExporter()
	}
	return exporter
}
