// Command solo is the terminal Solo Leveler client.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/SoloLeveler_Go/internal/bootstrap"
	"github.com/osse101/SoloLeveler_Go/internal/config"
	"github.com/osse101/SoloLeveler_Go/internal/tui"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration failed: %w", err)
	}

	// The terminal owns stdout, so logs only go to LOG_FILE.
	logFile, err := bootstrap.SetupLogger(cfg, bootstrap.ServiceNameTerminal, version, nil)
	if err != nil {
		return err
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	core := bootstrap.NewCore(cfg)
	core.StartStatus(nil)
	defer bootstrap.GracefulShutdown(context.Background(), bootstrap.ShutdownComponents{Core: core})

	if err := tui.Run(ctx, core.Sync); err != nil {
		slog.Error("Terminal client failed", "error", err)
		return err
	}
	return nil
}
