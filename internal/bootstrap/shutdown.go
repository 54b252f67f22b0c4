package bootstrap

import (
	"context"
	"log/slog"
)

// Stopper is a front-end that must be stopped before the core
type Stopper interface {
	Stop()
}

// ShutdownComponents holds everything that needs graceful shutdown
type ShutdownComponents struct {
	Core      *Core
	Frontends map[string]Stopper
}

// GracefulShutdown stops front-ends first so no new actions start, then the
// status server, then the synchronizer's countdown.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDown)

	ctx, cancel := context.WithTimeout(ctx, ShutdownTimeout)
	defer cancel()

	for name, f := range components.Frontends {
		slog.Debug("Stopping front-end", "name", name)
		f.Stop()
	}

	if c := components.Core; c != nil {
		if c.Status != nil {
			c.Status.Stop(ctx)
		}
		c.Sync.Close()
	}

	slog.Info(LogMsgShutdownComplete)
}
