package bootstrap

import (
	"log/slog"

	"github.com/osse101/SoloLeveler_Go/internal/client"
	"github.com/osse101/SoloLeveler_Go/internal/config"
	"github.com/osse101/SoloLeveler_Go/internal/event"
	"github.com/osse101/SoloLeveler_Go/internal/status"
	"github.com/osse101/SoloLeveler_Go/internal/synchronizer"
)

// Core is the front-end independent part of a running client
type Core struct {
	Config *config.Config
	API    client.API
	Bus    *event.MemoryBus
	Sync   *synchronizer.Synchronizer
	Status *status.Server
}

// NewCore wires the API client, event bus and synchronizer from cfg
func NewCore(cfg *config.Config) *Core {
	return NewCoreWithAPI(cfg, client.NewAPIClient(cfg.APIURL, cfg.APIKey, cfg.HTTPTimeout))
}

// NewCoreWithAPI is NewCore over an already built API
func NewCoreWithAPI(cfg *config.Config, api client.API) *Core {
	bus := InitializeEventSystem()
	return &Core{
		Config: cfg,
		API:    api,
		Bus:    bus,
		Sync:   synchronizer.New(api, bus, synchronizer.WithCountdownWarning(cfg.CountdownWarning)),
	}
}

// StartStatus starts the status server when a port is configured.
// checks are consulted by /healthz alongside the mirror state.
func (c *Core) StartStatus(checks map[string]status.HealthChecker) {
	if c.Config.StatusPort == 0 {
		return
	}
	c.Status = status.NewServer(c.Config.StatusPort, c.Sync.Mirror(), checks)
	c.Status.Start()
	slog.Info(LogMsgStatusServerEnabled, "port", c.Config.StatusPort)
}
