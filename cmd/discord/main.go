// Command discord serves the Solo Leveler client as a Discord bot.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/SoloLeveler_Go/internal/bootstrap"
	"github.com/osse101/SoloLeveler_Go/internal/config"
	"github.com/osse101/SoloLeveler_Go/internal/discord"
	"github.com/osse101/SoloLeveler_Go/internal/status"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg, bootstrap.ServiceNameDiscord, version, os.Stdout)
	if err != nil {
		slog.Error("Logger setup failed", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	if err := cfg.ValidateDiscord(); err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	core := bootstrap.NewCore(cfg)

	bot, err := discord.New(discord.Config{
		Token:   cfg.DiscordToken,
		AppID:   cfg.DiscordAppID,
		GuildID: cfg.DiscordGuildID,
	}, core.Sync)
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	if cfg.DiscordForceUpdate {
		slog.Info("Force command update enabled via environment variable")
	}
	if err := bot.RegisterCommands(bot.Registry, cfg.DiscordForceUpdate); err != nil {
		slog.Error("Failed to register commands", "error", err)
		// Don't exit - bot can still run if commands are already registered
	}

	// A failed initial load is not fatal; screens retry their slices on demand.
	if err := core.Sync.LoadAll(ctx); err != nil {
		slog.Warn(bootstrap.LogMsgInitialLoadIncomplete, "error", err)
	}

	core.StartStatus(map[string]status.HealthChecker{"discord": bot})

	if err := bot.Start(); err != nil {
		slog.Error("Bot failed", "error", err)
		bootstrap.GracefulShutdown(context.Background(), bootstrap.ShutdownComponents{Core: core})
		os.Exit(1)
	}

	<-ctx.Done()
	bootstrap.GracefulShutdown(context.Background(), bootstrap.ShutdownComponents{
		Core:      core,
		Frontends: map[string]bootstrap.Stopper{"discord": bot},
	})
}
