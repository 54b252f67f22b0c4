package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/SoloLeveler_Go/internal/config"
	"github.com/osse101/SoloLeveler_Go/internal/logger"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// SetupLogger installs the default logger for serviceName.
// Records go to cfg.LogFile when set, and to console unless console is nil.
// With neither, logging is discarded so a full-screen terminal stays clean.
// The returned closer releases the log file; the caller must close it.
func SetupLogger(cfg *config.Config, serviceName, version string, console io.Writer) (io.Closer, error) {
	var (
		writers []io.Writer
		closer  io.Closer = nopCloser{}
	)

	if cfg.LogFile != "" {
		if dir := filepath.Dir(cfg.LogFile); dir != "." {
			if err := os.MkdirAll(dir, DirPermission); err != nil {
				return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
			}
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
		}
		writers = append(writers, f)
		closer = f
	}
	if console != nil {
		writers = append(writers, console)
	}

	var w io.Writer
	switch len(writers) {
	case 0:
		w = io.Discard
	case 1:
		w = writers[0]
	default:
		w = io.MultiWriter(writers...)
	}

	logger.InitLoggerWithWriter(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		serviceName,
		version,
		cfg.Environment,
		cfg.IsDevelopment(),
	), w)

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "file", cfg.LogFile)
	slog.Info(LogMsgStarting, "service", serviceName, "environment", cfg.Environment, "version", version)
	slog.Debug(LogMsgConfigurationLoaded,
		"api_url", cfg.APIURL,
		"http_timeout", cfg.HTTPTimeout,
		"status_port", cfg.StatusPort,
		"countdown_warning", cfg.CountdownWarning)
	for _, warning := range cfg.Warnings() {
		slog.Warn(LogMsgConfigWarning, "detail", warning)
	}

	return closer, nil
}
