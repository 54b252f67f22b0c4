package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0644
)

// =============================================================================
// Service Names
// =============================================================================

const (
	ServiceNameTerminal = "sololeveler-tui"
	ServiceNameDiscord  = "sololeveler-discord"
)

// =============================================================================
// Timeouts
// =============================================================================

const (
	// ShutdownTimeout bounds the whole graceful shutdown sequence
	ShutdownTimeout = 10 * time.Second
)

// =============================================================================
// Log Messages
// =============================================================================

const (
	LogMsgLoggingInitialized    = "Logging initialized"
	LogMsgStarting              = "Starting Solo Leveler client"
	LogMsgConfigurationLoaded   = "Configuration loaded"
	LogMsgConfigWarning         = "Configuration warning"
	LogMsgFailedCreateLogsDir   = "failed to create logs directory"
	LogMsgFailedOpenLogFile     = "failed to open log file"
	LogMsgEventSystemReady      = "Event system initialized"
	LogMsgMetricsRegistered     = "Metrics collector registered"
	LogMsgStatusServerEnabled   = "Status server enabled"
	LogMsgShuttingDown          = "Shutting down..."
	LogMsgShutdownComplete      = "Shutdown complete"
	LogMsgInitialLoadIncomplete = "Initial load incomplete"
)
