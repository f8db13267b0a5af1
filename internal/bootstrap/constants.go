package bootstrap

import "time"

// File system permissions
const (
	DirPermission     = 0755
	LogFilePermission = 0644
)

// Session log files
const (
	// LogFileTimestampFormat sorts lexically in chronological order
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileNamePattern     = "session_%s.log"
	LogFileExtension       = ".log"

	// LogFileRetentionCount session logs survive cleanup, counting the new one
	LogFileRetentionCount = 10
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingApp         = "Starting SoB companion"
	LogMsgConfigurationLoaded = "Configuration loaded"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// Event system defaults
const (
	EventDefaultMaxRetries     = 5
	EventDefaultRetryDelay     = 2 * time.Second
	EventDefaultDeadLetterPath = "logs/deadletter.jsonl"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	ErrMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	ErrMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// Log messages for event handler registration
const (
	LogMsgMetricsCollectorRegistered    = "Metrics collector registered"
	LogMsgRejectionLoggerRegistered     = "Rule rejection logger registered"
	LogMsgCatalogInvalidationRegistered = "Catalog cache invalidation registered"
	LogMsgRuleRejected                  = "Rule rejected operation"
	LogMsgDefinitionCreated             = "Item definition created outside the catalog"
	ErrMsgFailedRegisterMetrics         = "failed to register metrics collector"
)

// Database messages
const (
	LogMsgDatabaseOpened    = "Database opened"
	LogMsgMigrationsApplied = "Migrations applied"
	ErrMsgFailedOpenDB      = "failed to open database"
	ErrMsgFailedMigrate     = "failed to run migrations"
)

// Catalog sync messages
const (
	LogMsgSyncingCatalog     = "Syncing catalog from seed files..."
	LogMsgCatalogSynced      = "Catalog synced"
	LogMsgCatalogUnchanged   = "Catalog seed unchanged, sync skipped"
	LogMsgUsingSeedDir       = "Using seed directory override"
	ErrMsgFailedSyncCatalog  = "failed to sync catalog"
	ErrMsgSeedDirUnavailable = "seed directory unavailable"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgClosingDatabase            = "Closing database..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
)
