package bootstrap

import (
	"context"
	"log/slog"

	"github.com/Jauphraux/SoBApp/internal/database"
	"github.com/Jauphraux/SoBApp/internal/event"
	"github.com/Jauphraux/SoBApp/internal/server"
)

// ShutdownComponents holds everything that needs a graceful stop
type ShutdownComponents struct {
	Server             *server.Server
	ResilientPublisher *event.ResilientPublisher
	DB                 database.Pool
}

// GracefulShutdown stops the HTTP server, flushes pending event retries,
// then closes the database. Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	if components.Server != nil {
		slog.Info(LogMsgShuttingDownServer)
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if components.DB != nil {
		slog.Info(LogMsgClosingDatabase)
		components.DB.Close()
	}

	slog.Info(LogMsgServerStopped)
}
