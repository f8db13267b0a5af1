// @title Shadows of Brimstone Companion API
// @version 1.0
// @description Character sheets, inventory and storage for Shadows of Brimstone campaigns.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	_ "github.com/Jauphraux/SoBApp/docs"
	"github.com/Jauphraux/SoBApp/internal/bootstrap"
	"github.com/Jauphraux/SoBApp/internal/config"
	"github.com/Jauphraux/SoBApp/internal/server"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	slog.Info(bootstrap.LogMsgStartingApp, "version", cfg.Version, "environment", cfg.Environment)
	slog.Info(bootstrap.LogMsgConfigurationLoaded, "port", cfg.Port, "db_driver", cfg.DBDriver)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := bootstrap.OpenDatabase(ctx, cfg)
	if err != nil {
		return err
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		db.Close()
		return err
	}
	if err := bootstrap.RegisterEventHandlers(bus); err != nil {
		db.Close()
		return err
	}

	repos := bootstrap.InitializeRepositories(db)
	svcs := bootstrap.InitializeServices(cfg, repos, publisher)
	bootstrap.RegisterCatalogInvalidation(bus, svcs.Catalog)

	if _, err := bootstrap.SyncCatalog(ctx, svcs.Catalog, cfg, false); err != nil {
		db.Close()
		return err
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
	}, db, server.Services{
		Catalog:   svcs.Catalog,
		Character: svcs.Character,
		Inventory: svcs.Inventory,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
			Server:             srv,
			ResilientPublisher: publisher,
			DB:                 db,
		})
		return nil
	})

	return g.Wait()
}
