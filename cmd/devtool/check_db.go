package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Jauphraux/SoBApp/internal/config"
	"github.com/Jauphraux/SoBApp/internal/database"
)

const (
	defaultPingAttempts = 30
	pingInterval        = 2 * time.Second
)

func newCheckDBCmd() *cobra.Command {
	var attempts int

	cmd := &cobra.Command{
		Use:   "check-db",
		Short: "Check that the database accepts connections and report its migration version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheckDB(cmd, attempts)
		},
	}
	cmd.Flags().IntVar(&attempts, "attempts", defaultPingAttempts, "ping attempts before giving up")
	return cmd
}

func runCheckDB(cmd *cobra.Command, attempts int) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	printHeader(out, "Checking database...")

	cfg, db, err := openConfigured(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	var pingErr error
	for i := 0; i < attempts; i++ {
		if pingErr = db.Ping(ctx); pingErr == nil {
			break
		}
		printWarning(out, "Database not ready (%d/%d): %v", i+1, attempts, pingErr)
		if i < attempts-1 {
			time.Sleep(pingInterval)
		}
	}
	if pingErr != nil {
		return fmt.Errorf("database failed to become ready after %d attempts: %w", attempts, pingErr)
	}
	printSuccess(out, "Database is ready (%s)", cfg.DBDriver)

	provider, err := database.NewMigrationProvider(db)
	if err != nil {
		return err
	}
	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	printInfo(out, "Migration version: %d", version)
	return nil
}

func newCheckEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-env",
		Short: "Validate required environment variables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			warnings, err := config.ValidateEnvWithWarnings()
			if err != nil {
				printError(out, "%v", err)
				return err
			}
			for _, w := range warnings {
				printWarning(out, "%s", w)
			}
			printSuccess(out, "Environment OK")
			return nil
		},
	}
}
