// Command devtool runs operator tasks against the configured database
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jauphraux/SoBApp/internal/config"
	"github.com/Jauphraux/SoBApp/internal/database"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "devtool",
		Short:         "SoB companion operator tools",
		Long:          `devtool manages migrations, seeds the catalog and checks the configured database.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newMigrateCmd())
	root.AddCommand(newSeedCmd())
	root.AddCommand(newCheckDBCmd())
	root.AddCommand(newCheckEnvCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openConfigured opens the configured store without migrating it
func openConfigured(ctx context.Context) (*config.Config, *database.DB, error) {
	cfg, err := config.LoadStorage()
	if err != nil {
		return nil, nil, err
	}

	dialect, err := database.ParseDialect(cfg.DBDriver)
	if err != nil {
		return nil, nil, err
	}

	db, err := database.Open(ctx, database.Options{
		Dialect:    dialect,
		SQLitePath: cfg.SQLitePath,
		ConnString: cfg.GetDBConnString(),
		MaxConns:   cfg.DBMaxConns,
		MaxIdle:    cfg.DBMaxConnIdleTime,
		MaxLife:    cfg.DBMaxConnLifetime,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	return cfg, db, nil
}
