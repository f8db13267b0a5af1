package main

import (
	"github.com/spf13/cobra"

	"github.com/Jauphraux/SoBApp/configs"
	"github.com/Jauphraux/SoBApp/internal/bootstrap"
	"github.com/Jauphraux/SoBApp/internal/catalog"
	"github.com/Jauphraux/SoBApp/internal/database"
	"github.com/Jauphraux/SoBApp/internal/database/sqlstore"
)

func newSeedCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Sync class and item definitions from the seed files",
		Long: `seed migrates the database, inserts seed definitions that are not yet present
and creates the default stash. A seed whose hash is unchanged is skipped unless --force is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd, force)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "sync even when the seed hash is unchanged")
	return cmd
}

func runSeed(cmd *cobra.Command, force bool) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	cfg, db, err := openConfigured(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		return err
	}

	svc := catalog.NewService(
		sqlstore.NewCatalogRepository(db),
		catalog.NewLoader(configs.Schemas()),
		catalog.CacheConfig{Size: cfg.CatalogCacheSize, TTL: cfg.CatalogCacheTTL},
		nil,
	)

	printInfo(out, "Syncing catalog (force=%t)...", force)
	result, err := bootstrap.SyncCatalog(ctx, svc, cfg, force)
	if err != nil {
		printError(out, "Seed failed: %v", err)
		return err
	}

	for _, f := range []catalog.FileResult{result.Classes, result.Items} {
		if f.Unchanged {
			printInfo(out, "%s unchanged", f.ConfigName)
			continue
		}
		printSuccess(out, "%s: %d inserted, %d already present", f.ConfigName, f.Inserted, f.Skipped)
	}
	return nil
}
