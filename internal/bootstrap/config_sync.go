package bootstrap

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/Jauphraux/SoBApp/configs"
	"github.com/Jauphraux/SoBApp/internal/catalog"
	"github.com/Jauphraux/SoBApp/internal/config"
)

// SeedFS returns SEED_DIR when set, otherwise the seed files built into the binary
func SeedFS(cfg *config.Config) (fs.FS, error) {
	if cfg.SeedDir == "" {
		return configs.Seed(), nil
	}
	info, err := os.Stat(cfg.SeedDir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgSeedDirUnavailable, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %s is not a directory", ErrMsgSeedDirUnavailable, cfg.SeedDir)
	}
	slog.Info(LogMsgUsingSeedDir, "dir", cfg.SeedDir)
	return os.DirFS(cfg.SeedDir), nil
}

// SyncCatalog loads, validates and inserts the seed definitions.
// Files whose hash matches the last sync are skipped unless force is set.
func SyncCatalog(ctx context.Context, svc catalog.Service, cfg *config.Config, force bool) (*catalog.SyncResult, error) {
	slog.Info(LogMsgSyncingCatalog, "force", force)

	seedFS, err := SeedFS(cfg)
	if err != nil {
		return nil, err
	}

	result, err := svc.Sync(ctx, seedFS, force)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedSyncCatalog, err)
	}

	if result.Classes.Unchanged && result.Items.Unchanged {
		slog.Info(LogMsgCatalogUnchanged)
		return result, nil
	}

	slog.Info(LogMsgCatalogSynced,
		"classes_inserted", result.Classes.Inserted,
		"classes_skipped", result.Classes.Skipped,
		"items_inserted", result.Items.Inserted,
		"items_skipped", result.Items.Skipped)
	return result, nil
}
