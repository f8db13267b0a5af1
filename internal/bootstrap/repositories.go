package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Jauphraux/SoBApp/internal/config"
	"github.com/Jauphraux/SoBApp/internal/database"
	"github.com/Jauphraux/SoBApp/internal/database/sqlstore"
	"github.com/Jauphraux/SoBApp/internal/repository"
)

// Repositories holds every repository implementation used by the application
type Repositories struct {
	Catalog   repository.Catalog
	Character repository.Character
	Inventory repository.Inventory
}

// InitializeRepositories builds the repositories over one shared handle
func InitializeRepositories(db *database.DB) *Repositories {
	return &Repositories{
		Catalog:   sqlstore.NewCatalogRepository(db),
		Character: sqlstore.NewCharacterRepository(db),
		Inventory: sqlstore.NewInventoryRepository(db),
	}
}

// OpenDatabase connects the configured store and applies pending migrations
func OpenDatabase(ctx context.Context, cfg *config.Config) (*database.DB, error) {
	dialect, err := database.ParseDialect(cfg.DBDriver)
	if err != nil {
		return nil, err
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
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenDB, err)
	}
	slog.Info(LogMsgDatabaseOpened, "driver", dialect)

	if err := database.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}
	slog.Info(LogMsgMigrationsApplied)

	return db, nil
}
