package database

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/Jauphraux/SoBApp/internal/database/migrations"
)

// NewMigrationProvider builds a goose provider over the embedded migrations for d's dialect
func NewMigrationProvider(d *DB) (*goose.Provider, error) {
	gooseDialect := goose.DialectSQLite3
	if d.Dialect == DialectPostgres {
		gooseDialect = goose.DialectPostgres
	}

	sub, err := fs.Sub(migrations.FS, string(d.Dialect))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s migrations: %w", d.Dialect, err)
	}

	provider, err := goose.NewProvider(gooseDialect, d.SQL, sub)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration provider: %w", err)
	}
	return provider, nil
}

// Migrate applies all pending migrations
func Migrate(ctx context.Context, d *DB) error {
	provider, err := NewMigrationProvider(d)
	if err != nil {
		return err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}
	for _, r := range results {
		slog.Default().Info(LogMsgMigrationApplied,
			"version", r.Source.Version,
			"path", r.Source.Path,
			"duration", r.Duration)
	}
	return nil
}
