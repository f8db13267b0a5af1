package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDialect(t *testing.T) {
	tests := []struct {
		in      string
		want    Dialect
		wantErr bool
	}{
		{"", DialectSQLite, false},
		{"sqlite", DialectSQLite, false},
		{"SQLite3", DialectSQLite, false},
		{"postgres", DialectPostgres, false},
		{"postgresql", DialectPostgres, false},
		{"pgx", DialectPostgres, false},
		{"mysql", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDialect(tt.in)
			if tt.wantErr {
				assert.ErrorContains(t, err, ErrMsgUnknownDriver)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpenSQLite_RequiresPath(t *testing.T) {
	_, err := OpenSQLite(context.Background(), "  ")
	assert.ErrorContains(t, err, ErrMsgSQLitePathRequired)
}

func TestOpen_UnknownDialect(t *testing.T) {
	_, err := Open(context.Background(), Options{Dialect: "oracle"})
	assert.ErrorContains(t, err, ErrMsgUnknownDriver)
}

func TestMigrate_SQLite(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, Options{Dialect: DialectSQLite, SQLitePath: filepath.Join(t.TempDir(), "sob.db")})
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Ping(ctx))
	require.NoError(t, Migrate(ctx, db))
	// second run is a no-op
	require.NoError(t, Migrate(ctx, db))

	provider, err := NewMigrationProvider(db)
	require.NoError(t, err)
	version, err := provider.GetDBVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	var fk int
	require.NoError(t, db.SQL.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&fk))
	assert.Equal(t, 1, fk)

	for _, table := range []string{"characters", "attributes", "skills", "inventory_items", "containers", "item_definitions", "class_definitions", "sync_metadata"} {
		var name string
		err := db.SQL.QueryRowContext(ctx, "SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		assert.NoError(t, err, table)
	}
}
