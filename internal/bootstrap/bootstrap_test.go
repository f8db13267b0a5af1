package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Jauphraux/SoBApp/internal/config"
	"github.com/Jauphraux/SoBApp/internal/domain"
	"github.com/Jauphraux/SoBApp/internal/event"
	"github.com/Jauphraux/SoBApp/mocks"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		LogLevel:         "info",
		LogFormat:        "text",
		LogDir:           filepath.Join(dir, "logs"),
		Environment:      "test",
		ServiceName:      "sob-companion",
		Version:          "test",
		DBDriver:         config.DriverSQLite,
		SQLitePath:       filepath.Join(dir, "sob.db"),
		CatalogCacheSize: 16,
		CatalogCacheTTL:  time.Minute,
		EventMaxRetries:  1,
		EventRetryDelay:  time.Millisecond,
		DeadLetterPath:   filepath.Join(dir, "logs", "deadletter.jsonl"),
	}
}

func TestCleanupLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	for i := 1; i <= 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2026-01-%02d_00-00-00", i))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, LogFilePermission))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, LogFilePermission))

	cleanupLogs(dir, 9)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var logs []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) == LogFileExtension {
			logs = append(logs, e.Name())
		}
	}
	assert.Len(t, logs, 9)
	assert.NotContains(t, logs, fmt.Sprintf(LogFileNamePattern, "2026-01-01_00-00-00"))
	assert.Contains(t, logs, fmt.Sprintf(LogFileNamePattern, "2026-01-12_00-00-00"))
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
}

func TestSetupLogger_CreatesSessionFile(t *testing.T) {
	cfg := testConfig(t)

	f, err := SetupLogger(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.FileExists(t, f.Name())
	assert.Equal(t, cfg.LogDir, filepath.Dir(f.Name()))
}

func TestSeedFS(t *testing.T) {
	t.Run("embedded by default", func(t *testing.T) {
		fsys, err := SeedFS(&config.Config{})
		require.NoError(t, err)
		_, err = fsys.Open(config.SeedFileItems)
		assert.NoError(t, err)
	})

	t.Run("override directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, config.SeedFileClasses), []byte("[]"), LogFilePermission))

		fsys, err := SeedFS(&config.Config{SeedDir: dir})
		require.NoError(t, err)
		_, err = fsys.Open(config.SeedFileClasses)
		assert.NoError(t, err)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := SeedFS(&config.Config{SeedDir: filepath.Join(t.TempDir(), "nope")})
		assert.ErrorContains(t, err, ErrMsgSeedDirUnavailable)
	})
}

func TestStartupSequence_SQLite(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	db, err := OpenDatabase(ctx, cfg)
	require.NoError(t, err)

	bus, publisher, err := InitializeEventSystem(cfg)
	require.NoError(t, err)
	require.NoError(t, RegisterEventHandlers(bus))

	repos := InitializeRepositories(db)
	services := InitializeServices(cfg, repos, publisher)

	first, err := SyncCatalog(ctx, services.Catalog, cfg, false)
	require.NoError(t, err)
	assert.Greater(t, first.Items.Inserted, 0)
	assert.Greater(t, first.Classes.Inserted, 0)

	second, err := SyncCatalog(ctx, services.Catalog, cfg, false)
	require.NoError(t, err)
	assert.True(t, second.Items.Unchanged)
	assert.True(t, second.Classes.Unchanged)

	stashes, err := services.Inventory.ListStashes(ctx)
	require.NoError(t, err)
	assert.Len(t, stashes, 1)

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	GracefulShutdown(shutdownCtx, ShutdownComponents{ResilientPublisher: publisher, DB: db})
}

func TestRegisterCatalogInvalidation(t *testing.T) {
	bus := event.NewMemoryBus()
	svc := mocks.NewMockCatalogService(t)
	svc.EXPECT().InvalidateCache(mock.Anything).Return().Once()

	RegisterCatalogInvalidation(bus, svc)

	def := domain.ItemDefinition{ID: 42, Name: domain.DarkStoneItemName, Type: domain.DarkStoneItemType}
	require.NoError(t, bus.Publish(context.Background(), event.NewDefinitionCreatedEvent(def)))

	// unrelated events leave the cache alone
	require.NoError(t, bus.Publish(context.Background(), event.NewCatalogSyncedEvent("items", 3, 0)))
}
