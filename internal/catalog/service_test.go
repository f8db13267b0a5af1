package catalog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jauphraux/SoBApp/configs"
	"github.com/Jauphraux/SoBApp/internal/domain"
	"github.com/Jauphraux/SoBApp/internal/event"
)

func newTestService(t *testing.T) (Service, *event.MemoryBus) {
	t.Helper()
	bus := event.NewMemoryBus()
	publisher, err := event.NewResilientPublisher(bus, 1, time.Millisecond, filepath.Join(t.TempDir(), "dl.jsonl"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = publisher.Shutdown(context.Background()) })

	svc := NewService(newTestCatalogRepo(t), NewLoader(configs.Schemas()), DefaultCacheConfig(), publisher)
	return svc, bus
}

func TestService_SyncBundledSeed(t *testing.T) {
	ctx := context.Background()
	svc, bus := newTestService(t)

	var synced []domain.CatalogSyncedPayload
	bus.Subscribe(event.CatalogSynced, func(ctx context.Context, evt event.Event) error {
		payload, err := event.DecodePayload[domain.CatalogSyncedPayload](evt.Payload)
		require.NoError(t, err)
		synced = append(synced, payload)
		return nil
	})

	result, err := svc.Sync(ctx, configs.Seed(), false)
	require.NoError(t, err)
	assert.Positive(t, result.Items.Inserted)
	assert.Positive(t, result.Classes.Inserted)
	assert.Len(t, synced, 2)

	classes, err := svc.ListClasses(ctx)
	require.NoError(t, err)
	assert.Len(t, classes, result.Classes.Inserted)

	stones, err := svc.ListItemsByType(ctx, "dark stone")
	require.NoError(t, err)
	require.Len(t, stones, 1)
	assert.Equal(t, domain.DarkStoneItemName, stones[0].Name)

	// Rerun publishes nothing for unchanged files
	_, err = svc.Sync(ctx, configs.Seed(), false)
	require.NoError(t, err)
	assert.Len(t, synced, 2)
}

func TestService_Cache(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.ListItems(ctx)
	require.NoError(t, err)
	_, err = svc.ListItems(ctx)
	require.NoError(t, err)

	stats := svc.CacheStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)

	// A write purges cached lists so the new definition is visible
	created, err := svc.CreateItem(ctx, domain.ItemDefinition{Name: "Hand Axe", Type: "Hand Weapon", Weight: 1})
	require.NoError(t, err)
	assert.Equal(t, 0, svc.CacheStats().Size)

	items, err := svc.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, created.ID, items[0].ID)
}

func TestService_CreateItem(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	t.Run("normalizes slot and modifiers", func(t *testing.T) {
		slot := domain.EquipSlot("two handed")
		def, err := svc.CreateItem(ctx, domain.ItemDefinition{
			Name:          "  Long Rifle ",
			Type:          "Gun",
			EquipSlot:     &slot,
			StatModifiers: map[string]int{"initiative": 1},
		})
		require.NoError(t, err)
		assert.Equal(t, "Long Rifle", def.Name)
		assert.Equal(t, domain.SlotTwoHanded, def.Slot())
		assert.Equal(t, map[string]int{"Initiative": 1}, def.StatModifiers)
	})

	t.Run("rejects invalid definition", func(t *testing.T) {
		_, err := svc.CreateItem(ctx, domain.ItemDefinition{Name: "Nothing"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects duplicate name", func(t *testing.T) {
		_, err := svc.CreateItem(ctx, domain.ItemDefinition{Name: "long rifle", Type: "Gun"})
		assert.ErrorIs(t, err, domain.ErrDuplicateName)
	})
}

func TestService_UpdateItem(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	def, err := svc.CreateItem(ctx, domain.ItemDefinition{Name: "Lantern", Type: "Gear", GoldValue: 50})
	require.NoError(t, err)

	// warm the cache
	_, err = svc.GetItem(ctx, def.ID)
	require.NoError(t, err)

	def.GoldValue = 75
	updated, err := svc.UpdateItem(ctx, *def)
	require.NoError(t, err)
	assert.Equal(t, 75, updated.GoldValue)

	fetched, err := svc.GetItem(ctx, def.ID)
	require.NoError(t, err)
	assert.Equal(t, 75, fetched.GoldValue)

	_, err = svc.UpdateItem(ctx, domain.ItemDefinition{ID: 9999, Name: "Ghost", Type: "Gear"})
	assert.ErrorIs(t, err, domain.ErrDefinitionNotFound)
}

func TestCacheConfig(t *testing.T) {
	cfg := DefaultCacheConfig()
	assert.Equal(t, DefaultCacheSize, cfg.Size)
	assert.Equal(t, DefaultCacheTTL, cfg.TTL)
}
