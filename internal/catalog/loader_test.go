package catalog

import (
	"context"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jauphraux/SoBApp/configs"
	"github.com/Jauphraux/SoBApp/internal/database"
	"github.com/Jauphraux/SoBApp/internal/database/sqlstore"
	"github.com/Jauphraux/SoBApp/internal/domain"
	"github.com/Jauphraux/SoBApp/internal/repository"
)

func newTestCatalogRepo(t *testing.T) repository.Catalog {
	t.Helper()
	ctx := context.Background()
	db, err := database.Open(ctx, database.Options{
		Dialect:    database.DialectSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "catalog.db"),
	})
	require.NoError(t, err)
	t.Cleanup(db.Close)
	require.NoError(t, database.Migrate(ctx, db))
	return sqlstore.NewCatalogRepository(db)
}

const testClassesJSON = `[
	{"name": "Gunslinger", "starting_health": 10, "starting_sanity": 12,
	 "starting_attributes": {"agility": 4, "STRENGTH": 2}}
]`

const testItemsJSON = `[
	{"name": "Pistol", "type": "Gun", "weight": 1, "equip_slot": "Hand", "stat_modifiers": {"combat": 1}},
	{"name": "Dark Stone", "type": "Dark Stone", "weight": 1, "equip_slot": null}
]`

func testSeedFS(classes, items string) fstest.MapFS {
	return fstest.MapFS{
		ClassesFileName: {Data: []byte(classes)},
		ItemsFileName:   {Data: []byte(items)},
	}
}

func TestLoader_LoadBundledSeed(t *testing.T) {
	loader := NewLoader(configs.Schemas())

	seed, err := loader.Load(configs.Seed())
	require.NoError(t, err)
	require.NoError(t, loader.Validate(seed))

	assert.NotEmpty(t, seed.Classes)
	assert.NotEmpty(t, seed.Items)
	assert.Len(t, seed.Hashes, 2)

	for _, class := range seed.Classes {
		for attr := range class.StartingAttributes {
			assert.Contains(t, domain.AttributeNames, attr, "class %s", class.Name)
		}
	}

	var darkStone bool
	for _, item := range seed.Items {
		if item.IsDarkStone() {
			darkStone = true
		}
	}
	assert.True(t, darkStone, "bundled items must include the dark stone definition")
}

func TestLoader_Load(t *testing.T) {
	loader := NewLoader(configs.Schemas())

	t.Run("canonicalizes keys and slots", func(t *testing.T) {
		seed, err := loader.Load(testSeedFS(testClassesJSON, testItemsJSON))
		require.NoError(t, err)

		assert.Equal(t, map[string]int{"Agility": 4, "Strength": 2}, seed.Classes[0].StartingAttributes)
		assert.Equal(t, map[string]int{"Combat": 1}, seed.Items[0].StatModifiers)
		assert.Equal(t, domain.SlotHand, seed.Items[0].Slot())
		assert.Nil(t, seed.Items[1].EquipSlot)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loader.Load(fstest.MapFS{ClassesFileName: {Data: []byte(testClassesJSON)}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read seed file items.json")
	})

	t.Run("schema rejects unknown slot", func(t *testing.T) {
		_, err := loader.Load(testSeedFS(testClassesJSON, `[{"name": "Tail Ring", "type": "Gear", "equip_slot": "Tail"}]`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schema validation failed for items.json")
	})

	t.Run("schema rejects wrong shape", func(t *testing.T) {
		_, err := loader.Load(testSeedFS(`{"name": "not an array"}`, testItemsJSON))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schema validation failed for classes.json")
	})
}

func TestLoader_Validate(t *testing.T) {
	loader := NewLoader(configs.Schemas())
	class := domain.ClassDefinition{Name: "Marshal", StartingHealth: 12, StartingSanity: 10}
	pistol := domain.ItemDefinition{Name: "Pistol", Type: "Gun"}

	tests := []struct {
		name    string
		seed    *Seed
		wantErr error
		msg     string
	}{
		{"nil seed", nil, ErrInvalidConfig, ErrMsgSeedNil},
		{"no classes", &Seed{Items: []domain.ItemDefinition{pistol}}, ErrInvalidConfig, ErrMsgNoClassesDefined},
		{"no items", &Seed{Classes: []domain.ClassDefinition{class}}, ErrInvalidConfig, ErrMsgNoItemsDefined},
		{
			"duplicate class",
			&Seed{Classes: []domain.ClassDefinition{class, {Name: "marshal", StartingHealth: 1, StartingSanity: 1}}, Items: []domain.ItemDefinition{pistol}},
			ErrDuplicateName, "marshal",
		},
		{
			"duplicate item",
			&Seed{Classes: []domain.ClassDefinition{class}, Items: []domain.ItemDefinition{pistol, {Name: "PISTOL", Type: "Gun"}}},
			ErrDuplicateName, "PISTOL",
		},
		{
			"negative weight",
			&Seed{Classes: []domain.ClassDefinition{class}, Items: []domain.ItemDefinition{{Name: "Anvil", Type: "Gear", Weight: -1}}},
			ErrInvalidConfig, "negative weight",
		},
		{
			"container without capacity",
			&Seed{Classes: []domain.ClassDefinition{class}, Items: []domain.ItemDefinition{{Name: "Bag", Type: "Gear", IsContainer: true}}},
			ErrInvalidConfig, "positive capacity",
		},
		{
			"class without health",
			&Seed{Classes: []domain.ClassDefinition{{Name: "Ghost"}}, Items: []domain.ItemDefinition{pistol}},
			ErrInvalidConfig, "positive starting health",
		},
		{
			"empty item name",
			&Seed{Classes: []domain.ClassDefinition{class}, Items: []domain.ItemDefinition{pistol, {Type: "Gear"}}},
			ErrInvalidConfig, "index 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := loader.Validate(tt.seed)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, loader.Validate(&Seed{Classes: []domain.ClassDefinition{class}, Items: []domain.ItemDefinition{pistol}}))
	})
}

func TestLoader_SyncToDatabase_SeedOnce(t *testing.T) {
	ctx := context.Background()
	repo := newTestCatalogRepo(t)
	loader := NewLoader(configs.Schemas())

	seed, err := loader.Load(testSeedFS(testClassesJSON, testItemsJSON))
	require.NoError(t, err)

	// First run inserts everything
	result, err := loader.SyncToDatabase(ctx, seed, repo, false)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Classes.Inserted)
	assert.Equal(t, 2, result.Items.Inserted)

	// Second run sees identical hashes and skips both files
	result, err = loader.SyncToDatabase(ctx, seed, repo, false)
	require.NoError(t, err)
	assert.True(t, result.Classes.Unchanged)
	assert.True(t, result.Items.Unchanged)
	assert.Zero(t, result.Items.Inserted)

	// An edit made at runtime survives a forced resync
	pistol, err := repo.GetItemDefinitionByName(ctx, "Pistol")
	require.NoError(t, err)
	pistol.GoldValue = 999
	require.NoError(t, repo.UpdateItemDefinition(ctx, pistol))

	result, err = loader.SyncToDatabase(ctx, seed, repo, true)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Items.Skipped)
	assert.Equal(t, 1, result.Classes.Skipped)

	pistol, err = repo.GetItemDefinitionByName(ctx, "Pistol")
	require.NoError(t, err)
	assert.Equal(t, 999, pistol.GoldValue)

	meta, err := repo.GetSyncMetadata(ctx, ItemsFileName)
	require.NoError(t, err)
	require.NotNil(t, meta)
	assert.Equal(t, seed.Hashes[ItemsFileName], meta.FileHash)
}

func TestLoader_SyncToDatabase_ChangedFileInsertsNewOnly(t *testing.T) {
	ctx := context.Background()
	repo := newTestCatalogRepo(t)
	loader := NewLoader(configs.Schemas())

	seed, err := loader.Load(testSeedFS(testClassesJSON, testItemsJSON))
	require.NoError(t, err)
	_, err = loader.SyncToDatabase(ctx, seed, repo, false)
	require.NoError(t, err)

	grown := testItemsJSON[:len(testItemsJSON)-1] + `, {"name": "Lantern", "type": "Gear", "weight": 1}]`
	seed, err = loader.Load(testSeedFS(testClassesJSON, grown))
	require.NoError(t, err)

	result, err := loader.SyncToDatabase(ctx, seed, repo, false)
	require.NoError(t, err)
	assert.True(t, result.Classes.Unchanged)
	assert.Equal(t, 1, result.Items.Inserted)
	assert.Equal(t, 2, result.Items.Skipped)
}

func TestEnsureDefaultStash(t *testing.T) {
	ctx := context.Background()
	repo := newTestCatalogRepo(t)

	created, err := EnsureDefaultStash(ctx, repo)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = EnsureDefaultStash(ctx, repo)
	require.NoError(t, err)
	assert.False(t, created, "a stash already exists")

	n, err := repo.CountStashes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
