package catalog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Jauphraux/SoBApp/internal/domain"
	"github.com/Jauphraux/SoBApp/internal/logger"
	"github.com/Jauphraux/SoBApp/internal/repository"
	"github.com/Jauphraux/SoBApp/internal/validation"
)

// Sentinel errors for the seed loader
var (
	// ErrDuplicateName is the domain sentinel so callers outside the loader can match it
	ErrDuplicateName = domain.ErrDuplicateName

	ErrInvalidConfig = errors.New("invalid configuration")
)

// Seed is the parsed content of classes.json and items.json
type Seed struct {
	Classes []domain.ClassDefinition
	Items   []domain.ItemDefinition

	// Hashes holds the sha256 of each file, keyed by file name
	Hashes map[string]string
}

// Loader handles loading, validating and syncing the seed files
type Loader interface {
	Load(seedFS fs.FS) (*Seed, error)
	Validate(seed *Seed) error
	SyncToDatabase(ctx context.Context, seed *Seed, repo repository.Catalog, force bool) (*SyncResult, error)
}

// FileResult is the outcome of syncing one seed file
type FileResult struct {
	ConfigName string
	Inserted   int
	Skipped    int
	Unchanged  bool
}

// SyncResult contains the result of syncing the seed to the database
type SyncResult struct {
	Classes FileResult
	Items   FileResult
}

type seedLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a Loader validating against the schemas in schemaFS
func NewLoader(schemaFS fs.FS) Loader {
	return &seedLoader{
		schemaValidator: validation.NewSchemaValidator(schemaFS),
	}
}

// Load reads, schema-validates and parses both seed files
func (l *seedLoader) Load(seedFS fs.FS) (*Seed, error) {
	seed := &Seed{Hashes: make(map[string]string, 2)}

	classData, err := l.readValidated(seedFS, ClassesFileName, ClassesSchemaName)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(classData, &seed.Classes); err != nil {
		return nil, fmt.Errorf(ErrMsgParseSeedFailed, ClassesFileName, err)
	}
	seed.Hashes[ClassesFileName] = hashBytes(classData)

	itemData, err := l.readValidated(seedFS, ItemsFileName, ItemsSchemaName)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(itemData, &seed.Items); err != nil {
		return nil, fmt.Errorf(ErrMsgParseSeedFailed, ItemsFileName, err)
	}
	seed.Hashes[ItemsFileName] = hashBytes(itemData)

	l.canonicalize(seed)
	return seed, nil
}

func (l *seedLoader) readValidated(seedFS fs.FS, name, schema string) ([]byte, error) {
	data, err := fs.ReadFile(seedFS, name)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadSeedFileFailed, name, err)
	}
	if err := l.schemaValidator.ValidateBytes(data, schema); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, name, err)
	}
	return data, nil
}

// canonicalize title-cases stat and attribute keys and trims names
func (l *seedLoader) canonicalize(seed *Seed) {
	for i := range seed.Classes {
		class := &seed.Classes[i]
		class.Name = strings.TrimSpace(class.Name)
		class.StartingAttributes = canonicalStats(class.StartingAttributes)
	}
	for i := range seed.Items {
		item := &seed.Items[i]
		item.Name = strings.TrimSpace(item.Name)
		item.StatModifiers = canonicalStats(item.StatModifiers)
		if item.EquipSlot != nil {
			if slot, ok := domain.ParseEquipSlot(string(*item.EquipSlot)); ok {
				item.EquipSlot = &slot
			}
		}
	}
}

// canonicalStats title-cases the keys of a stat map, summing keys that collide.
// A Caser keeps state, so each call builds its own.
func canonicalStats(stats map[string]int) map[string]int {
	if len(stats) == 0 {
		return map[string]int{}
	}
	caser := cases.Title(language.English)
	out := make(map[string]int, len(stats))
	for name, v := range stats {
		out[caser.String(strings.TrimSpace(name))] += v
	}
	return out
}

// Validate checks the seed for errors the schema cannot express
func (l *seedLoader) Validate(seed *Seed) error {
	if seed == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgSeedNil)
	}
	if len(seed.Classes) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoClassesDefined)
	}
	if len(seed.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	names := make(map[string]bool, len(seed.Classes))
	for i := range seed.Classes {
		if err := validateClass(i, &seed.Classes[i], names); err != nil {
			return err
		}
	}

	names = make(map[string]bool, len(seed.Items))
	for i := range seed.Items {
		if err := ValidateItemDefinition(&seed.Items[i]); err != nil {
			if seed.Items[i].Name == "" {
				return fmt.Errorf(ErrFmtEntryEmptyName, ErrInvalidConfig, "item", i)
			}
			return err
		}
		key := strings.ToLower(seed.Items[i].Name)
		if names[key] {
			return fmt.Errorf("%w: item '%s'", ErrDuplicateName, seed.Items[i].Name)
		}
		names[key] = true
	}
	return nil
}

func validateClass(index int, class *domain.ClassDefinition, names map[string]bool) error {
	if class.Name == "" {
		return fmt.Errorf(ErrFmtEntryEmptyName, ErrInvalidConfig, "class", index)
	}
	key := strings.ToLower(class.Name)
	if names[key] {
		return fmt.Errorf("%w: class '%s'", ErrDuplicateName, class.Name)
	}
	names[key] = true

	if class.StartingHealth <= 0 || class.StartingSanity <= 0 {
		return fmt.Errorf(ErrFmtNonPositiveHealth, ErrInvalidConfig, class.Name)
	}
	for attr, v := range class.StartingAttributes {
		if v < 0 {
			return fmt.Errorf(ErrFmtNegativeField, ErrInvalidConfig, "class", class.Name, attr)
		}
	}
	return nil
}

// ValidateItemDefinition checks one definition. Used for seed entries and API-created definitions.
func ValidateItemDefinition(def *domain.ItemDefinition) error {
	if def.Name == "" {
		return fmt.Errorf("%w: item has empty name", ErrInvalidConfig)
	}
	if strings.TrimSpace(def.Type) == "" {
		return fmt.Errorf(ErrFmtEmptyType, ErrInvalidConfig, def.Name)
	}
	if def.EquipSlot != nil && *def.EquipSlot != "" && !def.EquipSlot.IsValid() {
		return fmt.Errorf(ErrFmtInvalidSlot, ErrInvalidConfig, def.Name, *def.EquipSlot)
	}

	numeric := []struct {
		field string
		value int
	}{
		{"weight", def.Weight},
		{"dark_stone_count", def.DarkStoneCount},
		{"upgrade_slots", def.UpgradeSlots},
		{"gold_value", def.GoldValue},
		{"container_capacity", def.ContainerCapacity},
	}
	for _, n := range numeric {
		if n.value < 0 {
			return fmt.Errorf(ErrFmtNegativeField, ErrInvalidConfig, "item", def.Name, n.field)
		}
	}

	if def.IsContainer && def.ContainerCapacity < 1 {
		return fmt.Errorf(ErrFmtContainerCapacity, ErrInvalidConfig, def.Name)
	}
	return nil
}

// SyncToDatabase inserts seed entries whose names are not yet in the database.
// Existing rows are never overwritten, so edits made through the API survive.
// A file whose hash matches the last sync is skipped unless force is set.
func (l *seedLoader) SyncToDatabase(ctx context.Context, seed *Seed, repo repository.Catalog, force bool) (*SyncResult, error) {
	log := logger.FromContext(ctx)
	result := &SyncResult{
		Classes: FileResult{ConfigName: ClassesFileName},
		Items:   FileResult{ConfigName: ItemsFileName},
	}

	changed, err := fileChanged(ctx, repo, ClassesFileName, seed.Hashes[ClassesFileName], force)
	if err != nil {
		return nil, err
	}
	if changed {
		if err := l.syncClasses(ctx, seed.Classes, repo, &result.Classes); err != nil {
			return nil, err
		}
		recordSync(ctx, repo, ClassesFileName, seed.Hashes[ClassesFileName])
	} else {
		log.Info(LogMsgSeedUnchanged, "file", ClassesFileName)
		result.Classes.Unchanged = true
	}

	changed, err = fileChanged(ctx, repo, ItemsFileName, seed.Hashes[ItemsFileName], force)
	if err != nil {
		return nil, err
	}
	if changed {
		if err := l.syncItems(ctx, seed.Items, repo, &result.Items); err != nil {
			return nil, err
		}
		recordSync(ctx, repo, ItemsFileName, seed.Hashes[ItemsFileName])
	} else {
		log.Info(LogMsgSeedUnchanged, "file", ItemsFileName)
		result.Items.Unchanged = true
	}

	log.Info(LogMsgSyncCompleted,
		"classes_inserted", result.Classes.Inserted,
		"classes_skipped", result.Classes.Skipped,
		"items_inserted", result.Items.Inserted,
		"items_skipped", result.Items.Skipped)

	return result, nil
}

func (l *seedLoader) syncClasses(ctx context.Context, classes []domain.ClassDefinition, repo repository.Catalog, result *FileResult) error {
	existing, err := repo.ListClasses(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgListExistingFailed, err)
	}
	known := make(map[string]bool, len(existing))
	for _, c := range existing {
		known[strings.ToLower(c.Name)] = true
	}

	for i := range classes {
		class := classes[i]
		if known[strings.ToLower(class.Name)] {
			result.Skipped++
			continue
		}
		if _, err := repo.InsertClass(ctx, &class); err != nil {
			return fmt.Errorf(ErrMsgInsertClassFailed, class.Name, err)
		}
		logger.FromContext(ctx).Debug(LogMsgInsertedClass, "name", class.Name)
		result.Inserted++
	}
	return nil
}

func (l *seedLoader) syncItems(ctx context.Context, items []domain.ItemDefinition, repo repository.Catalog, result *FileResult) error {
	existing, err := repo.ListItemDefinitions(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgListExistingFailed, err)
	}
	known := make(map[string]bool, len(existing))
	for _, d := range existing {
		known[strings.ToLower(d.Name)] = true
	}

	for i := range items {
		def := items[i]
		if known[strings.ToLower(def.Name)] {
			result.Skipped++
			continue
		}
		if _, err := repo.InsertItemDefinition(ctx, &def); err != nil {
			return fmt.Errorf(ErrMsgInsertItemFailed, def.Name, err)
		}
		logger.FromContext(ctx).Debug(LogMsgInsertedItem, "name", def.Name)
		result.Inserted++
	}
	return nil
}

func fileChanged(ctx context.Context, repo repository.Catalog, name, hash string, force bool) (bool, error) {
	if force {
		return true, nil
	}
	meta, err := repo.GetSyncMetadata(ctx, name)
	if err != nil {
		return false, fmt.Errorf(ErrMsgCheckFileChangeFailed, name, err)
	}
	if meta == nil {
		return true, nil
	}
	return meta.FileHash != hash, nil
}

func recordSync(ctx context.Context, repo repository.Catalog, name, hash string) {
	now := time.Now()
	err := repo.UpsertSyncMetadata(ctx, &domain.SyncMetadata{
		ConfigName:   name,
		LastSyncTime: now,
		FileHash:     hash,
		FileModTime:  now,
	})
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgUpdateMetadataFailed, "file", name, "error", err)
	}
}

func hashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// EnsureDefaultStash creates the shared town stash when no stash exists.
// Reports whether one was created.
func EnsureDefaultStash(ctx context.Context, repo repository.Catalog) (bool, error) {
	n, err := repo.CountStashes(ctx)
	if err != nil {
		return false, fmt.Errorf(ErrMsgCountStashesFailed, err)
	}
	if n > 0 {
		return false, nil
	}

	name := domain.DefaultStashName
	id, err := repo.InsertContainer(ctx, &domain.Container{
		MaxCapacity: domain.DefaultStashCapacity,
		IsStash:     true,
		IsSystem:    true,
		Name:        &name,
	})
	if err != nil {
		return false, fmt.Errorf(ErrMsgCreateStashFailed, err)
	}
	logger.FromContext(ctx).Info(LogMsgDefaultStashCreated, "container_id", id, "name", name)
	return true, nil
}
