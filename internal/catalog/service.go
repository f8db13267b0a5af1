package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/Jauphraux/SoBApp/internal/domain"
	"github.com/Jauphraux/SoBApp/internal/event"
	"github.com/Jauphraux/SoBApp/internal/logger"
	"github.com/Jauphraux/SoBApp/internal/repository"
)

// Service defines the interface for Definition Catalog operations
type Service interface {
	ListItems(ctx context.Context) ([]domain.ItemDefinition, error)
	ListItemsByType(ctx context.Context, itemType string) ([]domain.ItemDefinition, error)
	GetItem(ctx context.Context, id int64) (*domain.ItemDefinition, error)
	CreateItem(ctx context.Context, def domain.ItemDefinition) (*domain.ItemDefinition, error)
	UpdateItem(ctx context.Context, def domain.ItemDefinition) (*domain.ItemDefinition, error)

	ListClasses(ctx context.Context) ([]domain.ClassDefinition, error)
	GetClass(ctx context.Context, id int64) (*domain.ClassDefinition, error)

	// Sync loads the seed files, inserts new definitions and creates the default stash
	Sync(ctx context.Context, seedFS fs.FS, force bool) (*SyncResult, error)
	CacheStats() CacheStats
	// InvalidateCache drops every cached read after a write made outside this service
	InvalidateCache(ctx context.Context)
}

type service struct {
	repo      repository.Catalog
	loader    Loader
	cache     *definitionCache
	publisher *event.ResilientPublisher
}

// NewService creates a new catalog service. publisher may be nil.
func NewService(repo repository.Catalog, loader Loader, cacheCfg CacheConfig, publisher *event.ResilientPublisher) Service {
	return &service{
		repo:      repo,
		loader:    loader,
		cache:     newDefinitionCache(cacheCfg),
		publisher: publisher,
	}
}

// ListItems returns every item definition ordered by name
func (s *service) ListItems(ctx context.Context) ([]domain.ItemDefinition, error) {
	if items, ok := s.cache.getItems(cacheKeyAllItems); ok {
		return items, nil
	}
	items, err := s.repo.ListItemDefinitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list item definitions: %w", err)
	}
	s.cache.setItems(cacheKeyAllItems, items)
	return items, nil
}

// ListItemsByType filters definitions by category, ignoring case
func (s *service) ListItemsByType(ctx context.Context, itemType string) ([]domain.ItemDefinition, error) {
	if strings.TrimSpace(itemType) == "" {
		return s.ListItems(ctx)
	}
	key := typeKey(itemType)
	if items, ok := s.cache.getItems(key); ok {
		return items, nil
	}
	items, err := s.repo.ListItemDefinitionsByType(ctx, strings.TrimSpace(itemType))
	if err != nil {
		return nil, fmt.Errorf("failed to list item definitions by type: %w", err)
	}
	s.cache.setItems(key, items)
	return items, nil
}

// GetItem retrieves one definition
func (s *service) GetItem(ctx context.Context, id int64) (*domain.ItemDefinition, error) {
	key := itemKey(id)
	if items, ok := s.cache.getItems(key); ok && len(items) == 1 {
		return &items[0], nil
	}
	def, err := s.repo.GetItemDefinition(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.setItems(key, []domain.ItemDefinition{*def})
	return def, nil
}

// CreateItem adds a custom definition to the catalog
func (s *service) CreateItem(ctx context.Context, def domain.ItemDefinition) (*domain.ItemDefinition, error) {
	log := logger.FromContext(ctx)
	log.Info("CreateItem called", "name", def.Name)

	s.normalize(&def)
	if err := ValidateItemDefinition(&def); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if err := s.checkNameFree(ctx, def.Name, 0); err != nil {
		return nil, err
	}

	id, err := s.repo.InsertItemDefinition(ctx, &def)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.repo.GetItemDefinition(ctx, id)
}

// UpdateItem overwrites an existing definition. Instances pick up the change on their next read.
func (s *service) UpdateItem(ctx context.Context, def domain.ItemDefinition) (*domain.ItemDefinition, error) {
	log := logger.FromContext(ctx)
	log.Info("UpdateItem called", "id", def.ID, "name", def.Name)

	s.normalize(&def)
	if err := ValidateItemDefinition(&def); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if err := s.checkNameFree(ctx, def.Name, def.ID); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateItemDefinition(ctx, &def); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.repo.GetItemDefinition(ctx, def.ID)
}

// ListClasses returns every class definition
func (s *service) ListClasses(ctx context.Context) ([]domain.ClassDefinition, error) {
	if classes, ok := s.cache.getClasses(); ok {
		return classes, nil
	}
	classes, err := s.repo.ListClasses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}
	s.cache.setClasses(classes)
	return classes, nil
}

// GetClass retrieves one class definition
func (s *service) GetClass(ctx context.Context, id int64) (*domain.ClassDefinition, error) {
	return s.repo.GetClass(ctx, id)
}

// Sync runs the seed-once load. Unchanged files are skipped unless force is set.
func (s *service) Sync(ctx context.Context, seedFS fs.FS, force bool) (*SyncResult, error) {
	log := logger.FromContext(ctx)

	seed, err := s.loader.Load(seedFS)
	if err != nil {
		return nil, err
	}
	if err := s.loader.Validate(seed); err != nil {
		return nil, err
	}

	result, err := s.loader.SyncToDatabase(ctx, seed, s.repo, force)
	if err != nil {
		return nil, err
	}

	if _, err := EnsureDefaultStash(ctx, s.repo); err != nil {
		return nil, err
	}

	s.invalidate(ctx)

	for _, file := range []FileResult{result.Classes, result.Items} {
		if file.Unchanged {
			continue
		}
		if s.publisher != nil {
			s.publisher.PublishWithRetry(ctx, event.NewCatalogSyncedEvent(file.ConfigName, file.Inserted, file.Skipped))
		}
	}

	log.Info("Catalog ready",
		"classes_inserted", result.Classes.Inserted,
		"items_inserted", result.Items.Inserted)
	return result, nil
}

// CacheStats reports definition cache hits and misses
func (s *service) CacheStats() CacheStats {
	return s.cache.stats()
}

func (s *service) InvalidateCache(ctx context.Context) {
	s.invalidate(ctx)
}

func (s *service) normalize(def *domain.ItemDefinition) {
	def.Name = strings.TrimSpace(def.Name)
	def.Type = strings.TrimSpace(def.Type)
	def.StatModifiers = canonicalStats(def.StatModifiers)
	if def.EquipSlot != nil {
		if *def.EquipSlot == "" {
			def.EquipSlot = nil
		} else if slot, ok := domain.ParseEquipSlot(string(*def.EquipSlot)); ok {
			def.EquipSlot = &slot
		}
	}
	if def.Keywords == nil {
		def.Keywords = []string{}
	}
	if def.ContainerAcceptedTypes == nil {
		def.ContainerAcceptedTypes = []string{}
	}
}

// checkNameFree rejects a name already used by another definition, ignoring case
func (s *service) checkNameFree(ctx context.Context, name string, selfID int64) error {
	existing, err := s.repo.GetItemDefinitionByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrDefinitionNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return fmt.Errorf("%w: item definition %q", domain.ErrDuplicateName, existing.Name)
	}
	return nil
}

func (s *service) invalidate(ctx context.Context) {
	s.cache.purge()
	logger.FromContext(ctx).Debug(LogMsgCacheInvalidated)
}
