package repository

import (
	"context"

	"github.com/Jauphraux/SoBApp/internal/domain"
)

// Catalog defines the interface for class and item definition persistence
type Catalog interface {
	// Item definitions
	ListItemDefinitions(ctx context.Context) ([]domain.ItemDefinition, error)
	ListItemDefinitionsByType(ctx context.Context, itemType string) ([]domain.ItemDefinition, error)
	GetItemDefinition(ctx context.Context, id int64) (*domain.ItemDefinition, error)
	GetItemDefinitionByName(ctx context.Context, name string) (*domain.ItemDefinition, error)
	InsertItemDefinition(ctx context.Context, def *domain.ItemDefinition) (int64, error)
	UpdateItemDefinition(ctx context.Context, def *domain.ItemDefinition) error

	// Class definitions
	ListClasses(ctx context.Context) ([]domain.ClassDefinition, error)
	GetClass(ctx context.Context, id int64) (*domain.ClassDefinition, error)
	GetClassByName(ctx context.Context, name string) (*domain.ClassDefinition, error)
	InsertClass(ctx context.Context, class *domain.ClassDefinition) (int64, error)

	// Stashes seeded alongside the catalog
	CountStashes(ctx context.Context) (int, error)
	InsertContainer(ctx context.Context, container *domain.Container) (int64, error)

	// Sync metadata operations
	GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error)
	UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error
}
