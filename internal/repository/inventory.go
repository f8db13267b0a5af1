package repository

import (
	"context"

	"github.com/Jauphraux/SoBApp/internal/domain"
)

// Inventory defines the interface for item instance and container persistence
type Inventory interface {
	GetCharacter(ctx context.Context, id int64) (*domain.Character, error)
	GetInventory(ctx context.Context, characterID int64) ([]domain.InventoryItem, error)
	ListCharacterContainers(ctx context.Context, characterID int64) ([]domain.ContainerWithItems, error)
	ListStashes(ctx context.Context) ([]domain.ContainerWithItems, error)

	BeginTx(ctx context.Context) (InventoryTx, error)
}

// InventoryTx defines the interface for inventory transactions.
// Every inventory mutation reads its snapshot and writes its result through one InventoryTx.
type InventoryTx interface {
	Tx
	GetCharacter(ctx context.Context, id int64) (*domain.Character, error)
	UpdateCharacter(ctx context.Context, character *domain.Character) error

	GetInventory(ctx context.Context, characterID int64) ([]domain.InventoryItem, error)
	GetItem(ctx context.Context, itemID int64) (*domain.InventoryItem, error)
	InsertItem(ctx context.Context, item *domain.ItemInstance) (int64, error)
	UpdateItem(ctx context.Context, item *domain.ItemInstance) error
	DeleteItem(ctx context.Context, itemID int64) error

	GetContainer(ctx context.Context, containerID int64) (*domain.ContainerWithItems, error)
	GetContainerByItem(ctx context.Context, itemID int64) (*domain.Container, error)
	InsertContainer(ctx context.Context, container *domain.Container) (int64, error)
	ListCharacterContainers(ctx context.Context, characterID int64) ([]domain.ContainerWithItems, error)

	GetItemDefinition(ctx context.Context, id int64) (*domain.ItemDefinition, error)
	GetItemDefinitionByName(ctx context.Context, name string) (*domain.ItemDefinition, error)
	GetItemDefinitionByType(ctx context.Context, itemType string) (*domain.ItemDefinition, error)
	InsertItemDefinition(ctx context.Context, def *domain.ItemDefinition) (int64, error)
}
