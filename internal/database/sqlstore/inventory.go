package sqlstore

import (
	"context"
	"fmt"

	"github.com/Jauphraux/SoBApp/internal/database"
	"github.com/Jauphraux/SoBApp/internal/domain"
	"github.com/Jauphraux/SoBApp/internal/repository"
)

// InventoryRepository implements repository.Inventory
type InventoryRepository struct {
	*queries
	db *database.DB
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db *database.DB) repository.Inventory {
	return &InventoryRepository{queries: newQueries(db.SQL, db.Dialect), db: db}
}

// BeginTx starts an inventory transaction
func (r *InventoryRepository) BeginTx(ctx context.Context) (repository.InventoryTx, error) {
	return beginTx(ctx, r.db)
}

const inventoryItemFrom = ` FROM inventory_items i JOIN item_definitions d ON d.id = i.definition_id `

func scanInventoryItem(row scanner) (*domain.InventoryItem, error) {
	var (
		item    domain.InventoryItem
		created int64
	)
	err := scanItemDefinition(row, &item.Definition,
		&item.ID, &item.CharacterID, &item.DefinitionID, &item.Quantity, &item.Equipped, &item.Notes,
		&item.ContainerID, &created)
	if err != nil {
		return nil, err
	}
	item.CreatedAt = fromMillis(created)
	return &item, nil
}

func (s *queries) listInventoryItems(ctx context.Context, where string, args ...any) ([]domain.InventoryItem, error) {
	rows, err := s.query(ctx, `SELECT `+inventoryItemColumns+inventoryItemFrom+where+` ORDER BY i.id`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}
	defer rows.Close()

	items := []domain.InventoryItem{}
	for rows.Next() {
		item, err := scanInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// GetInventory returns every item the character owns, wherever it is
func (s *queries) GetInventory(ctx context.Context, characterID int64) ([]domain.InventoryItem, error) {
	return s.listInventoryItems(ctx, `WHERE i.character_id = ?`, characterID)
}

// GetItem retrieves one item with its definition
func (s *queries) GetItem(ctx context.Context, itemID int64) (*domain.InventoryItem, error) {
	item, err := scanInventoryItem(s.queryRow(ctx, `SELECT `+inventoryItemColumns+inventoryItemFrom+`WHERE i.id = ?`, itemID))
	if err != nil {
		return nil, notFound(err, domain.ErrItemNotFound, "get item")
	}
	return item, nil
}

// InsertItem inserts an item instance and returns its ID
func (s *queries) InsertItem(ctx context.Context, item *domain.ItemInstance) (int64, error) {
	now := nowMillis()
	id, err := s.insertReturningID(ctx, `INSERT INTO inventory_items (
		character_id, definition_id, quantity, equipped, notes, container_id, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		item.CharacterID, item.DefinitionID, item.Quantity, item.Equipped, item.Notes, item.ContainerID, now)
	if err != nil {
		return 0, fmt.Errorf("failed to insert item: %w", err)
	}
	item.ID = id
	item.CreatedAt = fromMillis(now)
	return id, nil
}

// UpdateItem writes quantity, equipped flag, notes and container of the item
func (s *queries) UpdateItem(ctx context.Context, item *domain.ItemInstance) error {
	res, err := s.exec(ctx, `UPDATE inventory_items SET quantity = ?, equipped = ?, notes = ?, container_id = ? WHERE id = ?`,
		item.Quantity, item.Equipped, item.Notes, item.ContainerID, item.ID)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	return requireAffected(res, domain.ErrItemNotFound)
}

// DeleteItem removes the item; a container backed by it cascades and its contents become loose
func (s *queries) DeleteItem(ctx context.Context, itemID int64) error {
	res, err := s.exec(ctx, `DELETE FROM inventory_items WHERE id = ?`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return requireAffected(res, domain.ErrItemNotFound)
}

func scanContainer(row scanner) (*domain.Container, error) {
	var (
		c        domain.Container
		accepted string
	)
	if err := row.Scan(&c.ID, &c.ItemID, &c.MaxCapacity, &accepted, &c.IsStash, &c.IsSystem, &c.Name); err != nil {
		return nil, err
	}
	var err error
	if c.AcceptedTypes, err = decodeStrings(accepted); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *queries) listContainers(ctx context.Context, query string, args ...any) ([]domain.Container, error) {
	rows, err := s.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list containers: %w", err)
	}
	defer rows.Close()

	containers := []domain.Container{}
	for rows.Next() {
		c, err := scanContainer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan container: %w", err)
		}
		containers = append(containers, *c)
	}
	return containers, rows.Err()
}

// withItems loads occupants per container. Rows are fully drained first
// because a transaction holds a single connection.
func (s *queries) withItems(ctx context.Context, containers []domain.Container) ([]domain.ContainerWithItems, error) {
	result := make([]domain.ContainerWithItems, 0, len(containers))
	for _, c := range containers {
		items, err := s.listInventoryItems(ctx, `WHERE i.container_id = ?`, c.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, domain.ContainerWithItems{Container: c, Items: items})
	}
	return result, nil
}

// GetContainer retrieves a container and its occupants
func (s *queries) GetContainer(ctx context.Context, containerID int64) (*domain.ContainerWithItems, error) {
	c, err := scanContainer(s.queryRow(ctx, `SELECT `+containerColumns+` FROM containers c WHERE c.id = ?`, containerID))
	if err != nil {
		return nil, notFound(err, domain.ErrContainerNotFound, "get container")
	}
	loaded, err := s.withItems(ctx, []domain.Container{*c})
	if err != nil {
		return nil, err
	}
	return &loaded[0], nil
}

// GetContainerByItem retrieves the container backed by an item
func (s *queries) GetContainerByItem(ctx context.Context, itemID int64) (*domain.Container, error) {
	c, err := scanContainer(s.queryRow(ctx, `SELECT `+containerColumns+` FROM containers c WHERE c.item_id = ?`, itemID))
	if err != nil {
		return nil, notFound(err, domain.ErrContainerNotFound, "get container by item")
	}
	return c, nil
}

// InsertContainer inserts a container and returns its ID
func (s *queries) InsertContainer(ctx context.Context, c *domain.Container) (int64, error) {
	accepted, err := encodeStrings(c.AcceptedTypes)
	if err != nil {
		return 0, err
	}
	id, err := s.insertReturningID(ctx, `INSERT INTO containers (
		item_id, max_capacity, accepted_types, is_stash, is_system, name
	) VALUES (?, ?, ?, ?, ?, ?)`, c.ItemID, c.MaxCapacity, accepted, c.IsStash, c.IsSystem, c.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: item %d already backs a container", domain.ErrAlreadyContainer, derefID(c.ItemID))
		}
		return 0, fmt.Errorf("failed to insert container: %w", err)
	}
	c.ID = id
	return id, nil
}

// ListCharacterContainers returns containers backed by the character's items
func (s *queries) ListCharacterContainers(ctx context.Context, characterID int64) ([]domain.ContainerWithItems, error) {
	containers, err := s.listContainers(ctx, `SELECT `+containerColumns+` FROM containers c
		JOIN inventory_items backing ON backing.id = c.item_id
		WHERE backing.character_id = ? ORDER BY c.id`, characterID)
	if err != nil {
		return nil, err
	}
	return s.withItems(ctx, containers)
}

// ListStashes returns every stash with its occupants
func (s *queries) ListStashes(ctx context.Context) ([]domain.ContainerWithItems, error) {
	containers, err := s.listContainers(ctx, `SELECT `+containerColumns+` FROM containers c WHERE c.is_stash = ? ORDER BY c.id`, true)
	if err != nil {
		return nil, err
	}
	return s.withItems(ctx, containers)
}

func derefID(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}
