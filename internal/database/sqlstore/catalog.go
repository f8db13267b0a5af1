package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Jauphraux/SoBApp/internal/database"
	"github.com/Jauphraux/SoBApp/internal/domain"
	"github.com/Jauphraux/SoBApp/internal/repository"
)

// CatalogRepository implements repository.Catalog
type CatalogRepository struct {
	*queries
	db *database.DB
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *database.DB) repository.Catalog {
	return &CatalogRepository{queries: newQueries(db.SQL, db.Dialect), db: db}
}

func scanItemDefinition(row scanner, def *domain.ItemDefinition, extra ...any) error {
	var (
		keywords, modifiers, accepted string
		slot                          sql.NullString
		createdAt                     int64
	)
	dest := append(extra,
		&def.ID, &def.Name, &def.Description, &def.Type, &keywords, &modifiers, &def.Weight,
		&def.DarkStoneCount, &slot, &def.UsageEffect, &def.UpgradeSlots, &def.GoldValue, &def.SideBagType,
		&def.IsPersonal, &def.IsContainer, &def.ContainerCapacity, &accepted, &createdAt,
	)
	if err := row.Scan(dest...); err != nil {
		return err
	}

	var err error
	if def.Keywords, err = decodeStrings(keywords); err != nil {
		return err
	}
	if def.StatModifiers, err = decodeIntMap(modifiers); err != nil {
		return err
	}
	if def.ContainerAcceptedTypes, err = decodeStrings(accepted); err != nil {
		return err
	}
	if slot.Valid && slot.String != "" {
		s := domain.EquipSlot(slot.String)
		def.EquipSlot = &s
	}
	def.CreatedAt = fromMillis(createdAt)
	return nil
}

func (s *queries) listDefinitions(ctx context.Context, where string, args ...any) ([]domain.ItemDefinition, error) {
	rows, err := s.query(ctx, `SELECT `+itemDefinitionColumns+` FROM item_definitions d `+where+` ORDER BY d.name`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list item definitions: %w", err)
	}
	defer rows.Close()

	defs := []domain.ItemDefinition{}
	for rows.Next() {
		var def domain.ItemDefinition
		if err := scanItemDefinition(rows, &def); err != nil {
			return nil, fmt.Errorf("failed to scan item definition: %w", err)
		}
		defs = append(defs, def)
	}
	return defs, rows.Err()
}

// ListItemDefinitions returns every definition ordered by name
func (s *queries) ListItemDefinitions(ctx context.Context) ([]domain.ItemDefinition, error) {
	return s.listDefinitions(ctx, "")
}

// ListItemDefinitionsByType filters by category, ignoring case
func (s *queries) ListItemDefinitionsByType(ctx context.Context, itemType string) ([]domain.ItemDefinition, error) {
	return s.listDefinitions(ctx, "WHERE LOWER(d.type) = LOWER(?)", itemType)
}

// GetItemDefinition retrieves a definition by ID
func (s *queries) GetItemDefinition(ctx context.Context, id int64) (*domain.ItemDefinition, error) {
	var def domain.ItemDefinition
	row := s.queryRow(ctx, `SELECT `+itemDefinitionColumns+` FROM item_definitions d WHERE d.id = ?`, id)
	if err := scanItemDefinition(row, &def); err != nil {
		return nil, notFound(err, domain.ErrDefinitionNotFound, "get item definition")
	}
	return &def, nil
}

// GetItemDefinitionByName retrieves a definition by name, ignoring case
func (s *queries) GetItemDefinitionByName(ctx context.Context, name string) (*domain.ItemDefinition, error) {
	var def domain.ItemDefinition
	row := s.queryRow(ctx, `SELECT `+itemDefinitionColumns+` FROM item_definitions d WHERE LOWER(d.name) = LOWER(?)`, name)
	if err := scanItemDefinition(row, &def); err != nil {
		return nil, notFound(err, domain.ErrDefinitionNotFound, "get item definition by name")
	}
	return &def, nil
}

// GetItemDefinitionByType retrieves the oldest definition of a category, ignoring case
func (s *queries) GetItemDefinitionByType(ctx context.Context, itemType string) (*domain.ItemDefinition, error) {
	var def domain.ItemDefinition
	row := s.queryRow(ctx, `SELECT `+itemDefinitionColumns+` FROM item_definitions d WHERE LOWER(d.type) = LOWER(?) ORDER BY d.id LIMIT 1`, itemType)
	if err := scanItemDefinition(row, &def); err != nil {
		return nil, notFound(err, domain.ErrDefinitionNotFound, "get item definition by type")
	}
	return &def, nil
}

func definitionArgs(def *domain.ItemDefinition) ([]any, error) {
	keywords, err := encodeStrings(def.Keywords)
	if err != nil {
		return nil, err
	}
	modifiers, err := encodeIntMap(def.StatModifiers)
	if err != nil {
		return nil, err
	}
	accepted, err := encodeStrings(def.ContainerAcceptedTypes)
	if err != nil {
		return nil, err
	}
	var slot any
	if def.HasSlot() {
		slot = string(*def.EquipSlot)
	}
	return []any{
		def.Name, def.Description, def.Type, keywords, modifiers, def.Weight,
		def.DarkStoneCount, slot, def.UsageEffect, def.UpgradeSlots, def.GoldValue, def.SideBagType,
		def.IsPersonal, def.IsContainer, def.ContainerCapacity, accepted,
	}, nil
}

// InsertItemDefinition inserts a definition and returns its ID
func (s *queries) InsertItemDefinition(ctx context.Context, def *domain.ItemDefinition) (int64, error) {
	args, err := definitionArgs(def)
	if err != nil {
		return 0, err
	}
	args = append(args, nowMillis())

	id, err := s.insertReturningID(ctx, `INSERT INTO item_definitions (
		name, description, type, keywords, stat_modifiers, weight,
		dark_stone_count, equip_slot, usage_effect, upgrade_slots, gold_value, side_bag_type,
		is_personal, is_container, container_capacity, container_accepted_types, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: item definition %q", domain.ErrDuplicateName, def.Name)
		}
		return 0, fmt.Errorf("failed to insert item definition: %w", err)
	}
	return id, nil
}

// UpdateItemDefinition overwrites every editable field of the definition
func (s *queries) UpdateItemDefinition(ctx context.Context, def *domain.ItemDefinition) error {
	args, err := definitionArgs(def)
	if err != nil {
		return err
	}
	args = append(args, def.ID)

	res, err := s.exec(ctx, `UPDATE item_definitions SET
		name = ?, description = ?, type = ?, keywords = ?, stat_modifiers = ?, weight = ?,
		dark_stone_count = ?, equip_slot = ?, usage_effect = ?, upgrade_slots = ?, gold_value = ?, side_bag_type = ?,
		is_personal = ?, is_container = ?, container_capacity = ?, container_accepted_types = ?
	WHERE id = ?`, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: item definition %q", domain.ErrDuplicateName, def.Name)
		}
		return fmt.Errorf("failed to update item definition: %w", err)
	}
	return requireAffected(res, domain.ErrDefinitionNotFound)
}

func scanClass(row scanner) (*domain.ClassDefinition, error) {
	var (
		class domain.ClassDefinition
		attrs string
	)
	if err := row.Scan(&class.ID, &class.Name, &class.Description, &class.StartingHealth, &class.StartingSanity, &attrs); err != nil {
		return nil, err
	}
	var err error
	if class.StartingAttributes, err = decodeIntMap(attrs); err != nil {
		return nil, err
	}
	return &class, nil
}

// ListClasses returns every class ordered by name
func (s *queries) ListClasses(ctx context.Context) ([]domain.ClassDefinition, error) {
	rows, err := s.query(ctx, `SELECT `+classColumns+` FROM class_definitions ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}
	defer rows.Close()

	classes := []domain.ClassDefinition{}
	for rows.Next() {
		class, err := scanClass(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan class: %w", err)
		}
		classes = append(classes, *class)
	}
	return classes, rows.Err()
}

// GetClass retrieves a class by ID
func (s *queries) GetClass(ctx context.Context, id int64) (*domain.ClassDefinition, error) {
	class, err := scanClass(s.queryRow(ctx, `SELECT `+classColumns+` FROM class_definitions WHERE id = ?`, id))
	if err != nil {
		return nil, notFound(err, domain.ErrClassNotFound, "get class")
	}
	return class, nil
}

// GetClassByName retrieves a class by name, ignoring case
func (s *queries) GetClassByName(ctx context.Context, name string) (*domain.ClassDefinition, error) {
	class, err := scanClass(s.queryRow(ctx, `SELECT `+classColumns+` FROM class_definitions WHERE LOWER(name) = LOWER(?)`, name))
	if err != nil {
		return nil, notFound(err, domain.ErrClassNotFound, "get class by name")
	}
	return class, nil
}

// InsertClass inserts a class and returns its ID
func (s *queries) InsertClass(ctx context.Context, class *domain.ClassDefinition) (int64, error) {
	attrs, err := encodeIntMap(class.StartingAttributes)
	if err != nil {
		return 0, err
	}
	id, err := s.insertReturningID(ctx, `INSERT INTO class_definitions (
		name, description, starting_health, starting_sanity, starting_attributes
	) VALUES (?, ?, ?, ?, ?)`, class.Name, class.Description, class.StartingHealth, class.StartingSanity, attrs)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: class %q", domain.ErrDuplicateName, class.Name)
		}
		return 0, fmt.Errorf("failed to insert class: %w", err)
	}
	return id, nil
}

// CountStashes counts stash containers
func (s *queries) CountStashes(ctx context.Context) (int, error) {
	var n int
	if err := s.queryRow(ctx, `SELECT COUNT(*) FROM containers WHERE is_stash = ?`, true).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count stashes: %w", err)
	}
	return n, nil
}

// GetSyncMetadata retrieves the last sync record of a seed file
func (s *queries) GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error) {
	var (
		meta           domain.SyncMetadata
		synced, modded int64
	)
	err := s.queryRow(ctx, `SELECT config_name, last_sync_time, file_hash, file_mod_time
		FROM sync_metadata WHERE config_name = ?`, configName).
		Scan(&meta.ConfigName, &synced, &meta.FileHash, &modded)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get sync metadata: %w", err)
	}
	meta.LastSyncTime = fromMillis(synced)
	meta.FileModTime = fromMillis(modded)
	return &meta, nil
}

// UpsertSyncMetadata records a sync
func (s *queries) UpsertSyncMetadata(ctx context.Context, meta *domain.SyncMetadata) error {
	_, err := s.exec(ctx, `INSERT INTO sync_metadata (config_name, last_sync_time, file_hash, file_mod_time)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (config_name) DO UPDATE SET
			last_sync_time = excluded.last_sync_time,
			file_hash = excluded.file_hash,
			file_mod_time = excluded.file_mod_time`,
		meta.ConfigName, toMillis(meta.LastSyncTime), meta.FileHash, toMillis(meta.FileModTime))
	if err != nil {
		return fmt.Errorf("failed to upsert sync metadata: %w", err)
	}
	return nil
}

func requireAffected(res sql.Result, sentinel error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return sentinel
	}
	return nil
}
