package sqlstore

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Column lists shared by the select statements
const (
	itemDefinitionColumns = `d.id, d.name, d.description, d.type, d.keywords, d.stat_modifiers, d.weight,
	d.dark_stone_count, d.equip_slot, d.usage_effect, d.upgrade_slots, d.gold_value, d.side_bag_type,
	d.is_personal, d.is_container, d.container_capacity, d.container_accepted_types, d.created_at`

	classColumns = `id, name, description, starting_health, starting_sanity, starting_attributes`

	characterColumns = `id, name, class_name, level, health, max_health, sanity, max_sanity, xp, gold,
	dark_stone, initiative, combat, defense, created_at, updated_at`

	inventoryItemColumns = `i.id, i.character_id, i.definition_id, i.quantity, i.equipped, i.notes,
	i.container_id, i.created_at, ` + itemDefinitionColumns

	containerColumns = `c.id, c.item_id, c.max_capacity, c.accepted_types, c.is_stash, c.is_system, c.name`
)

// Encoded defaults for JSON text columns
const (
	emptyJSONArray  = "[]"
	emptyJSONObject = "{}"
)
