package domain

// Event type constants used for event bus subscriptions and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "item.sold")
const (
	// EventTypeItemAdded is published when an item instance is created from a definition
	EventTypeItemAdded = "item.added"

	// EventTypeItemEquipped is published when an item passes the slot rules and is equipped
	EventTypeItemEquipped = "item.equipped"

	// EventTypeItemUnequipped is published when an item is taken off
	EventTypeItemUnequipped = "item.unequipped"

	// EventTypeItemMoved is published when an item changes container or becomes loose
	EventTypeItemMoved = "item.moved"

	// EventTypeItemMerged is published when a moved item is folded into an existing stack
	EventTypeItemMerged = "item.merged"

	// EventTypeItemSold is published when an item is sold for gold
	EventTypeItemSold = "item.sold"

	// EventTypeItemDiscarded is published when an item is deleted without payment
	EventTypeItemDiscarded = "item.discarded"

	EventTypeCharacterCreated   = "character.created"
	EventTypeCharacterDeleted   = "character.deleted"
	EventTypeCharacterLeveledUp = "character.leveled_up"

	// EventTypeDarkStoneStored is published when a carried dark stone goes into a container
	EventTypeDarkStoneStored = "dark_stone.stored"

	// EventTypeDarkStoneRetrieved is published when a stored dark stone is taken back
	EventTypeDarkStoneRetrieved = "dark_stone.retrieved"

	// EventTypeRuleRejected is published whenever a rule engine refuses an operation
	EventTypeRuleRejected = "rule.rejected"

	// EventTypeCatalogSynced is published after seed data has been synchronized
	EventTypeCatalogSynced = "catalog.synced"

	// EventTypeDefinitionCreated is published when a service outside the catalog adds a definition
	EventTypeDefinitionCreated = "item_definition.created"
)

// Rule names used in rule.rejected payloads and metric labels
const (
	RuleEquipment = "equipment"
	RuleContainer = "container"
	RuleInventory = "inventory"
)
