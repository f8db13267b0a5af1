package domain

// ItemEquipPayload is the event payload for item.equipped and item.unequipped events
type ItemEquipPayload struct {
	CharacterID int64  `json:"character_id"`
	ItemID      int64  `json:"item_id"`
	ItemName    string `json:"item_name"`
	Slot        string `json:"slot,omitempty"`
	Timestamp   int64  `json:"timestamp"`
}

// ItemAddedPayload is the event payload for item.added events
type ItemAddedPayload struct {
	CharacterID int64  `json:"character_id"`
	ItemID      int64  `json:"item_id"`
	ItemName    string `json:"item_name"`
	Quantity    int    `json:"quantity"`
	Timestamp   int64  `json:"timestamp"`
}

// ItemMovedPayload is the event payload for item.moved and item.merged events.
// MergedIntoID is set only when the item was folded into an existing stack.
type ItemMovedPayload struct {
	CharacterID     int64  `json:"character_id"`
	ItemID          int64  `json:"item_id"`
	ItemName        string `json:"item_name"`
	FromContainerID *int64 `json:"from_container_id,omitempty"`
	ToContainerID   *int64 `json:"to_container_id,omitempty"`
	MergedIntoID    *int64 `json:"merged_into_id,omitempty"`
	Quantity        int    `json:"quantity"`
	Timestamp       int64  `json:"timestamp"`
}

// ItemSoldPayload is the event payload for item.sold events
type ItemSoldPayload struct {
	CharacterID int64  `json:"character_id"`
	ItemName    string `json:"item_name"`
	ItemType    string `json:"item_type"`
	Quantity    int    `json:"quantity"`
	Percentage  int    `json:"percentage"`
	TotalValue  int    `json:"total_value"`
	Timestamp   int64  `json:"timestamp"`
}

// ItemDiscardedPayload is the event payload for item.discarded events
type ItemDiscardedPayload struct {
	CharacterID int64  `json:"character_id"`
	ItemName    string `json:"item_name"`
	Quantity    int    `json:"quantity"`
	Timestamp   int64  `json:"timestamp"`
}

// CharacterPayload is the event payload for character.created and character.deleted events
type CharacterPayload struct {
	CharacterID int64  `json:"character_id"`
	Name        string `json:"name"`
	ClassName   string `json:"class_name"`
	Timestamp   int64  `json:"timestamp"`
}

// CharacterLeveledUpPayload is the event payload for character.leveled_up events
type CharacterLeveledUpPayload struct {
	CharacterID int64 `json:"character_id"`
	OldLevel    int   `json:"old_level"`
	NewLevel    int   `json:"new_level"`
	MaxHealth   int   `json:"max_health"`
	Timestamp   int64 `json:"timestamp"`
}

// DarkStonePayload is the event payload for dark_stone.stored and dark_stone.retrieved events
type DarkStonePayload struct {
	CharacterID int64 `json:"character_id"`
	ContainerID int64 `json:"container_id"`
	ItemID      int64 `json:"item_id"`
	Carried     int   `json:"carried"` // character counter after the change
	Timestamp   int64 `json:"timestamp"`
}

// RuleRejectedPayload is the event payload for rule.rejected events
type RuleRejectedPayload struct {
	CharacterID int64  `json:"character_id"`
	Rule        string `json:"rule"`
	Reason      string `json:"reason"`
	Timestamp   int64  `json:"timestamp"`
}

// CatalogSyncedPayload is the event payload for catalog.synced events
type CatalogSyncedPayload struct {
	ConfigName string `json:"config_name"`
	Inserted   int    `json:"inserted"`
	Skipped    int    `json:"skipped"`
	Timestamp  int64  `json:"timestamp"`
}

// DefinitionCreatedPayload is the event payload for item_definition.created events
type DefinitionCreatedPayload struct {
	DefinitionID int64  `json:"definition_id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Timestamp    int64  `json:"timestamp"`
}
