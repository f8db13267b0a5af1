package domain

import (
	"strings"
	"time"
)

// ItemDefinition is the catalog template every owned item is copied from
type ItemDefinition struct {
	ID             int64          `json:"id" db:"id"`
	Name           string         `json:"name" db:"name"`
	Description    string         `json:"description" db:"description"`
	Type           string         `json:"type" db:"type"`
	Keywords       []string       `json:"keywords" db:"keywords"`
	StatModifiers  map[string]int `json:"stat_modifiers" db:"stat_modifiers"`
	Weight         int            `json:"weight" db:"weight"`
	DarkStoneCount int            `json:"dark_stone_count" db:"dark_stone_count"`
	EquipSlot      *EquipSlot     `json:"equip_slot,omitempty" db:"equip_slot"`
	UsageEffect    *string        `json:"usage_effect,omitempty" db:"usage_effect"`
	UpgradeSlots   int            `json:"upgrade_slots" db:"upgrade_slots"`
	GoldValue      int            `json:"gold_value" db:"gold_value"`
	SideBagType    *string        `json:"side_bag_type,omitempty" db:"side_bag_type"`
	IsPersonal     bool           `json:"is_personal" db:"is_personal"`

	// Container template. Items with IsContainer can be set up as a Container
	// holding up to ContainerCapacity rows of the accepted types.
	IsContainer            bool     `json:"is_container" db:"is_container"`
	ContainerCapacity      int      `json:"container_capacity" db:"container_capacity"`
	ContainerAcceptedTypes []string `json:"container_accepted_types" db:"container_accepted_types"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Slot returns the equip slot or "" for slotless items
func (d ItemDefinition) Slot() EquipSlot {
	if d.EquipSlot == nil {
		return ""
	}
	return *d.EquipSlot
}

// HasSlot reports whether the definition can occupy an equip slot
func (d ItemDefinition) HasSlot() bool {
	return d.EquipSlot != nil && *d.EquipSlot != ""
}

// IsDarkStone reports whether this is the dark stone resource item.
// The category decides, so a renamed definition still counts.
func (d ItemDefinition) IsDarkStone() bool {
	return strings.EqualFold(d.Type, DarkStoneItemType)
}

// Tags returns the category followed by every keyword
func (d ItemDefinition) Tags() []string {
	tags := make([]string, 0, len(d.Keywords)+1)
	if d.Type != "" {
		tags = append(tags, d.Type)
	}
	return append(tags, d.Keywords...)
}

// Placement is where an owned item currently sits
type Placement string

const (
	PlacementLoose     Placement = "loose"
	PlacementContained Placement = "contained"
	PlacementEquipped  Placement = "equipped"
)

// ItemInstance is one owned stack of a definition
type ItemInstance struct {
	ID           int64     `json:"id" db:"id"`
	CharacterID  int64     `json:"character_id" db:"character_id"`
	DefinitionID int64     `json:"definition_id" db:"definition_id"`
	Quantity     int       `json:"quantity" db:"quantity"`
	Equipped     bool      `json:"equipped" db:"equipped"`
	Notes        string    `json:"notes" db:"notes"`
	ContainerID  *int64    `json:"container_id,omitempty" db:"container_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Placement derives the state machine position from the stored flags
func (i ItemInstance) Placement() Placement {
	switch {
	case i.Equipped:
		return PlacementEquipped
	case i.ContainerID != nil:
		return PlacementContained
	default:
		return PlacementLoose
	}
}

// IsLoose reports whether the item is carried outside any container
func (i ItemInstance) IsLoose() bool {
	return i.ContainerID == nil
}

// InventoryItem joins an instance with its definition for rule checks and display
type InventoryItem struct {
	ItemInstance
	Definition ItemDefinition `json:"definition"`
}

// Name is the definition name
func (i InventoryItem) Name() string {
	return i.Definition.Name
}

// InventoryGroup totals every instance of one definition
type InventoryGroup struct {
	Definition    ItemDefinition  `json:"definition"`
	TotalQuantity int             `json:"total_quantity"`
	Items         []InventoryItem `json:"items"`
}
