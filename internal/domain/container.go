package domain

import "strings"

// Container holds item rows up to MaxCapacity.
// ItemID links it to the item it physically is; stashes have no backing item.
type Container struct {
	ID            int64    `json:"id" db:"id"`
	ItemID        *int64   `json:"item_id,omitempty" db:"item_id"`
	MaxCapacity   int      `json:"max_capacity" db:"max_capacity"`
	AcceptedTypes []string `json:"accepted_types" db:"accepted_types"`
	IsStash       bool     `json:"is_stash" db:"is_stash"`
	IsSystem      bool     `json:"is_system" db:"is_system"`
	Name          *string  `json:"name,omitempty" db:"name"`
}

// AcceptsAll reports whether the allowlist is empty
func (c Container) AcceptsAll() bool {
	return len(c.AcceptedTypes) == 0
}

// Accepts reports whether the definition's category or a keyword is on the allowlist
func (c Container) Accepts(def ItemDefinition) bool {
	if c.AcceptsAll() {
		return true
	}
	return c.AcceptsTag(def.Tags()...)
}

// AcceptsTag reports whether any of the tags is on the allowlist
func (c Container) AcceptsTag(tags ...string) bool {
	if c.AcceptsAll() {
		return true
	}
	for _, accepted := range c.AcceptedTypes {
		for _, tag := range tags {
			if strings.EqualFold(accepted, tag) {
				return true
			}
		}
	}
	return false
}

// DisplayName falls back to a generic label for unnamed containers
func (c Container) DisplayName() string {
	if c.Name != nil && *c.Name != "" {
		return *c.Name
	}
	if c.IsStash {
		return "Stash"
	}
	return "Container"
}

// ContainerWithItems is a container and its current occupants
type ContainerWithItems struct {
	Container
	Items []InventoryItem `json:"items"`
}

// Occupants is the number of item rows inside the container
func (c ContainerWithItems) Occupants() int {
	return len(c.Items)
}

// IsFull reports whether no further row fits
func (c ContainerWithItems) IsFull() bool {
	return c.Occupants() >= c.MaxCapacity
}

// FindByDefinition returns the occupant sharing definitionID, if any
func (c ContainerWithItems) FindByDefinition(definitionID int64) (InventoryItem, bool) {
	for _, item := range c.Items {
		if item.DefinitionID == definitionID {
			return item, true
		}
	}
	return InventoryItem{}, false
}

// StorageView is everything a character can store things in
type StorageView struct {
	CharacterID      int64                `json:"character_id"`
	Containers       []ContainerWithItems `json:"containers"`
	Stashes          []ContainerWithItems `json:"stashes"`
	LooseItems       []InventoryItem      `json:"loose_items"`
	StoredDarkStone  int                  `json:"stored_dark_stone"`
	CarriedDarkStone int                  `json:"carried_dark_stone"`
}
