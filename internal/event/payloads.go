package event

import (
	"time"

	"github.com/Jauphraux/SoBApp/internal/domain"
)

// Type-safe event constructors

// NewItemAddedEvent reports a new item instance
func NewItemAddedEvent(item domain.InventoryItem) Event {
	return New(ItemAdded, domain.ItemAddedPayload{
		CharacterID: item.CharacterID,
		ItemID:      item.ID,
		ItemName:    item.Name(),
		Quantity:    item.Quantity,
		Timestamp:   time.Now().Unix(),
	})
}

// NewItemEquipEvent reports an equip or unequip transition
func NewItemEquipEvent(item domain.InventoryItem, equipped bool) Event {
	eventType := ItemUnequipped
	if equipped {
		eventType = ItemEquipped
	}
	return New(eventType, domain.ItemEquipPayload{
		CharacterID: item.CharacterID,
		ItemID:      item.ID,
		ItemName:    item.Name(),
		Slot:        string(item.Definition.Slot()),
		Timestamp:   time.Now().Unix(),
	})
}

// NewItemMovedEvent reports a container change; mergedInto makes it an item.merged event
func NewItemMovedEvent(item domain.InventoryItem, from, to, mergedInto *int64) Event {
	eventType := ItemMoved
	if mergedInto != nil {
		eventType = ItemMerged
	}
	return New(eventType, domain.ItemMovedPayload{
		CharacterID:     item.CharacterID,
		ItemID:          item.ID,
		ItemName:        item.Name(),
		FromContainerID: from,
		ToContainerID:   to,
		MergedIntoID:    mergedInto,
		Quantity:        item.Quantity,
		Timestamp:       time.Now().Unix(),
	})
}

// NewItemSoldEvent reports a sale
func NewItemSoldEvent(item domain.InventoryItem, percentage, total int) Event {
	return New(ItemSold, domain.ItemSoldPayload{
		CharacterID: item.CharacterID,
		ItemName:    item.Name(),
		ItemType:    item.Definition.Type,
		Quantity:    item.Quantity,
		Percentage:  percentage,
		TotalValue:  total,
		Timestamp:   time.Now().Unix(),
	})
}

// NewItemDiscardedEvent reports a deletion without payment
func NewItemDiscardedEvent(item domain.InventoryItem) Event {
	return New(ItemDiscarded, domain.ItemDiscardedPayload{
		CharacterID: item.CharacterID,
		ItemName:    item.Name(),
		Quantity:    item.Quantity,
		Timestamp:   time.Now().Unix(),
	})
}

// NewCharacterEvent builds character.created or character.deleted
func NewCharacterEvent(eventType Type, c domain.Character) Event {
	return New(eventType, domain.CharacterPayload{
		CharacterID: c.ID,
		Name:        c.Name,
		ClassName:   c.ClassName,
		Timestamp:   time.Now().Unix(),
	})
}

// NewCharacterLeveledUpEvent reports a level gain
func NewCharacterLeveledUpEvent(c domain.Character, oldLevel int) Event {
	return New(CharacterLeveledUp, domain.CharacterLeveledUpPayload{
		CharacterID: c.ID,
		OldLevel:    oldLevel,
		NewLevel:    c.Level,
		MaxHealth:   c.MaxHealth,
		Timestamp:   time.Now().Unix(),
	})
}

// NewDarkStoneEvent builds dark_stone.stored or dark_stone.retrieved
func NewDarkStoneEvent(eventType Type, characterID, containerID, itemID int64, carried int) Event {
	return New(eventType, domain.DarkStonePayload{
		CharacterID: characterID,
		ContainerID: containerID,
		ItemID:      itemID,
		Carried:     carried,
		Timestamp:   time.Now().Unix(),
	})
}

// NewRuleRejectedEvent reports a refused operation
func NewRuleRejectedEvent(characterID int64, rule, reason string) Event {
	return New(RuleRejected, domain.RuleRejectedPayload{
		CharacterID: characterID,
		Rule:        rule,
		Reason:      reason,
		Timestamp:   time.Now().Unix(),
	})
}

// NewCatalogSyncedEvent reports a seed file sync
func NewCatalogSyncedEvent(configName string, inserted, skipped int) Event {
	return New(CatalogSynced, domain.CatalogSyncedPayload{
		ConfigName: configName,
		Inserted:   inserted,
		Skipped:    skipped,
		Timestamp:  time.Now().Unix(),
	})
}

// NewDefinitionCreatedEvent reports a definition added on demand
func NewDefinitionCreatedEvent(def domain.ItemDefinition) Event {
	return New(DefinitionCreated, domain.DefinitionCreatedPayload{
		DefinitionID: def.ID,
		Name:         def.Name,
		Type:         def.Type,
		Timestamp:    time.Now().Unix(),
	})
}
