package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jauphraux/SoBApp/internal/domain"
)

func equippedItem(id int64, slot domain.EquipSlot, weight int, mods map[string]int) domain.InventoryItem {
	s := slot
	return domain.InventoryItem{
		ItemInstance: domain.ItemInstance{ID: id, DefinitionID: id, Quantity: 1, Equipped: true},
		Definition:   domain.ItemDefinition{ID: id, Name: "item", EquipSlot: &s, Weight: weight, StatModifiers: mods},
	}
}

func TestBuildSheet(t *testing.T) {
	c := domain.Character{ID: 1, Name: "Jess", Initiative: 4, Combat: 2, Defense: 5}
	attrs := domain.Attributes{CharacterID: 1, Agility: 3, Strength: 2, Lore: 1, Luck: 2, Cunning: 3, Spirit: 1}

	items := []domain.InventoryItem{
		equippedItem(1, domain.SlotHand, 1, map[string]int{"Combat": 1}),
		equippedItem(2, domain.SlotHand, 1, map[string]int{"Combat": 1, "Strength": 1}),
		equippedItem(3, domain.SlotHead, 0, map[string]int{"Luck": -1}),
	}
	stored := equippedItem(4, domain.SlotFeet, 9, map[string]int{"Agility": 5})
	stored.Equipped = false
	stored.ContainerID = &stored.ID
	items = append(items, stored)

	sheet := BuildSheet(c, attrs, items, nil)

	t.Run("base values unchanged", func(t *testing.T) {
		assert.Equal(t, 2, sheet.Attributes["Strength"].Base)
		assert.Equal(t, 2, sheet.CombatStats["Combat"].Base)
		assert.Equal(t, 2, sheet.Character.Combat)
	})

	t.Run("effective values", func(t *testing.T) {
		assert.Equal(t, domain.StatValue{Base: 2, Modifier: 2, Effective: 4}, sheet.CombatStats["Combat"])
		assert.Equal(t, domain.StatValue{Base: 2, Modifier: 1, Effective: 3}, sheet.Attributes["Strength"])
		assert.Equal(t, domain.StatValue{Base: 2, Modifier: -1, Effective: 1}, sheet.Attributes["Luck"])
		assert.Equal(t, 3, sheet.Attributes["Agility"].Effective, "unequipped items contribute nothing")
		assert.Equal(t, 4, sheet.CombatStats["Initiative"].Effective)
	})

	t.Run("encumbrance uses effective strength", func(t *testing.T) {
		assert.Equal(t, 2, sheet.CarriedWeight)
		assert.Equal(t, domain.BaseEncumbrance+3, sheet.MaxEncumbrance)
		assert.False(t, sheet.OverEncumbered)
	})

	assert.Len(t, sheet.Equipped, 3)
	assert.NotNil(t, sheet.Skills)
	require.Len(t, sheet.Attributes, len(domain.AttributeNames))
}

func TestBuildSheet_OverEncumbered(t *testing.T) {
	heavy := equippedItem(1, domain.SlotBody, 20, nil)
	sheet := BuildSheet(domain.Character{}, domain.Attributes{Strength: 1}, []domain.InventoryItem{heavy}, nil)
	assert.True(t, sheet.OverEncumbered)
	assert.Empty(t, sheet.Modifiers)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, clamp(-3, 0, 10))
	assert.Equal(t, 10, clamp(14, 0, 10))
	assert.Equal(t, 7, clamp(7, 0, 10))
}
