package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestParseEquipSlot(t *testing.T) {
	tests := []struct {
		in     string
		want   EquipSlot
		wantOK bool
	}{
		{"Head", SlotHead, true},
		{"head", SlotHead, true},
		{"Two-Handed", SlotTwoHanded, true},
		{"twohanded", SlotTwoHanded, true},
		{"two handed", SlotTwoHanded, true},
		{"Hands", SlotHands, true},
		{"hand", SlotHand, true},
		{"Tail", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseEquipSlot(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEquipSlot_HandFamily(t *testing.T) {
	assert.True(t, SlotHand.IsHandFamily())
	assert.True(t, SlotTwoHanded.IsHandFamily())
	assert.False(t, SlotHands.IsHandFamily())
	assert.False(t, EquipSlot("Wing").IsValid())
}

func TestItemInstance_Placement(t *testing.T) {
	assert.Equal(t, PlacementLoose, ItemInstance{}.Placement())
	assert.Equal(t, PlacementContained, ItemInstance{ContainerID: ptr(int64(3))}.Placement())
	assert.Equal(t, PlacementEquipped, ItemInstance{Equipped: true}.Placement())
}

func TestContainer_Accepts(t *testing.T) {
	gear := ItemDefinition{Type: "Gear", Keywords: []string{"Tool", "Light"}}

	t.Run("empty allowlist accepts anything", func(t *testing.T) {
		assert.True(t, Container{}.Accepts(gear))
	})
	t.Run("category match", func(t *testing.T) {
		assert.True(t, Container{AcceptedTypes: []string{"Gear"}}.Accepts(gear))
	})
	t.Run("keyword match ignores case", func(t *testing.T) {
		assert.True(t, Container{AcceptedTypes: []string{"tool"}}.Accepts(gear))
	})
	t.Run("no intersection", func(t *testing.T) {
		assert.False(t, Container{AcceptedTypes: []string{"Dark Stone"}}.Accepts(gear))
	})
}

func TestContainerWithItems(t *testing.T) {
	c := ContainerWithItems{
		Container: Container{MaxCapacity: 2},
		Items: []InventoryItem{
			{ItemInstance: ItemInstance{ID: 1, DefinitionID: 10}},
		},
	}
	assert.False(t, c.IsFull())
	found, ok := c.FindByDefinition(10)
	require.True(t, ok)
	assert.Equal(t, int64(1), found.ID)
	_, ok = c.FindByDefinition(11)
	assert.False(t, ok)

	c.Items = append(c.Items, InventoryItem{ItemInstance: ItemInstance{ID: 2, DefinitionID: 11}})
	assert.True(t, c.IsFull())
}

func TestContainer_DisplayName(t *testing.T) {
	assert.Equal(t, "Town Storage", Container{Name: ptr("Town Storage")}.DisplayName())
	assert.Equal(t, "Stash", Container{IsStash: true}.DisplayName())
	assert.Equal(t, "Container", Container{}.DisplayName())
}

func TestAttributesFromMap(t *testing.T) {
	attrs := AttributesFromMap(7, map[string]int{"agility": 2, "STRENGTH": 3, "Lore": 1, "Unknown": 9})
	assert.Equal(t, Attributes{CharacterID: 7, Agility: 2, Strength: 3, Lore: 1}, attrs)
	assert.Equal(t, 3, attrs.AsMap()[AttrStrength])
	assert.Len(t, attrs.AsMap(), 6)
}

func TestRejectionError(t *testing.T) {
	err := Reject(ErrHandsFull, "Cannot equip %s - both hands are full", "Pistol")
	wrapped := fmt.Errorf("toggle failed: %w", err)

	assert.True(t, errors.Is(wrapped, ErrHandsFull))
	reason, ok := RejectionReason(wrapped)
	require.True(t, ok)
	assert.Equal(t, "Cannot equip Pistol - both hands are full", reason)

	_, ok = RejectionReason(errors.New("plain"))
	assert.False(t, ok)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(Reject(ErrContainerNotFound, "Container not found")))
	assert.True(t, IsNotFound(fmt.Errorf("%w: id 3", ErrCharacterNotFound)))
	assert.False(t, IsNotFound(ErrContainerFull))
}

func TestItemDefinition_Helpers(t *testing.T) {
	def := ItemDefinition{Name: "dark stone", Type: "Dark Stone"}
	assert.True(t, def.IsDarkStone())
	assert.False(t, def.HasSlot())
	assert.Equal(t, EquipSlot(""), def.Slot())
	assert.Equal(t, []string{"Dark Stone"}, def.Tags())

	def.EquipSlot = ptr(SlotHead)
	assert.True(t, def.HasSlot())
	assert.Equal(t, SlotHead, def.Slot())
}

func TestItemDefinition_IsDarkStoneUsesType(t *testing.T) {
	assert.True(t, ItemDefinition{Name: "Glowing Shard", Type: "Dark Stone"}.IsDarkStone())
	assert.True(t, ItemDefinition{Name: "Shard", Type: "dark stone"}.IsDarkStone())
	assert.False(t, ItemDefinition{Name: "Dark Stone", Type: "Gear"}.IsDarkStone())
}
