package inventory

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jauphraux/SoBApp/internal/domain"
)

func TestAggregateModifiers(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		assert.Empty(t, AggregateModifiers(nil))
	})

	t.Run("sums per stat", func(t *testing.T) {
		items := []domain.InventoryItem{
			testItem("Pistol", domain.SlotHand, true, map[string]int{"Combat": 1}),
			testItem("Rifle", domain.SlotTwoHanded, true, map[string]int{"Combat": 1, "Initiative": 1}),
			testItem("Cursed Hat", domain.SlotHead, true, map[string]int{"Luck": -2, "Lore": 1}),
			testItem("Boots", domain.SlotFeet, false, map[string]int{"Initiative": 5}),
		}
		assert.Equal(t, map[string]int{"Combat": 2, "Initiative": 1, "Luck": -2, "Lore": 1}, AggregateModifiers(items))
	})
}

// Two hand items with Combat +1 give +2; a third is refused and the total holds
func TestHandScenario(t *testing.T) {
	a := testItem("A", domain.SlotHand, false, map[string]int{"Combat": 1})
	b := testItem("B", domain.SlotHand, false, map[string]int{"Combat": 1})
	c := testItem("C", domain.SlotHand, false, map[string]int{"Combat": 1})

	var equipped []domain.InventoryItem
	for _, item := range []domain.InventoryItem{a, b} {
		require.NoError(t, TryEquip(item, equipped))
		item.Equipped = true
		equipped = append(equipped, item)
	}
	assert.Equal(t, 2, AggregateModifiers(equipped)["Combat"])

	err := TryEquip(c, equipped)
	requireRejected(t, err, domain.ErrHandsFull, "Cannot equip C - both hands are full")
	assert.Equal(t, 2, AggregateModifiers(equipped)["Combat"])
}

func TestTotalCarriedWeight(t *testing.T) {
	loose := testItem("Lantern", "", false, nil)
	loose.Definition.Weight = 1
	loose.Quantity = 3

	worn := testItem("Coat", domain.SlotBody, true, nil)
	worn.Definition.Weight = 2

	stored := testItem("Anvil", "", false, nil)
	stored.Definition.Weight = 10
	stored.ContainerID = ptr(int64(1))

	assert.Equal(t, 5, TotalCarriedWeight([]domain.InventoryItem{loose, worn, stored}))
	assert.Equal(t, 0, TotalCarriedWeight(nil))
	assert.Equal(t, 8, MaxEncumbrance(3))
}

func TestGroupByDefinition(t *testing.T) {
	a := darkStoneItem(1)
	b := darkStoneItem(2)
	b.Quantity = 2
	c := testItem("Lantern", "", false, nil)

	groups := GroupByDefinition([]domain.InventoryItem{a, c, b})
	require.Len(t, groups, 2)
	assert.Equal(t, "Dark Stone", groups[0].Definition.Name)
	assert.Equal(t, 3, groups[0].TotalQuantity)
	assert.Len(t, groups[0].Items, 2)
	assert.Equal(t, 1, groups[1].TotalQuantity)
}

func BenchmarkAggregateModifiers(b *testing.B) {
	for _, n := range []int{10, 50, 200} {
		items := make([]domain.InventoryItem, n)
		for i := range items {
			items[i] = testItem(fmt.Sprintf("item-%d", i), domain.SlotHand, i%2 == 0,
				map[string]int{"Combat": 1, "Agility": i % 3, "Luck": -1})
		}
		b.Run(fmt.Sprintf("items=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = AggregateModifiers(items)
			}
		})
	}
}
