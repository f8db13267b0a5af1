package inventory

import (
	"github.com/Jauphraux/SoBApp/internal/domain"
)

// AggregateModifiers sums the stat modifiers of every equipped item.
// Items that are not equipped contribute nothing.
// Stats without any contributor are absent from the result.
func AggregateModifiers(items []domain.InventoryItem) map[string]int {
	totals := make(map[string]int)
	for _, item := range items {
		if !item.Equipped {
			continue
		}
		for stat, value := range item.Definition.StatModifiers {
			totals[stat] += value
		}
	}
	return totals
}

// TotalCarriedWeight sums weight times quantity over loose items
func TotalCarriedWeight(items []domain.InventoryItem) int {
	total := 0
	for _, item := range items {
		if item.IsLoose() {
			total += item.Definition.Weight * item.Quantity
		}
	}
	return total
}

// MaxEncumbrance is the weight a character can carry at the given effective Strength
func MaxEncumbrance(strength int) int {
	return domain.BaseEncumbrance + strength
}

// GroupByDefinition totals instances per definition, keeping first-seen order
func GroupByDefinition(items []domain.InventoryItem) []domain.InventoryGroup {
	groups := make([]domain.InventoryGroup, 0)
	index := make(map[int64]int)
	for _, item := range items {
		i, ok := index[item.DefinitionID]
		if !ok {
			i = len(groups)
			index[item.DefinitionID] = i
			groups = append(groups, domain.InventoryGroup{Definition: item.Definition})
		}
		groups[i].TotalQuantity += item.Quantity
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}
