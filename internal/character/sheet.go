package character

import (
	"github.com/Jauphraux/SoBApp/internal/domain"
	"github.com/Jauphraux/SoBApp/internal/inventory"
)

// BuildSheet derives the effective stats of a character from its equipped items.
// Base values are never changed; effective = base + summed modifiers.
func BuildSheet(c domain.Character, attrs domain.Attributes, items []domain.InventoryItem, skills []domain.Skill) domain.CharacterSheet {
	modifiers := inventory.AggregateModifiers(items)

	attributes := make(map[string]domain.StatValue, len(domain.AttributeNames))
	for name, base := range attrs.AsMap() {
		attributes[name] = domain.NewStatValue(base, modifiers[name])
	}

	combatBase := map[string]int{
		domain.StatInitiative: c.Initiative,
		domain.StatCombat:     c.Combat,
		domain.StatDefense:    c.Defense,
	}
	combat := make(map[string]domain.StatValue, len(combatBase))
	for name, base := range combatBase {
		combat[name] = domain.NewStatValue(base, modifiers[name])
	}

	carried := inventory.TotalCarriedWeight(items)
	maxLoad := inventory.MaxEncumbrance(attributes[domain.AttrStrength].Effective)

	if skills == nil {
		skills = []domain.Skill{}
	}
	return domain.CharacterSheet{
		Character:      c,
		Attributes:     attributes,
		CombatStats:    combat,
		Modifiers:      modifiers,
		CarriedWeight:  carried,
		MaxEncumbrance: maxLoad,
		OverEncumbered: carried > maxLoad,
		Equipped:       inventory.EquippedItems(items),
		Skills:         skills,
	}
}
