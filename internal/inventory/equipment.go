package inventory

import (
	"github.com/Jauphraux/SoBApp/internal/domain"
)

// Rejection reasons shown to the player
const (
	ReasonHandsOccupied     = "Cannot equip %s - unequip items from your hands first"
	ReasonTwoHandedEquipped = "Cannot equip %s - unequip your two-handed item first"
	ReasonHandsFull         = "Cannot equip %s - both hands are full"
	ReasonSlotOccupied      = "Cannot equip %s - %s slot is already occupied"
)

// TryEquip decides whether candidate may be equipped next to the equipped items.
// Slotless definitions always pass. The candidate itself is ignored if it
// appears in equipped. Returns nil or a *domain.RejectionError.
func TryEquip(candidate domain.InventoryItem, equipped []domain.InventoryItem) error {
	if !candidate.Definition.HasSlot() {
		return nil
	}

	slot := candidate.Definition.Slot()
	name := candidate.Name()
	occupied := occupancy(candidate.ID, equipped)

	switch slot {
	case domain.SlotTwoHanded:
		if occupied[domain.SlotHand] > 0 || occupied[domain.SlotTwoHanded] > 0 {
			return domain.Reject(domain.ErrHandsOccupied, ReasonHandsOccupied, name)
		}
	case domain.SlotHand:
		if occupied[domain.SlotTwoHanded] > 0 {
			return domain.Reject(domain.ErrTwoHandedEquipped, ReasonTwoHandedEquipped, name)
		}
		if occupied[domain.SlotHand] >= domain.MaxHandItems {
			return domain.Reject(domain.ErrHandsFull, ReasonHandsFull, name)
		}
	default:
		if occupied[slot] > 0 {
			return domain.Reject(domain.ErrSlotOccupied, ReasonSlotOccupied, name, slot)
		}
	}
	return nil
}

// occupancy counts equipped items per slot, skipping selfID
func occupancy(selfID int64, equipped []domain.InventoryItem) map[domain.EquipSlot]int {
	counts := make(map[domain.EquipSlot]int, len(equipped))
	for _, item := range equipped {
		if item.ID == selfID && selfID != 0 {
			continue
		}
		if !item.Equipped || !item.Definition.HasSlot() {
			continue
		}
		counts[item.Definition.Slot()]++
	}
	return counts
}

// EquippedItems filters items to those currently equipped
func EquippedItems(items []domain.InventoryItem) []domain.InventoryItem {
	out := make([]domain.InventoryItem, 0, len(items))
	for _, item := range items {
		if item.Equipped {
			out = append(out, item)
		}
	}
	return out
}

// SlotOccupants maps each occupied slot to the items filling it
func SlotOccupants(items []domain.InventoryItem) map[domain.EquipSlot][]domain.InventoryItem {
	slots := make(map[domain.EquipSlot][]domain.InventoryItem)
	for _, item := range items {
		if item.Equipped && item.Definition.HasSlot() {
			slot := item.Definition.Slot()
			slots[slot] = append(slots[slot], item)
		}
	}
	return slots
}
