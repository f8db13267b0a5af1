package domain

import "strings"

// EquipSlot is a body or hand location an item occupies while equipped
type EquipSlot string

const (
	SlotHead      EquipSlot = "Head"
	SlotBody      EquipSlot = "Body"
	SlotHands     EquipSlot = "Hands" // gloves, not weapon hands
	SlotFeet      EquipSlot = "Feet"
	SlotAccessory EquipSlot = "Accessory"
	SlotHand      EquipSlot = "Hand"
	SlotTwoHanded EquipSlot = "Two-Handed"
)

// MaxHandItems is how many single Hand items can be equipped at once
const MaxHandItems = 2

// EquipSlots lists every slot in display order
var EquipSlots = []EquipSlot{
	SlotHead, SlotBody, SlotHands, SlotFeet, SlotAccessory, SlotHand, SlotTwoHanded,
}

// IsValid reports whether s is one of the known slots
func (s EquipSlot) IsValid() bool {
	for _, known := range EquipSlots {
		if s == known {
			return true
		}
	}
	return false
}

// IsHandFamily reports whether the slot uses weapon hands
func (s EquipSlot) IsHandFamily() bool {
	return s == SlotHand || s == SlotTwoHanded
}

// ParseEquipSlot resolves a slot name case-insensitively.
// "TwoHanded" and "two handed" are accepted as spellings of Two-Handed.
func ParseEquipSlot(name string) (EquipSlot, bool) {
	normalized := strings.NewReplacer("-", "", " ", "", "_", "").Replace(strings.TrimSpace(name))
	for _, known := range EquipSlots {
		if strings.EqualFold(normalized, strings.ReplaceAll(string(known), "-", "")) {
			return known, true
		}
	}
	return "", false
}
