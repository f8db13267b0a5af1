package domain

import (
	"strings"
	"time"
)

// Character is a player's live game state.
// Initiative, Combat and Defense are base values; effective values are derived.
type Character struct {
	ID         int64     `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	ClassName  string    `json:"class_name" db:"class_name"`
	Level      int       `json:"level" db:"level"`
	Health     int       `json:"health" db:"health"`
	MaxHealth  int       `json:"max_health" db:"max_health"`
	Sanity     int       `json:"sanity" db:"sanity"`
	MaxSanity  int       `json:"max_sanity" db:"max_sanity"`
	XP         int       `json:"xp" db:"xp"`
	Gold       int       `json:"gold" db:"gold"`
	DarkStone  int       `json:"dark_stone" db:"dark_stone"`
	Initiative int       `json:"initiative" db:"initiative"`
	Combat     int       `json:"combat" db:"combat"`
	Defense    int       `json:"defense" db:"defense"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// Attributes are the six base attribute values of a character
type Attributes struct {
	CharacterID int64 `json:"character_id" db:"character_id"`
	Agility     int   `json:"agility" db:"agility"`
	Strength    int   `json:"strength" db:"strength"`
	Lore        int   `json:"lore" db:"lore"`
	Luck        int   `json:"luck" db:"luck"`
	Cunning     int   `json:"cunning" db:"cunning"`
	Spirit      int   `json:"spirit" db:"spirit"`
}

// AsMap keys the values by canonical attribute name
func (a Attributes) AsMap() map[string]int {
	return map[string]int{
		AttrAgility:  a.Agility,
		AttrStrength: a.Strength,
		AttrLore:     a.Lore,
		AttrLuck:     a.Luck,
		AttrCunning:  a.Cunning,
		AttrSpirit:   a.Spirit,
	}
}

// AttributesFromMap reads the six attributes by name, case-insensitively.
// Missing names default to 0.
func AttributesFromMap(characterID int64, values map[string]int) Attributes {
	attrs := Attributes{CharacterID: characterID}
	for name, v := range values {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "agility":
			attrs.Agility = v
		case "strength":
			attrs.Strength = v
		case "lore":
			attrs.Lore = v
		case "luck":
			attrs.Luck = v
		case "cunning":
			attrs.Cunning = v
		case "spirit":
			attrs.Spirit = v
		}
	}
	return attrs
}

// ClassDefinition is the template a character is created from
type ClassDefinition struct {
	ID                 int64          `json:"id" db:"id"`
	Name               string         `json:"name" db:"name"`
	Description        string         `json:"description" db:"description"`
	StartingHealth     int            `json:"starting_health" db:"starting_health"`
	StartingSanity     int            `json:"starting_sanity" db:"starting_sanity"`
	StartingAttributes map[string]int `json:"starting_attributes" db:"starting_attributes"`
}

// Skill is a named character ability
type Skill struct {
	ID          int64  `json:"id" db:"id"`
	CharacterID int64  `json:"character_id" db:"character_id"`
	Name        string `json:"name" db:"name"`
	Level       int    `json:"level" db:"level"`
	Description string `json:"description" db:"description"`
}

// StatValue splits an effective stat into its base and equipment parts
type StatValue struct {
	Base      int `json:"base"`
	Modifier  int `json:"modifier"`
	Effective int `json:"effective"`
}

// NewStatValue computes the effective value
func NewStatValue(base, modifier int) StatValue {
	return StatValue{Base: base, Modifier: modifier, Effective: base + modifier}
}

// CharacterSheet is the read model for a character's detail view
type CharacterSheet struct {
	Character      Character            `json:"character"`
	Attributes     map[string]StatValue `json:"attributes"`
	CombatStats    map[string]StatValue `json:"combat_stats"`
	Modifiers      map[string]int       `json:"modifiers"`
	CarriedWeight  int                  `json:"carried_weight"`
	MaxEncumbrance int                  `json:"max_encumbrance"`
	OverEncumbered bool                 `json:"over_encumbered"`
	Equipped       []InventoryItem      `json:"equipped"`
	Skills         []Skill              `json:"skills"`
}
