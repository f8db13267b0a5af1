package domain

// Attribute names as stored in modifier maps and class templates
const (
	AttrAgility  = "Agility"
	AttrStrength = "Strength"
	AttrLore     = "Lore"
	AttrLuck     = "Luck"
	AttrCunning  = "Cunning"
	AttrSpirit   = "Spirit"
)

// Combat stat names
const (
	StatInitiative = "Initiative"
	StatCombat     = "Combat"
	StatDefense    = "Defense"
)

// AttributeNames lists the six attributes in sheet order
var AttributeNames = []string{AttrAgility, AttrStrength, AttrLore, AttrLuck, AttrCunning, AttrSpirit}

// CombatStatNames lists the derived combat stats in sheet order
var CombatStatNames = []string{StatInitiative, StatCombat, StatDefense}

// Character defaults
const (
	StartingLevel         = 1
	StartingGold          = 100
	StartingSkillLevel    = 1
	LevelUpMaxHealthBonus = 2
	BaseEncumbrance       = 5 // plus effective Strength
)

// Dark stone is both a character counter and a storable item
const (
	DarkStoneItemName        = "Dark Stone"
	DarkStoneItemType        = "Dark Stone"
	DarkStoneItemDescription = "A piece of mysterious otherworldly stone that radiates corruption."
	DarkStoneGoldValue       = 50
)

// DarkStoneKeywords label a dark stone definition created on demand
var DarkStoneKeywords = []string{"Artifact", "Valuable"}

// Default stash created when none exists
const (
	DefaultStashName        = "Town Storage"
	DefaultStashDescription = "A secure location to store items in town"
	DefaultStashType        = "Stash"
	DefaultStashCapacity    = 20
)

// DefaultStashKeywords tag the default stash
var DefaultStashKeywords = []string{"Container", "Storage"}

// Sell percentage bounds
const (
	MinSellPercentage = 0
	MaxSellPercentage = 100
)
