package character

// Error message formats
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgGetClassFailed          = "failed to get class: %w"
	ErrMsgCreateCharacterFailed   = "failed to create character: %w"
	ErrMsgListCharactersFailed    = "failed to list characters: %w"
	ErrMsgUpdateCharacterFailed   = "failed to update character: %w"
	ErrMsgDeleteCharacterFailed   = "failed to delete character: %w"
	ErrMsgGetAttributesFailed     = "failed to get attributes: %w"
	ErrMsgUpdateAttributesFailed  = "failed to update attributes: %w"
	ErrMsgGetInventoryFailed      = "failed to get inventory: %w"
	ErrMsgListSkillsFailed        = "failed to list skills: %w"
	ErrMsgInsertSkillFailed       = "failed to insert skill: %w"
	ErrMsgUpdateSkillFailed       = "failed to update skill: %w"
	ErrMsgDeleteSkillFailed       = "failed to delete skill: %w"
	ErrMsgNegativeAttributeFmt    = "attribute %s cannot be negative: %w"
	ErrMsgInvalidAmountFmt        = "experience amount %d: %w"
	ErrMsgSkillNameRequired       = "skill name is required: %w"
	ErrMsgNameTooLongFmt          = "name exceeds %d characters: %w"
	ErrMsgUnknownCounterFmt       = "unknown counter %q: %w"
)

// Log messages
const (
	LogMsgCharacterCreated  = "Character created"
	LogMsgCharacterDeleted  = "Character deleted"
	LogMsgCounterAdjusted   = "Character counter adjusted"
	LogMsgExperienceAdded   = "Experience added"
	LogMsgCharacterLeveled  = "Character leveled up"
	LogMsgAttributesUpdated = "Attributes updated"
	LogMsgSkillAdded        = "Skill added"
	LogMsgSkillUpgraded     = "Skill upgraded"
	LogMsgSkillDeleted      = "Skill deleted"
)

// MaxNameLength bounds character and skill names
const MaxNameLength = 100

// Counter names a character value adjusted by a signed delta
type Counter string

const (
	CounterHealth    Counter = "health"
	CounterSanity    Counter = "sanity"
	CounterDarkStone Counter = "dark_stone"
	CounterGold      Counter = "gold"
)
