package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidPathParamFmt   = "Invalid %s"

	// Catalog operation error messages
	ErrMsgListItemsFailed   = "Failed to list item definitions"
	ErrMsgGetItemFailed     = "Failed to get item definition"
	ErrMsgCreateItemFailed  = "Failed to create item definition"
	ErrMsgUpdateItemFailed  = "Failed to update item definition"
	ErrMsgListClassesFailed = "Failed to list classes"

	// Character operation error messages
	ErrMsgCreateCharacterFailed  = "Failed to create character"
	ErrMsgListCharactersFailed   = "Failed to list characters"
	ErrMsgGetCharacterFailed     = "Failed to get character"
	ErrMsgDeleteCharacterFailed  = "Failed to delete character"
	ErrMsgAdjustFailed           = "Failed to adjust character"
	ErrMsgAddExperienceFailed    = "Failed to add experience"
	ErrMsgLevelUpFailed          = "Failed to level up"
	ErrMsgUpdateAttributesFailed = "Failed to update attributes"
	ErrMsgAddSkillFailed         = "Failed to add skill"
	ErrMsgUpgradeSkillFailed     = "Failed to upgrade skill"
	ErrMsgDeleteSkillFailed      = "Failed to delete skill"

	// Inventory operation error messages
	ErrMsgGetInventoryFailed     = "Failed to get inventory"
	ErrMsgAddItemFailed          = "Failed to add item"
	ErrMsgRemoveItemFailed       = "Failed to remove item"
	ErrMsgToggleEquipFailed      = "Failed to toggle equip"
	ErrMsgMoveItemFailed         = "Failed to move item"
	ErrMsgSellItemFailed         = "Failed to sell item"
	ErrMsgUseAsContainerFailed   = "Failed to use item as container"
	ErrMsgGetStorageFailed       = "Failed to get storage"
	ErrMsgCreateStashFailed      = "Failed to create stash"
	ErrMsgListStashesFailed      = "Failed to list stashes"
	ErrMsgStoreDarkStoneFailed   = "Failed to store dark stone"
	ErrMsgRetrieveDarkStoneError = "Failed to retrieve dark stone"
)

// Success messages for API responses
const (
	MsgCharacterDeleted = "Character deleted"
	MsgItemRemoved      = "Item removed"
	MsgSkillDeleted     = "Skill deleted"
)
