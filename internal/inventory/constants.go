package inventory

// Player-facing reasons for inventory rejections
const (
	ReasonPersonalDiscard  = "%s is a personal item and cannot be discarded"
	ReasonPersonalSell     = "%s is a personal item and cannot be sold"
	ReasonNotAContainer    = "%s cannot be used as a container"
	ReasonAlreadyContainer = "%s is already set up as a container"
	ReasonNoDarkStone      = "No dark stone to store"
	ReasonNotDarkStone     = "Selected item is not dark stone"
)

// Error message formats
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgGetCharacterFailed      = "failed to get character: %w"
	ErrMsgGetInventoryFailed      = "failed to get inventory: %w"
	ErrMsgGetItemFailed           = "failed to get item: %w"
	ErrMsgGetContainerFailed      = "failed to get container: %w"
	ErrMsgGetDefinitionFailed     = "failed to get item definition: %w"
	ErrMsgUpdateItemFailed        = "failed to update item: %w"
	ErrMsgInsertItemFailed        = "failed to insert item: %w"
	ErrMsgDeleteItemFailed        = "failed to delete item: %w"
	ErrMsgUpdateCharacterFailed   = "failed to update character: %w"
	ErrMsgInsertContainerFailed   = "failed to insert container: %w"
	ErrMsgListContainersFailed    = "failed to list containers: %w"
	ErrMsgInvalidPercentageFmt    = "invalid percentage %d: %w"
	ErrMsgInvalidQuantityFmt      = "invalid quantity %d: %w"
	ErrMsgInvalidCapacityFmt      = "stash capacity %d must be at least 1: %w"
	ErrMsgStashNameRequired       = "stash name is required: %w"
)

// Log messages
const (
	LogMsgRuleRejected   = "Rule rejected operation"
	LogMsgItemAdded      = "Item added"
	LogMsgItemDeleted    = "Item discarded"
	LogMsgItemEquipped   = "Item equip toggled"
	LogMsgItemMoved      = "Item moved"
	LogMsgItemSold       = "Item sold"
	LogMsgContainerSetUp = "Item set up as container"
	LogMsgStashCreated   = "Stash created"
	LogMsgDarkStoneMoved = "Dark stone transferred"
)

// maxEnclosingDepth bounds the walk up nested containers
const maxEnclosingDepth = 16
