package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Lookup errors
	ErrMsgCharacterNotFound  = "character not found"
	ErrMsgItemNotFound       = "item not found"
	ErrMsgDefinitionNotFound = "item definition not found"
	ErrMsgClassNotFound      = "class not found"
	ErrMsgContainerNotFound  = "container not found"
	ErrMsgSkillNotFound      = "skill not found"

	// Equipment rule errors
	ErrMsgSlotOccupied      = "slot is already occupied"
	ErrMsgHandsFull         = "both hands are full"
	ErrMsgTwoHandedEquipped = "two-handed item is equipped"
	ErrMsgHandsOccupied     = "hands are occupied"
	ErrMsgNotEquippable     = "item cannot be equipped"
	ErrMsgInvalidEquipSlot  = "invalid equip slot"
	ErrMsgPlacementConflict = "item cannot be equipped and contained at once"

	// Container rule errors
	ErrMsgContainerFull     = "container is full"
	ErrMsgTypeNotAccepted   = "type not accepted"
	ErrMsgContainerIntoSelf = "container cannot hold itself"
	ErrMsgNotAContainer     = "item cannot be used as a container"
	ErrMsgAlreadyContainer  = "item is already set up as a container"

	// Inventory errors
	ErrMsgPersonalItem = "personal item"
	ErrMsgNoDarkStone  = "no dark stone to store"
	ErrMsgNotDarkStone = "item is not dark stone"

	// Validation errors
	ErrMsgInvalidQuantity   = "quantity must be at least 1"
	ErrMsgInvalidPercentage = "percentage must be between 0 and 100"
	ErrMsgInvalidAmount     = "amount must be positive"
	ErrMsgInvalidInput      = "invalid input"
	ErrMsgDuplicateName     = "name already exists"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgTxClosed      = "tx is closed"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context,
// or with Reject when the caller should show a specific user message.
var (
	ErrCharacterNotFound  = errors.New(ErrMsgCharacterNotFound)
	ErrItemNotFound       = errors.New(ErrMsgItemNotFound)
	ErrDefinitionNotFound = errors.New(ErrMsgDefinitionNotFound)
	ErrClassNotFound      = errors.New(ErrMsgClassNotFound)
	ErrContainerNotFound  = errors.New(ErrMsgContainerNotFound)
	ErrSkillNotFound      = errors.New(ErrMsgSkillNotFound)

	ErrSlotOccupied      = errors.New(ErrMsgSlotOccupied)
	ErrHandsFull         = errors.New(ErrMsgHandsFull)
	ErrTwoHandedEquipped = errors.New(ErrMsgTwoHandedEquipped)
	ErrHandsOccupied     = errors.New(ErrMsgHandsOccupied)
	ErrNotEquippable     = errors.New(ErrMsgNotEquippable)
	ErrInvalidEquipSlot  = errors.New(ErrMsgInvalidEquipSlot)
	ErrPlacementConflict = errors.New(ErrMsgPlacementConflict)

	ErrContainerFull     = errors.New(ErrMsgContainerFull)
	ErrTypeNotAccepted   = errors.New(ErrMsgTypeNotAccepted)
	ErrContainerIntoSelf = errors.New(ErrMsgContainerIntoSelf)
	ErrNotAContainer     = errors.New(ErrMsgNotAContainer)
	ErrAlreadyContainer  = errors.New(ErrMsgAlreadyContainer)

	ErrPersonalItem = errors.New(ErrMsgPersonalItem)
	ErrNoDarkStone  = errors.New(ErrMsgNoDarkStone)
	ErrNotDarkStone = errors.New(ErrMsgNotDarkStone)

	ErrInvalidQuantity   = errors.New(ErrMsgInvalidQuantity)
	ErrInvalidPercentage = errors.New(ErrMsgInvalidPercentage)
	ErrInvalidAmount     = errors.New(ErrMsgInvalidAmount)
	ErrInvalidInput      = errors.New(ErrMsgInvalidInput)
	ErrDuplicateName     = errors.New(ErrMsgDuplicateName)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
	ErrTxClosed      = errors.New(ErrMsgTxClosed)
)

// RejectionError is a refused operation. Reason is shown to the player verbatim.
type RejectionError struct {
	Err    error
	Reason string
}

func (e *RejectionError) Error() string {
	return e.Reason
}

func (e *RejectionError) Unwrap() error {
	return e.Err
}

// Reject wraps a sentinel with a formatted player-facing reason
func Reject(err error, format string, args ...any) error {
	return &RejectionError{Err: err, Reason: fmt.Sprintf(format, args...)}
}

// RejectionReason extracts the player-facing reason from anywhere in the chain
func RejectionReason(err error) (string, bool) {
	var rej *RejectionError
	if errors.As(err, &rej) {
		return rej.Reason, true
	}
	return "", false
}

// IsNotFound reports whether err is one of the lookup sentinels
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCharacterNotFound) ||
		errors.Is(err, ErrItemNotFound) ||
		errors.Is(err, ErrDefinitionNotFound) ||
		errors.Is(err, ErrClassNotFound) ||
		errors.Is(err, ErrContainerNotFound) ||
		errors.Is(err, ErrSkillNotFound)
}
