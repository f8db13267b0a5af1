package inventory

import (
	"slices"

	"github.com/Jauphraux/SoBApp/internal/domain"
)

// Rejection reasons shown to the player
const (
	ReasonContainerNotFound = "Container not found"
	ReasonItemNotFound      = "Item not found"
	ReasonContainerFull     = "Container is full"
	ReasonTypeNotAccepted   = "This container cannot hold this type of item"
	ReasonContainerIntoSelf = "%s cannot be placed inside itself"
)

// MoveAction is what a successful move does to the ledger
type MoveAction int

const (
	// MoveNoop leaves the item where it is
	MoveNoop MoveAction = iota
	// MoveToLoose clears the container reference
	MoveToLoose
	// MoveReassign points the item at the target container
	MoveReassign
	// MoveMerge adds the item's quantity to an occupant and deletes the item
	MoveMerge
)

func (a MoveAction) String() string {
	switch a {
	case MoveToLoose:
		return "loose"
	case MoveReassign:
		return "reassign"
	case MoveMerge:
		return "merge"
	default:
		return "noop"
	}
}

// MoveRequest is the snapshot a move is decided against.
// Target is nil when TargetID is nil or names a container that does not exist.
type MoveRequest struct {
	Item     *domain.InventoryItem
	TargetID *int64
	Target   *domain.ContainerWithItems

	// EnclosingItems holds the backing item IDs of every container the target sits in
	EnclosingItems []int64
	// ItemBacksContainer is set when the moving item is itself a container.
	// Such items are never merged away, since deleting them would empty their container.
	ItemBacksContainer bool
}

// MovePlan is the decided outcome of a move
type MovePlan struct {
	Action MoveAction
	// MergeInto is the occupant receiving the quantity for MoveMerge
	MergeInto *domain.InventoryItem
	// Unequip is set when an equipped item leaves the loose state
	Unequip bool
}

// PlanMove applies the container rules to a move request.
// Checks run in order: container exists, item exists, self containment, capacity, type allowlist, merge.
// Returns a *domain.RejectionError on refusal.
func PlanMove(req MoveRequest) (MovePlan, error) {
	if req.TargetID == nil {
		if req.Item == nil {
			return MovePlan{}, domain.Reject(domain.ErrItemNotFound, ReasonItemNotFound)
		}
		if req.Item.IsLoose() {
			return MovePlan{Action: MoveNoop}, nil
		}
		return MovePlan{Action: MoveToLoose}, nil
	}

	if req.Target == nil {
		return MovePlan{}, domain.Reject(domain.ErrContainerNotFound, ReasonContainerNotFound)
	}
	if req.Item == nil {
		return MovePlan{}, domain.Reject(domain.ErrItemNotFound, ReasonItemNotFound)
	}

	item, target := req.Item, req.Target
	if item.ContainerID != nil && *item.ContainerID == target.ID {
		return MovePlan{Action: MoveNoop}, nil
	}
	if (target.ItemID != nil && *target.ItemID == item.ID) || slices.Contains(req.EnclosingItems, item.ID) {
		return MovePlan{}, domain.Reject(domain.ErrContainerIntoSelf, ReasonContainerIntoSelf, item.Name())
	}
	if target.IsFull() {
		return MovePlan{}, domain.Reject(domain.ErrContainerFull, ReasonContainerFull)
	}
	if !target.Accepts(item.Definition) {
		return MovePlan{}, domain.Reject(domain.ErrTypeNotAccepted, ReasonTypeNotAccepted)
	}

	plan := MovePlan{Action: MoveReassign, Unequip: item.Equipped}
	if req.ItemBacksContainer {
		return plan, nil
	}
	if occupant, ok := mergeCandidate(target, item); ok {
		plan.Action = MoveMerge
		plan.MergeInto = &occupant
	}
	return plan, nil
}

// mergeCandidate finds a stack of the same definition owned by the same character.
// Stashes are shared, so another character's stack is never merged into.
func mergeCandidate(target *domain.ContainerWithItems, item *domain.InventoryItem) (domain.InventoryItem, bool) {
	for _, occupant := range target.Items {
		if occupant.ID != item.ID &&
			occupant.DefinitionID == item.DefinitionID &&
			occupant.CharacterID == item.CharacterID {
			return occupant, true
		}
	}
	return domain.InventoryItem{}, false
}

// LooseItems returns the items not inside any container
func LooseItems(items []domain.InventoryItem) []domain.InventoryItem {
	out := make([]domain.InventoryItem, 0, len(items))
	for _, item := range items {
		if item.IsLoose() {
			out = append(out, item)
		}
	}
	return out
}

// StoredDarkStone sums dark stone quantities across containers
func StoredDarkStone(containers []domain.ContainerWithItems) int {
	total := 0
	for _, c := range containers {
		for _, item := range c.Items {
			if item.Definition.IsDarkStone() {
				total += item.Quantity
			}
		}
	}
	return total
}
