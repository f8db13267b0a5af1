package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jauphraux/SoBApp/internal/domain"
	"github.com/Jauphraux/SoBApp/internal/event"
	"github.com/Jauphraux/SoBApp/internal/logger"
	"github.com/Jauphraux/SoBApp/internal/repository"
)

// StoreDarkStone moves one carried dark stone from the character counter into a container.
// Checks run in the same order as a move: container exists, type allowlist,
// capacity. A full container refuses even when it already holds a stack.
// The stone then joins the character's dark stone stack there, or starts one.
func (s *service) StoreDarkStone(ctx context.Context, characterID, containerID int64) (*domain.InventoryItem, error) {
	log := logger.FromContext(ctx)
	log.Info("StoreDarkStone called", "character_id", characterID, "container_id", containerID)

	unlock := s.lockCharacter(characterID, containerID)
	defer unlock()

	var (
		stack   domain.InventoryItem
		carried int
		created *domain.ItemDefinition
	)
	err := s.withTx(ctx, func(tx repository.InventoryTx) error {
		character, err := requireCharacter(ctx, tx, characterID)
		if err != nil {
			return err
		}
		if character.DarkStone <= 0 {
			return domain.Reject(domain.ErrNoDarkStone, ReasonNoDarkStone)
		}

		target, err := visibleContainer(ctx, tx, characterID, containerID)
		if err != nil {
			return err
		}
		if target == nil {
			return domain.Reject(domain.ErrContainerNotFound, ReasonContainerNotFound)
		}
		if !target.AcceptsTag(domain.DarkStoneItemType) {
			return domain.Reject(domain.ErrTypeNotAccepted, ReasonTypeNotAccepted)
		}

		if target.IsFull() {
			return domain.Reject(domain.ErrContainerFull, ReasonContainerFull)
		}

		if existing, ok := darkStoneStack(target, characterID); ok {
			stack = existing
			stack.Quantity++
			if err := tx.UpdateItem(ctx, &stack.ItemInstance); err != nil {
				return fmt.Errorf(ErrMsgUpdateItemFailed, err)
			}
		} else {
			def, isNew, err := darkStoneDefinition(ctx, tx)
			if err != nil {
				return err
			}
			if isNew {
				created = def
			}
			stack = domain.InventoryItem{
				ItemInstance: domain.ItemInstance{
					CharacterID:  characterID,
					DefinitionID: def.ID,
					Quantity:     1,
					ContainerID:  &target.ID,
				},
				Definition: *def,
			}
			if _, err := tx.InsertItem(ctx, &stack.ItemInstance); err != nil {
				return fmt.Errorf(ErrMsgInsertItemFailed, err)
			}
		}

		character.DarkStone--
		carried = character.DarkStone
		if err := tx.UpdateCharacter(ctx, character); err != nil {
			return fmt.Errorf(ErrMsgUpdateCharacterFailed, err)
		}
		return nil
	})
	if err != nil {
		return nil, s.rejected(ctx, characterID, domain.RuleContainer, err)
	}

	if created != nil {
		s.publish(ctx, event.NewDefinitionCreatedEvent(*created))
	}
	s.publish(ctx, event.NewDarkStoneEvent(event.DarkStoneStored, characterID, containerID, stack.ID, carried))
	log.Info(LogMsgDarkStoneMoved,
		"character_id", characterID,
		"container_id", containerID,
		"item_id", stack.ID,
		"stored", stack.Quantity,
		"carried", carried)
	return &stack, nil
}

// RetrieveDarkStone takes one dark stone out of a stored stack back onto the character counter
func (s *service) RetrieveDarkStone(ctx context.Context, characterID, itemID int64) (*domain.Character, error) {
	log := logger.FromContext(ctx)
	log.Info("RetrieveDarkStone called", "character_id", characterID, "item_id", itemID)

	unlock := s.lockCharacter(characterID)
	defer unlock()

	var (
		character   *domain.Character
		containerID int64
		remaining   int
	)
	err := s.withTx(ctx, func(tx repository.InventoryTx) error {
		var err error
		if character, err = requireCharacter(ctx, tx, characterID); err != nil {
			return err
		}
		item, err := requireOwnedItem(ctx, tx, characterID, itemID)
		if err != nil {
			return err
		}
		if !item.Definition.IsDarkStone() {
			return domain.Reject(domain.ErrNotDarkStone, ReasonNotDarkStone)
		}
		if item.ContainerID != nil {
			containerID = *item.ContainerID
		}

		remaining = item.Quantity - 1
		if remaining > 0 {
			item.Quantity = remaining
			if err := tx.UpdateItem(ctx, &item.ItemInstance); err != nil {
				return fmt.Errorf(ErrMsgUpdateItemFailed, err)
			}
		} else if err := tx.DeleteItem(ctx, item.ID); err != nil {
			return fmt.Errorf(ErrMsgDeleteItemFailed, err)
		}

		character.DarkStone++
		if err := tx.UpdateCharacter(ctx, character); err != nil {
			return fmt.Errorf(ErrMsgUpdateCharacterFailed, err)
		}
		return nil
	})
	if err != nil {
		return nil, s.rejected(ctx, characterID, domain.RuleContainer, err)
	}

	s.publish(ctx, event.NewDarkStoneEvent(event.DarkStoneRetrieved, characterID, containerID, itemID, character.DarkStone))
	log.Info(LogMsgDarkStoneMoved,
		"character_id", characterID,
		"container_id", containerID,
		"item_id", itemID,
		"stored", remaining,
		"carried", character.DarkStone)
	return character, nil
}

// darkStoneStack finds the character's dark stone stack in the target
func darkStoneStack(target *domain.ContainerWithItems, characterID int64) (domain.InventoryItem, bool) {
	for _, occupant := range target.Items {
		if occupant.CharacterID == characterID && occupant.Definition.IsDarkStone() {
			return occupant, true
		}
	}
	return domain.InventoryItem{}, false
}

// darkStoneDefinition returns the first definition of the Dark Stone category,
// creating one when the catalog has none. created reports the insert.
func darkStoneDefinition(ctx context.Context, tx repository.InventoryTx) (def *domain.ItemDefinition, created bool, err error) {
	def, err = tx.GetItemDefinitionByType(ctx, domain.DarkStoneItemType)
	if err == nil {
		return def, false, nil
	}
	if !errors.Is(err, domain.ErrDefinitionNotFound) {
		return nil, false, fmt.Errorf(ErrMsgGetDefinitionFailed, err)
	}

	def = &domain.ItemDefinition{
		Name:                   domain.DarkStoneItemName,
		Description:            domain.DarkStoneItemDescription,
		Type:                   domain.DarkStoneItemType,
		Keywords:               append([]string(nil), domain.DarkStoneKeywords...),
		StatModifiers:          map[string]int{},
		Weight:                 0,
		DarkStoneCount:         1,
		GoldValue:              domain.DarkStoneGoldValue,
		ContainerAcceptedTypes: []string{},
	}
	if def.ID, err = tx.InsertItemDefinition(ctx, def); err != nil {
		return nil, false, fmt.Errorf(ErrMsgGetDefinitionFailed, err)
	}
	return def, true, nil
}
