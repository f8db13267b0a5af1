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

// MoveItem moves an item into a container, or out of one when containerID is nil
func (s *service) MoveItem(ctx context.Context, characterID, itemID int64, containerID *int64) (*MoveResult, error) {
	log := logger.FromContext(ctx)
	if containerID != nil {
		log.Info("MoveItem called", "character_id", characterID, "item_id", itemID, "container_id", *containerID)
	} else {
		log.Info("MoveItem called", "character_id", characterID, "item_id", itemID)
	}

	var unlock func()
	if containerID != nil {
		unlock = s.lockCharacter(characterID, *containerID)
	} else {
		unlock = s.lockCharacter(characterID)
	}
	defer unlock()

	var (
		result *MoveResult
		moved  domain.InventoryItem
	)
	err := s.withTx(ctx, func(tx repository.InventoryTx) error {
		if _, err := requireCharacter(ctx, tx, characterID); err != nil {
			return err
		}
		req, err := s.buildMoveRequest(ctx, tx, characterID, itemID, containerID)
		if err != nil {
			return err
		}
		plan, err := PlanMove(req)
		if err != nil {
			return err
		}

		moved = *req.Item
		result, err = applyMove(ctx, tx, req, plan)
		return err
	})
	if err != nil {
		return nil, s.rejected(ctx, characterID, domain.RuleContainer, err)
	}

	if result.Action != MoveNoop {
		var mergedInto *int64
		if result.Action == MoveMerge {
			mergedInto = &result.Item.ID
		}
		s.publish(ctx, event.NewItemMovedEvent(moved, result.From, result.To, mergedInto))
	}
	log.Info(LogMsgItemMoved, "character_id", characterID, "item_id", itemID, "action", result.Action.String())
	return result, nil
}

func (s *service) buildMoveRequest(ctx context.Context, tx repository.InventoryTx, characterID, itemID int64, containerID *int64) (MoveRequest, error) {
	req := MoveRequest{TargetID: containerID}

	if containerID != nil {
		target, err := visibleContainer(ctx, tx, characterID, *containerID)
		if err != nil {
			return req, err
		}
		req.Target = target
		if target != nil {
			if req.EnclosingItems, err = enclosingItems(ctx, tx, target); err != nil {
				return req, err
			}
		}
	}

	item, err := ownedItem(ctx, tx, characterID, itemID)
	if err != nil {
		return req, err
	}
	req.Item = item

	if item != nil {
		_, err := tx.GetContainerByItem(ctx, item.ID)
		switch {
		case err == nil:
			req.ItemBacksContainer = true
		case !errors.Is(err, domain.ErrContainerNotFound):
			return req, fmt.Errorf(ErrMsgGetContainerFailed, err)
		}
	}
	return req, nil
}

// applyMove writes a decided plan
func applyMove(ctx context.Context, tx repository.InventoryTx, req MoveRequest, plan MovePlan) (*MoveResult, error) {
	item := *req.Item
	result := &MoveResult{Action: plan.Action, Item: &item, From: item.ContainerID, To: req.TargetID}

	switch plan.Action {
	case MoveNoop:
		return result, nil

	case MoveToLoose:
		item.ContainerID = nil

	case MoveReassign:
		target := *req.TargetID
		item.ContainerID = &target
		if plan.Unequip {
			item.Equipped = false
		}

	case MoveMerge:
		stack := *plan.MergeInto
		stack.Quantity += item.Quantity
		if err := tx.UpdateItem(ctx, &stack.ItemInstance); err != nil {
			return nil, fmt.Errorf(ErrMsgUpdateItemFailed, err)
		}
		if err := tx.DeleteItem(ctx, item.ID); err != nil {
			return nil, fmt.Errorf(ErrMsgDeleteItemFailed, err)
		}
		result.Item = &stack
		return result, nil
	}

	if err := tx.UpdateItem(ctx, &item.ItemInstance); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateItemFailed, err)
	}
	return result, nil
}
