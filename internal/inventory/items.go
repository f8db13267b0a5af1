package inventory

import (
	"context"
	"fmt"

	"github.com/Jauphraux/SoBApp/internal/domain"
	"github.com/Jauphraux/SoBApp/internal/event"
	"github.com/Jauphraux/SoBApp/internal/logger"
	"github.com/Jauphraux/SoBApp/internal/repository"
)

// GetInventory returns every item the character owns with its definition
func (s *service) GetInventory(ctx context.Context, characterID int64) ([]domain.InventoryItem, error) {
	if _, err := s.repo.GetCharacter(ctx, characterID); err != nil {
		return nil, err
	}
	items, err := s.repo.GetInventory(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetInventoryFailed, err)
	}
	return items, nil
}

// GetGroupedInventory totals the character's items per definition
func (s *service) GetGroupedInventory(ctx context.Context, characterID int64) ([]domain.InventoryGroup, error) {
	items, err := s.GetInventory(ctx, characterID)
	if err != nil {
		return nil, err
	}
	return GroupByDefinition(items), nil
}

// AddItem creates a loose instance of a definition
func (s *service) AddItem(ctx context.Context, characterID, definitionID int64, quantity int, notes string) (*domain.InventoryItem, error) {
	log := logger.FromContext(ctx)
	log.Info("AddItem called", "character_id", characterID, "definition_id", definitionID, "quantity", quantity)

	if quantity < 1 {
		return nil, fmt.Errorf(ErrMsgInvalidQuantityFmt, quantity, domain.ErrInvalidQuantity)
	}

	unlock := s.lockCharacter(characterID)
	defer unlock()

	var added domain.InventoryItem
	err := s.withTx(ctx, func(tx repository.InventoryTx) error {
		if _, err := requireCharacter(ctx, tx, characterID); err != nil {
			return err
		}
		def, err := tx.GetItemDefinition(ctx, definitionID)
		if err != nil {
			return err
		}

		added = domain.InventoryItem{
			ItemInstance: domain.ItemInstance{
				CharacterID:  characterID,
				DefinitionID: def.ID,
				Quantity:     quantity,
				Notes:        notes,
			},
			Definition: *def,
		}
		if _, err := tx.InsertItem(ctx, &added.ItemInstance); err != nil {
			return fmt.Errorf(ErrMsgInsertItemFailed, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, event.NewItemAddedEvent(added))
	log.Info(LogMsgItemAdded, "character_id", characterID, "item_id", added.ID, "item", added.Name())
	return &added, nil
}

// DeleteItem discards an item. Personal items are refused.
func (s *service) DeleteItem(ctx context.Context, characterID, itemID int64) error {
	log := logger.FromContext(ctx)
	log.Info("DeleteItem called", "character_id", characterID, "item_id", itemID)

	unlock := s.lockCharacter(characterID)
	defer unlock()

	var discarded *domain.InventoryItem
	err := s.withTx(ctx, func(tx repository.InventoryTx) error {
		if _, err := requireCharacter(ctx, tx, characterID); err != nil {
			return err
		}
		item, err := requireOwnedItem(ctx, tx, characterID, itemID)
		if err != nil {
			return err
		}
		if item.Definition.IsPersonal {
			return domain.Reject(domain.ErrPersonalItem, ReasonPersonalDiscard, item.Name())
		}
		if err := tx.DeleteItem(ctx, item.ID); err != nil {
			return fmt.Errorf(ErrMsgDeleteItemFailed, err)
		}
		discarded = item
		return nil
	})
	if err != nil {
		return s.rejected(ctx, characterID, domain.RuleInventory, err)
	}

	s.publish(ctx, event.NewItemDiscardedEvent(*discarded))
	log.Info(LogMsgItemDeleted, "character_id", characterID, "item", discarded.Name())
	return nil
}

// SellItem deletes an item and credits gold_value * quantity * percentage / 100
func (s *service) SellItem(ctx context.Context, characterID, itemID int64, percentage int) (*SaleResult, error) {
	log := logger.FromContext(ctx)
	log.Info("SellItem called", "character_id", characterID, "item_id", itemID, "percentage", percentage)

	if percentage < domain.MinSellPercentage || percentage > domain.MaxSellPercentage {
		return nil, fmt.Errorf(ErrMsgInvalidPercentageFmt, percentage, domain.ErrInvalidPercentage)
	}

	unlock := s.lockCharacter(characterID)
	defer unlock()

	var (
		sold   *domain.InventoryItem
		result SaleResult
	)
	err := s.withTx(ctx, func(tx repository.InventoryTx) error {
		character, err := requireCharacter(ctx, tx, characterID)
		if err != nil {
			return err
		}
		item, err := requireOwnedItem(ctx, tx, characterID, itemID)
		if err != nil {
			return err
		}
		if item.Definition.IsPersonal {
			return domain.Reject(domain.ErrPersonalItem, ReasonPersonalSell, item.Name())
		}

		earned := SaleValue(item.Definition.GoldValue, item.Quantity, percentage)
		character.Gold += earned
		if err := tx.UpdateCharacter(ctx, character); err != nil {
			return fmt.Errorf(ErrMsgUpdateCharacterFailed, err)
		}
		if err := tx.DeleteItem(ctx, item.ID); err != nil {
			return fmt.Errorf(ErrMsgDeleteItemFailed, err)
		}

		sold = item
		result = SaleResult{ItemName: item.Name(), Quantity: item.Quantity, GoldEarned: earned, Gold: character.Gold}
		return nil
	})
	if err != nil {
		return nil, s.rejected(ctx, characterID, domain.RuleInventory, err)
	}

	s.publish(ctx, event.NewItemSoldEvent(*sold, percentage, result.GoldEarned))
	log.Info(LogMsgItemSold, "character_id", characterID, "item", result.ItemName, "gold_earned", result.GoldEarned)
	return &result, nil
}

// SaleValue is the gold a sale yields, rounded down
func SaleValue(goldValue, quantity, percentage int) int {
	return goldValue * quantity * percentage / 100
}
