package inventory

import (
	"context"
	"fmt"

	"github.com/Jauphraux/SoBApp/internal/domain"
	"github.com/Jauphraux/SoBApp/internal/event"
	"github.com/Jauphraux/SoBApp/internal/logger"
	"github.com/Jauphraux/SoBApp/internal/repository"
)

// ToggleEquip unequips an equipped item or equips it through the slot rules.
// Equipping takes the item out of any container.
func (s *service) ToggleEquip(ctx context.Context, characterID, itemID int64) (*domain.InventoryItem, error) {
	log := logger.FromContext(ctx)
	log.Info("ToggleEquip called", "character_id", characterID, "item_id", itemID)

	unlock := s.lockCharacter(characterID)
	defer unlock()

	var toggled *domain.InventoryItem
	err := s.withTx(ctx, func(tx repository.InventoryTx) error {
		if _, err := requireCharacter(ctx, tx, characterID); err != nil {
			return err
		}
		item, err := requireOwnedItem(ctx, tx, characterID, itemID)
		if err != nil {
			return err
		}

		if item.Equipped {
			item.Equipped = false
		} else {
			inventory, err := tx.GetInventory(ctx, characterID)
			if err != nil {
				return fmt.Errorf(ErrMsgGetInventoryFailed, err)
			}
			if err := TryEquip(*item, EquippedItems(inventory)); err != nil {
				return err
			}
			item.Equipped = true
			item.ContainerID = nil
		}

		if err := tx.UpdateItem(ctx, &item.ItemInstance); err != nil {
			return fmt.Errorf(ErrMsgUpdateItemFailed, err)
		}
		toggled = item
		return nil
	})
	if err != nil {
		return nil, s.rejected(ctx, characterID, domain.RuleEquipment, err)
	}

	s.publish(ctx, event.NewItemEquipEvent(*toggled, toggled.Equipped))
	log.Info(LogMsgItemEquipped, "character_id", characterID, "item", toggled.Name(), "equipped", toggled.Equipped)
	return toggled, nil
}
