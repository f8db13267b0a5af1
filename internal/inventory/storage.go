package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Jauphraux/SoBApp/internal/domain"
	"github.com/Jauphraux/SoBApp/internal/logger"
	"github.com/Jauphraux/SoBApp/internal/repository"
)

// UseAsContainer sets up a container backed by the item, sized by its definition
func (s *service) UseAsContainer(ctx context.Context, characterID, itemID int64) (*domain.Container, error) {
	log := logger.FromContext(ctx)
	log.Info("UseAsContainer called", "character_id", characterID, "item_id", itemID)

	unlock := s.lockCharacter(characterID)
	defer unlock()

	var container domain.Container
	err := s.withTx(ctx, func(tx repository.InventoryTx) error {
		if _, err := requireCharacter(ctx, tx, characterID); err != nil {
			return err
		}
		item, err := requireOwnedItem(ctx, tx, characterID, itemID)
		if err != nil {
			return err
		}
		if !item.Definition.IsContainer {
			return domain.Reject(domain.ErrNotAContainer, ReasonNotAContainer, item.Name())
		}

		_, err = tx.GetContainerByItem(ctx, item.ID)
		if err == nil {
			return domain.Reject(domain.ErrAlreadyContainer, ReasonAlreadyContainer, item.Name())
		}
		if !errors.Is(err, domain.ErrContainerNotFound) {
			return fmt.Errorf(ErrMsgGetContainerFailed, err)
		}

		name := item.Name()
		container = domain.Container{
			ItemID:        &item.ID,
			MaxCapacity:   item.Definition.ContainerCapacity,
			AcceptedTypes: append([]string{}, item.Definition.ContainerAcceptedTypes...),
			Name:          &name,
		}
		if _, err := tx.InsertContainer(ctx, &container); err != nil {
			if errors.Is(err, domain.ErrAlreadyContainer) {
				return domain.Reject(domain.ErrAlreadyContainer, ReasonAlreadyContainer, item.Name())
			}
			return fmt.Errorf(ErrMsgInsertContainerFailed, err)
		}
		return nil
	})
	if err != nil {
		return nil, s.rejected(ctx, characterID, domain.RuleContainer, err)
	}

	log.Info(LogMsgContainerSetUp, "character_id", characterID, "container_id", container.ID, "capacity", container.MaxCapacity)
	return &container, nil
}

// CreateStash adds a named stash shared by every character
func (s *service) CreateStash(ctx context.Context, name string, capacity int, acceptedTypes []string) (*domain.Container, error) {
	log := logger.FromContext(ctx)
	log.Info("CreateStash called", "name", name, "capacity", capacity)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf(ErrMsgStashNameRequired, domain.ErrInvalidInput)
	}
	if capacity < 1 {
		return nil, fmt.Errorf(ErrMsgInvalidCapacityFmt, capacity, domain.ErrInvalidInput)
	}

	accepted := make([]string, 0, len(acceptedTypes))
	for _, t := range acceptedTypes {
		if t = strings.TrimSpace(t); t != "" {
			accepted = append(accepted, t)
		}
	}

	stash := domain.Container{
		MaxCapacity:   capacity,
		AcceptedTypes: accepted,
		IsStash:       true,
		Name:          &name,
	}
	err := s.withTx(ctx, func(tx repository.InventoryTx) error {
		if _, err := tx.InsertContainer(ctx, &stash); err != nil {
			return fmt.Errorf(ErrMsgInsertContainerFailed, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgStashCreated, "container_id", stash.ID, "name", name)
	return &stash, nil
}

// ListStashes returns every stash with everything stored in it
func (s *service) ListStashes(ctx context.Context) ([]domain.ContainerWithItems, error) {
	stashes, err := s.repo.ListStashes(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListContainersFailed, err)
	}
	return stashes, nil
}

// GetStorage assembles the character's storage screen
func (s *service) GetStorage(ctx context.Context, characterID int64) (*domain.StorageView, error) {
	character, err := s.repo.GetCharacter(ctx, characterID)
	if err != nil {
		return nil, err
	}

	containers, err := s.repo.ListCharacterContainers(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListContainersFailed, err)
	}
	stashes, err := s.repo.ListStashes(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListContainersFailed, err)
	}
	items, err := s.repo.GetInventory(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetInventoryFailed, err)
	}

	return &domain.StorageView{
		CharacterID:      characterID,
		Containers:       containers,
		Stashes:          stashes,
		LooseItems:       LooseItems(items),
		StoredDarkStone:  StoredDarkStone(containers) + StoredDarkStone(ownedContents(stashes, characterID)),
		CarriedDarkStone: character.DarkStone,
	}, nil
}

// ownedContents narrows shared containers to the character's own items
func ownedContents(containers []domain.ContainerWithItems, characterID int64) []domain.ContainerWithItems {
	out := make([]domain.ContainerWithItems, 0, len(containers))
	for _, c := range containers {
		own := domain.ContainerWithItems{Container: c.Container}
		for _, item := range c.Items {
			if item.CharacterID == characterID {
				own.Items = append(own.Items, item)
			}
		}
		out = append(out, own)
	}
	return out
}
