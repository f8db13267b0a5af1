package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jauphraux/SoBApp/internal/concurrency"
	"github.com/Jauphraux/SoBApp/internal/domain"
	"github.com/Jauphraux/SoBApp/internal/event"
	"github.com/Jauphraux/SoBApp/internal/logger"
	"github.com/Jauphraux/SoBApp/internal/repository"
)

// Service defines the interface for Inventory Ledger operations
type Service interface {
	GetInventory(ctx context.Context, characterID int64) ([]domain.InventoryItem, error)
	GetGroupedInventory(ctx context.Context, characterID int64) ([]domain.InventoryGroup, error)
	AddItem(ctx context.Context, characterID, definitionID int64, quantity int, notes string) (*domain.InventoryItem, error)
	DeleteItem(ctx context.Context, characterID, itemID int64) error
	ToggleEquip(ctx context.Context, characterID, itemID int64) (*domain.InventoryItem, error)
	MoveItem(ctx context.Context, characterID, itemID int64, containerID *int64) (*MoveResult, error)
	SellItem(ctx context.Context, characterID, itemID int64, percentage int) (*SaleResult, error)

	UseAsContainer(ctx context.Context, characterID, itemID int64) (*domain.Container, error)
	CreateStash(ctx context.Context, name string, capacity int, acceptedTypes []string) (*domain.Container, error)
	ListStashes(ctx context.Context) ([]domain.ContainerWithItems, error)
	GetStorage(ctx context.Context, characterID int64) (*domain.StorageView, error)
	StoreDarkStone(ctx context.Context, characterID, containerID int64) (*domain.InventoryItem, error)
	RetrieveDarkStone(ctx context.Context, characterID, itemID int64) (*domain.Character, error)
}

// MoveResult describes an applied move
type MoveResult struct {
	Action MoveAction            `json:"action"`
	Item   *domain.InventoryItem `json:"item"` // the merged stack for MoveMerge
	From   *int64                `json:"from_container_id,omitempty"`
	To     *int64                `json:"to_container_id,omitempty"`
}

// SaleResult describes a completed sale
type SaleResult struct {
	ItemName   string `json:"item_name"`
	Quantity   int    `json:"quantity"`
	GoldEarned int    `json:"gold_earned"`
	Gold       int    `json:"gold"`
}

type service struct {
	repo        repository.Inventory
	lockManager *concurrency.LockManager
	publisher   *event.ResilientPublisher
}

// NewService creates a new inventory service. publisher may be nil.
func NewService(repo repository.Inventory, lockManager *concurrency.LockManager, publisher *event.ResilientPublisher) Service {
	if lockManager == nil {
		lockManager = concurrency.NewLockManager()
	}
	return &service{
		repo:        repo,
		lockManager: lockManager,
		publisher:   publisher,
	}
}

// withTx runs fn inside one transaction, committing only when fn succeeds
func (s *service) withTx(ctx context.Context, fn func(tx repository.InventoryTx) error) error {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}
	return nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, evt)
	}
}

// rejected logs and publishes a rule rejection, then returns err unchanged.
// Errors that are not rejections pass straight through.
func (s *service) rejected(ctx context.Context, characterID int64, rule string, err error) error {
	reason, ok := domain.RejectionReason(err)
	if !ok {
		return err
	}
	logger.FromContext(ctx).Warn(LogMsgRuleRejected, "character_id", characterID, "rule", rule, "reason", reason)
	s.publish(ctx, event.NewRuleRejectedEvent(characterID, rule, reason))
	return err
}

// requireCharacter loads the character inside the transaction
func requireCharacter(ctx context.Context, tx repository.InventoryTx, characterID int64) (*domain.Character, error) {
	c, err := tx.GetCharacter(ctx, characterID)
	if err != nil {
		if errors.Is(err, domain.ErrCharacterNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgGetCharacterFailed, err)
	}
	return c, nil
}

// ownedItem loads an item and hides items of other characters.
// Returns (nil, nil) when the item is absent so rules can order their checks.
func ownedItem(ctx context.Context, tx repository.InventoryTx, characterID, itemID int64) (*domain.InventoryItem, error) {
	item, err := tx.GetItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf(ErrMsgGetItemFailed, err)
	}
	if item.CharacterID != characterID {
		return nil, nil
	}
	return item, nil
}

// requireOwnedItem is ownedItem with absence turned into a rejection
func requireOwnedItem(ctx context.Context, tx repository.InventoryTx, characterID, itemID int64) (*domain.InventoryItem, error) {
	item, err := ownedItem(ctx, tx, characterID, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.Reject(domain.ErrItemNotFound, ReasonItemNotFound)
	}
	return item, nil
}

// visibleContainer loads a container the character may use: any stash, an
// unbacked system container, or one backed by the character's own item.
// Returns (nil, nil) when no such container exists.
func visibleContainer(ctx context.Context, tx repository.InventoryTx, characterID, containerID int64) (*domain.ContainerWithItems, error) {
	c, err := tx.GetContainer(ctx, containerID)
	if err != nil {
		if errors.Is(err, domain.ErrContainerNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf(ErrMsgGetContainerFailed, err)
	}
	if c.IsStash || c.ItemID == nil {
		return c, nil
	}
	backing, err := ownedItem(ctx, tx, characterID, *c.ItemID)
	if err != nil {
		return nil, err
	}
	if backing == nil {
		return nil, nil
	}
	return c, nil
}

// enclosingItems walks up from target and collects the backing item of
// every container that encloses it, target's own backing item included.
func enclosingItems(ctx context.Context, tx repository.InventoryTx, target *domain.ContainerWithItems) ([]int64, error) {
	var chain []int64
	current := target.Container
	for depth := 0; depth < maxEnclosingDepth && current.ItemID != nil; depth++ {
		chain = append(chain, *current.ItemID)
		backing, err := tx.GetItem(ctx, *current.ItemID)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgGetItemFailed, err)
		}
		if backing.ContainerID == nil {
			break
		}
		parent, err := tx.GetContainer(ctx, *backing.ContainerID)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgGetContainerFailed, err)
		}
		current = parent.Container
	}
	return chain, nil
}

// lockCharacter serialises mutations of one character and, optionally, shared containers
func (s *service) lockCharacter(characterID int64, containerIDs ...int64) func() {
	keys := make([]string, 0, len(containerIDs)+1)
	keys = append(keys, concurrency.CharacterKey(characterID))
	for _, id := range containerIDs {
		keys = append(keys, concurrency.ContainerKey(id))
	}
	return s.lockManager.LockAll(keys...)
}
