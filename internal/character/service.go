package character

import (
	"context"
	"fmt"

	"github.com/Jauphraux/SoBApp/internal/concurrency"
	"github.com/Jauphraux/SoBApp/internal/domain"
	"github.com/Jauphraux/SoBApp/internal/event"
	"github.com/Jauphraux/SoBApp/internal/repository"
)

// Service defines the interface for Character Record operations
type Service interface {
	Create(ctx context.Context, classID int64, name string) (*domain.Character, error)
	List(ctx context.Context) ([]domain.Character, error)
	GetSheet(ctx context.Context, id int64) (*domain.CharacterSheet, error)
	Delete(ctx context.Context, id int64) error

	Adjust(ctx context.Context, id int64, counter Counter, delta int) (*domain.Character, error)
	AddExperience(ctx context.Context, id int64, amount int) (*domain.Character, error)
	LevelUp(ctx context.Context, id int64) (*domain.Character, error)
	UpdateAttributes(ctx context.Context, id int64, attrs domain.Attributes) (*domain.Attributes, error)

	AddSkill(ctx context.Context, id int64, name, description string) (*domain.Skill, error)
	UpgradeSkill(ctx context.Context, id, skillID int64) (*domain.Skill, error)
	DeleteSkill(ctx context.Context, id, skillID int64) error
}

type service struct {
	repo        repository.Character
	classes     repository.Catalog
	lockManager *concurrency.LockManager
	publisher   *event.ResilientPublisher
}

// NewService creates a new character service.
// lockManager should be shared with the inventory service so both serialise on the same keys.
func NewService(repo repository.Character, classes repository.Catalog, lockManager *concurrency.LockManager, publisher *event.ResilientPublisher) Service {
	if lockManager == nil {
		lockManager = concurrency.NewLockManager()
	}
	return &service{
		repo:        repo,
		classes:     classes,
		lockManager: lockManager,
		publisher:   publisher,
	}
}

func (s *service) withTx(ctx context.Context, fn func(tx repository.CharacterTx) error) error {
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

func (s *service) lock(id int64) func() {
	return s.lockManager.LockAll(concurrency.CharacterKey(id))
}

// mutate loads the character, applies fn and writes the result in one transaction
func (s *service) mutate(ctx context.Context, id int64, fn func(c *domain.Character) error) (*domain.Character, error) {
	unlock := s.lock(id)
	defer unlock()

	var updated *domain.Character
	err := s.withTx(ctx, func(tx repository.CharacterTx) error {
		c, err := tx.GetCharacter(ctx, id)
		if err != nil {
			return err
		}
		if err := fn(c); err != nil {
			return err
		}
		if err := tx.UpdateCharacter(ctx, c); err != nil {
			return fmt.Errorf(ErrMsgUpdateCharacterFailed, err)
		}
		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
