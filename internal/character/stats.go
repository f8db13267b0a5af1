package character

import (
	"context"
	"fmt"

	"github.com/Jauphraux/SoBApp/internal/domain"
	"github.com/Jauphraux/SoBApp/internal/event"
	"github.com/Jauphraux/SoBApp/internal/logger"
	"github.com/Jauphraux/SoBApp/internal/repository"
)

// Adjust applies a signed delta to one counter.
// Health and sanity clamp to [0, max]; dark stone and gold never drop below 0.
func (s *service) Adjust(ctx context.Context, id int64, counter Counter, delta int) (*domain.Character, error) {
	log := logger.FromContext(ctx)
	log.Info("Adjust called", "character_id", id, "counter", counter, "delta", delta)

	c, err := s.mutate(ctx, id, func(c *domain.Character) error {
		switch counter {
		case CounterHealth:
			c.Health = clamp(c.Health+delta, 0, c.MaxHealth)
		case CounterSanity:
			c.Sanity = clamp(c.Sanity+delta, 0, c.MaxSanity)
		case CounterDarkStone:
			c.DarkStone = max(c.DarkStone+delta, 0)
		case CounterGold:
			c.Gold = max(c.Gold+delta, 0)
		default:
			return fmt.Errorf(ErrMsgUnknownCounterFmt, counter, domain.ErrInvalidInput)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgCounterAdjusted, "character_id", id, "counter", counter, "delta", delta)
	return c, nil
}

// AddExperience adds a positive amount of experience
func (s *service) AddExperience(ctx context.Context, id int64, amount int) (*domain.Character, error) {
	log := logger.FromContext(ctx)
	log.Info("AddExperience called", "character_id", id, "amount", amount)

	if amount <= 0 {
		return nil, fmt.Errorf(ErrMsgInvalidAmountFmt, amount, domain.ErrInvalidAmount)
	}

	c, err := s.mutate(ctx, id, func(c *domain.Character) error {
		c.XP += amount
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgExperienceAdded, "character_id", id, "xp", c.XP)
	return c, nil
}

// LevelUp raises the level by one, grows max health and resets experience
func (s *service) LevelUp(ctx context.Context, id int64) (*domain.Character, error) {
	log := logger.FromContext(ctx)
	log.Info("LevelUp called", "character_id", id)

	var oldLevel int
	c, err := s.mutate(ctx, id, func(c *domain.Character) error {
		oldLevel = c.Level
		c.Level++
		c.MaxHealth += domain.LevelUpMaxHealthBonus
		c.Health += domain.LevelUpMaxHealthBonus
		c.XP = 0
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, event.NewCharacterLeveledUpEvent(*c, oldLevel))
	log.Info(LogMsgCharacterLeveled, "character_id", id, "level", c.Level)
	return c, nil
}

// UpdateAttributes replaces all six base attributes
func (s *service) UpdateAttributes(ctx context.Context, id int64, attrs domain.Attributes) (*domain.Attributes, error) {
	log := logger.FromContext(ctx)
	log.Info("UpdateAttributes called", "character_id", id)

	for _, name := range domain.AttributeNames {
		if attrs.AsMap()[name] < 0 {
			return nil, fmt.Errorf(ErrMsgNegativeAttributeFmt, name, domain.ErrInvalidInput)
		}
	}
	attrs.CharacterID = id

	unlock := s.lock(id)
	defer unlock()

	err := s.withTx(ctx, func(tx repository.CharacterTx) error {
		if _, err := tx.GetCharacter(ctx, id); err != nil {
			return err
		}
		if err := tx.UpdateAttributes(ctx, &attrs); err != nil {
			return fmt.Errorf(ErrMsgUpdateAttributesFailed, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgAttributesUpdated, "character_id", id)
	return &attrs, nil
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
