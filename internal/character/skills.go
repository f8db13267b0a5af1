package character

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Jauphraux/SoBApp/internal/domain"
	"github.com/Jauphraux/SoBApp/internal/logger"
	"github.com/Jauphraux/SoBApp/internal/repository"
)

// AddSkill gives the character a new skill at the starting level
func (s *service) AddSkill(ctx context.Context, id int64, name, description string) (*domain.Skill, error) {
	log := logger.FromContext(ctx)
	log.Info("AddSkill called", "character_id", id, "name", name)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf(ErrMsgSkillNameRequired, domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return nil, fmt.Errorf(ErrMsgNameTooLongFmt, MaxNameLength, domain.ErrInvalidInput)
	}

	unlock := s.lock(id)
	defer unlock()

	skill := domain.Skill{
		CharacterID: id,
		Name:        name,
		Level:       domain.StartingSkillLevel,
		Description: strings.TrimSpace(description),
	}
	err := s.withTx(ctx, func(tx repository.CharacterTx) error {
		if _, err := tx.GetCharacter(ctx, id); err != nil {
			return err
		}
		skillID, err := tx.InsertSkill(ctx, &skill)
		if err != nil {
			return fmt.Errorf(ErrMsgInsertSkillFailed, err)
		}
		skill.ID = skillID
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgSkillAdded, "character_id", id, "skill_id", skill.ID)
	return &skill, nil
}

// UpgradeSkill raises a skill of the character by one level
func (s *service) UpgradeSkill(ctx context.Context, id, skillID int64) (*domain.Skill, error) {
	log := logger.FromContext(ctx)
	log.Info("UpgradeSkill called", "character_id", id, "skill_id", skillID)

	unlock := s.lock(id)
	defer unlock()

	var skill *domain.Skill
	err := s.withTx(ctx, func(tx repository.CharacterTx) error {
		var err error
		if skill, err = tx.GetSkill(ctx, id, skillID); err != nil {
			return err
		}
		skill.Level++
		if err := tx.UpdateSkill(ctx, skill); err != nil {
			return fmt.Errorf(ErrMsgUpdateSkillFailed, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgSkillUpgraded, "character_id", id, "skill_id", skillID, "level", skill.Level)
	return skill, nil
}

// DeleteSkill removes a skill of the character
func (s *service) DeleteSkill(ctx context.Context, id, skillID int64) error {
	log := logger.FromContext(ctx)
	log.Info("DeleteSkill called", "character_id", id, "skill_id", skillID)

	unlock := s.lock(id)
	defer unlock()

	err := s.withTx(ctx, func(tx repository.CharacterTx) error {
		if err := tx.DeleteSkill(ctx, id, skillID); err != nil {
			if domain.IsNotFound(err) {
				return err
			}
			return fmt.Errorf(ErrMsgDeleteSkillFailed, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info(LogMsgSkillDeleted, "character_id", id, "skill_id", skillID)
	return nil
}
