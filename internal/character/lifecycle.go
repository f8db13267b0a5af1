package character

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Jauphraux/SoBApp/internal/domain"
	"github.com/Jauphraux/SoBApp/internal/event"
	"github.com/Jauphraux/SoBApp/internal/logger"
)

// Create starts a character from a class template.
// An empty name falls back to the class name.
func (s *service) Create(ctx context.Context, classID int64, name string) (*domain.Character, error) {
	log := logger.FromContext(ctx)
	log.Info("Create called", "class_id", classID, "name", name)

	class, err := s.classes.GetClass(ctx, classID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgGetClassFailed, err)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = class.Name
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return nil, fmt.Errorf(ErrMsgNameTooLongFmt, MaxNameLength, domain.ErrInvalidInput)
	}

	c := &domain.Character{
		Name:      name,
		ClassName: class.Name,
		Level:     domain.StartingLevel,
		Health:    class.StartingHealth,
		MaxHealth: class.StartingHealth,
		Sanity:    class.StartingSanity,
		MaxSanity: class.StartingSanity,
		Gold:      domain.StartingGold,
	}
	attrs := domain.AttributesFromMap(0, class.StartingAttributes)
	if _, err := s.repo.CreateCharacter(ctx, c, attrs); err != nil {
		return nil, fmt.Errorf(ErrMsgCreateCharacterFailed, err)
	}

	s.publish(ctx, event.NewCharacterEvent(event.CharacterCreated, *c))
	log.Info(LogMsgCharacterCreated, "character_id", c.ID, "name", c.Name, "class", c.ClassName)
	return c, nil
}

// List returns every character
func (s *service) List(ctx context.Context) ([]domain.Character, error) {
	characters, err := s.repo.ListCharacters(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListCharactersFailed, err)
	}
	return characters, nil
}

// GetSheet assembles the record with base and effective stats
func (s *service) GetSheet(ctx context.Context, id int64) (*domain.CharacterSheet, error) {
	c, err := s.repo.GetCharacter(ctx, id)
	if err != nil {
		return nil, err
	}
	attrs, err := s.repo.GetAttributes(ctx, id)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetAttributesFailed, err)
	}
	items, err := s.repo.GetInventory(ctx, id)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetInventoryFailed, err)
	}
	skills, err := s.repo.ListSkills(ctx, id)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListSkillsFailed, err)
	}

	sheet := BuildSheet(*c, *attrs, items, skills)
	return &sheet, nil
}

// Delete removes the character with everything it owns.
// Items left in containers backed by the character's items become loose.
func (s *service) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)
	log.Info("Delete called", "character_id", id)

	unlock := s.lock(id)
	defer unlock()

	c, err := s.repo.GetCharacter(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteCharacter(ctx, id); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		return fmt.Errorf(ErrMsgDeleteCharacterFailed, err)
	}

	s.publish(ctx, event.NewCharacterEvent(event.CharacterDeleted, *c))
	log.Info(LogMsgCharacterDeleted, "character_id", id, "name", c.Name)
	return nil
}
