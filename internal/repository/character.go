package repository

import (
	"context"

	"github.com/Jauphraux/SoBApp/internal/domain"
)

// Character defines the interface for character, attribute and skill persistence
type Character interface {
	// CreateCharacter inserts the character and its attribute row together
	CreateCharacter(ctx context.Context, character *domain.Character, attrs domain.Attributes) (int64, error)
	GetCharacter(ctx context.Context, id int64) (*domain.Character, error)
	ListCharacters(ctx context.Context) ([]domain.Character, error)
	DeleteCharacter(ctx context.Context, id int64) error
	GetAttributes(ctx context.Context, characterID int64) (*domain.Attributes, error)
	ListSkills(ctx context.Context, characterID int64) ([]domain.Skill, error)
	// GetInventory feeds the derived stats of the character sheet
	GetInventory(ctx context.Context, characterID int64) ([]domain.InventoryItem, error)

	BeginTx(ctx context.Context) (CharacterTx, error)
}

// CharacterTx defines the interface for character transactions
type CharacterTx interface {
	Tx
	GetCharacter(ctx context.Context, id int64) (*domain.Character, error)
	UpdateCharacter(ctx context.Context, character *domain.Character) error
	UpdateAttributes(ctx context.Context, attrs *domain.Attributes) error
	GetSkill(ctx context.Context, characterID, skillID int64) (*domain.Skill, error)
	InsertSkill(ctx context.Context, skill *domain.Skill) (int64, error)
	UpdateSkill(ctx context.Context, skill *domain.Skill) error
	DeleteSkill(ctx context.Context, characterID, skillID int64) error
}
