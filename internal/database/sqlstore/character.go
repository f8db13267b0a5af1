package sqlstore

import (
	"context"
	"fmt"

	"github.com/Jauphraux/SoBApp/internal/database"
	"github.com/Jauphraux/SoBApp/internal/domain"
	"github.com/Jauphraux/SoBApp/internal/repository"
)

// CharacterRepository implements repository.Character
type CharacterRepository struct {
	*queries
	db *database.DB
}

// NewCharacterRepository creates a new CharacterRepository
func NewCharacterRepository(db *database.DB) repository.Character {
	return &CharacterRepository{queries: newQueries(db.SQL, db.Dialect), db: db}
}

// BeginTx starts a character transaction
func (r *CharacterRepository) BeginTx(ctx context.Context) (repository.CharacterTx, error) {
	return beginTx(ctx, r.db)
}

// CreateCharacter inserts the character and its attributes in one transaction
func (r *CharacterRepository) CreateCharacter(ctx context.Context, c *domain.Character, attrs domain.Attributes) (int64, error) {
	tx, err := beginTx(ctx, r.db)
	if err != nil {
		return 0, err
	}
	defer repository.SafeRollback(ctx, tx)

	now := nowMillis()
	id, err := tx.insertReturningID(ctx, `INSERT INTO characters (
		name, class_name, level, health, max_health, sanity, max_sanity, xp, gold,
		dark_stone, initiative, combat, defense, created_at, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Name, c.ClassName, c.Level, c.Health, c.MaxHealth, c.Sanity, c.MaxSanity, c.XP, c.Gold,
		c.DarkStone, c.Initiative, c.Combat, c.Defense, now, now)
	if err != nil {
		return 0, fmt.Errorf("failed to insert character: %w", err)
	}

	_, err = tx.exec(ctx, `INSERT INTO attributes (
		character_id, agility, strength, lore, luck, cunning, spirit
	) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, attrs.Agility, attrs.Strength, attrs.Lore, attrs.Luck, attrs.Cunning, attrs.Spirit)
	if err != nil {
		return 0, fmt.Errorf("failed to insert attributes: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	c.ID = id
	c.CreatedAt = fromMillis(now)
	c.UpdatedAt = c.CreatedAt
	return id, nil
}

func scanCharacter(row scanner) (*domain.Character, error) {
	var (
		c                domain.Character
		created, updated int64
	)
	err := row.Scan(&c.ID, &c.Name, &c.ClassName, &c.Level, &c.Health, &c.MaxHealth, &c.Sanity, &c.MaxSanity,
		&c.XP, &c.Gold, &c.DarkStone, &c.Initiative, &c.Combat, &c.Defense, &created, &updated)
	if err != nil {
		return nil, err
	}
	c.CreatedAt = fromMillis(created)
	c.UpdatedAt = fromMillis(updated)
	return &c, nil
}

// GetCharacter retrieves a character by ID
func (s *queries) GetCharacter(ctx context.Context, id int64) (*domain.Character, error) {
	c, err := scanCharacter(s.queryRow(ctx, `SELECT `+characterColumns+` FROM characters WHERE id = ?`, id))
	if err != nil {
		return nil, notFound(err, domain.ErrCharacterNotFound, "get character")
	}
	return c, nil
}

// ListCharacters returns every character, oldest first
func (s *queries) ListCharacters(ctx context.Context) ([]domain.Character, error) {
	rows, err := s.query(ctx, `SELECT `+characterColumns+` FROM characters ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}
	defer rows.Close()

	characters := []domain.Character{}
	for rows.Next() {
		c, err := scanCharacter(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan character: %w", err)
		}
		characters = append(characters, *c)
	}
	return characters, rows.Err()
}

// UpdateCharacter writes every mutable counter of the character
func (s *queries) UpdateCharacter(ctx context.Context, c *domain.Character) error {
	now := nowMillis()
	res, err := s.exec(ctx, `UPDATE characters SET
		name = ?, level = ?, health = ?, max_health = ?, sanity = ?, max_sanity = ?, xp = ?, gold = ?,
		dark_stone = ?, initiative = ?, combat = ?, defense = ?, updated_at = ?
	WHERE id = ?`,
		c.Name, c.Level, c.Health, c.MaxHealth, c.Sanity, c.MaxSanity, c.XP, c.Gold,
		c.DarkStone, c.Initiative, c.Combat, c.Defense, now, c.ID)
	if err != nil {
		return fmt.Errorf("failed to update character: %w", err)
	}
	if err := requireAffected(res, domain.ErrCharacterNotFound); err != nil {
		return err
	}
	c.UpdatedAt = fromMillis(now)
	return nil
}

// DeleteCharacter removes the character; attributes, skills and items cascade
func (s *queries) DeleteCharacter(ctx context.Context, id int64) error {
	res, err := s.exec(ctx, `DELETE FROM characters WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}
	return requireAffected(res, domain.ErrCharacterNotFound)
}

// GetAttributes retrieves the base attributes of a character
func (s *queries) GetAttributes(ctx context.Context, characterID int64) (*domain.Attributes, error) {
	var a domain.Attributes
	err := s.queryRow(ctx, `SELECT character_id, agility, strength, lore, luck, cunning, spirit
		FROM attributes WHERE character_id = ?`, characterID).
		Scan(&a.CharacterID, &a.Agility, &a.Strength, &a.Lore, &a.Luck, &a.Cunning, &a.Spirit)
	if err != nil {
		return nil, notFound(err, domain.ErrCharacterNotFound, "get attributes")
	}
	return &a, nil
}

// UpdateAttributes replaces all six base values
func (s *queries) UpdateAttributes(ctx context.Context, a *domain.Attributes) error {
	res, err := s.exec(ctx, `UPDATE attributes SET
		agility = ?, strength = ?, lore = ?, luck = ?, cunning = ?, spirit = ?
	WHERE character_id = ?`,
		a.Agility, a.Strength, a.Lore, a.Luck, a.Cunning, a.Spirit, a.CharacterID)
	if err != nil {
		return fmt.Errorf("failed to update attributes: %w", err)
	}
	return requireAffected(res, domain.ErrCharacterNotFound)
}

const skillColumns = `id, character_id, name, level, description`

func scanSkill(row scanner) (*domain.Skill, error) {
	var sk domain.Skill
	if err := row.Scan(&sk.ID, &sk.CharacterID, &sk.Name, &sk.Level, &sk.Description); err != nil {
		return nil, err
	}
	return &sk, nil
}

// ListSkills returns the character's skills in creation order
func (s *queries) ListSkills(ctx context.Context, characterID int64) ([]domain.Skill, error) {
	rows, err := s.query(ctx, `SELECT `+skillColumns+` FROM skills WHERE character_id = ? ORDER BY id`, characterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	skills := []domain.Skill{}
	for rows.Next() {
		sk, err := scanSkill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, *sk)
	}
	return skills, rows.Err()
}

// GetSkill retrieves a skill owned by the character
func (s *queries) GetSkill(ctx context.Context, characterID, skillID int64) (*domain.Skill, error) {
	sk, err := scanSkill(s.queryRow(ctx, `SELECT `+skillColumns+` FROM skills WHERE id = ? AND character_id = ?`, skillID, characterID))
	if err != nil {
		return nil, notFound(err, domain.ErrSkillNotFound, "get skill")
	}
	return sk, nil
}

// InsertSkill inserts a skill and returns its ID
func (s *queries) InsertSkill(ctx context.Context, sk *domain.Skill) (int64, error) {
	id, err := s.insertReturningID(ctx, `INSERT INTO skills (character_id, name, level, description) VALUES (?, ?, ?, ?)`,
		sk.CharacterID, sk.Name, sk.Level, sk.Description)
	if err != nil {
		return 0, fmt.Errorf("failed to insert skill: %w", err)
	}
	return id, nil
}

// UpdateSkill writes the skill's name, level and description
func (s *queries) UpdateSkill(ctx context.Context, sk *domain.Skill) error {
	res, err := s.exec(ctx, `UPDATE skills SET name = ?, level = ?, description = ? WHERE id = ? AND character_id = ?`,
		sk.Name, sk.Level, sk.Description, sk.ID, sk.CharacterID)
	if err != nil {
		return fmt.Errorf("failed to update skill: %w", err)
	}
	return requireAffected(res, domain.ErrSkillNotFound)
}

// DeleteSkill removes a skill owned by the character
func (s *queries) DeleteSkill(ctx context.Context, characterID, skillID int64) error {
	res, err := s.exec(ctx, `DELETE FROM skills WHERE id = ? AND character_id = ?`, skillID, characterID)
	if err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	return requireAffected(res, domain.ErrSkillNotFound)
}
