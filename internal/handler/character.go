package handler

import (
	"net/http"

	"github.com/Jauphraux/SoBApp/internal/character"
	"github.com/Jauphraux/SoBApp/internal/domain"
	"github.com/Jauphraux/SoBApp/internal/logger"
)

// CharacterHandler serves character records and sheets
type CharacterHandler struct {
	service character.Service
}

// NewCharacterHandler creates a new character handler
func NewCharacterHandler(service character.Service) *CharacterHandler {
	return &CharacterHandler{service: service}
}

// CreateCharacterRequest picks a class and an optional name
type CreateCharacterRequest struct {
	ClassID int64  `json:"class_id" validate:"required,min=1"`
	Name    string `json:"name" validate:"max=100,excludesall=\x00\n\r\t"`
}

// AdjustRequest moves a counter by delta
type AdjustRequest struct {
	Delta *int `json:"delta" validate:"required"`
}

// ExperienceRequest grants experience
type ExperienceRequest struct {
	Amount int `json:"amount" validate:"required,min=1"`
}

// AttributesRequest replaces all six base attributes
type AttributesRequest struct {
	Agility  int `json:"agility" validate:"min=0"`
	Strength int `json:"strength" validate:"min=0"`
	Lore     int `json:"lore" validate:"min=0"`
	Luck     int `json:"luck" validate:"min=0"`
	Cunning  int `json:"cunning" validate:"min=0"`
	Spirit   int `json:"spirit" validate:"min=0"`
}

// HandleCreate creates a character from a class template
// @Summary Create character
// @Description Starts a level 1 character with the class's health, sanity and attributes
// @Tags characters
// @Accept json
// @Produce json
// @Param request body CreateCharacterRequest true "Class and name"
// @Success 201 {object} domain.Character
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters [post]
func (h *CharacterHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateCharacterRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create character"); err != nil {
		return
	}

	c, err := h.service.Create(r.Context(), req.ClassID, req.Name)
	if err != nil {
		respondServiceError(w, r, ErrMsgCreateCharacterFailed, err)
		return
	}

	logger.FromContext(r.Context()).Info("Character created", "id", c.ID, "name", c.Name)
	respondJSON(w, http.StatusCreated, c)
}

// HandleList lists every character
// @Summary List characters
// @Tags characters
// @Produce json
// @Success 200 {array} domain.Character
// @Router /api/v1/characters [get]
func (h *CharacterHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgListCharactersFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}

// HandleGetSheet returns the character sheet
// @Summary Get character sheet
// @Description Record, base and effective attributes, derived stats, modifiers, encumbrance and skills
// @Tags characters
// @Produce json
// @Param id path int true "Character ID"
// @Success 200 {object} domain.CharacterSheet
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{id} [get]
func (h *CharacterHandler) HandleGetSheet(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIDParam(r, w, ParamCharacterID)
	if !ok {
		return
	}

	sheet, err := h.service.GetSheet(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetCharacterFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, sheet)
}

// HandleDelete deletes a character with its attributes, skills, items and containers
// @Summary Delete character
// @Tags characters
// @Produce json
// @Param id path int true "Character ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{id} [delete]
func (h *CharacterHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIDParam(r, w, ParamCharacterID)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondServiceError(w, r, ErrMsgDeleteCharacterFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCharacterDeleted})
}

// HandleAdjust returns a handler that moves one counter.
// Health and sanity clamp to their maximum; dark stone and gold stop at zero.
// @Summary Adjust counter
// @Tags characters
// @Accept json
// @Produce json
// @Param id path int true "Character ID"
// @Param request body AdjustRequest true "Signed delta"
// @Success 200 {object} domain.Character
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{id}/health [post]
// @Router /api/v1/characters/{id}/sanity [post]
// @Router /api/v1/characters/{id}/dark-stone [post]
// @Router /api/v1/characters/{id}/gold [post]
func (h *CharacterHandler) HandleAdjust(counter character.Counter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetIDParam(r, w, ParamCharacterID)
		if !ok {
			return
		}

		var req AdjustRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Adjust "+string(counter)); err != nil {
			return
		}

		c, err := h.service.Adjust(r.Context(), id, counter, *req.Delta)
		if err != nil {
			respondServiceError(w, r, ErrMsgAdjustFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, c)
	}
}

// HandleAddExperience grants experience
// @Summary Add experience
// @Tags characters
// @Accept json
// @Produce json
// @Param id path int true "Character ID"
// @Param request body ExperienceRequest true "Amount"
// @Success 200 {object} domain.Character
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/characters/{id}/experience [post]
func (h *CharacterHandler) HandleAddExperience(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIDParam(r, w, ParamCharacterID)
	if !ok {
		return
	}

	var req ExperienceRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Add experience"); err != nil {
		return
	}

	c, err := h.service.AddExperience(r.Context(), id, req.Amount)
	if err != nil {
		respondServiceError(w, r, ErrMsgAddExperienceFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// HandleLevelUp advances the character one level
// @Summary Level up
// @Tags characters
// @Produce json
// @Param id path int true "Character ID"
// @Success 200 {object} domain.Character
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{id}/level-up [post]
func (h *CharacterHandler) HandleLevelUp(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIDParam(r, w, ParamCharacterID)
	if !ok {
		return
	}

	c, err := h.service.LevelUp(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, ErrMsgLevelUpFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// HandleUpdateAttributes replaces the base attributes
// @Summary Update attributes
// @Tags characters
// @Accept json
// @Produce json
// @Param id path int true "Character ID"
// @Param request body AttributesRequest true "Attributes"
// @Success 200 {object} domain.Attributes
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{id}/attributes [put]
func (h *CharacterHandler) HandleUpdateAttributes(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIDParam(r, w, ParamCharacterID)
	if !ok {
		return
	}

	var req AttributesRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update attributes"); err != nil {
		return
	}

	attrs, err := h.service.UpdateAttributes(r.Context(), id, domain.Attributes{
		CharacterID: id,
		Agility:     req.Agility,
		Strength:    req.Strength,
		Lore:        req.Lore,
		Luck:        req.Luck,
		Cunning:     req.Cunning,
		Spirit:      req.Spirit,
	})
	if err != nil {
		respondServiceError(w, r, ErrMsgUpdateAttributesFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, attrs)
}
