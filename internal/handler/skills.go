package handler

import (
	"net/http"
)

// SkillRequest names a new skill
type SkillRequest struct {
	Name        string `json:"name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Description string `json:"description" validate:"max=2000"`
}

// HandleAddSkill adds a level 1 skill
// @Summary Add skill
// @Tags skills
// @Accept json
// @Produce json
// @Param id path int true "Character ID"
// @Param request body SkillRequest true "Skill"
// @Success 201 {object} domain.Skill
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{id}/skills [post]
func (h *CharacterHandler) HandleAddSkill(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIDParam(r, w, ParamCharacterID)
	if !ok {
		return
	}

	var req SkillRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Add skill"); err != nil {
		return
	}

	skill, err := h.service.AddSkill(r.Context(), id, req.Name, req.Description)
	if err != nil {
		respondServiceError(w, r, ErrMsgAddSkillFailed, err)
		return
	}
	respondJSON(w, http.StatusCreated, skill)
}

// HandleUpgradeSkill raises a skill one level
// @Summary Upgrade skill
// @Tags skills
// @Produce json
// @Param id path int true "Character ID"
// @Param skillID path int true "Skill ID"
// @Success 200 {object} domain.Skill
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{id}/skills/{skillID}/upgrade [post]
func (h *CharacterHandler) HandleUpgradeSkill(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIDParam(r, w, ParamCharacterID)
	if !ok {
		return
	}
	skillID, ok := GetIDParam(r, w, ParamSkillID)
	if !ok {
		return
	}

	skill, err := h.service.UpgradeSkill(r.Context(), id, skillID)
	if err != nil {
		respondServiceError(w, r, ErrMsgUpgradeSkillFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, skill)
}

// HandleDeleteSkill removes a skill
// @Summary Delete skill
// @Tags skills
// @Produce json
// @Param id path int true "Character ID"
// @Param skillID path int true "Skill ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{id}/skills/{skillID} [delete]
func (h *CharacterHandler) HandleDeleteSkill(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIDParam(r, w, ParamCharacterID)
	if !ok {
		return
	}
	skillID, ok := GetIDParam(r, w, ParamSkillID)
	if !ok {
		return
	}

	if err := h.service.DeleteSkill(r.Context(), id, skillID); err != nil {
		respondServiceError(w, r, ErrMsgDeleteSkillFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSkillDeleted})
}
