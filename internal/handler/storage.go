package handler

import (
	"net/http"
)

// CreateStashRequest defines a shared stash
type CreateStashRequest struct {
	Name          string   `json:"name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Capacity      int      `json:"capacity" validate:"required,min=1,max=10000"`
	AcceptedTypes []string `json:"accepted_types" validate:"dive,max=50"`
}

// StoreDarkStoneRequest picks the container that receives one dark stone
type StoreDarkStoneRequest struct {
	ContainerID int64 `json:"container_id" validate:"required,min=1"`
}

// RetrieveDarkStoneRequest picks the stored dark stone stack to take one from
type RetrieveDarkStoneRequest struct {
	ItemID int64 `json:"item_id" validate:"required,min=1"`
}

// HandleGetStorage returns the storage view
// @Summary Get storage
// @Description Carried containers, stashes, loose items and stored dark stone count
// @Tags storage
// @Produce json
// @Param id path int true "Character ID"
// @Success 200 {object} domain.StorageView
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{id}/storage [get]
func (h *InventoryHandler) HandleGetStorage(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIDParam(r, w, ParamCharacterID)
	if !ok {
		return
	}

	view, err := h.service.GetStorage(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetStorageFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// HandleCreateStash adds a shared stash
// @Summary Create stash
// @Tags storage
// @Accept json
// @Produce json
// @Param request body CreateStashRequest true "Stash"
// @Success 201 {object} domain.Container
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/stashes [post]
func (h *InventoryHandler) HandleCreateStash(w http.ResponseWriter, r *http.Request) {
	var req CreateStashRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create stash"); err != nil {
		return
	}

	stash, err := h.service.CreateStash(r.Context(), req.Name, req.Capacity, req.AcceptedTypes)
	if err != nil {
		respondServiceError(w, r, ErrMsgCreateStashFailed, err)
		return
	}
	respondJSON(w, http.StatusCreated, stash)
}

// HandleListStashes lists every stash with its contents
// @Summary List stashes
// @Tags storage
// @Produce json
// @Success 200 {array} domain.ContainerWithItems
// @Router /api/v1/stashes [get]
func (h *InventoryHandler) HandleListStashes(w http.ResponseWriter, r *http.Request) {
	stashes, err := h.service.ListStashes(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgListStashesFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, stashes)
}

// HandleStoreDarkStone moves one dark stone from the counter into a container
// @Summary Store dark stone
// @Tags storage
// @Accept json
// @Produce json
// @Param id path int true "Character ID"
// @Param request body StoreDarkStoneRequest true "Container"
// @Success 200 {object} domain.InventoryItem
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/characters/{id}/dark-stone/store [post]
func (h *InventoryHandler) HandleStoreDarkStone(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIDParam(r, w, ParamCharacterID)
	if !ok {
		return
	}

	var req StoreDarkStoneRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Store dark stone"); err != nil {
		return
	}

	item, err := h.service.StoreDarkStone(r.Context(), id, req.ContainerID)
	if err != nil {
		respondServiceError(w, r, ErrMsgStoreDarkStoneFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// HandleRetrieveDarkStone moves one stored dark stone back onto the counter
// @Summary Retrieve dark stone
// @Tags storage
// @Accept json
// @Produce json
// @Param id path int true "Character ID"
// @Param request body RetrieveDarkStoneRequest true "Stored stack"
// @Success 200 {object} domain.Character
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/characters/{id}/dark-stone/retrieve [post]
func (h *InventoryHandler) HandleRetrieveDarkStone(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIDParam(r, w, ParamCharacterID)
	if !ok {
		return
	}

	var req RetrieveDarkStoneRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Retrieve dark stone"); err != nil {
		return
	}

	c, err := h.service.RetrieveDarkStone(r.Context(), id, req.ItemID)
	if err != nil {
		respondServiceError(w, r, ErrMsgRetrieveDarkStoneError, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}
