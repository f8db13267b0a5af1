package handler

import (
	"net/http"

	"github.com/Jauphraux/SoBApp/internal/domain"
	"github.com/Jauphraux/SoBApp/internal/inventory"
	"github.com/Jauphraux/SoBApp/internal/logger"
)

// InventoryHandler serves owned items, containers and stashes
type InventoryHandler struct {
	service inventory.Service
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(service inventory.Service) *InventoryHandler {
	return &InventoryHandler{service: service}
}

// AddItemRequest adds a stack of a catalog definition.
// Quantity defaults to 1 when omitted.
type AddItemRequest struct {
	DefinitionID int64  `json:"definition_id" validate:"required,min=1"`
	Quantity     int    `json:"quantity" validate:"min=0,max=10000"`
	Notes        string `json:"notes" validate:"max=500"`
}

// MoveItemRequest targets a container; null moves the item loose
type MoveItemRequest struct {
	ContainerID *int64 `json:"container_id" validate:"omitempty,min=1"`
}

// MoveItemResponse reports what the move did
type MoveItemResponse struct {
	Action string                `json:"action"`
	Item   *domain.InventoryItem `json:"item"`
	From   *int64                `json:"from_container_id,omitempty"`
	To     *int64                `json:"to_container_id,omitempty"`
}

// SellItemRequest sells the whole stack at a share of its gold value
type SellItemRequest struct {
	Percentage *int `json:"percentage" validate:"required,min=0,max=100"`
}

// HandleGetInventory lists items grouped by definition
// @Summary Get inventory
// @Tags inventory
// @Produce json
// @Param id path int true "Character ID"
// @Success 200 {array} domain.InventoryGroup
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{id}/inventory [get]
func (h *InventoryHandler) HandleGetInventory(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIDParam(r, w, ParamCharacterID)
	if !ok {
		return
	}

	groups, err := h.service.GetGroupedInventory(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetInventoryFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, groups)
}

// HandleAddItem adds an item instance
// @Summary Add item
// @Description Adds a loose, unequipped stack of a catalog definition
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path int true "Character ID"
// @Param request body AddItemRequest true "Item"
// @Success 201 {object} domain.InventoryItem
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{id}/items [post]
func (h *InventoryHandler) HandleAddItem(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIDParam(r, w, ParamCharacterID)
	if !ok {
		return
	}

	var req AddItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Add item"); err != nil {
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	item, err := h.service.AddItem(r.Context(), id, req.DefinitionID, req.Quantity, req.Notes)
	if err != nil {
		respondServiceError(w, r, ErrMsgAddItemFailed, err)
		return
	}

	logger.FromContext(r.Context()).Info("Item added", "character_id", id, "item", item.Name(), "quantity", item.Quantity)
	respondJSON(w, http.StatusCreated, item)
}

// HandleDeleteItem discards an item
// @Summary Delete item
// @Description Personal items cannot be discarded
// @Tags inventory
// @Produce json
// @Param id path int true "Character ID"
// @Param itemID path int true "Item ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/characters/{id}/items/{itemID} [delete]
func (h *InventoryHandler) HandleDeleteItem(w http.ResponseWriter, r *http.Request) {
	id, itemID, ok := characterItemParams(r, w)
	if !ok {
		return
	}

	if err := h.service.DeleteItem(r.Context(), id, itemID); err != nil {
		respondServiceError(w, r, ErrMsgRemoveItemFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemRemoved})
}

// HandleToggleEquip equips or unequips an item
// @Summary Toggle equip
// @Description Equipping checks slot rules and takes the item out of its container
// @Tags inventory
// @Produce json
// @Param id path int true "Character ID"
// @Param itemID path int true "Item ID"
// @Success 200 {object} domain.InventoryItem
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/characters/{id}/items/{itemID}/toggle-equip [post]
func (h *InventoryHandler) HandleToggleEquip(w http.ResponseWriter, r *http.Request) {
	id, itemID, ok := characterItemParams(r, w)
	if !ok {
		return
	}

	item, err := h.service.ToggleEquip(r.Context(), id, itemID)
	if err != nil {
		respondServiceError(w, r, ErrMsgToggleEquipFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// HandleMoveItem moves an item into a container or loose
// @Summary Move item
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path int true "Character ID"
// @Param itemID path int true "Item ID"
// @Param request body MoveItemRequest true "Target container"
// @Success 200 {object} MoveItemResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/characters/{id}/items/{itemID}/move [post]
func (h *InventoryHandler) HandleMoveItem(w http.ResponseWriter, r *http.Request) {
	id, itemID, ok := characterItemParams(r, w)
	if !ok {
		return
	}

	var req MoveItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Move item"); err != nil {
		return
	}

	result, err := h.service.MoveItem(r.Context(), id, itemID, req.ContainerID)
	if err != nil {
		respondServiceError(w, r, ErrMsgMoveItemFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, MoveItemResponse{
		Action: result.Action.String(),
		Item:   result.Item,
		From:   result.From,
		To:     result.To,
	})
}

// HandleSellItem sells an item stack
// @Summary Sell item
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path int true "Character ID"
// @Param itemID path int true "Item ID"
// @Param request body SellItemRequest true "Sale percentage"
// @Success 200 {object} inventory.SaleResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/characters/{id}/items/{itemID}/sell [post]
func (h *InventoryHandler) HandleSellItem(w http.ResponseWriter, r *http.Request) {
	id, itemID, ok := characterItemParams(r, w)
	if !ok {
		return
	}

	var req SellItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Sell item"); err != nil {
		return
	}

	result, err := h.service.SellItem(r.Context(), id, itemID, *req.Percentage)
	if err != nil {
		respondServiceError(w, r, ErrMsgSellItemFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// HandleUseAsContainer sets an item up as a container
// @Summary Use item as container
// @Tags inventory
// @Produce json
// @Param id path int true "Character ID"
// @Param itemID path int true "Item ID"
// @Success 201 {object} domain.Container
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/characters/{id}/items/{itemID}/use-as-container [post]
func (h *InventoryHandler) HandleUseAsContainer(w http.ResponseWriter, r *http.Request) {
	id, itemID, ok := characterItemParams(r, w)
	if !ok {
		return
	}

	c, err := h.service.UseAsContainer(r.Context(), id, itemID)
	if err != nil {
		respondServiceError(w, r, ErrMsgUseAsContainerFailed, err)
		return
	}
	respondJSON(w, http.StatusCreated, c)
}

func characterItemParams(r *http.Request, w http.ResponseWriter) (int64, int64, bool) {
	id, ok := GetIDParam(r, w, ParamCharacterID)
	if !ok {
		return 0, 0, false
	}
	itemID, ok := GetIDParam(r, w, ParamItemID)
	if !ok {
		return 0, 0, false
	}
	return id, itemID, true
}
