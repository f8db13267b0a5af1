package handler

import (
	"net/http"

	"github.com/Jauphraux/SoBApp/internal/catalog"
	"github.com/Jauphraux/SoBApp/internal/domain"
	"github.com/Jauphraux/SoBApp/internal/logger"
)

// CatalogHandler serves item and class definitions
type CatalogHandler struct {
	service catalog.Service
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service catalog.Service) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ItemDefinitionRequest is the editable part of an item definition
type ItemDefinitionRequest struct {
	Name                   string         `json:"name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Description            string         `json:"description" validate:"max=2000"`
	Type                   string         `json:"type" validate:"required,max=50"`
	Keywords               []string       `json:"keywords" validate:"dive,max=50"`
	StatModifiers          map[string]int `json:"stat_modifiers"`
	Weight                 int            `json:"weight" validate:"min=0"`
	DarkStoneCount         int            `json:"dark_stone_count" validate:"min=0"`
	EquipSlot              string         `json:"equip_slot" validate:"equipslot"`
	UsageEffect            *string        `json:"usage_effect"`
	UpgradeSlots           int            `json:"upgrade_slots" validate:"min=0"`
	GoldValue              int            `json:"gold_value" validate:"min=0"`
	SideBagType            *string        `json:"side_bag_type"`
	IsPersonal             bool           `json:"is_personal"`
	IsContainer            bool           `json:"is_container"`
	ContainerCapacity      int            `json:"container_capacity" validate:"min=0"`
	ContainerAcceptedTypes []string       `json:"container_accepted_types" validate:"dive,max=50"`
}

// toDefinition converts the request; equip_slot was already checked by the validator
func (req ItemDefinitionRequest) toDefinition() domain.ItemDefinition {
	def := domain.ItemDefinition{
		Name:                   req.Name,
		Description:            req.Description,
		Type:                   req.Type,
		Keywords:               req.Keywords,
		StatModifiers:          req.StatModifiers,
		Weight:                 req.Weight,
		DarkStoneCount:         req.DarkStoneCount,
		UsageEffect:            req.UsageEffect,
		UpgradeSlots:           req.UpgradeSlots,
		GoldValue:              req.GoldValue,
		SideBagType:            req.SideBagType,
		IsPersonal:             req.IsPersonal,
		IsContainer:            req.IsContainer,
		ContainerCapacity:      req.ContainerCapacity,
		ContainerAcceptedTypes: req.ContainerAcceptedTypes,
	}
	if slot, ok := domain.ParseEquipSlot(req.EquipSlot); ok {
		def.EquipSlot = &slot
	}
	return def
}

// HandleListItems lists item definitions
// @Summary List item definitions
// @Description Lists every catalog item, optionally filtered by category
// @Tags catalog
// @Produce json
// @Param type query string false "Item category"
// @Success 200 {array} domain.ItemDefinition
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/catalog/items [get]
func (h *CatalogHandler) HandleListItems(w http.ResponseWriter, r *http.Request) {
	itemType := GetOptionalQueryParam(r, "type", "")

	items, err := h.service.ListItemsByType(r.Context(), itemType)
	if err != nil {
		respondServiceError(w, r, ErrMsgListItemsFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// HandleGetItem returns one item definition
// @Summary Get item definition
// @Tags catalog
// @Produce json
// @Param id path int true "Definition ID"
// @Success 200 {object} domain.ItemDefinition
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/catalog/items/{id} [get]
func (h *CatalogHandler) HandleGetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIDParam(r, w, ParamDefinition)
	if !ok {
		return
	}

	def, err := h.service.GetItem(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetItemFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, def)
}

// HandleCreateItem adds a custom item definition
// @Summary Create item definition
// @Description Adds a custom definition to the catalog. Names are unique.
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body ItemDefinitionRequest true "Definition"
// @Success 201 {object} domain.ItemDefinition
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/catalog/items [post]
func (h *CatalogHandler) HandleCreateItem(w http.ResponseWriter, r *http.Request) {
	var req ItemDefinitionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create item definition"); err != nil {
		return
	}

	def, err := h.service.CreateItem(r.Context(), req.toDefinition())
	if err != nil {
		respondServiceError(w, r, ErrMsgCreateItemFailed, err)
		return
	}

	logger.FromContext(r.Context()).Info("Item definition created", "id", def.ID, "name", def.Name)
	respondJSON(w, http.StatusCreated, def)
}

// HandleUpdateItem overwrites an item definition
// @Summary Update item definition
// @Description Explicit edit. Owned items pick up the change on their next read.
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path int true "Definition ID"
// @Param request body ItemDefinitionRequest true "Definition"
// @Success 200 {object} domain.ItemDefinition
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/catalog/items/{id} [put]
func (h *CatalogHandler) HandleUpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIDParam(r, w, ParamDefinition)
	if !ok {
		return
	}

	var req ItemDefinitionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update item definition"); err != nil {
		return
	}

	def := req.toDefinition()
	def.ID = id
	updated, err := h.service.UpdateItem(r.Context(), def)
	if err != nil {
		respondServiceError(w, r, ErrMsgUpdateItemFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// HandleListClasses lists class definitions
// @Summary List classes
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.ClassDefinition
// @Router /api/v1/catalog/classes [get]
func (h *CatalogHandler) HandleListClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := h.service.ListClasses(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgListClassesFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, classes)
}

// HandleCacheStats reports catalog cache effectiveness
// @Summary Catalog cache stats
// @Tags catalog
// @Produce json
// @Success 200 {object} catalog.CacheStats
// @Router /api/v1/catalog/cache/stats [get]
func (h *CatalogHandler) HandleCacheStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.CacheStats())
}
