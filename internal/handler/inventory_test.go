package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Jauphraux/SoBApp/internal/domain"
	"github.com/Jauphraux/SoBApp/internal/inventory"
	"github.com/Jauphraux/SoBApp/mocks"
)

func pistol(id int64) *domain.InventoryItem {
	slot := domain.SlotHand
	return &domain.InventoryItem{
		ItemInstance: domain.ItemInstance{ID: id, CharacterID: 5, DefinitionID: 1, Quantity: 1},
		Definition:   domain.ItemDefinition{ID: 1, Name: "Pistol", EquipSlot: &slot},
	}
}

func TestInventoryHandler_AddItem(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*mocks.MockInventoryService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Quantity defaults to one",
			requestBody: `{"definition_id":1}`,
			setupMock: func(m *mocks.MockInventoryService) {
				m.On("AddItem", mock.Anything, int64(5), int64(1), 1, "").Return(pistol(20), nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"quantity":1`,
		},
		{
			name:        "Explicit quantity and notes",
			requestBody: AddItemRequest{DefinitionID: 1, Quantity: 3, Notes: "from the mine"},
			setupMock: func(m *mocks.MockInventoryService) {
				m.On("AddItem", mock.Anything, int64(5), int64(1), 3, "from the mine").Return(pistol(21), nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Missing definition",
			requestBody:    AddItemRequest{Quantity: 1},
			setupMock:      func(m *mocks.MockInventoryService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"definitionid"`,
		},
		{
			name:        "Unknown definition",
			requestBody: AddItemRequest{DefinitionID: 77},
			setupMock: func(m *mocks.MockInventoryService) {
				m.On("AddItem", mock.Anything, int64(5), int64(77), 1, "").Return(nil, domain.ErrDefinitionNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockInventoryService(t)
			tt.setupMock(svc)

			w := httptest.NewRecorder()
			NewInventoryHandler(svc).HandleAddItem(w, newRequest(t, http.MethodPost, "/", tt.requestBody, ParamCharacterID, "5"))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestInventoryHandler_ToggleEquip_Rejected(t *testing.T) {
	svc := mocks.NewMockInventoryService(t)
	svc.On("ToggleEquip", mock.Anything, int64(5), int64(20)).
		Return(nil, domain.Reject(domain.ErrHandsFull, "Both hands are already full"))

	w := httptest.NewRecorder()
	NewInventoryHandler(svc).HandleToggleEquip(w, newRequest(t, http.MethodPost, "/", nil, ParamCharacterID, "5", ParamItemID, "20"))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Both hands are already full")
}

func TestInventoryHandler_MoveItem(t *testing.T) {
	InitValidator()

	t.Run("Into container", func(t *testing.T) {
		svc := mocks.NewMockInventoryService(t)
		svc.On("MoveItem", mock.Anything, int64(5), int64(20), ptr(int64(7))).
			Return(&inventory.MoveResult{Action: inventory.MoveReassign, Item: pistol(20), To: ptr(int64(7))}, nil)

		w := httptest.NewRecorder()
		NewInventoryHandler(svc).HandleMoveItem(w, newRequest(t, http.MethodPost, "/", `{"container_id":7}`, ParamCharacterID, "5", ParamItemID, "20"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"action":"`+inventory.MoveReassign.String()+`"`)
		assert.Contains(t, w.Body.String(), `"to_container_id":7`)
	})

	t.Run("Null moves loose", func(t *testing.T) {
		svc := mocks.NewMockInventoryService(t)
		svc.On("MoveItem", mock.Anything, int64(5), int64(20), (*int64)(nil)).
			Return(&inventory.MoveResult{Action: inventory.MoveToLoose, Item: pistol(20), From: ptr(int64(7))}, nil)

		w := httptest.NewRecorder()
		NewInventoryHandler(svc).HandleMoveItem(w, newRequest(t, http.MethodPost, "/", `{"container_id":null}`, ParamCharacterID, "5", ParamItemID, "20"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"from_container_id":7`)
	})

	t.Run("Container full", func(t *testing.T) {
		svc := mocks.NewMockInventoryService(t)
		svc.On("MoveItem", mock.Anything, int64(5), int64(20), ptr(int64(7))).
			Return(nil, domain.Reject(domain.ErrContainerFull, "Lead-Lined Box is full"))

		w := httptest.NewRecorder()
		NewInventoryHandler(svc).HandleMoveItem(w, newRequest(t, http.MethodPost, "/", `{"container_id":7}`, ParamCharacterID, "5", ParamItemID, "20"))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "Lead-Lined Box is full")
	})
}

func TestInventoryHandler_SellItem(t *testing.T) {
	InitValidator()

	t.Run("Success", func(t *testing.T) {
		svc := mocks.NewMockInventoryService(t)
		svc.On("SellItem", mock.Anything, int64(5), int64(20), 50).
			Return(&inventory.SaleResult{ItemName: "Pistol", Quantity: 1, GoldEarned: 100, Gold: 150}, nil)

		w := httptest.NewRecorder()
		NewInventoryHandler(svc).HandleSellItem(w, newRequest(t, http.MethodPost, "/", SellItemRequest{Percentage: ptr(50)}, ParamCharacterID, "5", ParamItemID, "20"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"gold_earned":100`)
	})

	t.Run("Zero percent is a valid sale", func(t *testing.T) {
		svc := mocks.NewMockInventoryService(t)
		svc.On("SellItem", mock.Anything, int64(5), int64(20), 0).Return(&inventory.SaleResult{ItemName: "Pistol"}, nil)

		w := httptest.NewRecorder()
		NewInventoryHandler(svc).HandleSellItem(w, newRequest(t, http.MethodPost, "/", `{"percentage":0}`, ParamCharacterID, "5", ParamItemID, "20"))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Out of range", func(t *testing.T) {
		svc := mocks.NewMockInventoryService(t)

		w := httptest.NewRecorder()
		NewInventoryHandler(svc).HandleSellItem(w, newRequest(t, http.MethodPost, "/", `{"percentage":150}`, ParamCharacterID, "5", ParamItemID, "20"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestInventoryHandler_DeleteAndContainer(t *testing.T) {
	svc := mocks.NewMockInventoryService(t)
	svc.On("DeleteItem", mock.Anything, int64(5), int64(30)).
		Return(domain.Reject(domain.ErrPersonalItem, "Family Bible is a personal item"))
	svc.On("UseAsContainer", mock.Anything, int64(5), int64(31)).
		Return(&domain.Container{ID: 8, ItemID: ptr(int64(31)), MaxCapacity: 2}, nil)
	svc.On("GetGroupedInventory", mock.Anything, int64(5)).
		Return([]domain.InventoryGroup{{Definition: domain.ItemDefinition{Name: "Pistol"}, TotalQuantity: 2}}, nil)
	h := NewInventoryHandler(svc)

	w := httptest.NewRecorder()
	h.HandleDeleteItem(w, newRequest(t, http.MethodDelete, "/", nil, ParamCharacterID, "5", ParamItemID, "30"))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "personal item")

	w = httptest.NewRecorder()
	h.HandleUseAsContainer(w, newRequest(t, http.MethodPost, "/", nil, ParamCharacterID, "5", ParamItemID, "31"))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"max_capacity":2`)

	w = httptest.NewRecorder()
	h.HandleGetInventory(w, newRequest(t, http.MethodGet, "/", nil, ParamCharacterID, "5"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_quantity":2`)

	w = httptest.NewRecorder()
	h.HandleDeleteItem(w, newRequest(t, http.MethodDelete, "/", nil, ParamCharacterID, "5", ParamItemID, "0"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInventoryHandler_Storage(t *testing.T) {
	InitValidator()
	svc := mocks.NewMockInventoryService(t)
	svc.On("GetStorage", mock.Anything, int64(5)).
		Return(&domain.StorageView{CharacterID: 5, StoredDarkStone: 3, CarriedDarkStone: 1}, nil)
	svc.On("CreateStash", mock.Anything, "Bank", 20, []string{"Gear"}).
		Return(&domain.Container{ID: 11, IsStash: true, MaxCapacity: 20}, nil)
	svc.On("ListStashes", mock.Anything).Return([]domain.ContainerWithItems{}, nil)
	svc.On("StoreDarkStone", mock.Anything, int64(5), int64(7)).
		Return(nil, domain.Reject(domain.ErrNoDarkStone, "No dark stone to store"))
	svc.On("RetrieveDarkStone", mock.Anything, int64(5), int64(40)).
		Return(&domain.Character{ID: 5, DarkStone: 2}, nil)
	h := NewInventoryHandler(svc)

	w := httptest.NewRecorder()
	h.HandleGetStorage(w, newRequest(t, http.MethodGet, "/", nil, ParamCharacterID, "5"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"stored_dark_stone":3`)

	w = httptest.NewRecorder()
	h.HandleCreateStash(w, newRequest(t, http.MethodPost, "/", CreateStashRequest{Name: "Bank", Capacity: 20, AcceptedTypes: []string{"Gear"}}))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	h.HandleCreateStash(w, newRequest(t, http.MethodPost, "/", CreateStashRequest{Name: "Bank"}))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	h.HandleListStashes(w, newRequest(t, http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.HandleStoreDarkStone(w, newRequest(t, http.MethodPost, "/", StoreDarkStoneRequest{ContainerID: 7}, ParamCharacterID, "5"))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "No dark stone to store")

	w = httptest.NewRecorder()
	h.HandleRetrieveDarkStone(w, newRequest(t, http.MethodPost, "/", RetrieveDarkStoneRequest{ItemID: 40}, ParamCharacterID, "5"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"dark_stone":2`)
}
