package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Jauphraux/SoBApp/internal/catalog"
	"github.com/Jauphraux/SoBApp/internal/domain"
	"github.com/Jauphraux/SoBApp/mocks"
)

func TestCatalogHandler_ListItems(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		setupMock      func(*mocks.MockCatalogService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "All items",
			target: "/api/v1/catalog/items",
			setupMock: func(m *mocks.MockCatalogService) {
				m.On("ListItemsByType", mock.Anything, "").Return([]domain.ItemDefinition{{ID: 1, Name: "Pistol"}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"Pistol"`,
		},
		{
			name:   "Filtered by type",
			target: "/api/v1/catalog/items?type=Gear",
			setupMock: func(m *mocks.MockCatalogService) {
				m.On("ListItemsByType", mock.Anything, "Gear").Return([]domain.ItemDefinition{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:   "Service Error",
			target: "/api/v1/catalog/items",
			setupMock: func(m *mocks.MockCatalogService) {
				m.On("ListItemsByType", mock.Anything, "").Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrMsgListItemsFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockCatalogService(t)
			tt.setupMock(svc)
			h := NewCatalogHandler(svc)

			w := httptest.NewRecorder()
			h.HandleListItems(w, newRequest(t, http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestCatalogHandler_GetItem(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		svc := mocks.NewMockCatalogService(t)
		svc.On("GetItem", mock.Anything, int64(4)).Return(&domain.ItemDefinition{ID: 4, Name: "Lantern"}, nil)

		w := httptest.NewRecorder()
		NewCatalogHandler(svc).HandleGetItem(w, newRequest(t, http.MethodGet, "/", nil, ParamDefinition, "4"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"Lantern"`)
	})

	t.Run("Not Found", func(t *testing.T) {
		svc := mocks.NewMockCatalogService(t)
		svc.On("GetItem", mock.Anything, int64(99)).Return(nil, domain.ErrDefinitionNotFound)

		w := httptest.NewRecorder()
		NewCatalogHandler(svc).HandleGetItem(w, newRequest(t, http.MethodGet, "/", nil, ParamDefinition, "99"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgDefinitionNotFoundError)
	})

	t.Run("Bad ID", func(t *testing.T) {
		svc := mocks.NewMockCatalogService(t)

		w := httptest.NewRecorder()
		NewCatalogHandler(svc).HandleGetItem(w, newRequest(t, http.MethodGet, "/", nil, ParamDefinition, "abc"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCatalogHandler_CreateItem(t *testing.T) {
	InitValidator()

	t.Run("Success parses slot", func(t *testing.T) {
		svc := mocks.NewMockCatalogService(t)
		svc.On("CreateItem", mock.Anything, mock.MatchedBy(func(def domain.ItemDefinition) bool {
			return def.Name == "Shotgun" && def.Slot() == domain.SlotTwoHanded && def.GoldValue == 400
		})).Return(&domain.ItemDefinition{ID: 12, Name: "Shotgun"}, nil)

		body := ItemDefinitionRequest{Name: "Shotgun", Type: "Gear", EquipSlot: "two handed", GoldValue: 400}
		w := httptest.NewRecorder()
		NewCatalogHandler(svc).HandleCreateItem(w, newRequest(t, http.MethodPost, "/", body))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"id":12`)
	})

	t.Run("Invalid slot", func(t *testing.T) {
		svc := mocks.NewMockCatalogService(t)

		body := ItemDefinitionRequest{Name: "Tail Whip", Type: "Gear", EquipSlot: "Tail"}
		w := httptest.NewRecorder()
		NewCatalogHandler(svc).HandleCreateItem(w, newRequest(t, http.MethodPost, "/", body))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"equipslot":"Invalid equip slot"`)
	})

	t.Run("Duplicate name", func(t *testing.T) {
		svc := mocks.NewMockCatalogService(t)
		svc.On("CreateItem", mock.Anything, mock.Anything).Return(nil, domain.ErrDuplicateName)

		body := ItemDefinitionRequest{Name: "Pistol", Type: "Gear"}
		w := httptest.NewRecorder()
		NewCatalogHandler(svc).HandleCreateItem(w, newRequest(t, http.MethodPost, "/", body))

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		svc := mocks.NewMockCatalogService(t)

		w := httptest.NewRecorder()
		NewCatalogHandler(svc).HandleCreateItem(w, newRequest(t, http.MethodPost, "/", "{not json"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidRequest)
	})
}

func TestCatalogHandler_UpdateItem(t *testing.T) {
	svc := mocks.NewMockCatalogService(t)
	svc.On("UpdateItem", mock.Anything, mock.MatchedBy(func(def domain.ItemDefinition) bool {
		return def.ID == 3 && def.Weight == 2
	})).Return(&domain.ItemDefinition{ID: 3, Name: "Hatchet", Weight: 2}, nil)

	body := ItemDefinitionRequest{Name: "Hatchet", Type: "Gear", Weight: 2}
	w := httptest.NewRecorder()
	NewCatalogHandler(svc).HandleUpdateItem(w, newRequest(t, http.MethodPut, "/", body, ParamDefinition, "3"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"weight":2`)
}

func TestCatalogHandler_ClassesAndStats(t *testing.T) {
	svc := mocks.NewMockCatalogService(t)
	svc.On("ListClasses", mock.Anything).Return([]domain.ClassDefinition{{ID: 1, Name: "Gunslinger"}}, nil)
	svc.On("CacheStats").Return(catalog.CacheStats{Hits: 3, Misses: 1, Size: 2})
	h := NewCatalogHandler(svc)

	w := httptest.NewRecorder()
	h.HandleListClasses(w, newRequest(t, http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Gunslinger")

	w = httptest.NewRecorder()
	h.HandleCacheStats(w, newRequest(t, http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Hits":3`)
}
