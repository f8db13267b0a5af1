package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Jauphraux/SoBApp/internal/character"
	"github.com/Jauphraux/SoBApp/internal/domain"
	"github.com/Jauphraux/SoBApp/mocks"
)

func TestCharacterHandler_Create(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*mocks.MockCharacterService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: CreateCharacterRequest{ClassID: 1, Name: "Doc"},
			setupMock: func(m *mocks.MockCharacterService) {
				m.On("Create", mock.Anything, int64(1), "Doc").Return(&domain.Character{ID: 5, Name: "Doc", Level: 1}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"name":"Doc"`,
		},
		{
			name:           "Missing class",
			requestBody:    CreateCharacterRequest{Name: "Doc"},
			setupMock:      func(m *mocks.MockCharacterService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
		{
			name:        "Unknown class",
			requestBody: CreateCharacterRequest{ClassID: 42},
			setupMock: func(m *mocks.MockCharacterService) {
				m.On("Create", mock.Anything, int64(42), "").Return(nil, domain.ErrClassNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgClassNotFoundError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockCharacterService(t)
			tt.setupMock(svc)

			w := httptest.NewRecorder()
			NewCharacterHandler(svc).HandleCreate(w, newRequest(t, http.MethodPost, "/", tt.requestBody))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestCharacterHandler_GetSheet(t *testing.T) {
	svc := mocks.NewMockCharacterService(t)
	sheet := &domain.CharacterSheet{
		Character:      domain.Character{ID: 5, Name: "Doc"},
		MaxEncumbrance: 10,
		Skills:         []domain.Skill{},
	}
	svc.On("GetSheet", mock.Anything, int64(5)).Return(sheet, nil)

	w := httptest.NewRecorder()
	NewCharacterHandler(svc).HandleGetSheet(w, newRequest(t, http.MethodGet, "/", nil, ParamCharacterID, "5"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"max_encumbrance":10`)
}

func TestCharacterHandler_Adjust(t *testing.T) {
	InitValidator()

	t.Run("Negative delta", func(t *testing.T) {
		svc := mocks.NewMockCharacterService(t)
		svc.On("Adjust", mock.Anything, int64(5), character.CounterHealth, -3).
			Return(&domain.Character{ID: 5, Health: 7, MaxHealth: 10}, nil)

		w := httptest.NewRecorder()
		h := NewCharacterHandler(svc).HandleAdjust(character.CounterHealth)
		h.ServeHTTP(w, newRequest(t, http.MethodPost, "/", AdjustRequest{Delta: ptr(-3)}, ParamCharacterID, "5"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"health":7`)
	})

	t.Run("Zero delta is allowed", func(t *testing.T) {
		svc := mocks.NewMockCharacterService(t)
		svc.On("Adjust", mock.Anything, int64(5), character.CounterGold, 0).Return(&domain.Character{ID: 5}, nil)

		w := httptest.NewRecorder()
		h := NewCharacterHandler(svc).HandleAdjust(character.CounterGold)
		h.ServeHTTP(w, newRequest(t, http.MethodPost, "/", `{"delta":0}`, ParamCharacterID, "5"))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Missing delta", func(t *testing.T) {
		svc := mocks.NewMockCharacterService(t)

		w := httptest.NewRecorder()
		h := NewCharacterHandler(svc).HandleAdjust(character.CounterSanity)
		h.ServeHTTP(w, newRequest(t, http.MethodPost, "/", `{}`, ParamCharacterID, "5"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"delta"`)
	})
}

func TestCharacterHandler_ExperienceAndLevel(t *testing.T) {
	InitValidator()
	svc := mocks.NewMockCharacterService(t)
	svc.On("AddExperience", mock.Anything, int64(5), 50).Return(&domain.Character{ID: 5, XP: 50}, nil)
	svc.On("LevelUp", mock.Anything, int64(5)).Return(&domain.Character{ID: 5, Level: 2}, nil)
	h := NewCharacterHandler(svc)

	w := httptest.NewRecorder()
	h.HandleAddExperience(w, newRequest(t, http.MethodPost, "/", ExperienceRequest{Amount: 50}, ParamCharacterID, "5"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"xp":50`)

	w = httptest.NewRecorder()
	h.HandleAddExperience(w, newRequest(t, http.MethodPost, "/", ExperienceRequest{Amount: 0}, ParamCharacterID, "5"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	h.HandleLevelUp(w, newRequest(t, http.MethodPost, "/", nil, ParamCharacterID, "5"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"level":2`)
}

func TestCharacterHandler_UpdateAttributes(t *testing.T) {
	InitValidator()

	t.Run("Success", func(t *testing.T) {
		svc := mocks.NewMockCharacterService(t)
		want := domain.Attributes{CharacterID: 5, Agility: 3, Strength: 4, Lore: 2, Luck: 1, Cunning: 2, Spirit: 3}
		svc.On("UpdateAttributes", mock.Anything, int64(5), want).Return(&want, nil)

		body := AttributesRequest{Agility: 3, Strength: 4, Lore: 2, Luck: 1, Cunning: 2, Spirit: 3}
		w := httptest.NewRecorder()
		NewCharacterHandler(svc).HandleUpdateAttributes(w, newRequest(t, http.MethodPut, "/", body, ParamCharacterID, "5"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"strength":4`)
	})

	t.Run("Negative value", func(t *testing.T) {
		svc := mocks.NewMockCharacterService(t)

		w := httptest.NewRecorder()
		NewCharacterHandler(svc).HandleUpdateAttributes(w, newRequest(t, http.MethodPut, "/", AttributesRequest{Luck: -1}, ParamCharacterID, "5"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"luck"`)
	})
}

func TestCharacterHandler_Delete(t *testing.T) {
	svc := mocks.NewMockCharacterService(t)
	svc.On("Delete", mock.Anything, int64(5)).Return(nil)
	svc.On("Delete", mock.Anything, int64(6)).Return(domain.ErrCharacterNotFound)
	h := NewCharacterHandler(svc)

	w := httptest.NewRecorder()
	h.HandleDelete(w, newRequest(t, http.MethodDelete, "/", nil, ParamCharacterID, "5"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), MsgCharacterDeleted)

	w = httptest.NewRecorder()
	h.HandleDelete(w, newRequest(t, http.MethodDelete, "/", nil, ParamCharacterID, "6"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCharacterHandler_Skills(t *testing.T) {
	InitValidator()
	svc := mocks.NewMockCharacterService(t)
	svc.On("AddSkill", mock.Anything, int64(5), "Quick Draw", "").Return(&domain.Skill{ID: 9, Name: "Quick Draw", Level: 1}, nil)
	svc.On("UpgradeSkill", mock.Anything, int64(5), int64(9)).Return(&domain.Skill{ID: 9, Name: "Quick Draw", Level: 2}, nil)
	svc.On("DeleteSkill", mock.Anything, int64(5), int64(10)).Return(domain.ErrSkillNotFound)
	h := NewCharacterHandler(svc)

	w := httptest.NewRecorder()
	h.HandleAddSkill(w, newRequest(t, http.MethodPost, "/", SkillRequest{Name: "Quick Draw"}, ParamCharacterID, "5"))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	h.HandleAddSkill(w, newRequest(t, http.MethodPost, "/", SkillRequest{}, ParamCharacterID, "5"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	h.HandleUpgradeSkill(w, newRequest(t, http.MethodPost, "/", nil, ParamCharacterID, "5", ParamSkillID, "9"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"level":2`)

	w = httptest.NewRecorder()
	h.HandleDeleteSkill(w, newRequest(t, http.MethodDelete, "/", nil, ParamCharacterID, "5", ParamSkillID, "10"))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgSkillNotFoundError)
}
