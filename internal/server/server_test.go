package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Jauphraux/SoBApp/internal/character"
	"github.com/Jauphraux/SoBApp/internal/domain"
	"github.com/Jauphraux/SoBApp/mocks"
)

const testAPIKey = "test-key"

type routerFixture struct {
	catalog   *mocks.MockCatalogService
	character *mocks.MockCharacterService
	inventory *mocks.MockInventoryService
	handler   http.Handler
}

func newRouterFixture(t *testing.T, detector DetectorConfig) *routerFixture {
	t.Helper()
	f := &routerFixture{
		catalog:   mocks.NewMockCatalogService(t),
		character: mocks.NewMockCharacterService(t),
		inventory: mocks.NewMockInventoryService(t),
	}
	if detector == (DetectorConfig{}) {
		detector = DefaultDetectorConfig()
	}
	f.handler = NewRouter(
		Options{APIKey: testAPIKey, Detector: detector},
		nil,
		Services{Catalog: f.catalog, Character: f.character, Inventory: f.inventory},
	)
	return f
}

func (f *routerFixture) do(method, path, body string, authed bool) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	if authed {
		req.Header.Set(HeaderAPIKey, testAPIKey)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func TestRouter_PublicEndpoints(t *testing.T) {
	f := newRouterFixture(t, DetectorConfig{})

	rec := f.do(http.MethodGet, "/version", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"version"`)

	rec = f.do(http.MethodGet, "/healthz", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodGet, "/metrics", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_APIRequiresKey(t *testing.T) {
	f := newRouterFixture(t, DetectorConfig{})

	rec := f.do(http.MethodGet, "/api/v1/characters", "", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
}

func TestRouter_Routes(t *testing.T) {
	f := newRouterFixture(t, DetectorConfig{})

	f.character.On("List", mock.Anything).Return([]domain.Character{{ID: 1, Name: "Doc"}}, nil)
	rec := f.do(http.MethodGet, "/api/v1/characters", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Doc"`)

	f.character.On("Adjust", mock.Anything, int64(7), character.CounterDarkStone, 2).
		Return(&domain.Character{ID: 7, DarkStone: 2}, nil)
	rec = f.do(http.MethodPost, "/api/v1/characters/7/dark-stone", `{"delta":2}`, true)
	assert.Equal(t, http.StatusOK, rec.Code)

	f.inventory.On("DeleteItem", mock.Anything, int64(7), int64(3)).Return(nil)
	rec = f.do(http.MethodDelete, "/api/v1/characters/7/items/3", "", true)
	assert.Equal(t, http.StatusOK, rec.Code)

	f.catalog.On("ListClasses", mock.Anything).Return([]domain.ClassDefinition{{ID: 1, Name: "Gunslinger"}}, nil)
	rec = f.do(http.MethodGet, "/api/v1/catalog/classes", "", true)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Gunslinger")
}

func TestRouter_UnknownRoute(t *testing.T) {
	f := newRouterFixture(t, DetectorConfig{})

	rec := f.do(http.MethodGet, "/api/v1/nothing-here", "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_RateLimited(t *testing.T) {
	f := newRouterFixture(t, DetectorConfig{Window: time.Minute, FailedAuthAlert: 5, MaxRequestsPerIP: 2})
	f.character.On("List", mock.Anything).Return([]domain.Character{}, nil)

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/v1/characters", "", true).Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/v1/characters", "", true).Code)
	assert.Equal(t, http.StatusTooManyRequests, f.do(http.MethodGet, "/api/v1/characters", "", true).Code)
}
