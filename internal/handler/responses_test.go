package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Jauphraux/SoBApp/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"rule rejection", domain.Reject(domain.ErrHandsFull, "Both hands are full"), http.StatusConflict, "Both hands are full"},
		{"rejection on missing container", domain.Reject(domain.ErrContainerNotFound, "That container is gone"), http.StatusNotFound, "That container is gone"},
		{"wrapped rejection", fmt.Errorf("move: %w", domain.Reject(domain.ErrContainerFull, "Side Bag is full")), http.StatusConflict, "Side Bag is full"},
		{"character not found", fmt.Errorf("lookup: %w", domain.ErrCharacterNotFound), http.StatusNotFound, ErrMsgCharacterNotFoundError},
		{"skill not found", domain.ErrSkillNotFound, http.StatusNotFound, ErrMsgSkillNotFoundError},
		{"duplicate name", domain.ErrDuplicateName, http.StatusConflict, ErrMsgDuplicateNameError},
		{"invalid quantity", domain.ErrInvalidQuantity, http.StatusBadRequest, ErrMsgInvalidQuantityError},
		{"invalid percentage", domain.ErrInvalidPercentage, http.StatusBadRequest, ErrMsgInvalidPercentError},
		{"invalid input", fmt.Errorf("%w: name required", domain.ErrInvalidInput), http.StatusBadRequest, ErrMsgInvalidRequestError},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestRespondServiceError_HidesInternalErrors(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	respondServiceError(w, req, ErrMsgGetInventoryFailed, errors.New("pq: relation does not exist"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgGetInventoryFailed)
	assert.NotContains(t, w.Body.String(), "relation")
}
