package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Jauphraux/SoBApp/internal/domain"
	"github.com/Jauphraux/SoBApp/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent; all that is left is to log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped status and message
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName, "error", err)
		message = opName
	} else {
		log.Warn(opName, "error", err, "status", status)
	}
	respondError(w, status, message)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgResourceNotFoundErr = "Resource not found."

	ErrMsgCharacterNotFoundError  = "Character not found"
	ErrMsgItemNotFoundError       = "Item not found"
	ErrMsgDefinitionNotFoundError = "Item definition not found"
	ErrMsgClassNotFoundError      = "Class not found"
	ErrMsgContainerNotFoundError  = "Container not found"
	ErrMsgSkillNotFoundError      = "Skill not found"

	ErrMsgDuplicateNameError    = "A definition with that name already exists"
	ErrMsgInvalidQuantityError  = "Quantity must be at least 1"
	ErrMsgInvalidPercentError   = "Percentage must be between 0 and 100"
	ErrMsgInvalidAmountError    = "Amount must be positive"
	ErrMsgInvalidEquipSlotError = "Invalid equip slot"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Rule rejections carry their own player-facing reason: 404 when the rule
// could not find its subject, 409 otherwise.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	if reason, ok := domain.RejectionReason(err); ok {
		if domain.IsNotFound(err) {
			return http.StatusNotFound, reason
		}
		return http.StatusConflict, reason
	}

	switch {
	case errors.Is(err, domain.ErrCharacterNotFound):
		return http.StatusNotFound, ErrMsgCharacterNotFoundError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrDefinitionNotFound):
		return http.StatusNotFound, ErrMsgDefinitionNotFoundError
	case errors.Is(err, domain.ErrClassNotFound):
		return http.StatusNotFound, ErrMsgClassNotFoundError
	case errors.Is(err, domain.ErrContainerNotFound):
		return http.StatusNotFound, ErrMsgContainerNotFoundError
	case errors.Is(err, domain.ErrSkillNotFound):
		return http.StatusNotFound, ErrMsgSkillNotFoundError
	case errors.Is(err, domain.ErrDuplicateName):
		return http.StatusConflict, ErrMsgDuplicateNameError
	case errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest, ErrMsgInvalidQuantityError
	case errors.Is(err, domain.ErrInvalidPercentage):
		return http.StatusBadRequest, ErrMsgInvalidPercentError
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, ErrMsgInvalidAmountError
	case errors.Is(err, domain.ErrInvalidEquipSlot):
		return http.StatusBadRequest, ErrMsgInvalidEquipSlotError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
