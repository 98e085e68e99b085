package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tourze/raffle-core/internal/domain"
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

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent, nothing left to write
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

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	// Activity messages
	ErrMsgActivityNotFoundError = "Activity not found"
	ErrMsgActivityInactiveError = "Activity is not open right now"

	// Chance messages
	ErrMsgChanceNotFoundError    = "Chance not found"
	ErrMsgChanceAlreadyUsedError = "That chance has already been used"

	// Prize messages
	ErrMsgAwardNotFoundError = "Prize not found"
	ErrMsgInvalidPrizeError  = "That prize is no longer available"

	// Concurrency messages
	ErrMsgConflictError = "The record changed underneath you. Please retry"

	// Input messages
	ErrMsgInvalidInputError = "Invalid request. Please check your inputs."
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	// Check for specific domain errors
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		return http.StatusNotFound, ErrMsgActivityNotFoundError
	case errors.Is(err, domain.ErrChanceNotFound):
		return http.StatusNotFound, ErrMsgChanceNotFoundError
	case errors.Is(err, domain.ErrAwardNotFound):
		return http.StatusNotFound, ErrMsgAwardNotFoundError
	case errors.Is(err, domain.ErrActivityInactive):
		return http.StatusBadRequest, ErrMsgActivityInactiveError
	case errors.Is(err, domain.ErrChanceAlreadyUsed):
		return http.StatusBadRequest, ErrMsgChanceAlreadyUsedError
	case errors.Is(err, domain.ErrInvalidPrize):
		return http.StatusBadRequest, ErrMsgInvalidPrizeError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrConcurrencyConflict):
		return http.StatusConflict, ErrMsgConflictError
	}

	// For wrapped errors with domain errors as the base, try unwrapping
	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return mapServiceErrorToUserMessage(unwrapped)
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
