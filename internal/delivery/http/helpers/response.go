package helpers

import (
	"encoding/json"
	"errors"
	"net/http"

	"showcase/internal/domain"
)

// Error codes for API error responses. Use these with WriteJSONError.
const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeUnauthorized     = "unauthorized"
	ErrCodeNotAuthenticated = "not_authenticated"
	ErrCodeForbidden        = "forbidden"
	ErrCodeNotFound         = "not_found"
	ErrCodeInvalidState     = "invalid_state"
	ErrCodeInternalError    = "internal_error"
)

// APIError is the error object in the standardized API response envelope.
// swagger:model APIError
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIResponse is the standardized envelope for all API responses.
// On success: Data is set, Error is nil. On error: Data is nil, Error is set.
// swagger:model APIResponse
type APIResponse struct {
	Data  any       `json:"data"`
	Error *APIError `json:"error"`
}

// WriteJSONSuccess sets Content-Type to application/json, writes statusCode, and
// encodes an APIResponse with the given data and error set to nil.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIResponse{Data: data, Error: nil})
}

// WriteJSONError sets Content-Type to application/json, writes statusCode, and
// encodes an APIResponse with data nil and the given error code and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIResponse{
		Data:  nil,
		Error: &APIError{Code: code, Message: message},
	})
}

// WriteDomainError maps a domain sentinel error to its HTTP status and error
// code and writes the JSON error response. Unknown errors become a 500 with a
// generic message so internals never leak to clients.
func WriteDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		WriteJSONError(w, http.StatusUnauthorized, ErrCodeNotAuthenticated, "authentication required")
	case errors.Is(err, domain.ErrForbidden):
		WriteJSONError(w, http.StatusForbidden, ErrCodeForbidden, "not allowed")
	case errors.Is(err, domain.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, ErrCodeNotFound, "not found")
	case errors.Is(err, domain.ErrWeekInactive):
		WriteJSONError(w, http.StatusConflict, ErrCodeInvalidState, "this week is marked inactive")
	case errors.Is(err, domain.ErrWeekNotInactive):
		WriteJSONError(w, http.StatusConflict, ErrCodeInvalidState, "this week is not marked inactive")
	case errors.Is(err, domain.ErrDuplicateSignup):
		WriteJSONError(w, http.StatusConflict, ErrCodeInvalidState, "you are already signed up for this week")
	case errors.Is(err, domain.ErrAlreadyAdmin):
		WriteJSONError(w, http.StatusConflict, ErrCodeInvalidState, "this email is already an admin")
	case errors.Is(err, domain.ErrNotAdmin):
		WriteJSONError(w, http.StatusConflict, ErrCodeInvalidState, "this email is not an admin")
	case errors.Is(err, domain.ErrSelfRemoval):
		WriteJSONError(w, http.StatusConflict, ErrCodeInvalidState, "admins cannot remove themselves")
	case errors.Is(err, domain.ErrDuplicateEmail):
		WriteJSONError(w, http.StatusConflict, ErrCodeInvalidState, "this email is already registered")
	case errors.Is(err, domain.ErrInvalidCredentials):
		WriteJSONError(w, http.StatusUnauthorized, ErrCodeUnauthorized, "invalid email or password")
	case errors.Is(err, domain.ErrInvalidInput):
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	default:
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
	}
}
