package response

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the wire shape of every failure: a stable machine-readable
// kind plus optional field-level details for validation errors.
type ErrorBody struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

// Error kinds of the API. Handlers never invent ad-hoc strings.
const (
	KindInvalidInput           = "invalid_input"
	KindInvalidDateRange       = "invalid_date_range"
	KindUnauthorized           = "unauthorized"
	KindInvalidCredentials     = "invalid_credentials"
	KindInvalidToken           = "invalid_token"
	KindForbidden              = "forbidden"
	KindNotFound               = "not_found"
	KindNoEmployeeLink         = "no_employee_link"
	KindAlreadyCheckedIn       = "already_checked_in"
	KindInvalidStateTransition = "invalid_state_transition"
	KindDepartmentInUse        = "department_in_use"
	KindConflict               = "conflict"
	KindInternalError          = "internal_error"
)

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		_ = json.NewEncoder(w).Encode(ErrorBody{Error: KindInternalError})
	}
}

// JSON writes a success payload with 200.
func JSON(w http.ResponseWriter, payload interface{}) {
	writeJSON(w, http.StatusOK, payload)
}

// Created writes a success payload with 201.
func Created(w http.ResponseWriter, payload interface{}) {
	writeJSON(w, http.StatusCreated, payload)
}

// NoContent writes an empty 204.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error responses
func InvalidInput(w http.ResponseWriter, details map[string]string) {
	writeJSON(w, http.StatusBadRequest, ErrorBody{Error: KindInvalidInput, Details: details})
}

func BadRequest(w http.ResponseWriter, kind string) {
	writeJSON(w, http.StatusBadRequest, ErrorBody{Error: kind})
}

func Unauthorized(w http.ResponseWriter, kind string) {
	writeJSON(w, http.StatusUnauthorized, ErrorBody{Error: kind})
}

func Forbidden(w http.ResponseWriter) {
	writeJSON(w, http.StatusForbidden, ErrorBody{Error: KindForbidden})
}

func NotFound(w http.ResponseWriter, kind string) {
	writeJSON(w, http.StatusNotFound, ErrorBody{Error: kind})
}

func Conflict(w http.ResponseWriter, kind string) {
	writeJSON(w, http.StatusConflict, ErrorBody{Error: kind})
}

func InternalServerError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, ErrorBody{Error: KindInternalError})
}
