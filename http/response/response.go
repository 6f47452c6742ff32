package response

import (
	"encoding/json"
	"net/http"

	"trainings-module/errors"
)

// StandardResponse represents a standard API response structure
type StandardResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// SendJSON writes a JSON response with the given status code
// This is the base function used by all response helpers
func SendJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// SendSuccess sends a success response with data
func SendSuccess(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	response := StandardResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	}
	SendJSON(w, statusCode, response)
}

// SendError sends an error response
func SendError(w http.ResponseWriter, statusCode int, message string) {
	response := StandardResponse{
		Status: "error",
		Error:  message,
	}
	SendJSON(w, statusCode, response)
}

// SendValidationFailures sends the per-field validation messages.
func SendValidationFailures(w http.ResponseWriter, failures map[string]string) {
	response := StandardResponse{
		Status: "error",
		Error:  "validation failed",
		Data:   failures,
	}
	SendJSON(w, http.StatusBadRequest, response)
}

// StatusFromError maps an application error kind to an HTTP status code.
func StatusFromError(err error) int {
	switch errors.KindOf(err) {
	case errors.Invalid:
		return http.StatusBadRequest
	case errors.NotFound:
		return http.StatusNotFound
	case errors.Conflict:
		return http.StatusConflict
	case errors.Unauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
