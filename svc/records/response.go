package records

import (
	"encoding/json"
	"maps"
	"net/http"
)

// JSONResponse is the envelope of every API response.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail describes a failed request. Details maps field names to their
// violation messages.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

const (
	codeValidation = "validation_error"
	codeBadRequest = "bad_request"
	codeInternal   = "internal_error"
)

func writeJSON(w http.ResponseWriter, status int, body JSONResponse) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code, message string, details map[string][]string) {
	detail := &ErrorDetail{Code: code, Message: message}
	if len(details) > 0 {
		detail.Details = maps.Clone(details)
	}
	writeJSON(w, status, JSONResponse{Error: detail})
}
