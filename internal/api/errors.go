package api

import (
	"encoding/json"
	"net/http"

	"github.com/blagoySimandov/novafields/internal/logger"
	"github.com/blagoySimandov/novafields/internal/logging"
)

const (
	codeNotFound       = "not_found"
	codeBadRequest     = "bad_request"
	codeInternalError  = "internal_error"
	codeInvalidFilters = "invalid_filters"
)

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	TraceID string `json:"trace_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Log.Error("failed to write JSON response", "error", err)
	}
}

func writeJSONError(w http.ResponseWriter, r *http.Request, statusCode int, code, message string) {
	writeJSON(w, statusCode, APIError{
		Code:    code,
		Message: message,
		TraceID: logging.GetTraceID(r.Context()),
	})
}
