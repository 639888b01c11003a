// Package handlers provides HTTP response utilities for JSON APIs.
// These stateless functions standardize response formatting across handlers.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

// ErrNotImplemented is returned by operations whose behavior lives outside this service.
var ErrNotImplemented = errors.New("operation not implemented")

// RespondJSON writes a JSON response with the given status code and data.
// It sets the Content-Type header to application/json.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError logs the error and writes a JSON error response.
// The response body contains {"error": "<error message>"}.
// Client errors are logged at debug level, server errors at error level.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	if status >= http.StatusInternalServerError {
		logger.Error("handler error", "error", err, "status", status)
	} else {
		logger.Debug("handler error", "error", err, "status", status)
	}
	RespondJSON(w, status, map[string]string{"error": err.Error()})
}

// NotImplemented returns a handler answering 501 for the named operation.
func NotImplemented(logger *slog.Logger, operation string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("operation not implemented", "operation", operation, "path", r.URL.Path)
		RespondJSON(w, http.StatusNotImplemented, map[string]string{
			"error":     ErrNotImplemented.Error(),
			"operation": operation,
		})
	}
}
