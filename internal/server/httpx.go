package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// apiError is the JSON error envelope of every non-2xx response.
type apiError struct {
	Code    string
	Message string
	Status  int
	Details map[string]any
}

func newAPIError(code, message string, status int) apiError {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return apiError{
		Code:    sanitize(code, 80),
		Message: sanitize(message, 512),
		Status:  status,
	}
}

func (e apiError) withDetails(details map[string]any) apiError {
	if len(details) == 0 {
		return e
	}
	copyDetails := make(map[string]any, len(details))
	for k, v := range details {
		copyDetails[k] = v
	}
	e.Details = copyDetails
	return e
}

func writeError(ctx context.Context, w http.ResponseWriter, err apiError) {
	payload := map[string]any{
		"error":   err.Code,
		"message": err.Message,
		"status":  err.Status,
	}
	if id := requestIDFrom(ctx); id != "" {
		payload["request_id"] = id
	}
	for k, v := range err.Details {
		payload[k] = v
	}
	writeJSON(w, err.Status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func sanitize(value string, limit int) string {
	if limit <= 0 {
		limit = 256
	}
	value = strings.ReplaceAll(value, "\n", " ")
	value = strings.ReplaceAll(value, "\r", " ")
	value = strings.TrimSpace(value)
	if len(value) > limit {
		value = value[:limit]
	}
	return value
}
