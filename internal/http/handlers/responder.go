package handlers

import (
	"log/slog"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/preston-bernstein/nba-stats-service/internal/http/middleware"
	"github.com/preston-bernstein/nba-stats-service/internal/http/requestutil"
	"github.com/preston-bernstein/nba-stats-service/internal/logging"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

// writeJSON encodes payload before touching the response so an encoding
// failure still produces a well-formed 500.
func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	raw, err := jsonAPI.Marshal(payload)
	if err != nil {
		logging.Error(logger, "failed to encode response", err)
		status = http.StatusInternalServerError
		raw, _ = jsonAPI.Marshal(errorBody{Error: "failed to encode response"})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(raw, '\n'))
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	body := errorBody{Error: message, RequestID: middleware.RequestIDFromContext(r.Context())}
	if body.RequestID == "" {
		body.RequestID = r.Header.Get(requestutil.HeaderRequestID)
	}
	writeJSON(w, status, body, logger)
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
