package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nba-stats-service/internal/logging"
)

// requestError is an error with a fixed status and client-facing message.
type requestError struct {
	status  int
	message string
	cause   error
}

func (e *requestError) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

func (e *requestError) Unwrap() error { return e.cause }

func badRequest(message string, cause error) error {
	return &requestError{status: http.StatusBadRequest, message: message, cause: cause}
}

func notFound(message string) error {
	return &requestError{status: http.StatusNotFound, message: message}
}

// hideCause answers 500 with a fixed message instead of the upstream error text.
func hideCause(message string, cause error) error {
	return &requestError{status: http.StatusInternalServerError, message: message, cause: cause}
}

type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// handle adapts an error-returning handler. Request errors keep their status
// and message; anything else is a 500 carrying err.Error().
func (h *Handler) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		logger := loggerFromContext(r, h.logger)
		var reqErr *requestError
		if errors.As(err, &reqErr) {
			if reqErr.status >= http.StatusInternalServerError {
				logging.Error(logger, "request failed", err, slog.Int(logging.FieldStatusCode, reqErr.status))
			} else {
				logging.Info(logger, "request rejected", slog.Int(logging.FieldStatusCode, reqErr.status), slog.String("reason", reqErr.message))
			}
			writeError(w, r, reqErr.status, reqErr.message, h.logger)
			return
		}

		logging.Error(logger, "request failed", err, slog.Int(logging.FieldStatusCode, http.StatusInternalServerError))
		writeError(w, r, http.StatusInternalServerError, err.Error(), h.logger)
	}
}
