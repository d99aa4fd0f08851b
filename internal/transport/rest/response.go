package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/vocabvault-backend/internal/domain"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 64 << 10

// ErrorResponse is the JSON envelope of every error answer.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody describes a failure in client-safe terms.
type ErrorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, kind, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorBody{Kind: kind, Message: message}})
}

// decodeJSON reads a bounded JSON body into v. Unknown fields are ignored.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.NewValidationError("body", "invalid request body")
	}
	return nil
}

// handleError maps domain errors onto HTTP answers. Provider details are
// logged and never returned to the client.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		ve *domain.ValidationError
		re *domain.ResolveError
	)

	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, "validation_error", validationMessage(ve))
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "validation_error", "invalid request")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized", "X-Client-Id header required")
	case errors.Is(err, domain.ErrConfiguration):
		log.WarnContext(r.Context(), "lookup not configured", slog.String("error", err.Error()))
		writeError(w, http.StatusServiceUnavailable, "configuration_error", "lookup unavailable")
	case errors.As(err, &re) && re.AllMisses():
		writeError(w, http.StatusNotFound, "lookup_failed", "no definition found")
	case errors.Is(err, domain.ErrLookupFailed):
		log.WarnContext(r.Context(), "lookup failed", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "lookup_failed", "lookup service unavailable")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already_exists", "already exists")
	case errors.Is(err, context.Canceled):
		log.InfoContext(r.Context(), "request canceled", slog.String("error", err.Error()))
		writeError(w, http.StatusServiceUnavailable, "canceled", "request canceled")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func validationMessage(ve *domain.ValidationError) string {
	parts := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return strings.Join(parts, "; ")
}

// Unavailable answers every request with 503 and the given message.
func Unavailable(message string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusServiceUnavailable, "unavailable", message)
	}
}
