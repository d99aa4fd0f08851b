package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/vocabvault-backend/internal/domain"
)

type lookupService interface {
	Resolve(ctx context.Context, query string) (*domain.LookupResult, error)
}

// LookupHandler serves the lookup endpoints.
type LookupHandler struct {
	svc lookupService
	log *slog.Logger
}

// NewLookupHandler creates a LookupHandler.
func NewLookupHandler(svc lookupService, logger *slog.Logger) *LookupHandler {
	return &LookupHandler{svc: svc, log: logger.With("handler", "lookup")}
}

type searchRequest struct {
	Query string `json:"query"`
}

// Search handles POST /api/search.
func (h *LookupHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	h.resolve(w, r, req.Query)
}

// Lookup handles GET /api/lookup?q=.
func (h *LookupHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, r.URL.Query().Get("q"))
}

func (h *LookupHandler) resolve(w http.ResponseWriter, r *http.Request, query string) {
	result, err := h.svc.Resolve(r.Context(), query)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
