package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabvault-backend/internal/domain"
	"github.com/heartmarshall/vocabvault-backend/internal/service/favorite"
)

type favoriteService interface {
	Save(ctx context.Context, input favorite.SaveInput) (*domain.Favorite, error)
	List(ctx context.Context, input favorite.ListInput) ([]domain.Favorite, int, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Favorite, error)
	UpdateTags(ctx context.Context, input favorite.UpdateTagsInput) (*domain.Favorite, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// FavoriteHandler serves the favorites endpoints.
type FavoriteHandler struct {
	svc favoriteService
	log *slog.Logger
}

// NewFavoriteHandler creates a FavoriteHandler.
func NewFavoriteHandler(svc favoriteService, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{svc: svc, log: logger.With("handler", "favorite")}
}

type saveFavoriteRequest struct {
	Result domain.LookupResult `json:"result"`
	Tags   []string            `json:"tags"`
}

type updateTagsRequest struct {
	Tags []string `json:"tags"`
}

type favoriteResponse struct {
	ID        string              `json:"id"`
	Result    domain.LookupResult `json:"result"`
	Tags      []string            `json:"tags"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

type favoriteListResponse struct {
	Items []favoriteResponse `json:"items"`
	Total int                `json:"total"`
}

// Save handles POST /api/favorites.
func (h *FavoriteHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveFavoriteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	f, err := h.svc.Save(r.Context(), favorite.SaveInput{Result: req.Result, Tags: req.Tags})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toFavoriteResponse(f))
}

// List handles GET /api/favorites?tag=a&tag=b&limit=&offset=.
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, err := intParam(q.Get("limit"), "limit")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	offset, err := intParam(q.Get("offset"), "offset")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items, total, err := h.svc.List(r.Context(), favorite.ListInput{
		Tags:   q["tag"],
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := favoriteListResponse{Items: make([]favoriteResponse, len(items)), Total: total}
	for i := range items {
		resp.Items[i] = toFavoriteResponse(&items[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/favorites/{id}.
func (h *FavoriteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	f, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toFavoriteResponse(f))
}

// UpdateTags handles PUT /api/favorites/{id}/tags.
func (h *FavoriteHandler) UpdateTags(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateTagsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	f, err := h.svc.UpdateTags(r.Context(), favorite.UpdateTagsInput{ID: id, Tags: req.Tags})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toFavoriteResponse(f))
}

// Delete handles DELETE /api/favorites/{id}.
func (h *FavoriteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "must be a UUID")
	}
	return id, nil
}

func intParam(raw, field string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(field, "must be an integer")
	}
	return n, nil
}

func toFavoriteResponse(f *domain.Favorite) favoriteResponse {
	tags := f.Tags
	if tags == nil {
		tags = []string{}
	}
	return favoriteResponse{
		ID:        f.ID.String(),
		Result:    f.Result,
		Tags:      tags,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
