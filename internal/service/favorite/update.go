package favorite

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabvault-backend/internal/domain"
	"github.com/heartmarshall/vocabvault-backend/pkg/ctxutil"
)

// UpdateTags replaces the tags of a favorite.
func (s *Service) UpdateTags(ctx context.Context, input UpdateTagsInput) (*domain.Favorite, error) {
	clientID, ok := ctxutil.ClientIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	f, err := s.favorites.UpdateTags(ctx, clientID, input.ID, domain.NormalizeTags(input.Tags))
	if err != nil {
		return nil, fmt.Errorf("update favorite tags: %w", err)
	}

	s.log.InfoContext(ctx, "favorite tags updated",
		slog.String("client_id", clientID.String()),
		slog.String("favorite_id", f.ID.String()),
		slog.Int("tags", len(f.Tags)),
	)

	return f, nil
}

// Delete removes a favorite by ID.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	clientID, ok := ctxutil.ClientIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.favorites.Delete(ctx, clientID, id); err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}

	s.log.InfoContext(ctx, "favorite deleted",
		slog.String("client_id", clientID.String()),
		slog.String("favorite_id", id.String()),
	)

	return nil
}
