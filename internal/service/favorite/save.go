package favorite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabvault-backend/internal/domain"
	"github.com/heartmarshall/vocabvault-backend/pkg/ctxutil"
)

// Save stores a lookup result as a favorite. Saving a headword the client
// already saved from the same source merges the tags into the existing
// favorite instead of creating a second one.
func (s *Service) Save(ctx context.Context, input SaveInput) (*domain.Favorite, error) {
	clientID, ok := ctxutil.ClientIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	tags := domain.NormalizeTags(input.Tags)
	headword := domain.NormalizeText(input.Result.Headword)

	var saved *domain.Favorite
	created := false

	save := func(ctx context.Context) error {
		created = false
		existing, err := s.favorites.GetByHeadword(ctx, clientID, headword, input.Result.Source)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			now := time.Now().UTC()
			saved, err = s.favorites.Create(ctx, &domain.Favorite{
				ID:        uuid.New(),
				ClientID:  clientID,
				Result:    input.Result,
				Tags:      tags,
				CreatedAt: now,
				UpdatedAt: now,
			})
			if err != nil {
				return fmt.Errorf("create favorite: %w", err)
			}
			created = true
			return nil
		case err != nil:
			return fmt.Errorf("get favorite by headword: %w", err)
		}

		merged := domain.NormalizeTags(append(append([]string{}, existing.Tags...), tags...))
		if len(merged) > domain.MaxTagsPerFavorite {
			return domain.NewValidationError("tags", "too many (max 20)")
		}
		saved, err = s.favorites.UpdateTags(ctx, clientID, existing.ID, merged)
		if err != nil {
			return fmt.Errorf("update favorite tags: %w", err)
		}
		return nil
	}

	err := s.tx.RunInTx(ctx, save)
	if errors.Is(err, domain.ErrAlreadyExists) {
		// A concurrent save created the row between our read and insert.
		// The failed transaction is aborted, so merge in a new one.
		s.log.DebugContext(ctx, "favorite save raced, retrying as merge",
			slog.String("client_id", clientID.String()),
			slog.String("headword", headword),
		)
		err = s.tx.RunInTx(ctx, save)
	}
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "favorite saved",
		slog.String("client_id", clientID.String()),
		slog.String("favorite_id", saved.ID.String()),
		slog.String("headword", saved.Result.Headword),
		slog.Bool("created", created),
	)

	return saved, nil
}
