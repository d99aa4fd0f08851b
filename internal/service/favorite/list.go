package favorite

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabvault-backend/internal/domain"
	"github.com/heartmarshall/vocabvault-backend/pkg/ctxutil"
)

// List returns a page of the client's favorites that carry every requested tag.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Favorite, int, error) {
	clientID, ok := ctxutil.ClientIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	favorites, total, err := s.favorites.List(ctx, clientID, domain.FavoriteFilter{
		Tags:   domain.NormalizeTags(input.Tags),
		Limit:  limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list favorites: %w", err)
	}

	return favorites, total, nil
}

// Get returns a single favorite by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Favorite, error) {
	clientID, ok := ctxutil.ClientIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	f, err := s.favorites.GetByID(ctx, clientID, id)
	if err != nil {
		return nil, fmt.Errorf("get favorite: %w", err)
	}

	return f, nil
}
