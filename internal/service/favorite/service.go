// Package favorite manages the lookup results a client has saved.
package favorite

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabvault-backend/internal/domain"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
	MaxTagLength = 50
)

type favoriteRepo interface {
	GetByID(ctx context.Context, clientID, id uuid.UUID) (*domain.Favorite, error)
	GetByHeadword(ctx context.Context, clientID uuid.UUID, headwordNormalized string, source domain.Source) (*domain.Favorite, error)
	List(ctx context.Context, clientID uuid.UUID, filter domain.FavoriteFilter) ([]domain.Favorite, int, error)
	Create(ctx context.Context, f *domain.Favorite) (*domain.Favorite, error)
	UpdateTags(ctx context.Context, clientID, id uuid.UUID, tags []string) (*domain.Favorite, error)
	Delete(ctx context.Context, clientID, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides favorites management operations. Every operation acts on
// behalf of the client ID carried by the context.
type Service struct {
	favorites favoriteRepo
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new Favorite service.
func NewService(
	log *slog.Logger,
	favorites favoriteRepo,
	tx txManager,
) *Service {
	return &Service{
		favorites: favorites,
		tx:        tx,
		log:       log.With("service", "favorite"),
	}
}
