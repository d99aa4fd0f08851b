package favorite

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabvault-backend/internal/domain"
)

var _ favoriteRepo = &favoriteRepoMock{}

type favoriteRepoMock struct {
	GetByIDFunc       func(ctx context.Context, clientID, id uuid.UUID) (*domain.Favorite, error)
	GetByHeadwordFunc func(ctx context.Context, clientID uuid.UUID, headwordNormalized string, source domain.Source) (*domain.Favorite, error)
	ListFunc          func(ctx context.Context, clientID uuid.UUID, filter domain.FavoriteFilter) ([]domain.Favorite, int, error)
	CreateFunc        func(ctx context.Context, f *domain.Favorite) (*domain.Favorite, error)
	UpdateTagsFunc    func(ctx context.Context, clientID, id uuid.UUID, tags []string) (*domain.Favorite, error)
	DeleteFunc        func(ctx context.Context, clientID, id uuid.UUID) error

	calls struct {
		Create []struct {
			F *domain.Favorite
		}
		UpdateTags []struct {
			ClientID uuid.UUID
			ID       uuid.UUID
			Tags     []string
		}
		List []struct {
			ClientID uuid.UUID
			Filter   domain.FavoriteFilter
		}
	}
	lock sync.RWMutex
}

func (mock *favoriteRepoMock) GetByID(ctx context.Context, clientID, id uuid.UUID) (*domain.Favorite, error) {
	if mock.GetByIDFunc == nil {
		panic("favoriteRepoMock.GetByIDFunc: method is nil but favoriteRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, clientID, id)
}

func (mock *favoriteRepoMock) GetByHeadword(ctx context.Context, clientID uuid.UUID, headwordNormalized string, source domain.Source) (*domain.Favorite, error) {
	if mock.GetByHeadwordFunc == nil {
		panic("favoriteRepoMock.GetByHeadwordFunc: method is nil but favoriteRepo.GetByHeadword was just called")
	}
	return mock.GetByHeadwordFunc(ctx, clientID, headwordNormalized, source)
}

func (mock *favoriteRepoMock) List(ctx context.Context, clientID uuid.UUID, filter domain.FavoriteFilter) ([]domain.Favorite, int, error) {
	if mock.ListFunc == nil {
		panic("favoriteRepoMock.ListFunc: method is nil but favoriteRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		ClientID uuid.UUID
		Filter   domain.FavoriteFilter
	}{ClientID: clientID, Filter: filter})
	mock.lock.Unlock()
	return mock.ListFunc(ctx, clientID, filter)
}

func (mock *favoriteRepoMock) ListCalls() []struct {
	ClientID uuid.UUID
	Filter   domain.FavoriteFilter
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *favoriteRepoMock) Create(ctx context.Context, f *domain.Favorite) (*domain.Favorite, error) {
	if mock.CreateFunc == nil {
		panic("favoriteRepoMock.CreateFunc: method is nil but favoriteRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ F *domain.Favorite }{F: f})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, f)
}

func (mock *favoriteRepoMock) CreateCalls() []struct{ F *domain.Favorite } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *favoriteRepoMock) UpdateTags(ctx context.Context, clientID, id uuid.UUID, tags []string) (*domain.Favorite, error) {
	if mock.UpdateTagsFunc == nil {
		panic("favoriteRepoMock.UpdateTagsFunc: method is nil but favoriteRepo.UpdateTags was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateTags = append(mock.calls.UpdateTags, struct {
		ClientID uuid.UUID
		ID       uuid.UUID
		Tags     []string
	}{ClientID: clientID, ID: id, Tags: tags})
	mock.lock.Unlock()
	return mock.UpdateTagsFunc(ctx, clientID, id, tags)
}

func (mock *favoriteRepoMock) UpdateTagsCalls() []struct {
	ClientID uuid.UUID
	ID       uuid.UUID
	Tags     []string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateTags
}

func (mock *favoriteRepoMock) Delete(ctx context.Context, clientID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("favoriteRepoMock.DeleteFunc: method is nil but favoriteRepo.Delete was just called")
	}
	return mock.DeleteFunc(ctx, clientID, id)
}

// passthroughTx runs fn directly and counts invocations.
type passthroughTx struct {
	calls int
}

func (m *passthroughTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}
