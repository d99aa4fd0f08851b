package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabvault-backend/internal/domain"
	"github.com/heartmarshall/vocabvault-backend/internal/service/favorite"
)

type lookupServiceMock struct {
	ResolveFunc func(ctx context.Context, query string) (*domain.LookupResult, error)

	mu      sync.RWMutex
	queries []string
}

func (m *lookupServiceMock) Resolve(ctx context.Context, query string) (*domain.LookupResult, error) {
	if m.ResolveFunc == nil {
		panic("lookupServiceMock.ResolveFunc: method is nil but Resolve was just called")
	}
	m.mu.Lock()
	m.queries = append(m.queries, query)
	m.mu.Unlock()
	return m.ResolveFunc(ctx, query)
}

func (m *lookupServiceMock) ResolveCalls() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.queries
}

type favoriteServiceMock struct {
	SaveFunc       func(ctx context.Context, input favorite.SaveInput) (*domain.Favorite, error)
	ListFunc       func(ctx context.Context, input favorite.ListInput) ([]domain.Favorite, int, error)
	GetFunc        func(ctx context.Context, id uuid.UUID) (*domain.Favorite, error)
	UpdateTagsFunc func(ctx context.Context, input favorite.UpdateTagsInput) (*domain.Favorite, error)
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error
}

func (m *favoriteServiceMock) Save(ctx context.Context, input favorite.SaveInput) (*domain.Favorite, error) {
	if m.SaveFunc == nil {
		panic("favoriteServiceMock.SaveFunc: method is nil but Save was just called")
	}
	return m.SaveFunc(ctx, input)
}

func (m *favoriteServiceMock) List(ctx context.Context, input favorite.ListInput) ([]domain.Favorite, int, error) {
	if m.ListFunc == nil {
		panic("favoriteServiceMock.ListFunc: method is nil but List was just called")
	}
	return m.ListFunc(ctx, input)
}

func (m *favoriteServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Favorite, error) {
	if m.GetFunc == nil {
		panic("favoriteServiceMock.GetFunc: method is nil but Get was just called")
	}
	return m.GetFunc(ctx, id)
}

func (m *favoriteServiceMock) UpdateTags(ctx context.Context, input favorite.UpdateTagsInput) (*domain.Favorite, error) {
	if m.UpdateTagsFunc == nil {
		panic("favoriteServiceMock.UpdateTagsFunc: method is nil but UpdateTags was just called")
	}
	return m.UpdateTagsFunc(ctx, input)
}

func (m *favoriteServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("favoriteServiceMock.DeleteFunc: method is nil but Delete was just called")
	}
	return m.DeleteFunc(ctx, id)
}
