package mocks

import (
	"context"
	"time"

	"github.com/RAGHAVAN7777/vault-backend/domain"
)

// MockContentRepository implements domain.ContentRepository for testing
type MockContentRepository struct {
	CreateFunc        func(ctx context.Context, item *domain.ContentItem) error
	FindByIDFunc      func(ctx context.Context, id uint) (*domain.ContentItem, error)
	ListByOwnerFunc   func(ctx context.Context, ownerID string) ([]*domain.ContentItem, error)
	ListExpiredFunc   func(ctx context.Context, now time.Time) ([]*domain.ContentItem, error)
	DeleteByIDFunc    func(ctx context.Context, id uint) error
	DeleteByOwnerFunc func(ctx context.Context, ownerID string) error
}

// NewMockContentRepository creates a new MockContentRepository with default behaviors
func NewMockContentRepository() *MockContentRepository {
	return &MockContentRepository{}
}

func (m *MockContentRepository) Create(ctx context.Context, item *domain.ContentItem) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, item)
	}
	return nil
}

func (m *MockContentRepository) FindByID(ctx context.Context, id uint) (*domain.ContentItem, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrFileNotFound
}

func (m *MockContentRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.ContentItem, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *MockContentRepository) ListExpired(ctx context.Context, now time.Time) ([]*domain.ContentItem, error) {
	if m.ListExpiredFunc != nil {
		return m.ListExpiredFunc(ctx, now)
	}
	return nil, nil
}

func (m *MockContentRepository) DeleteByID(ctx context.Context, id uint) error {
	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, id)
	}
	return nil
}

func (m *MockContentRepository) DeleteByOwner(ctx context.Context, ownerID string) error {
	if m.DeleteByOwnerFunc != nil {
		return m.DeleteByOwnerFunc(ctx, ownerID)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.ContentRepository = (*MockContentRepository)(nil)
