package mocks

import (
	"context"

	"github.com/RAGHAVAN7777/vault-backend/domain"
)

// MockNoteRepository implements domain.NoteRepository for testing
type MockNoteRepository struct {
	CreateFunc        func(ctx context.Context, note *domain.Note) error
	ListByOwnerFunc   func(ctx context.Context, ownerID string) ([]*domain.Note, error)
	UpdateContentFunc func(ctx context.Context, id uint, content string) (*domain.Note, error)
	DeleteFunc        func(ctx context.Context, id uint) error
	DeleteByOwnerFunc func(ctx context.Context, ownerID string) error
}

// NewMockNoteRepository creates a new MockNoteRepository with default behaviors
func NewMockNoteRepository() *MockNoteRepository {
	return &MockNoteRepository{}
}

func (m *MockNoteRepository) Create(ctx context.Context, note *domain.Note) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, note)
	}
	return nil
}

func (m *MockNoteRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Note, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *MockNoteRepository) UpdateContent(ctx context.Context, id uint, content string) (*domain.Note, error) {
	if m.UpdateContentFunc != nil {
		return m.UpdateContentFunc(ctx, id, content)
	}
	return nil, domain.ErrNoteNotFound
}

func (m *MockNoteRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockNoteRepository) DeleteByOwner(ctx context.Context, ownerID string) error {
	if m.DeleteByOwnerFunc != nil {
		return m.DeleteByOwnerFunc(ctx, ownerID)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.NoteRepository = (*MockNoteRepository)(nil)
