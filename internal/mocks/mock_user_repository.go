package mocks

import (
	"context"
	"time"

	"github.com/RAGHAVAN7777/vault-backend/domain"
)

// MockUserRepository implements domain.UserRepository for testing
type MockUserRepository struct {
	CreateFunc               func(ctx context.Context, user *domain.User) error
	FindByUserIDFunc         func(ctx context.Context, userID string) (*domain.User, error)
	FindByEmailFunc          func(ctx context.Context, email string) (*domain.User, error)
	FindByUserIDAndEmailFunc func(ctx context.Context, userID, email string) (*domain.User, error)
	RoleExistsFunc           func(ctx context.Context, role domain.Role) (bool, error)
	UpdateFunc               func(ctx context.Context, user *domain.User) error
	SetRecoveryFunc          func(ctx context.Context, userID, code string, expiry time.Time) error
	AddStorageFunc           func(ctx context.Context, userID string, delta int64) error
	ReclaimStorageFunc       func(ctx context.Context, userID string, size int64) error
	ResetStorageFunc         func(ctx context.Context, userID string) error
	DeleteFunc               func(ctx context.Context, userID string) error
	ListAllFunc              func(ctx context.Context) ([]*domain.User, error)
	CountByRoleFunc          func(ctx context.Context) (map[domain.Role]int64, error)
	TotalStorageUsedFunc     func(ctx context.Context) (int64, error)
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByUserID(ctx context.Context, userID string) (*domain.User, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) FindByUserIDAndEmail(ctx context.Context, userID, email string) (*domain.User, error) {
	if m.FindByUserIDAndEmailFunc != nil {
		return m.FindByUserIDAndEmailFunc(ctx, userID, email)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) RoleExists(ctx context.Context, role domain.Role) (bool, error) {
	if m.RoleExistsFunc != nil {
		return m.RoleExistsFunc(ctx, role)
	}
	return false, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) SetRecovery(ctx context.Context, userID, code string, expiry time.Time) error {
	if m.SetRecoveryFunc != nil {
		return m.SetRecoveryFunc(ctx, userID, code, expiry)
	}
	return nil
}

func (m *MockUserRepository) AddStorage(ctx context.Context, userID string, delta int64) error {
	if m.AddStorageFunc != nil {
		return m.AddStorageFunc(ctx, userID, delta)
	}
	return nil
}

func (m *MockUserRepository) ReclaimStorage(ctx context.Context, userID string, size int64) error {
	if m.ReclaimStorageFunc != nil {
		return m.ReclaimStorageFunc(ctx, userID, size)
	}
	return nil
}

func (m *MockUserRepository) ResetStorage(ctx context.Context, userID string) error {
	if m.ResetStorageFunc != nil {
		return m.ResetStorageFunc(ctx, userID)
	}
	return nil
}

func (m *MockUserRepository) Delete(ctx context.Context, userID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID)
	}
	return nil
}

func (m *MockUserRepository) ListAll(ctx context.Context) ([]*domain.User, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserRepository) CountByRole(ctx context.Context) (map[domain.Role]int64, error) {
	if m.CountByRoleFunc != nil {
		return m.CountByRoleFunc(ctx)
	}
	return map[domain.Role]int64{}, nil
}

func (m *MockUserRepository) TotalStorageUsed(ctx context.Context) (int64, error) {
	if m.TotalStorageUsedFunc != nil {
		return m.TotalStorageUsedFunc(ctx)
	}
	return 0, nil
}

// Compile-time interface compliance verification
var _ domain.UserRepository = (*MockUserRepository)(nil)
