package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RAGHAVAN7777/vault-backend/domain"
	"github.com/RAGHAVAN7777/vault-backend/internal/mocks"
)

func TestAdminService_Stats(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates counts and storage", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		userRepo.CountByRoleFunc = func(ctx context.Context) (map[domain.Role]int64, error) {
			return map[domain.Role]int64{
				domain.RoleStandard:   10,
				domain.RoleElevated:   3,
				domain.RolePrivileged: 1,
			}, nil
		}
		userRepo.TotalStorageUsedFunc = func(ctx context.Context) (int64, error) {
			return 123456, nil
		}

		stats, err := NewAdminService(userRepo).Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(14), stats.TotalUsers)
		assert.Equal(t, int64(123456), stats.StorageUsed)
		assert.Equal(t, int64(10*1024*1024*1024), stats.StorageLimit)
		assert.Equal(t, stats.StorageLimit-stats.StorageUsed, stats.StorageFree)
		assert.Equal(t, int64(3), stats.UsersByRole[domain.RoleElevated])
	})

	t.Run("count failure surfaces", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		userRepo.CountByRoleFunc = func(ctx context.Context) (map[domain.Role]int64, error) {
			return nil, errors.New("db down")
		}

		_, err := NewAdminService(userRepo).Stats(ctx)
		assert.Error(t, err)
	})
}

func TestAdminService_Users(t *testing.T) {
	ctx := context.Background()
	userRepo := mocks.NewMockUserRepository()
	userRepo.ListAllFunc = func(ctx context.Context) ([]*domain.User, error) {
		return []*domain.User{{UserID: "u1"}, {UserID: "u2"}}, nil
	}

	users, err := NewAdminService(userRepo).Users(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestNoteService(t *testing.T) {
	ctx := context.Background()

	t.Run("create starts with empty content", func(t *testing.T) {
		noteRepo := mocks.NewMockNoteRepository()
		var created *domain.Note
		noteRepo.CreateFunc = func(ctx context.Context, note *domain.Note) error {
			created = note
			return nil
		}

		note, err := NewNoteService(noteRepo).Create(ctx, "u1", "groceries")
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "u1", note.OwnerID)
		assert.Equal(t, "groceries", note.Title)
		assert.Empty(t, note.Content)
	})

	t.Run("update of a missing note", func(t *testing.T) {
		svc := NewNoteService(mocks.NewMockNoteRepository())
		_, err := svc.Update(ctx, 42, "new content")
		assert.ErrorIs(t, err, domain.ErrNoteNotFound)
	})
}
