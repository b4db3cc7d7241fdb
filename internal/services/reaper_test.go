package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RAGHAVAN7777/vault-backend/domain"
	"github.com/RAGHAVAN7777/vault-backend/internal/mocks"
)

func expiredItems() []*domain.ContentItem {
	past := time.Now().Add(-time.Hour)
	return []*domain.ContentItem{
		{ID: 1, OwnerID: "u1", FileName: "a.jpg", BackingRef: "k1", SizeBytes: 100, ExpiresAt: &past},
		{ID: 2, OwnerID: "u1", FileName: "b.jpg", BackingRef: "k2", SizeBytes: 200, ExpiresAt: &past},
		{ID: 3, OwnerID: "u2", FileName: "c.mp4", BackingRef: "k3", SizeBytes: 300, ExpiresAt: &past},
	}
}

func TestReaper_Sweep(t *testing.T) {
	ctx := context.Background()

	t.Run("purges all expired items and reclaims per owner", func(t *testing.T) {
		contentRepo := mocks.NewMockContentRepository()
		quotaSvc := mocks.NewMockQuotaService()
		store := mocks.NewMockContentStore()

		contentRepo.ListExpiredFunc = func(ctx context.Context, now time.Time) ([]*domain.ContentItem, error) {
			return expiredItems(), nil
		}
		reclaimedByOwner := map[string]int64{}
		quotaSvc.ReclaimFunc = func(ctx context.Context, userID string, size int64) error {
			reclaimedByOwner[userID] += size
			return nil
		}
		var deletedIDs []uint
		contentRepo.DeleteByIDFunc = func(ctx context.Context, id uint) error {
			deletedIDs = append(deletedIDs, id)
			return nil
		}

		r := NewReaper(contentRepo, quotaSvc, store, time.Minute)
		purged := r.Sweep(ctx)

		assert.Equal(t, 3, purged)
		assert.Equal(t, []uint{1, 2, 3}, deletedIDs)
		assert.Equal(t, int64(300), reclaimedByOwner["u1"])
		assert.Equal(t, int64(300), reclaimedByOwner["u2"])
		assert.ElementsMatch(t, []string{"k1", "k2", "k3"}, store.DeletedKeys())
	})

	t.Run("nothing expired", func(t *testing.T) {
		r := NewReaper(mocks.NewMockContentRepository(), mocks.NewMockQuotaService(), mocks.NewMockContentStore(), time.Minute)
		assert.Equal(t, 0, r.Sweep(ctx))
	})

	t.Run("list failure aborts the sweep", func(t *testing.T) {
		contentRepo := mocks.NewMockContentRepository()
		contentRepo.ListExpiredFunc = func(ctx context.Context, now time.Time) ([]*domain.ContentItem, error) {
			return nil, errors.New("db down")
		}

		r := NewReaper(contentRepo, mocks.NewMockQuotaService(), mocks.NewMockContentStore(), time.Minute)
		assert.Equal(t, 0, r.Sweep(ctx))
	})

	t.Run("backing store failure does not block metadata cleanup", func(t *testing.T) {
		contentRepo := mocks.NewMockContentRepository()
		store := mocks.NewMockContentStore()

		contentRepo.ListExpiredFunc = func(ctx context.Context, now time.Time) ([]*domain.ContentItem, error) {
			return expiredItems(), nil
		}
		store.DeleteFunc = func(ctx context.Context, key string) error {
			return errors.New("object already gone")
		}

		r := NewReaper(contentRepo, mocks.NewMockQuotaService(), store, time.Minute)
		assert.Equal(t, 3, r.Sweep(ctx))
	})

	t.Run("reclaim failure keeps the record for the next sweep", func(t *testing.T) {
		contentRepo := mocks.NewMockContentRepository()
		quotaSvc := mocks.NewMockQuotaService()

		contentRepo.ListExpiredFunc = func(ctx context.Context, now time.Time) ([]*domain.ContentItem, error) {
			return expiredItems(), nil
		}
		quotaSvc.ReclaimFunc = func(ctx context.Context, userID string, size int64) error {
			if userID == "u2" {
				return errors.New("db timeout")
			}
			return nil
		}
		var deletedIDs []uint
		contentRepo.DeleteByIDFunc = func(ctx context.Context, id uint) error {
			deletedIDs = append(deletedIDs, id)
			return nil
		}

		r := NewReaper(contentRepo, quotaSvc, mocks.NewMockContentStore(), time.Minute)
		purged := r.Sweep(ctx)

		assert.Equal(t, 2, purged)
		assert.Equal(t, []uint{1, 2}, deletedIDs)
	})
}

func TestReaper_RunStopsOnCancel(t *testing.T) {
	contentRepo := mocks.NewMockContentRepository()
	var sweeps atomic.Int32
	contentRepo.ListExpiredFunc = func(ctx context.Context, now time.Time) ([]*domain.ContentItem, error) {
		sweeps.Add(1)
		return nil, nil
	}

	r := NewReaper(contentRepo, mocks.NewMockQuotaService(), mocks.NewMockContentStore(), 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return sweeps.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("reaper did not stop after cancellation")
	}
}
