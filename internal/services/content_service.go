package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/RAGHAVAN7777/vault-backend/domain"
)

// ContentServiceImpl implements domain.ContentService
type ContentServiceImpl struct {
	userRepo    domain.UserRepository
	contentRepo domain.ContentRepository
	quotaSvc    domain.QuotaService
	store       domain.ContentStore
}

// NewContentService creates a new content service
func NewContentService(
	userRepo domain.UserRepository,
	contentRepo domain.ContentRepository,
	quotaSvc domain.QuotaService,
	store domain.ContentStore,
) domain.ContentService {
	return &ContentServiceImpl{
		userRepo:    userRepo,
		contentRepo: contentRepo,
		quotaSvc:    quotaSvc,
		store:       store,
	}
}

// Upload implements domain.ContentService. Order matters: admission is
// checked first, the backing store must accept the bytes before any
// usage is committed, and the metadata record lands last. A backing
// store failure leaves no partial record behind.
func (s *ContentServiceImpl) Upload(ctx context.Context, userID, fileName, contentType string, size int64, body io.Reader) (*domain.ContentItem, error) {
	user, err := s.userRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.quotaSvc.AdmitUpload(user, size); err != nil {
		return nil, err
	}

	key := buildObjectKey(fileName)
	url, err := s.store.Put(ctx, key, body, size, contentType)
	if err != nil {
		return nil, fmt.Errorf("backing store rejected upload: %w", err)
	}

	if err := s.quotaSvc.Commit(ctx, userID, size); err != nil {
		// The bytes are stored but unaccounted; remove them rather
		// than leak unmetered storage.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			log.Error().Err(delErr).Str("key", key).Msg("failed to roll back stored object")
		}
		return nil, fmt.Errorf("failed to commit storage usage: %w", err)
	}

	item := &domain.ContentItem{
		OwnerID:      userID,
		FileName:     fileName,
		FileURL:      url,
		BackingRef:   key,
		ResourceKind: classifyResource(contentType),
		SizeBytes:    size,
		ExpiresAt:    s.expiryFor(user.Role),
	}

	if err := s.contentRepo.Create(ctx, item); err != nil {
		if reclaimErr := s.quotaSvc.Reclaim(ctx, userID, size); reclaimErr != nil {
			log.Error().Err(reclaimErr).Str("user_id", userID).Msg("failed to reclaim after record failure")
		}
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			log.Error().Err(delErr).Str("key", key).Msg("failed to roll back stored object")
		}
		return nil, fmt.Errorf("failed to record content item: %w", err)
	}

	log.Info().Str("user_id", userID).Str("key", key).Int64("size", size).Msg("upload committed")
	return item, nil
}

// Delete implements domain.ContentService. The backing-store delete is
// best effort (the object may already be gone). Quota is reclaimed
// before the record is dropped: a failed reclaim keeps the record, so
// the counter can still be reconciled on retry.
func (s *ContentServiceImpl) Delete(ctx context.Context, id uint) error {
	item, err := s.contentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrFileNotFound) {
			return nil
		}
		return err
	}

	if delErr := s.store.Delete(ctx, item.BackingRef); delErr != nil {
		log.Warn().Err(delErr).Str("key", item.BackingRef).Msg("backing store delete ignored (likely already gone)")
	}

	if err := s.quotaSvc.Reclaim(ctx, item.OwnerID, item.SizeBytes); err != nil {
		return fmt.Errorf("failed to reclaim storage: %w", err)
	}

	if err := s.contentRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete content record: %w", err)
	}

	return nil
}

// List implements domain.ContentService
func (s *ContentServiceImpl) List(ctx context.Context, userID string) ([]*domain.ContentItem, error) {
	return s.contentRepo.ListByOwner(ctx, userID)
}

// Usage implements domain.ContentService
func (s *ContentServiceImpl) Usage(ctx context.Context, userID string) (*domain.UsageSummary, error) {
	user, err := s.userRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &domain.UsageSummary{
		UserID:      user.UserID,
		Role:        user.Role,
		StorageUsed: user.StorageUsed,
		Limit:       s.quotaSvc.QuotaFor(user.Role),
	}, nil
}

func (s *ContentServiceImpl) expiryFor(role domain.Role) *time.Time {
	d := s.quotaSvc.ExpiryFor(role)
	if d == 0 {
		return nil
	}
	t := time.Now().Add(d)
	return &t
}

// classifyResource maps a MIME type to the coarse kind the backing
// store distinguishes
func classifyResource(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return "image"
	case strings.HasPrefix(contentType, "video/"):
		return "video"
	default:
		return "raw"
	}
}

// buildObjectKey derives a collision-free storage key from the original
// file name: lowercased base, non-alphanumerics collapsed to
// underscores, capped at 50 chars, extension preserved.
func buildObjectKey(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	base := strings.ToLower(strings.TrimSuffix(fileName, filepath.Ext(fileName)))
	var b strings.Builder
	for _, r := range base {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	sanitized := b.String()
	if len(sanitized) > 50 {
		sanitized = sanitized[:50]
	}

	d := time.Now().UTC()
	return fmt.Sprintf("vault/%d/%02d/%02d/%s_%s%s", d.Year(), d.Month(), d.Day(), sanitized, uuid.NewString(), ext)
}
