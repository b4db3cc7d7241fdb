package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/RAGHAVAN7777/vault-backend/domain"
)

// PurgeServiceImpl implements domain.PurgeService
type PurgeServiceImpl struct {
	userRepo    domain.UserRepository
	contentRepo domain.ContentRepository
	noteRepo    domain.NoteRepository
	store       domain.ContentStore
	notifier    domain.Notifier
}

// NewPurgeService creates a new purge service
func NewPurgeService(
	userRepo domain.UserRepository,
	contentRepo domain.ContentRepository,
	noteRepo domain.NoteRepository,
	store domain.ContentStore,
	notifier domain.Notifier,
) domain.PurgeService {
	return &PurgeServiceImpl{
		userRepo:    userRepo,
		contentRepo: contentRepo,
		noteRepo:    noteRepo,
		store:       store,
		notifier:    notifier,
	}
}

// PurgeContent implements domain.PurgeService. Backing-store deletes
// fan out in parallel and are best effort; metadata and the usage
// counter are always reconciled. A retried purge simply finds fewer
// items, so partial completion needs no rollback.
func (s *PurgeServiceImpl) PurgeContent(ctx context.Context, userID string) error {
	if _, err := s.userRepo.FindByUserID(ctx, userID); err != nil {
		return err
	}
	return s.wipeContent(ctx, userID)
}

// RequestAccountPurgeOTP implements domain.PurgeService. Account
// destruction takes a dedicated challenge so a stolen session alone
// cannot trigger it. The code shares the recovery fields on the user
// record.
func (s *PurgeServiceImpl) RequestAccountPurgeOTP(ctx context.Context, userID string) error {
	user, err := s.userRepo.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}

	code, err := generateNumericCode(6)
	if err != nil {
		return fmt.Errorf("failed to generate destruction code: %w", err)
	}

	if err := s.userRepo.SetRecovery(ctx, userID, code, time.Now().Add(recoveryTTL)); err != nil {
		return fmt.Errorf("failed to store destruction code: %w", err)
	}

	body := fmt.Sprintf(
		"CRITICAL: You have requested the total destruction of your Vault account.\n\nYOUR_DESTRUCTION_TOKEN: %s\n\nThis token is valid for 5 minutes. If this wasn't you, secure your account immediately.", code)
	if err := s.notifier.Send(user.Email, "Vault - ACCOUNT_DESTRUCTION_VERIFICATION", body); err != nil {
		return fmt.Errorf("failed to send destruction token: %w", err)
	}

	return nil
}

// PurgeAccount implements domain.PurgeService
func (s *PurgeServiceImpl) PurgeAccount(ctx context.Context, userID, code string) error {
	user, err := s.userRepo.FindByUserID(ctx, userID)
	if err != nil {
		return domain.ErrInvalidOrExpiredToken
	}
	if !recoveryCodeValid(user, code) {
		return domain.ErrInvalidOrExpiredToken
	}

	return s.destroy(ctx, userID)
}

// DeleteUser implements domain.PurgeService. This is the operator
// path; the self-service path goes through the OTP challenge.
func (s *PurgeServiceImpl) DeleteUser(ctx context.Context, userID string) error {
	if _, err := s.userRepo.FindByUserID(ctx, userID); err != nil {
		return err
	}
	return s.destroy(ctx, userID)
}

func (s *PurgeServiceImpl) destroy(ctx context.Context, userID string) error {
	if err := s.wipeContent(ctx, userID); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	log.Info().Str("user_id", userID).Msg("account deleted")
	return nil
}

func (s *PurgeServiceImpl) wipeContent(ctx context.Context, userID string) error {
	items, err := s.contentRepo.ListByOwner(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to list content: %w", err)
	}

	s.fanOutDelete(ctx, items)

	if err := s.contentRepo.DeleteByOwner(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete content records: %w", err)
	}
	if err := s.noteRepo.DeleteByOwner(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete notes: %w", err)
	}
	if err := s.userRepo.ResetStorage(ctx, userID); err != nil {
		return fmt.Errorf("failed to reset storage counter: %w", err)
	}

	log.Info().Str("user_id", userID).Int("items", len(items)).Msg("content purged")
	return nil
}

// fanOutDelete deletes backing objects in parallel. Each result is
// captured and logged individually; failures are never aggregated into
// a failing result for the purge itself.
func (s *PurgeServiceImpl) fanOutDelete(ctx context.Context, items []*domain.ContentItem) {
	var wg sync.WaitGroup
	for _, item := range items {
		wg.Add(1)
		go func(item *domain.ContentItem) {
			defer wg.Done()
			if err := s.store.Delete(ctx, item.BackingRef); err != nil {
				log.Warn().Err(err).Str("key", item.BackingRef).Msg("purge: backing store delete failed")
				return
			}
			log.Debug().Str("key", item.BackingRef).Msg("purge: backing object deleted")
		}(item)
	}
	wg.Wait()
}
