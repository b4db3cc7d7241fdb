package services

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/RAGHAVAN7777/vault-backend/domain"
)

// Reaper is the background sweep that deletes expired content and
// reclaims the owner's quota. One goroutine runs each sweep to
// completion before the next tick is received, so sweeps never overlap;
// a tick arriving mid-sweep is coalesced by the ticker.
type Reaper struct {
	contentRepo domain.ContentRepository
	quotaSvc    domain.QuotaService
	store       domain.ContentStore
	interval    time.Duration
}

// NewReaper creates a new expiry reaper
func NewReaper(contentRepo domain.ContentRepository, quotaSvc domain.QuotaService, store domain.ContentStore, interval time.Duration) *Reaper {
	return &Reaper{
		contentRepo: contentRepo,
		quotaSvc:    quotaSvc,
		store:       store,
		interval:    interval,
	}
}

// Run blocks until ctx is cancelled, sweeping once per interval
func (r *Reaper) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	log.Info().Dur("interval", r.interval).Msg("reaper started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("reaper stopped")
			return
		case <-ticker.C:
			r.Sweep(ctx)
		}
	}
}

// Sweep deletes every content item whose expiry has passed. Items are
// handled independently: one failure never blocks the rest. The
// metadata record goes last, which makes a repeated sweep over the same
// item safe.
func (r *Reaper) Sweep(ctx context.Context) (purged int) {
	items, err := r.contentRepo.ListExpired(ctx, time.Now())
	if err != nil {
		log.Error().Err(err).Msg("reaper: failed to list expired items")
		return 0
	}
	if len(items) == 0 {
		return 0
	}

	log.Info().Int("count", len(items)).Msg("reaper: purging expired items")

	for _, item := range items {
		if err := r.store.Delete(ctx, item.BackingRef); err != nil {
			// The backing object may already be gone; metadata
			// cleanup continues regardless.
			log.Warn().Err(err).Str("key", item.BackingRef).Msg("reaper: backing store delete failed")
		}

		if err := r.quotaSvc.Reclaim(ctx, item.OwnerID, item.SizeBytes); err != nil {
			log.Error().Err(err).Str("user_id", item.OwnerID).Msg("reaper: reclaim failed, keeping record for next sweep")
			continue
		}

		if err := r.contentRepo.DeleteByID(ctx, item.ID); err != nil {
			log.Error().Err(err).Uint("id", item.ID).Msg("reaper: failed to delete content record")
			continue
		}

		purged++
		log.Info().Str("file", item.FileName).Str("user_id", item.OwnerID).Msg("reaper: purged")
	}

	return purged
}
