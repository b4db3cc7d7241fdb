package services

import (
	"context"
	"math"
	"time"

	"github.com/RAGHAVAN7777/vault-backend/domain"
)

// UnlimitedQuota marks a role with no storage ceiling
const UnlimitedQuota = int64(math.MaxInt64)

// Per-role storage ceilings
var storageLimits = map[domain.Role]int64{
	domain.RoleStandard:   5 * 1024 * 1024,
	domain.RoleElevated:   25 * 1024 * 1024,
	domain.RolePrivileged: UnlimitedQuota,
}

// Per-role content lifetimes; zero means content never expires
var expiryTimes = map[domain.Role]time.Duration{
	domain.RoleStandard:   12 * time.Hour,
	domain.RoleElevated:   36 * time.Hour,
	domain.RolePrivileged: 0,
}

// QuotaServiceImpl implements domain.QuotaService
type QuotaServiceImpl struct {
	userRepo domain.UserRepository
}

// NewQuotaService creates a new quota service
func NewQuotaService(userRepo domain.UserRepository) domain.QuotaService {
	return &QuotaServiceImpl{userRepo: userRepo}
}

// QuotaFor implements domain.QuotaService. Unknown roles get the
// standard ceiling.
func (s *QuotaServiceImpl) QuotaFor(role domain.Role) int64 {
	if limit, ok := storageLimits[role]; ok {
		return limit
	}
	return storageLimits[domain.RoleStandard]
}

// ExpiryFor implements domain.QuotaService. Unknown roles get the
// standard lifetime.
func (s *QuotaServiceImpl) ExpiryFor(role domain.Role) time.Duration {
	if d, ok := expiryTimes[role]; ok {
		return d
	}
	return expiryTimes[domain.RoleStandard]
}

// AdmitUpload implements domain.QuotaService. This is a check, not a
// reservation: two concurrent uploads can both pass before either
// commits, so usage may transiently overshoot by at most one accepted
// file. The caller commits only after the backing store takes the bytes.
func (s *QuotaServiceImpl) AdmitUpload(user *domain.User, incomingSize int64) error {
	limit := s.QuotaFor(user.Role)
	if limit == UnlimitedQuota {
		return nil
	}
	if user.StorageUsed+incomingSize > limit {
		return domain.ErrQuotaExceeded
	}
	return nil
}

// Commit implements domain.QuotaService
func (s *QuotaServiceImpl) Commit(ctx context.Context, userID string, size int64) error {
	return s.userRepo.AddStorage(ctx, userID, size)
}

// Reclaim implements domain.QuotaService
func (s *QuotaServiceImpl) Reclaim(ctx context.Context, userID string, size int64) error {
	return s.userRepo.ReclaimStorage(ctx, userID, size)
}
