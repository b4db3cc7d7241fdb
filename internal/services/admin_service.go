package services

import (
	"context"
	"fmt"

	"github.com/RAGHAVAN7777/vault-backend/domain"
)

// deploymentStorageLimit is the fixed ceiling the stats dashboard
// reports against
const deploymentStorageLimit = int64(10 * 1024 * 1024 * 1024)

// AdminServiceImpl implements domain.AdminService
type AdminServiceImpl struct {
	userRepo domain.UserRepository
}

// NewAdminService creates a new admin reporting service
func NewAdminService(userRepo domain.UserRepository) domain.AdminService {
	return &AdminServiceImpl{userRepo: userRepo}
}

// Stats implements domain.AdminService
func (s *AdminServiceImpl) Stats(ctx context.Context) (*domain.SystemStats, error) {
	counts, err := s.userRepo.CountByRole(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	var total int64
	for _, n := range counts {
		total += n
	}

	used, err := s.userRepo.TotalStorageUsed(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum storage: %w", err)
	}

	return &domain.SystemStats{
		TotalUsers:   total,
		UsersByRole:  counts,
		StorageUsed:  used,
		StorageLimit: deploymentStorageLimit,
		StorageFree:  deploymentStorageLimit - used,
	}, nil
}

// Users implements domain.AdminService
func (s *AdminServiceImpl) Users(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.ListAll(ctx)
}
