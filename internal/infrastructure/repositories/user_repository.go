package repositories

import (
	"context"
	"time"

	"github.com/RAGHAVAN7777/vault-backend/domain"
	"gorm.io/gorm"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID             uint       `gorm:"primaryKey"`
	UserID         string     `gorm:"uniqueIndex;size:64"`
	Email          string     `gorm:"uniqueIndex;size:255"`
	Role           string     `gorm:"index;size:32"`
	PINHash        string     `gorm:"column:pin_hash"`
	Verified       bool       `gorm:"index"`
	StorageUsed    int64      `gorm:"not null;default:0"`
	RecoveryCode   string     `gorm:"size:16"`
	RecoveryExpiry *time.Time ``
	CreatedAt      time.Time  `gorm:"index"`
	UpdatedAt      time.Time  ``
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		return err
	}
	user.ID = dbUser.ID
	return nil
}

// FindByUserID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByUserID(ctx context.Context, userID string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByUserIDAndEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByUserIDAndEmail(ctx context.Context, userID, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("user_id = ? AND email = ?", userID, email).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// RoleExists implements domain.UserRepository
func (r *UserRepositoryImpl) RoleExists(ctx context.Context, role domain.Role) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBUser{}).Where("role = ?", string(role)).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update implements domain.UserRepository
func (r *UserRepositoryImpl) Update(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	return r.db.WithContext(ctx).Save(dbUser).Error
}

// SetRecovery implements domain.UserRepository
func (r *UserRepositoryImpl) SetRecovery(ctx context.Context, userID, code string, expiry time.Time) error {
	return r.db.WithContext(ctx).Model(&DBUser{}).Where("user_id = ?", userID).
		Updates(map[string]interface{}{"recovery_code": code, "recovery_expiry": expiry}).Error
}

// AddStorage implements domain.UserRepository. The increment happens in
// one SQL statement so concurrent commits never lose updates.
func (r *UserRepositoryImpl) AddStorage(ctx context.Context, userID string, delta int64) error {
	return r.db.WithContext(ctx).Model(&DBUser{}).Where("user_id = ?", userID).
		Update("storage_used", gorm.Expr("storage_used + ?", delta)).Error
}

// ReclaimStorage implements domain.UserRepository. Floored at zero to
// stay defensive against a double reclaim.
func (r *UserRepositoryImpl) ReclaimStorage(ctx context.Context, userID string, size int64) error {
	return r.db.WithContext(ctx).Model(&DBUser{}).Where("user_id = ?", userID).
		Update("storage_used", gorm.Expr(
			"CASE WHEN storage_used >= ? THEN storage_used - ? ELSE 0 END", size, size)).Error
}

// ResetStorage implements domain.UserRepository
func (r *UserRepositoryImpl) ResetStorage(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Model(&DBUser{}).Where("user_id = ?", userID).
		Update("storage_used", 0).Error
}

// Delete implements domain.UserRepository
func (r *UserRepositoryImpl) Delete(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&DBUser{}).Error
}

// ListAll implements domain.UserRepository
func (r *UserRepositoryImpl) ListAll(ctx context.Context) ([]*domain.User, error) {
	var dbUsers []DBUser
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&dbUsers).Error; err != nil {
		return nil, err
	}
	users := make([]*domain.User, 0, len(dbUsers))
	for i := range dbUsers {
		users = append(users, r.dbToDomain(&dbUsers[i]))
	}
	return users, nil
}

// CountByRole implements domain.UserRepository
func (r *UserRepositoryImpl) CountByRole(ctx context.Context) (map[domain.Role]int64, error) {
	type roleCount struct {
		Role  string
		Count int64
	}
	var rows []roleCount
	err := r.db.WithContext(ctx).Model(&DBUser{}).
		Select("role, count(*) as count").Group("role").Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[domain.Role]int64, len(rows))
	for _, row := range rows {
		counts[domain.Role(row.Role)] = row.Count
	}
	return counts, nil
}

// TotalStorageUsed implements domain.UserRepository
func (r *UserRepositoryImpl) TotalStorageUsed(ctx context.Context) (int64, error) {
	var total *int64
	err := r.db.WithContext(ctx).Model(&DBUser{}).
		Select("sum(storage_used)").Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

// domainToDB converts domain user to database user. CreatedAt must be
// carried: Save writes every column, and a zero value here would
// overwrite the row's original timestamp.
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:             user.ID,
		UserID:         user.UserID,
		Email:          user.Email,
		Role:           string(user.Role),
		PINHash:        user.PINHash,
		Verified:       user.Verified,
		StorageUsed:    user.StorageUsed,
		RecoveryCode:   user.RecoveryCode,
		RecoveryExpiry: user.RecoveryExpiry,
		CreatedAt:      user.CreatedAt,
	}
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:             dbUser.ID,
		UserID:         dbUser.UserID,
		Email:          dbUser.Email,
		Role:           domain.Role(dbUser.Role),
		PINHash:        dbUser.PINHash,
		Verified:       dbUser.Verified,
		StorageUsed:    dbUser.StorageUsed,
		RecoveryCode:   dbUser.RecoveryCode,
		RecoveryExpiry: dbUser.RecoveryExpiry,
		CreatedAt:      dbUser.CreatedAt,
		UpdatedAt:      dbUser.UpdatedAt,
	}
}
