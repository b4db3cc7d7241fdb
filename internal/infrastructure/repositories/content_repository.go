package repositories

import (
	"context"
	"time"

	"github.com/RAGHAVAN7777/vault-backend/domain"
	"gorm.io/gorm"
)

// ContentRepositoryImpl implements domain.ContentRepository using GORM
type ContentRepositoryImpl struct {
	db *gorm.DB
}

// DBContentItem represents the database model for ContentItem
type DBContentItem struct {
	ID           uint       `gorm:"primaryKey"`
	OwnerID      string     `gorm:"index;size:64"`
	FileName     string     `gorm:"size:255"`
	FileURL      string     `gorm:"size:1024"`
	BackingRef   string     `gorm:"uniqueIndex;size:255"`
	ResourceKind string     `gorm:"size:16"`
	SizeBytes    int64      `gorm:"not null"`
	ExpiresAt    *time.Time `gorm:"index"`
	CreatedAt    time.Time  `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBContentItem) TableName() string {
	return "files"
}

// NewContentRepository creates a new content metadata repository
func NewContentRepository(db *gorm.DB) domain.ContentRepository {
	return &ContentRepositoryImpl{db: db}
}

// Create implements domain.ContentRepository
func (r *ContentRepositoryImpl) Create(ctx context.Context, item *domain.ContentItem) error {
	dbItem := r.domainToDB(item)
	if err := r.db.WithContext(ctx).Create(dbItem).Error; err != nil {
		return err
	}
	item.ID = dbItem.ID
	item.CreatedAt = dbItem.CreatedAt
	return nil
}

// FindByID implements domain.ContentRepository
func (r *ContentRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.ContentItem, error) {
	var dbItem DBContentItem
	err := r.db.WithContext(ctx).First(&dbItem, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrFileNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbItem), nil
}

// ListByOwner implements domain.ContentRepository, newest first
func (r *ContentRepositoryImpl) ListByOwner(ctx context.Context, ownerID string) ([]*domain.ContentItem, error) {
	var dbItems []DBContentItem
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).
		Order("created_at DESC").Find(&dbItems).Error
	if err != nil {
		return nil, err
	}
	return r.dbToDomainSlice(dbItems), nil
}

// ListExpired implements domain.ContentRepository. Items with a null
// expires_at never expire.
func (r *ContentRepositoryImpl) ListExpired(ctx context.Context, now time.Time) ([]*domain.ContentItem, error) {
	var dbItems []DBContentItem
	err := r.db.WithContext(ctx).
		Where("expires_at IS NOT NULL AND expires_at < ?", now).
		Find(&dbItems).Error
	if err != nil {
		return nil, err
	}
	return r.dbToDomainSlice(dbItems), nil
}

// DeleteByID implements domain.ContentRepository
func (r *ContentRepositoryImpl) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&DBContentItem{}, id).Error
}

// DeleteByOwner implements domain.ContentRepository
func (r *ContentRepositoryImpl) DeleteByOwner(ctx context.Context, ownerID string) error {
	return r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Delete(&DBContentItem{}).Error
}

func (r *ContentRepositoryImpl) dbToDomainSlice(dbItems []DBContentItem) []*domain.ContentItem {
	items := make([]*domain.ContentItem, 0, len(dbItems))
	for i := range dbItems {
		items = append(items, r.dbToDomain(&dbItems[i]))
	}
	return items
}

func (r *ContentRepositoryImpl) domainToDB(item *domain.ContentItem) *DBContentItem {
	return &DBContentItem{
		ID:           item.ID,
		OwnerID:      item.OwnerID,
		FileName:     item.FileName,
		FileURL:      item.FileURL,
		BackingRef:   item.BackingRef,
		ResourceKind: item.ResourceKind,
		SizeBytes:    item.SizeBytes,
		ExpiresAt:    item.ExpiresAt,
	}
}

func (r *ContentRepositoryImpl) dbToDomain(dbItem *DBContentItem) *domain.ContentItem {
	return &domain.ContentItem{
		ID:           dbItem.ID,
		OwnerID:      dbItem.OwnerID,
		FileName:     dbItem.FileName,
		FileURL:      dbItem.FileURL,
		BackingRef:   dbItem.BackingRef,
		ResourceKind: dbItem.ResourceKind,
		SizeBytes:    dbItem.SizeBytes,
		ExpiresAt:    dbItem.ExpiresAt,
		CreatedAt:    dbItem.CreatedAt,
	}
}
