package repositories

import (
	"context"
	"time"

	"github.com/RAGHAVAN7777/vault-backend/domain"
	"gorm.io/gorm"
)

// NoteRepositoryImpl implements domain.NoteRepository using GORM
type NoteRepositoryImpl struct {
	db *gorm.DB
}

// DBNote represents the database model for Note
type DBNote struct {
	ID        uint      `gorm:"primaryKey"`
	OwnerID   string    `gorm:"index;size:64"`
	Title     string    `gorm:"size:255"`
	Content   string    ``
	CreatedAt time.Time ``
	UpdatedAt time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBNote) TableName() string {
	return "notes"
}

// NewNoteRepository creates a new note repository
func NewNoteRepository(db *gorm.DB) domain.NoteRepository {
	return &NoteRepositoryImpl{db: db}
}

// Create implements domain.NoteRepository
func (r *NoteRepositoryImpl) Create(ctx context.Context, note *domain.Note) error {
	dbNote := &DBNote{OwnerID: note.OwnerID, Title: note.Title, Content: note.Content}
	if err := r.db.WithContext(ctx).Create(dbNote).Error; err != nil {
		return err
	}
	note.ID = dbNote.ID
	note.CreatedAt = dbNote.CreatedAt
	note.UpdatedAt = dbNote.UpdatedAt
	return nil
}

// ListByOwner implements domain.NoteRepository, most recently updated first
func (r *NoteRepositoryImpl) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Note, error) {
	var dbNotes []DBNote
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).
		Order("updated_at DESC").Find(&dbNotes).Error
	if err != nil {
		return nil, err
	}
	notes := make([]*domain.Note, 0, len(dbNotes))
	for i := range dbNotes {
		notes = append(notes, r.dbToDomain(&dbNotes[i]))
	}
	return notes, nil
}

// UpdateContent implements domain.NoteRepository
func (r *NoteRepositoryImpl) UpdateContent(ctx context.Context, id uint, content string) (*domain.Note, error) {
	result := r.db.WithContext(ctx).Model(&DBNote{}).Where("id = ?", id).
		Update("content", content)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrNoteNotFound
	}

	var dbNote DBNote
	if err := r.db.WithContext(ctx).First(&dbNote, id).Error; err != nil {
		return nil, err
	}
	return r.dbToDomain(&dbNote), nil
}

// Delete implements domain.NoteRepository
func (r *NoteRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&DBNote{}, id).Error
}

// DeleteByOwner implements domain.NoteRepository
func (r *NoteRepositoryImpl) DeleteByOwner(ctx context.Context, ownerID string) error {
	return r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Delete(&DBNote{}).Error
}

func (r *NoteRepositoryImpl) dbToDomain(dbNote *DBNote) *domain.Note {
	return &domain.Note{
		ID:        dbNote.ID,
		OwnerID:   dbNote.OwnerID,
		Title:     dbNote.Title,
		Content:   dbNote.Content,
		CreatedAt: dbNote.CreatedAt,
		UpdatedAt: dbNote.UpdatedAt,
	}
}
