package services

import (
	"context"

	"github.com/RAGHAVAN7777/vault-backend/domain"
)

// NoteServiceImpl implements domain.NoteService. Notes are plain CRUD;
// the service layer exists only so handlers stay uniform.
type NoteServiceImpl struct {
	noteRepo domain.NoteRepository
}

// NewNoteService creates a new note service
func NewNoteService(noteRepo domain.NoteRepository) domain.NoteService {
	return &NoteServiceImpl{noteRepo: noteRepo}
}

// List implements domain.NoteService
func (s *NoteServiceImpl) List(ctx context.Context, userID string) ([]*domain.Note, error) {
	return s.noteRepo.ListByOwner(ctx, userID)
}

// Create implements domain.NoteService
func (s *NoteServiceImpl) Create(ctx context.Context, userID, title string) (*domain.Note, error) {
	note := &domain.Note{OwnerID: userID, Title: title, Content: ""}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// Update implements domain.NoteService
func (s *NoteServiceImpl) Update(ctx context.Context, id uint, content string) (*domain.Note, error) {
	return s.noteRepo.UpdateContent(ctx, id, content)
}

// Delete implements domain.NoteService
func (s *NoteServiceImpl) Delete(ctx context.Context, id uint) error {
	return s.noteRepo.Delete(ctx, id)
}
