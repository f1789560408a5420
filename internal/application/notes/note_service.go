package notes

import (
	"context"

	"github.com/ainotes/backend/internal/domain/notes"
	"github.com/ainotes/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// NoteService handles note operations. Every operation is scoped to the
// authenticated owner; a note belonging to another user is reported as
// not found.
type NoteService struct {
	noteRepo notes.NoteRepository
	logger   *zap.Logger
}

// NewNoteService creates a new note service
func NewNoteService(noteRepo notes.NoteRepository, logger *zap.Logger) *NoteService {
	return &NoteService{
		noteRepo: noteRepo,
		logger:   logger,
	}
}

// Create creates a new note for the given user
func (s *NoteService) Create(ctx context.Context, input CreateNoteInput) (*NoteInfo, error) {
	note, err := notes.NewNote(input.UserID, input.Title, input.Content)
	if err != nil {
		return nil, err
	}

	if err := s.noteRepo.Create(ctx, note); err != nil {
		s.logger.Error("Failed to create note",
			zap.String("user_id", input.UserID.String()),
			zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create note")
	}

	s.logger.Info("Note created",
		zap.String("note_id", note.ID.String()),
		zap.String("user_id", note.UserID.String()))

	return toNoteInfo(note), nil
}

// Get returns a single note owned by the given user
func (s *NoteService) Get(ctx context.Context, input GetNoteInput) (*NoteInfo, error) {
	note, err := s.noteRepo.FindByID(ctx, input.NoteID, input.UserID)
	if err != nil {
		return nil, err
	}
	return toNoteInfo(note), nil
}

// List returns all notes owned by the given user, newest first
func (s *NoteService) List(ctx context.Context, input ListNotesInput) ([]*NoteInfo, error) {
	found, err := s.noteRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		s.logger.Error("Failed to list notes",
			zap.String("user_id", input.UserID.String()),
			zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list notes")
	}

	result := make([]*NoteInfo, len(found))
	for i, note := range found {
		result[i] = toNoteInfo(note)
	}
	return result, nil
}

// Update replaces the title and content of a note owned by the given user
func (s *NoteService) Update(ctx context.Context, input UpdateNoteInput) (*NoteInfo, error) {
	note, err := s.noteRepo.FindByID(ctx, input.NoteID, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := note.Replace(input.Title, input.Content); err != nil {
		return nil, err
	}

	if err := s.noteRepo.Update(ctx, note); err != nil {
		if err == shared.ErrNotFound {
			return nil, err
		}
		s.logger.Error("Failed to update note",
			zap.String("note_id", note.ID.String()),
			zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update note")
	}

	s.logger.Info("Note updated", zap.String("note_id", note.ID.String()))
	return toNoteInfo(note), nil
}

// Delete removes a note owned by the given user
func (s *NoteService) Delete(ctx context.Context, input DeleteNoteInput) error {
	if err := s.noteRepo.Delete(ctx, input.NoteID, input.UserID); err != nil {
		if err == shared.ErrNotFound {
			return err
		}
		s.logger.Error("Failed to delete note",
			zap.String("note_id", input.NoteID.String()),
			zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete note")
	}

	s.logger.Info("Note deleted",
		zap.String("note_id", input.NoteID.String()),
		zap.String("user_id", input.UserID.String()))
	return nil
}

func toNoteInfo(note *notes.Note) *NoteInfo {
	return &NoteInfo{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		UserID:    note.UserID,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}
