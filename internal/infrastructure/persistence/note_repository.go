package persistence

import (
	"context"
	"errors"

	"github.com/ainotes/backend/internal/domain/notes"
	"github.com/ainotes/backend/internal/domain/shared"
	"github.com/ainotes/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormNoteRepository implements notes.NoteRepository using GORM.
// All lookups are scoped to the owning user so a note belonging to
// someone else is indistinguishable from a missing one.
type GormNoteRepository struct {
	db *gorm.DB
}

// NewGormNoteRepository creates a new GormNoteRepository
func NewGormNoteRepository(db *gorm.DB) *GormNoteRepository {
	return &GormNoteRepository{db: db}
}

// Create creates a new note
func (r *GormNoteRepository) Create(ctx context.Context, note *notes.Note) error {
	model := models.NoteModelFromDomain(note)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing note, scoped to its owner
func (r *GormNoteRepository) Update(ctx context.Context, note *notes.Note) error {
	model := models.NoteModelFromDomain(note)
	result := r.db.WithContext(ctx).
		Model(&models.NoteModel{}).
		Where("id = ? AND user_id = ?", note.ID, note.UserID).
		Updates(map[string]any{
			"title":      model.Title,
			"content":    model.Content,
			"updated_at": model.UpdatedAt,
			"version":    model.Version,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a note owned by the given user
func (r *GormNoteRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.NoteModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a note by ID, scoped to the given owner
func (r *GormNoteRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*notes.Note, error) {
	var model models.NoteModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByUserID returns all notes owned by the given user, newest first
func (r *GormNoteRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*notes.Note, error) {
	var noteModels []*models.NoteModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&noteModels).Error; err != nil {
		return nil, err
	}

	result := make([]*notes.Note, len(noteModels))
	for i, model := range noteModels {
		result[i] = model.ToDomain()
	}
	return result, nil
}

// Ensure GormNoteRepository implements NoteRepository
var _ notes.NoteRepository = (*GormNoteRepository)(nil)
