package notes

import (
	"context"

	"github.com/google/uuid"
)

// NoteRepository defines persistence operations for notes
type NoteRepository interface {
	Create(ctx context.Context, note *Note) error
	Update(ctx context.Context, note *Note) error
	// Delete removes the note only when it belongs to userID
	Delete(ctx context.Context, id, userID uuid.UUID) error
	// FindByID returns the note only when it belongs to userID
	FindByID(ctx context.Context, id, userID uuid.UUID) (*Note, error)
	// FindByUserID returns all notes owned by userID, newest first
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*Note, error)
}
