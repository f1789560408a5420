package notes

import (
	"time"

	"github.com/google/uuid"
)

// CreateNoteInput contains input for creating a note
type CreateNoteInput struct {
	UserID  uuid.UUID
	Title   string
	Content string
}

// UpdateNoteInput contains input for replacing a note's title and content
type UpdateNoteInput struct {
	NoteID  uuid.UUID
	UserID  uuid.UUID
	Title   string
	Content string
}

// GetNoteInput contains input for fetching a single note
type GetNoteInput struct {
	NoteID uuid.UUID
	UserID uuid.UUID
}

// DeleteNoteInput contains input for deleting a note
type DeleteNoteInput struct {
	NoteID uuid.UUID
	UserID uuid.UUID
}

// ListNotesInput contains input for listing a user's notes
type ListNotesInput struct {
	UserID uuid.UUID
}

// NoteInfo is the note representation returned by the service
type NoteInfo struct {
	ID        uuid.UUID
	Title     string
	Content   string
	UserID    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}
