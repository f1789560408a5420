package handler

import (
	"time"

	"github.com/ainotes/backend/internal/application/notes"
	"github.com/google/uuid"
)

// CreateNoteRequest represents the request body for creating a note
type CreateNoteRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content" binding:"required"`
}

// UpdateNoteRequest represents the request body for replacing a note
type UpdateNoteRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content" binding:"required"`
}

// NoteResponse represents a note in API responses
type NoteResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteListResponse represents the response body for listing notes
type NoteListResponse struct {
	Notes []NoteResponse `json:"notes"`
}

func toNoteResponse(note *notes.NoteInfo) NoteResponse {
	return NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		UserID:    note.UserID,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}
