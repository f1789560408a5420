package models

import (
	"github.com/ainotes/backend/internal/domain/notes"
	"github.com/google/uuid"
)

// NoteModel is the persistence model for notes
type NoteModel struct {
	AggregateModel
	Title   string    `gorm:"type:varchar(200);not null"`
	Content string    `gorm:"type:text;not null"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (NoteModel) TableName() string {
	return "notes"
}

// ToDomain converts the persistence model to a domain entity
func (m *NoteModel) ToDomain() *notes.Note {
	return &notes.Note{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Title:             m.Title,
		Content:           m.Content,
		UserID:            m.UserID,
	}
}

// NoteModelFromDomain converts a domain entity to the persistence model
func NoteModelFromDomain(note *notes.Note) *NoteModel {
	model := &NoteModel{
		Title:   note.Title,
		Content: note.Content,
		UserID:  note.UserID,
	}
	model.FromDomainAggregateRoot(note.BaseAggregateRoot)
	return model
}
