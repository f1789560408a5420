package notes

import (
	"strings"

	"github.com/ainotes/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Maximum title length in characters
const maxTitleLength = 200

// Note represents a user-owned note
// It is the aggregate root for note operations
type Note struct {
	shared.BaseAggregateRoot
	Title   string
	Content string
	UserID  uuid.UUID
}

// NewNote creates a new note owned by the given user
func NewNote(userID uuid.UUID, title, content string) (*Note, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Note owner is required")
	}
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validateContent(content); err != nil {
		return nil, err
	}

	return &Note{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             strings.TrimSpace(title),
		Content:           content,
		UserID:            userID,
	}, nil
}

// Replace overwrites the note's title and content
func (n *Note) Replace(title, content string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	if err := validateContent(content); err != nil {
		return err
	}

	n.Title = strings.TrimSpace(title)
	n.Content = content
	n.Touch()
	n.IncrementVersion()

	return nil
}

// OwnedBy reports whether the note belongs to the given user
func (n *Note) OwnedBy(userID uuid.UUID) bool {
	return n.UserID == userID
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Title is required")
	}
	if len(title) > maxTitleLength {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot exceed 200 characters")
	}
	return nil
}

func validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return shared.NewDomainError("INVALID_CONTENT", "Content is required")
	}
	return nil
}
