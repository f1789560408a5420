package client

import (
	"strings"
	"sync"

	"github.com/ainotes/backend/internal/domain/ai"
	"github.com/google/uuid"
)

// SessionStore holds the CLI's mutable session state: the logged-in user,
// a cache of their notes and the running chat transcript. Safe for
// concurrent use.
type SessionStore struct {
	mu         sync.RWMutex
	user       *User
	notes      []Note
	transcript []ai.Message
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// SetUser records the logged-in user.
func (s *SessionStore) SetUser(user User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
}

// User returns the logged-in user, or false when logged out.
func (s *SessionStore) User() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// Reset clears all session state. Used on logout.
func (s *SessionStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.notes = nil
	s.transcript = nil
}

// SetNotes replaces the note cache with a fresh listing.
func (s *SessionStore) SetNotes(notes []Note) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = make([]Note, len(notes))
	copy(s.notes, notes)
}

// AddNote prepends a newly created note, keeping newest-first order.
func (s *SessionStore) AddNote(note Note) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = append([]Note{note}, s.notes...)
}

// UpdateNote replaces the cached copy of a note in place. Returns false
// when the note is not cached.
func (s *SessionStore) UpdateNote(note Note) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notes {
		if s.notes[i].ID == note.ID {
			s.notes[i] = note
			return true
		}
	}
	return false
}

// RemoveNote drops a note from the cache. Returns false when the note is
// not cached.
func (s *SessionStore) RemoveNote(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notes {
		if s.notes[i].ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			return true
		}
	}
	return false
}

// Notes returns a copy of the cached notes.
func (s *SessionStore) Notes() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// Note looks up a cached note by ID.
func (s *SessionStore) Note(id uuid.UUID) (Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, note := range s.notes {
		if note.ID == id {
			return note, true
		}
	}
	return Note{}, false
}

// BuildNoteContext joins the cached note contents into a single context
// blob for text generation, blank-line separated.
func (s *SessionStore) BuildNoteContext() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	contents := make([]string, len(s.notes))
	for i, note := range s.notes {
		contents[i] = note.Content
	}
	return strings.Join(contents, "\n\n")
}

// AppendUserMessage adds a user turn to the transcript and returns the
// full transcript including it.
func (s *SessionStore) AppendUserMessage(content string) []ai.Message {
	return s.appendMessage(ai.RoleUser, content)
}

// AppendAIMessage adds a model turn to the transcript and returns the
// full transcript including it.
func (s *SessionStore) AppendAIMessage(content string) []ai.Message {
	return s.appendMessage(ai.RoleAI, content)
}

func (s *SessionStore) appendMessage(role, content string) []ai.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = append(s.transcript, ai.Message{Role: role, Content: content})
	out := make([]ai.Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Transcript returns a copy of the chat transcript.
func (s *SessionStore) Transcript() []ai.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ai.Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// ResetTranscript clears the chat transcript without touching the rest
// of the session.
func (s *SessionStore) ResetTranscript() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = nil
}
