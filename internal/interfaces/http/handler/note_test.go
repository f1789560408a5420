package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	appnotes "github.com/ainotes/backend/internal/application/notes"
	domainnotes "github.com/ainotes/backend/internal/domain/notes"
	"github.com/ainotes/backend/internal/domain/shared"
	"github.com/ainotes/backend/internal/infrastructure/auth"
	"github.com/ainotes/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockNoteRepository is a mock implementation of notes.NoteRepository
type MockNoteRepository struct {
	mock.Mock
}

func (m *MockNoteRepository) Create(ctx context.Context, note *domainnotes.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNoteRepository) Update(ctx context.Context, note *domainnotes.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNoteRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockNoteRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*domainnotes.Note, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainnotes.Note), args.Error(1)
}

func (m *MockNoteRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*domainnotes.Note, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domainnotes.Note), args.Error(1)
}

// noteTestEnv bundles the pieces a note handler test needs
type noteTestEnv struct {
	router *gin.Engine
	repo   *MockNoteRepository
	userID uuid.UUID
	token  string
}

func newNoteTestEnv(t *testing.T) *noteTestEnv {
	t.Helper()

	repo := new(MockNoteRepository)
	service := appnotes.NewNoteService(repo, zap.NewNop())
	noteHandler := NewNoteHandler(service)

	jwtService := auth.NewJWTService(testJWTConfig())
	userID := uuid.New()
	token, err := jwtService.GenerateAccessToken(auth.GenerateTokenInput{
		UserID: userID,
		Email:  "alice@example.com",
	})
	require.NoError(t, err)

	router := gin.New()
	router.Use(middleware.JWTAuthMiddleware(jwtService))
	api := router.Group("/api")
	noteHandler.RegisterRoutes(api)

	return &noteTestEnv{
		router: router,
		repo:   repo,
		userID: userID,
		token:  token.Token,
	}
}

func (e *noteTestEnv) request(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.token)

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestNoteHandler_List(t *testing.T) {
	t.Run("returns user's notes", func(t *testing.T) {
		env := newNoteTestEnv(t)

		note, err := domainnotes.NewNote(env.userID, "Shopping list", "milk, eggs")
		require.NoError(t, err)
		env.repo.On("FindByUserID", mock.Anything, env.userID).
			Return([]*domainnotes.Note{note}, nil)

		rec := env.request(t, http.MethodGet, "/api/notes", nil)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Success bool             `json:"success"`
			Data    NoteListResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Data.Notes, 1)
		assert.Equal(t, "Shopping list", body.Data.Notes[0].Title)
	})

	t.Run("returns empty list", func(t *testing.T) {
		env := newNoteTestEnv(t)
		env.repo.On("FindByUserID", mock.Anything, env.userID).
			Return([]*domainnotes.Note{}, nil)

		rec := env.request(t, http.MethodGet, "/api/notes", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("returns 401 without token", func(t *testing.T) {
		env := newNoteTestEnv(t)

		req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestNoteHandler_Create(t *testing.T) {
	t.Run("creates note and returns 201", func(t *testing.T) {
		env := newNoteTestEnv(t)
		env.repo.On("Create", mock.Anything, mock.AnythingOfType("*notes.Note")).Return(nil)

		rec := env.request(t, http.MethodPost, "/api/notes", CreateNoteRequest{
			Title:   "Shopping list",
			Content: "milk, eggs",
		})

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "Shopping list")
		env.repo.AssertExpectations(t)
	})

	t.Run("returns 400 for missing title", func(t *testing.T) {
		env := newNoteTestEnv(t)

		rec := env.request(t, http.MethodPost, "/api/notes", CreateNoteRequest{
			Content: "milk, eggs",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestNoteHandler_Get(t *testing.T) {
	t.Run("returns owned note", func(t *testing.T) {
		env := newNoteTestEnv(t)

		note, err := domainnotes.NewNote(env.userID, "Title", "content")
		require.NoError(t, err)
		env.repo.On("FindByID", mock.Anything, note.ID, env.userID).Return(note, nil)

		rec := env.request(t, http.MethodGet, "/api/notes/"+note.ID.String(), nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Title")
	})

	t.Run("returns 404 for foreign note", func(t *testing.T) {
		env := newNoteTestEnv(t)
		noteID := uuid.New()
		env.repo.On("FindByID", mock.Anything, noteID, env.userID).
			Return(nil, shared.ErrNotFound)

		rec := env.request(t, http.MethodGet, "/api/notes/"+noteID.String(), nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("returns 404 for malformed id", func(t *testing.T) {
		env := newNoteTestEnv(t)

		rec := env.request(t, http.MethodGet, "/api/notes/not-a-uuid", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestNoteHandler_Update(t *testing.T) {
	t.Run("replaces note content", func(t *testing.T) {
		env := newNoteTestEnv(t)

		note, err := domainnotes.NewNote(env.userID, "Old", "old content")
		require.NoError(t, err)
		env.repo.On("FindByID", mock.Anything, note.ID, env.userID).Return(note, nil)
		env.repo.On("Update", mock.Anything, note).Return(nil)

		rec := env.request(t, http.MethodPut, "/api/notes/"+note.ID.String(), UpdateNoteRequest{
			Title:   "New",
			Content: "new content",
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "new content")
	})

	t.Run("returns 404 for foreign note", func(t *testing.T) {
		env := newNoteTestEnv(t)
		noteID := uuid.New()
		env.repo.On("FindByID", mock.Anything, noteID, env.userID).
			Return(nil, shared.ErrNotFound)

		rec := env.request(t, http.MethodPut, "/api/notes/"+noteID.String(), UpdateNoteRequest{
			Title:   "New",
			Content: "new content",
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
		env.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestNoteHandler_Delete(t *testing.T) {
	t.Run("deletes owned note", func(t *testing.T) {
		env := newNoteTestEnv(t)
		noteID := uuid.New()
		env.repo.On("Delete", mock.Anything, noteID, env.userID).Return(nil)

		rec := env.request(t, http.MethodDelete, "/api/notes/"+noteID.String(), nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		env.repo.AssertExpectations(t)
	})

	t.Run("returns 404 for foreign note", func(t *testing.T) {
		env := newNoteTestEnv(t)
		noteID := uuid.New()
		env.repo.On("Delete", mock.Anything, noteID, env.userID).
			Return(shared.ErrNotFound)

		rec := env.request(t, http.MethodDelete, "/api/notes/"+noteID.String(), nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
