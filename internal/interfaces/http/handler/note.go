package handler

import (
	"github.com/ainotes/backend/internal/application/notes"
	"github.com/ainotes/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NoteHandler handles note-related HTTP requests
type NoteHandler struct {
	BaseHandler
	noteService *notes.NoteService
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(noteService *notes.NoteService) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
	}
}

// List godoc
// @Summary      List notes
// @Description  List all notes owned by the authenticated user, newest first
// @Tags         notes
// @Produce      json
// @Success      200 {object} dto.Response{data=NoteListResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /notes [get]
func (h *NoteHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.noteService.List(c.Request.Context(), notes.ListNotesInput{
		UserID: userID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	items := make([]NoteResponse, len(result))
	for i, note := range result {
		items[i] = toNoteResponse(note)
	}

	h.Success(c, NoteListResponse{Notes: items})
}

// Create godoc
// @Summary      Create a note
// @Description  Create a new note owned by the authenticated user
// @Tags         notes
// @Accept       json
// @Produce      json
// @Param        request body CreateNoteRequest true "Note data"
// @Success      201 {object} dto.Response{data=NoteResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /notes [post]
func (h *NoteHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.noteService.Create(c.Request.Context(), notes.CreateNoteInput{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toNoteResponse(result))
}

// Get godoc
// @Summary      Get a note
// @Description  Get a single note owned by the authenticated user
// @Tags         notes
// @Produce      json
// @Param        id path string true "Note ID"
// @Success      200 {object} dto.Response{data=NoteResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /notes/{id} [get]
func (h *NoteHandler) Get(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// A malformed ID can never match an existing note
		h.NotFound(c, "Note not found")
		return
	}

	result, err := h.noteService.Get(c.Request.Context(), notes.GetNoteInput{
		NoteID: noteID,
		UserID: userID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toNoteResponse(result))
}

// Update godoc
// @Summary      Update a note
// @Description  Replace the title and content of a note owned by the authenticated user
// @Tags         notes
// @Accept       json
// @Produce      json
// @Param        id path string true "Note ID"
// @Param        request body UpdateNoteRequest true "Replacement note data"
// @Success      200 {object} dto.Response{data=NoteResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /notes/{id} [put]
func (h *NoteHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.NotFound(c, "Note not found")
		return
	}

	var req UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.noteService.Update(c.Request.Context(), notes.UpdateNoteInput{
		NoteID:  noteID,
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toNoteResponse(result))
}

// Delete godoc
// @Summary      Delete a note
// @Description  Delete a note owned by the authenticated user
// @Tags         notes
// @Produce      json
// @Param        id path string true "Note ID"
// @Success      200 {object} dto.Response
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /notes/{id} [delete]
func (h *NoteHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.NotFound(c, "Note not found")
		return
	}

	err = h.noteService.Delete(c.Request.Context(), notes.DeleteNoteInput{
		NoteID: noteID,
		UserID: userID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{
		"message": "Note deleted successfully",
	})
}

// RegisterRoutes registers note routes on the given group
func (h *NoteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	notes := rg.Group("/notes")
	notes.GET("", h.List)
	notes.POST("", h.Create)
	notes.GET("/:id", h.Get)
	notes.PUT("/:id", h.Update)
	notes.DELETE("/:id", h.Delete)
}
