package handler

import (
	appnotes "github.com/saasnotes/backend/internal/application/notes"
	"github.com/saasnotes/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const noteNotFoundMessage = "Note not found"

// NoteHandler serves the tenant-scoped notes CRUD surface
type NoteHandler struct {
	BaseHandler
	notes  *appnotes.NoteService
	logger *zap.Logger
}

// NewNoteHandler creates a new NoteHandler
func NewNoteHandler(noteService *appnotes.NoteService, logger *zap.Logger) *NoteHandler {
	return &NoteHandler{notes: noteService, logger: logger}
}

// RegisterRoutes registers note routes
func (h *NoteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/notes")
	{
		group.POST("", h.Create)
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}

// Create creates a note in the caller's tenant, subject to the quota
func (h *NoteHandler) Create(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Title and content are required")
		return
	}

	note, err := h.notes.Create(c.Request.Context(), caller, appnotes.NoteInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, dto.NewNoteResponse(note))
}

// List returns the caller's tenant notes, newest first
func (h *NoteHandler) List(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	items, err := h.notes.List(c.Request.Context(), caller)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, dto.NewNoteListResponse(items))
}

// Get returns a single note within the caller's tenant
func (h *NoteHandler) Get(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := h.noteID(c)
	if !ok {
		return
	}

	note, err := h.notes.Get(c.Request.Context(), caller, id)
	if err != nil {
		h.handleNoteError(c, err)
		return
	}

	h.OK(c, dto.NewNoteResponse(note))
}

// Update replaces a note's title and content within the caller's tenant
func (h *NoteHandler) Update(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := h.noteID(c)
	if !ok {
		return
	}

	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Title and content are required")
		return
	}

	note, err := h.notes.Update(c.Request.Context(), caller, id, appnotes.NoteInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		h.handleNoteError(c, err)
		return
	}

	h.OK(c, dto.NewNoteResponse(note))
}

// Delete removes a note within the caller's tenant
func (h *NoteHandler) Delete(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := h.noteID(c)
	if !ok {
		return
	}

	if err := h.notes.Delete(c.Request.Context(), caller, id); err != nil {
		h.handleNoteError(c, err)
		return
	}

	h.OK(c, dto.MessageResponse{Message: "Note deleted successfully"})
}

// noteID parses the id path parameter. A malformed id gets the same 404 as
// a missing note; the id space reveals nothing.
func (h *NoteHandler) noteID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.NotFound(c, noteNotFoundMessage)
		return uuid.Nil, false
	}
	return id, true
}

// handleNoteError rewrites the generic not-found message to the note
// surface's wording
func (h *NoteHandler) handleNoteError(c *gin.Context, err error) {
	if de, ok := asDomainError(err); ok && de.Code == dto.CodeNotFound {
		h.NotFound(c, noteNotFoundMessage)
		return
	}
	h.HandleError(c, err)
}
