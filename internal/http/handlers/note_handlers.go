package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/RAGHAVAN7777/vault-backend/domain"
)

// NoteHandlers handles notebook HTTP requests
type NoteHandlers struct {
	noteSvc domain.NoteService
}

// NewNoteHandlers creates new note handlers
func NewNoteHandlers(noteSvc domain.NoteService) *NoteHandlers {
	return &NoteHandlers{noteSvc: noteSvc}
}

// List returns a user's notes, most recently updated first
func (h *NoteHandlers) List(c *gin.Context) {
	notes, err := h.noteSvc.List(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching notebooks"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "notes": notes})
}

// Create creates an empty notebook
func (h *NoteHandlers) Create(c *gin.Context) {
	var req struct {
		UserID string `json:"userId" binding:"required"`
		Title  string `json:"title" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := h.noteSvc.Create(c.Request.Context(), req.UserID, req.Title)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating notebook"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "note": note})
}

// Update replaces a notebook's content
func (h *NoteHandlers) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("noteId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid note id"})
		return
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := h.noteSvc.Update(c.Request.Context(), uint(id), req.Content)
	if err != nil {
		if errors.Is(err, domain.ErrNoteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notebook not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving notebook"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "note": note})
}

// Delete removes a notebook
func (h *NoteHandlers) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("noteId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid note id"})
		return
	}

	if err := h.noteSvc.Delete(c.Request.Context(), uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error purging notebook"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Notebook purged"})
}
