package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/RAGHAVAN7777/vault-backend/domain"
)

// maxUploadBytes caps a single multipart upload
const maxUploadBytes = 100 * 1024 * 1024

// ContentHandlers handles file upload/download lifecycle requests
type ContentHandlers struct {
	contentSvc domain.ContentService
}

// NewContentHandlers creates new content handlers
func NewContentHandlers(contentSvc domain.ContentService) *ContentHandlers {
	return &ContentHandlers{contentSvc: contentSvc}
}

// Upload handles multipart file uploads
func (h *ContentHandlers) Upload(c *gin.Context) {
	userID := c.PostForm("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	log.Info().Str("file", fileHeader.Filename).Str("type", contentType).Int64("size", fileHeader.Size).Msg("incoming upload")

	item, err := h.contentSvc.Upload(c.Request.Context(), userID, fileHeader.Filename, contentType, fileHeader.Size, file)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, domain.ErrQuotaExceeded):
			c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Your allowed storage is full. Upgrade required."})
		default:
			log.Error().Err(err).Str("user_id", userID).Msg("upload failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Upload failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Upload successful", "file": itemJSON(item)})
}

// Delete removes one file by its record ID. The backing ref cannot be
// the route parameter: generated keys contain slashes and would never
// match a single path segment.
func (h *ContentHandlers) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file id"})
		return
	}

	if err := h.contentSvc.Delete(c.Request.Context(), uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Delete operation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "File metadata purged"})
}

// List returns a user's files, newest first
func (h *ContentHandlers) List(c *gin.Context) {
	items, err := h.contentSvc.List(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching files"})
		return
	}

	files := make([]gin.H, 0, len(items))
	for _, item := range items {
		files = append(files, itemJSON(item))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "files": files})
}

// Usage reports the user's storage position
func (h *ContentHandlers) Usage(c *gin.Context) {
	summary, err := h.contentSvc.Usage(c.Request.Context(), c.Param("userId"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching user data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"storageUsed": summary.StorageUsed,
		"role":        summary.Role,
		"limit":       summary.Limit,
	})
}

func itemJSON(item *domain.ContentItem) gin.H {
	return gin.H{
		"id":           item.ID,
		"userId":       item.OwnerID,
		"fileName":     item.FileName,
		"fileUrl":      item.FileURL,
		"publicId":     item.BackingRef,
		"resourceType": item.ResourceKind,
		"fileSize":     item.SizeBytes,
		"expiresAt":    item.ExpiresAt,
		"createdAt":    item.CreatedAt,
	}
}
