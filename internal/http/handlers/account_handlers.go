package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RAGHAVAN7777/vault-backend/domain"
)

// AccountHandlers handles bulk destruction requests
type AccountHandlers struct {
	purgeSvc domain.PurgeService
}

// NewAccountHandlers creates new account handlers
func NewAccountHandlers(purgeSvc domain.PurgeService) *AccountHandlers {
	return &AccountHandlers{purgeSvc: purgeSvc}
}

// PurgeContent wipes all of a user's files and notes, keeping the account
func (h *AccountHandlers) PurgeContent(c *gin.Context) {
	if err := h.purgeSvc.PurgeContent(c.Request.Context(), c.Param("userId")); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Purge failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "NUCLEAR_SWEEP_COMPLETE"})
}

// RequestPurgeOTP issues the dedicated account-destruction challenge
func (h *AccountHandlers) RequestPurgeOTP(c *gin.Context) {
	if err := h.purgeSvc.RequestAccountPurgeOTP(c.Request.Context(), c.Param("userId")); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error sending destruction token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "DESTRUCTION_TOKEN_TRANSMITTED"})
}

// PurgeAccount destroys the account after a valid OTP challenge
func (h *AccountHandlers) PurgeAccount(c *gin.Context) {
	var req struct {
		OTP string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.purgeSvc.PurgeAccount(c.Request.Context(), c.Param("userId"), req.OTP); err != nil {
		if errors.Is(err, domain.ErrInvalidOrExpiredToken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired destruction token"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Account destruction failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "ENTITY_DELETED_PERMANENTLY"})
}
