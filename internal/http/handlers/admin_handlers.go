package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RAGHAVAN7777/vault-backend/domain"
)

// AdminHandlers handles operator dashboard requests
type AdminHandlers struct {
	adminSvc domain.AdminService
	purgeSvc domain.PurgeService
}

// NewAdminHandlers creates new admin handlers
func NewAdminHandlers(adminSvc domain.AdminService, purgeSvc domain.PurgeService) *AdminHandlers {
	return &AdminHandlers{adminSvc: adminSvc, purgeSvc: purgeSvc}
}

// Stats returns deployment-wide usage numbers
func (h *AdminHandlers) Stats(c *gin.Context) {
	stats, err := h.adminSvc.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching admin stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats": gin.H{
			"totalUsers": stats.TotalUsers,
			"roles": gin.H{
				"standard":   stats.UsersByRole[domain.RoleStandard],
				"elevated":   stats.UsersByRole[domain.RoleElevated],
				"privileged": stats.UsersByRole[domain.RolePrivileged],
			},
			"storage": gin.H{
				"used":  stats.StorageUsed,
				"limit": stats.StorageLimit,
				"free":  stats.StorageFree,
			},
		},
	})
}

// Users lists every account, newest first
func (h *AdminHandlers) Users(c *gin.Context) {
	users, err := h.adminSvc.Users(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching users list"})
		return
	}

	out := make([]gin.H, 0, len(users))
	for _, user := range users {
		out = append(out, gin.H{
			"userId":      user.UserID,
			"email":       user.Email,
			"role":        user.Role,
			"storageUsed": user.StorageUsed,
			"createdAt":   user.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "users": out})
}

// PurgeUserContent wipes a user's content on the operator's behalf
func (h *AdminHandlers) PurgeUserContent(c *gin.Context) {
	userID := c.Param("userId")
	if err := h.purgeSvc.PurgeContent(c.Request.Context(), userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Purge failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "All content for " + userID + " purged"})
}

// DeleteUser removes an account and everything it owns
func (h *AdminHandlers) DeleteUser(c *gin.Context) {
	userID := c.Param("userId")
	if err := h.purgeSvc.DeleteUser(c.Request.Context(), userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User deletion failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Entity " + userID + " terminated"})
}
