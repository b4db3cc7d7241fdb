package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RAGHAVAN7777/vault-backend/domain"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// SendOTPRequest represents an OTP issuance request
type SendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role,omitempty"`
}

// VerifyOTPRequest represents an OTP verification request
type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	UserID    string `json:"userId" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Role      string `json:"role" binding:"required"`
	PIN       string `json:"pin" binding:"required,len=6"`
	OTP       string `json:"otp" binding:"required"`
	MasterOTP string `json:"masterOtp,omitempty"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	UserID string `json:"userId" binding:"required"`
	PIN    string `json:"pin" binding:"required"`
}

// PatternLoginRequest represents a pattern login request
type PatternLoginRequest struct {
	Pattern string `json:"pattern" binding:"required"`
}

// RecoverOTPRequest represents a recovery OTP request
type RecoverOTPRequest struct {
	UserID string `json:"userId" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
}

// RecoverVerifyRequest represents a recovery pre-check request
type RecoverVerifyRequest struct {
	UserID string `json:"userId" binding:"required"`
	OTP    string `json:"otp" binding:"required"`
}

// ResetPINRequest represents a PIN reset request
type ResetPINRequest struct {
	UserID string `json:"userId" binding:"required"`
	OTP    string `json:"otp" binding:"required"`
	PIN    string `json:"pin" binding:"required,len=6"`
}

// SendOTP handles OTP issuance for registration
func (h *AuthHandlers) SendOTP(c *gin.Context) {
	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authSvc.RequestOTP(c.Request.Context(), req.Email, domain.Role(req.Role)); err != nil {
		if errors.Is(err, domain.ErrAlreadyRegistered) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error sending OTP"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP sent"})
}

// VerifyOTP handles the registration pre-check. The code is not
// consumed here.
func (h *AuthHandlers) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authSvc.VerifyOTP(c.Request.Context(), req.Email, req.OTP); err != nil {
		if errors.Is(err, domain.ErrInvalidOrExpiredToken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired OTP"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Verification error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP verified"})
}

// SendMasterOTP issues the dual-approval token to the operator address
func (h *AuthHandlers) SendMasterOTP(c *gin.Context) {
	if err := h.authSvc.RequestMasterApproval(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error sending master OTP"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "MASTER_TOKEN_TRANSMITTED"})
}

// VerifyMasterOTP checks the dual-approval token without consuming it
func (h *AuthHandlers) VerifyMasterOTP(c *gin.Context) {
	var req struct {
		OTP string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authSvc.VerifyMasterApproval(c.Request.Context(), req.OTP); err != nil {
		if errors.Is(err, domain.ErrInvalidOrExpiredToken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired master token"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Verification error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "MASTER_APPROVAL_GRANTED"})
}

// Register completes the registration state machine
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := h.authSvc.Register(c.Request.Context(), req.UserID, req.Email, domain.Role(req.Role), req.PIN, req.OTP, req.MasterOTP)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidOrExpiredToken):
			c.JSON(http.StatusBadRequest, gin.H{"error": "User OTP invalid or expired"})
		case errors.Is(err, domain.ErrMasterAuthorizationMissing):
			c.JSON(http.StatusForbidden, gin.H{"error": "MASTER_AUTHORIZATION_MISSING_OR_INVALID"})
		case errors.Is(err, domain.ErrUserIDTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": "User ID taken"})
		case errors.Is(err, domain.ErrAlreadyRegistered):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
		case errors.Is(err, domain.ErrInvalidRole):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		case errors.Is(err, domain.ErrInvalidPIN):
			c.JSON(http.StatusBadRequest, gin.H{"error": "PIN must be exactly six digits"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Registration successful"})
}

// Login authenticates a user by PIN
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authSvc.Login(c.Request.Context(), req.UserID, req.PIN)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    gin.H{"userId": user.UserID, "role": user.Role},
	})
}

// PatternLogin authenticates an operator by pattern sequence
func (h *AuthHandlers) PatternLogin(c *gin.Context) {
	var req PatternLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authSvc.LoginByPattern(req.Pattern); err != nil {
		if errors.Is(err, domain.ErrPatternNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "SERVER_CONFIG_ERROR"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "INVALID_PATTERN_SEQUENCE"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "ADMIN_ACCESS_GRANTED"})
}

// SendRecoveryOTP starts credential recovery
func (h *AuthHandlers) SendRecoveryOTP(c *gin.Context) {
	var req RecoverOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authSvc.RequestRecoveryOTP(c.Request.Context(), req.UserID, req.Email); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Recovery error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Recovery OTP sent"})
}

// VerifyRecoveryOTP pre-checks a recovery code without consuming it
func (h *AuthHandlers) VerifyRecoveryOTP(c *gin.Context) {
	var req RecoverVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authSvc.VerifyRecoveryOTP(c.Request.Context(), req.UserID, req.OTP); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired OTP"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP verified"})
}

// ResetPIN replaces the credential after a successful recovery challenge
func (h *AuthHandlers) ResetPIN(c *gin.Context) {
	var req ResetPINRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authSvc.ResetPIN(c.Request.Context(), req.UserID, req.OTP, req.PIN); err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unauthorized reset"})
		case errors.Is(err, domain.ErrInvalidPIN):
			c.JSON(http.StatusBadRequest, gin.H{"error": "PIN must be exactly six digits"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Reset error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "PIN reset successful"})
}
