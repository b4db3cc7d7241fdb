package domain

import "errors"

// Registration and OTP errors
var (
	ErrAlreadyRegistered          = errors.New("email already registered")
	ErrInvalidOrExpiredToken      = errors.New("invalid or expired token")
	ErrMasterAuthorizationMissing = errors.New("master authorization missing or invalid")
	ErrUserIDTaken                = errors.New("user id taken")
	ErrInvalidRole                = errors.New("invalid role")
	ErrOTPNotFound                = errors.New("otp not found")
)

// Authentication errors
var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrInvalidPIN           = errors.New("pin must be exactly six digits")
	ErrInvalidPattern       = errors.New("invalid pattern sequence")
	ErrPatternNotConfigured = errors.New("pattern secret not configured")
)

// Storage errors
var (
	ErrQuotaExceeded = errors.New("storage quota exceeded")
	ErrUserNotFound  = errors.New("user not found")
	ErrFileNotFound  = errors.New("file not found")
	ErrNoteNotFound  = errors.New("note not found")
)
