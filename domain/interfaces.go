package domain

import (
	"context"
	"io"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByUserID(ctx context.Context, userID string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByUserIDAndEmail(ctx context.Context, userID, email string) (*User, error)
	RoleExists(ctx context.Context, role Role) (bool, error)
	Update(ctx context.Context, user *User) error
	SetRecovery(ctx context.Context, userID, code string, expiry time.Time) error
	// AddStorage increments storage_used by delta in a single statement.
	AddStorage(ctx context.Context, userID string, delta int64) error
	// ReclaimStorage decrements storage_used by size, floored at zero,
	// in a single statement.
	ReclaimStorage(ctx context.Context, userID string, size int64) error
	ResetStorage(ctx context.Context, userID string) error
	Delete(ctx context.Context, userID string) error
	ListAll(ctx context.Context) ([]*User, error)
	CountByRole(ctx context.Context) (map[Role]int64, error)
	TotalStorageUsed(ctx context.Context) (int64, error)
}

// ContentRepository defines content metadata access operations
type ContentRepository interface {
	Create(ctx context.Context, item *ContentItem) error
	FindByID(ctx context.Context, id uint) (*ContentItem, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*ContentItem, error)
	ListExpired(ctx context.Context, now time.Time) ([]*ContentItem, error)
	DeleteByID(ctx context.Context, id uint) error
	DeleteByOwner(ctx context.Context, ownerID string) error
}

// NoteRepository defines notebook access operations
type NoteRepository interface {
	Create(ctx context.Context, note *Note) error
	ListByOwner(ctx context.Context, ownerID string) ([]*Note, error)
	UpdateContent(ctx context.Context, id uint, content string) (*Note, error)
	Delete(ctx context.Context, id uint) error
	DeleteByOwner(ctx context.Context, ownerID string) error
}

// OTPLedger is a TTL-keyed store for short-lived codes. One code is
// outstanding per subject; Put overwrites any prior code.
type OTPLedger interface {
	Put(ctx context.Context, subject, code string, ttl time.Duration) error
	// Get returns ErrOTPNotFound when no live code exists for subject.
	Get(ctx context.Context, subject string) (string, error)
	Delete(ctx context.Context, subject string) error
}

// ContentStore moves file bytes to and from the backing blob store
type ContentStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// Notifier delivers out-of-band messages. Delivery may fail transiently.
type Notifier interface {
	Send(to, subject, body string) error
}

// PINService defines credential hashing operations
type PINService interface {
	Hash(pin string) (string, error)
	Verify(hash, pin string) bool
}

// OTPService issues and checks short-lived codes against the ledger
type OTPService interface {
	Issue(ctx context.Context, subject string) (string, error)
	// Verify does not consume the code; it may be repeated until
	// Consume removes the record.
	Verify(ctx context.Context, subject, code string) error
	Consume(ctx context.Context, subject string) error
}

// AuthService defines the registration, login and recovery flows
type AuthService interface {
	RequestOTP(ctx context.Context, email string, role Role) error
	VerifyOTP(ctx context.Context, email, code string) error
	RequestMasterApproval(ctx context.Context) error
	VerifyMasterApproval(ctx context.Context, code string) error
	Register(ctx context.Context, userID, email string, role Role, pin, otp, masterOTP string) (*User, error)
	Login(ctx context.Context, userID, pin string) (*User, error)
	LoginByPattern(pattern string) error
	RequestRecoveryOTP(ctx context.Context, userID, email string) error
	VerifyRecoveryOTP(ctx context.Context, userID, code string) error
	ResetPIN(ctx context.Context, userID, code, newPIN string) error
}

// QuotaService enforces role-based storage ceilings
type QuotaService interface {
	QuotaFor(role Role) int64
	ExpiryFor(role Role) time.Duration
	AdmitUpload(user *User, incomingSize int64) error
	Commit(ctx context.Context, userID string, size int64) error
	Reclaim(ctx context.Context, userID string, size int64) error
}

// ContentService owns the upload/delete lifecycle of stored files.
// Deletes address the numeric record ID: backing refs contain slashes
// and cannot travel as a single path segment.
type ContentService interface {
	Upload(ctx context.Context, userID, fileName, contentType string, size int64, body io.Reader) (*ContentItem, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, userID string) ([]*ContentItem, error)
	Usage(ctx context.Context, userID string) (*UsageSummary, error)
}

// PurgeService performs bulk destruction of a user's content or account
type PurgeService interface {
	PurgeContent(ctx context.Context, userID string) error
	RequestAccountPurgeOTP(ctx context.Context, userID string) error
	PurgeAccount(ctx context.Context, userID, code string) error
	DeleteUser(ctx context.Context, userID string) error
}

// NoteService defines notebook operations
type NoteService interface {
	List(ctx context.Context, userID string) ([]*Note, error)
	Create(ctx context.Context, userID, title string) (*Note, error)
	Update(ctx context.Context, id uint, content string) (*Note, error)
	Delete(ctx context.Context, id uint) error
}

// AdminService exposes deployment-wide reporting
type AdminService interface {
	Stats(ctx context.Context) (*SystemStats, error)
	Users(ctx context.Context) ([]*User, error)
}
