package domain

import "time"

// Role is a user's privilege tier. It determines storage quota and
// content expiry.
type Role string

const (
	RoleStandard   Role = "standard"
	RoleElevated   Role = "elevated"
	RolePrivileged Role = "privileged"
)

// Valid reports whether r is one of the known tiers.
func (r Role) Valid() bool {
	switch r {
	case RoleStandard, RoleElevated, RolePrivileged:
		return true
	}
	return false
}

// User represents a vault account
type User struct {
	ID             uint
	UserID         string
	Email          string
	Role           Role
	PINHash        string
	Verified       bool
	StorageUsed    int64
	RecoveryCode   string
	RecoveryExpiry *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ContentItem describes one uploaded file. BackingRef is the opaque
// handle the content store knows the bytes by.
type ContentItem struct {
	ID           uint
	OwnerID      string
	FileName     string
	FileURL      string
	BackingRef   string
	ResourceKind string
	SizeBytes    int64
	ExpiresAt    *time.Time
	CreatedAt    time.Time
}

// Note is a plain text notebook entry. Notes are returned to clients
// as-is, so the JSON shape is fixed here.
type Note struct {
	ID        uint      `json:"id"`
	OwnerID   string    `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UsageSummary reports a user's storage position. Limit is
// UnlimitedQuota for the privileged tier.
type UsageSummary struct {
	UserID      string
	Role        Role
	StorageUsed int64
	Limit       int64
}

// SystemStats aggregates deployment-wide numbers for the admin dashboard
type SystemStats struct {
	TotalUsers   int64
	UsersByRole  map[Role]int64
	StorageUsed  int64
	StorageLimit int64
	StorageFree  int64
}
