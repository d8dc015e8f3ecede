package domain

import "time"

// UserRole defines the role a profile holds across the whole application.
// Unlike per-workspace role schemes, a profile carries exactly one role and
// it does not change through the normal update path.
type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleBookkeeper UserRole = "bookkeeper"
	RoleClient     UserRole = "client"
)

// IsValid reports whether the role is one of the known values.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleBookkeeper, RoleClient:
		return true
	}
	return false
}

// Profile represents an authenticated user of the application.
// The role field is the sole authorization key: it decides which dashboard
// is assembled and which mutating routes are reachable.
type Profile struct {
	ProfileID    string   `json:"profileID"` // Primary Key (UUID)
	Email        string   `json:"email"`
	FullName     string   `json:"fullName"`
	Role         UserRole `json:"role"`
	PasswordHash string   `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete

	// Refresh token state; only the SHA-256 hash of the token is stored.
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
}
