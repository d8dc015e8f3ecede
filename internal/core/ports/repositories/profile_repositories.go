package repositories

import (
	"context"
	"time"

	"github.com/akaunku/akaunku-backend/internal/core/domain"
)

// ProfileRepository defines persistence operations for profiles.
type ProfileRepository interface {
	// SaveProfile inserts a profile. Duplicate emails yield ErrDuplicate.
	SaveProfile(ctx context.Context, profile domain.Profile) error

	// FindProfileByID retrieves a profile by its ID, excluding soft-deleted rows.
	FindProfileByID(ctx context.Context, profileID string) (*domain.Profile, error)

	// FindProfileByEmail retrieves a profile by email, excluding soft-deleted rows.
	FindProfileByEmail(ctx context.Context, email string) (*domain.Profile, error)

	// FindProfiles retrieves a page of profiles, optionally filtered by role.
	FindProfiles(ctx context.Context, role domain.UserRole, limit, offset int) ([]domain.Profile, error)

	// UpdateProfile updates mutable profile fields (not the role).
	UpdateProfile(ctx context.Context, profile domain.Profile) error

	// UpdateRefreshToken stores the hash and expiry of a newly issued refresh token.
	UpdateRefreshToken(ctx context.Context, profileID string, refreshTokenHash string, expiryTime time.Time) error

	// ClearRefreshToken removes the stored refresh token state.
	ClearRefreshToken(ctx context.Context, profileID string) error

	// MarkProfileDeleted soft-deletes a profile.
	MarkProfileDeleted(ctx context.Context, profileID string, deletedAt time.Time, deletedBy string) error
}
