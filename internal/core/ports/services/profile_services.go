package services

import (
	"context"

	"github.com/akaunku/akaunku-backend/internal/core/domain"
	"github.com/akaunku/akaunku-backend/internal/dto"
)

// ProfileReaderSvc defines read operations for profile data.
type ProfileReaderSvc interface {
	// GetProfileByID retrieves a profile by ID.
	GetProfileByID(ctx context.Context, profileID string) (*domain.Profile, error)

	// GetProfileByEmail retrieves a profile by email.
	GetProfileByEmail(ctx context.Context, email string) (*domain.Profile, error)

	// ListProfiles retrieves a paginated list of profiles, optionally
	// filtered by role. Admin only.
	ListProfiles(ctx context.Context, role domain.UserRole, limit, offset int) ([]domain.Profile, error)
}

// ProfileWriterSvc defines write operations for profile data.
type ProfileWriterSvc interface {
	// CreateProfile creates a profile with an arbitrary role on behalf of
	// an admin. The credential and profile writes are atomic.
	CreateProfile(ctx context.Context, req dto.AdminCreateUserRequest, creatorID string) (*domain.Profile, error)

	// UpdateProfile updates a profile's mutable fields. The role is not
	// updatable through this path.
	UpdateProfile(ctx context.Context, profileID string, req dto.UpdateProfileRequest, requestingUserID string) (*domain.Profile, error)
}

// ProfileLifecycleSvc defines lifecycle operations for profiles.
type ProfileLifecycleSvc interface {
	// DeleteProfile soft-deletes a profile. Admin only.
	DeleteProfile(ctx context.Context, profileID string, requestingUserID string) error
}

// ProfileSvcFacade combines all profile-related service interfaces.
type ProfileSvcFacade interface {
	ProfileReaderSvc
	ProfileWriterSvc
	ProfileLifecycleSvc
}
