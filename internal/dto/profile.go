package dto

import (
	"time"

	"github.com/akaunku/akaunku-backend/internal/core/domain"
)

// ProfileResponse is the public representation of a profile.
type ProfileResponse struct {
	ProfileID string          `json:"profileID"`
	Email     string          `json:"email"`
	FullName  string          `json:"fullName"`
	Role      domain.UserRole `json:"role"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ToProfileResponse converts a domain.Profile to its response DTO.
func ToProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ProfileID: p.ProfileID,
		Email:     p.Email,
		FullName:  p.FullName,
		Role:      p.Role,
		CreatedAt: p.CreatedAt,
	}
}

// UpdateProfileRequest defines the data allowed for updating a profile.
// The role is deliberately absent: it is immutable through this path.
type UpdateProfileRequest struct {
	FullName *string `json:"fullName"`
}

// ListProfilesParams defines query parameters for the admin profile listing.
type ListProfilesParams struct {
	Role   string `form:"role"`
	Limit  int    `form:"limit,default=20"`
	Offset int    `form:"offset,default=0"`
}

// ListProfilesResponse wraps the list of profiles.
type ListProfilesResponse struct {
	Profiles []ProfileResponse `json:"profiles"`
}

// ToListProfilesResponse converts a slice of domain.Profile to its DTO.
func ToListProfilesResponse(profiles []domain.Profile) ListProfilesResponse {
	out := make([]ProfileResponse, len(profiles))
	for i := range profiles {
		out[i] = ToProfileResponse(&profiles[i])
	}
	return ListProfilesResponse{Profiles: out}
}
