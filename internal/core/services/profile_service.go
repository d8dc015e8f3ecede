package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/akaunku/akaunku-backend/internal/apperrors"
	"github.com/akaunku/akaunku-backend/internal/core/domain"
	portsrepo "github.com/akaunku/akaunku-backend/internal/core/ports/repositories"
	portssvc "github.com/akaunku/akaunku-backend/internal/core/ports/services"
	"github.com/akaunku/akaunku-backend/internal/dto"
	"github.com/akaunku/akaunku-backend/internal/utils"
	"github.com/google/uuid"
)

type profileService struct {
	BaseService
	profileRepo portsrepo.ProfileRepository
}

// NewProfileService creates a new instance of profileService.
func NewProfileService(profileRepo portsrepo.ProfileRepository) portssvc.ProfileSvcFacade {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) GetProfileByID(ctx context.Context, profileID string) (*domain.Profile, error) {
	profile, err := s.profileRepo.FindProfileByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get profile by ID: %w", err)
	}
	return profile, nil
}

func (s *profileService) GetProfileByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	profile, err := s.profileRepo.FindProfileByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get profile by email: %w", err)
	}
	return profile, nil
}

func (s *profileService) ListProfiles(ctx context.Context, role domain.UserRole, limit, offset int) ([]domain.Profile, error) {
	if role != "" && !role.IsValid() {
		return nil, fmt.Errorf("invalid role filter %q: %w", role, apperrors.ErrValidation)
	}
	profiles, err := s.profileRepo.FindProfiles(ctx, role, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

func (s *profileService) CreateProfile(ctx context.Context, req dto.AdminCreateUserRequest, creatorID string) (*domain.Profile, error) {
	if !req.Role.IsValid() {
		return nil, fmt.Errorf("invalid role %q: %w", req.Role, apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	profile := domain.Profile{
		ProfileID:    uuid.NewString(),
		Email:        req.Email,
		FullName:     req.FullName,
		Role:         req.Role,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.profileRepo.SaveProfile(ctx, profile); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	s.LogInfo(ctx, "profile created by admin",
		slog.String("profile_id", profile.ProfileID),
		slog.String("role", string(profile.Role)),
		slog.String("creator_id", creatorID))
	return &profile, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, profileID string, req dto.UpdateProfileRequest, requestingUserID string) (*domain.Profile, error) {
	profile, err := s.profileRepo.FindProfileByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find profile for update: %w", err)
	}

	if req.FullName != nil {
		profile.FullName = *req.FullName
	}
	profile.LastUpdatedAt = time.Now()
	profile.LastUpdatedBy = requestingUserID

	if err := s.profileRepo.UpdateProfile(ctx, *profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) DeleteProfile(ctx context.Context, profileID string, requestingUserID string) error {
	if profileID == requestingUserID {
		return fmt.Errorf("cannot delete own profile: %w", apperrors.ErrValidation)
	}

	if err := s.profileRepo.MarkProfileDeleted(ctx, profileID, time.Now(), requestingUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	s.LogInfo(ctx, "profile soft-deleted",
		slog.String("profile_id", profileID),
		slog.String("deleted_by", requestingUserID))
	return nil
}
