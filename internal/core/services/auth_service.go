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
	"github.com/akaunku/akaunku-backend/internal/platform/config"
	"github.com/akaunku/akaunku-backend/internal/utils"
	"github.com/google/uuid"
)

// authService implements AuthSvcFacade: credential verification, token
// issuance and refresh token rotation. The refresh token is itself a JWT
// signed with a separate secret; only its SHA-256 hash is stored, so a
// database leak does not leak usable tokens.
type authService struct {
	BaseService
	cfg         *config.Config
	profileRepo portsrepo.ProfileRepository
}

// NewAuthService creates a new instance of authService.
func NewAuthService(cfg *config.Config, profileRepo portsrepo.ProfileRepository) portssvc.AuthSvcFacade {
	return &authService{
		cfg:         cfg,
		profileRepo: profileRepo,
	}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.Profile, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	profileID := uuid.NewString()
	profile := domain.Profile{
		ProfileID:    profileID,
		Email:        req.Email,
		FullName:     req.FullName,
		Role:         domain.RoleClient,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     profileID,
			LastUpdatedAt: now,
			LastUpdatedBy: profileID,
		},
	}

	if err := s.profileRepo.SaveProfile(ctx, profile); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		s.LogError(ctx, err, "failed to save profile during registration", slog.String("email", req.Email))
		return nil, fmt.Errorf("failed to register profile: %w", err)
	}

	s.LogInfo(ctx, "profile registered", slog.String("profile_id", profile.ProfileID))
	return &profile, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.Profile, *portssvc.AuthTokens, error) {
	profile, err := s.profileRepo.FindProfileByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same error as a bad password so the response does not reveal
			// which emails exist.
			return nil, nil, apperrors.ErrUnauthorized
		}
		return nil, nil, fmt.Errorf("failed to look up profile for login: %w", err)
	}

	if !utils.CheckPasswordHash(password, profile.PasswordHash) {
		return nil, nil, apperrors.ErrUnauthorized
	}

	tokens, err := s.issueTokens(ctx, profile)
	if err != nil {
		return nil, nil, err
	}
	return profile, tokens, nil
}

func (s *authService) Refresh(ctx context.Context, rawRefreshToken string) (*domain.Profile, *portssvc.AuthTokens, error) {
	claims, err := utils.ParseAndValidateJWT(rawRefreshToken, s.cfg.RefreshTokenSecret)
	if err != nil {
		return nil, nil, apperrors.ErrUnauthorized
	}

	profile, err := s.profileRepo.FindProfileByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, apperrors.ErrUnauthorized
		}
		return nil, nil, fmt.Errorf("failed to look up profile for refresh: %w", err)
	}

	if profile.RefreshTokenHash == "" || profile.RefreshTokenExpiryTime == nil {
		return nil, nil, apperrors.ErrUnauthorized
	}
	if time.Now().After(*profile.RefreshTokenExpiryTime) {
		return nil, nil, apperrors.ErrUnauthorized
	}
	if !utils.CompareRefreshTokenHash(rawRefreshToken, profile.RefreshTokenHash) {
		// A valid JWT whose hash does not match the stored one means the
		// token was already rotated. Revoke the session entirely.
		if clearErr := s.profileRepo.ClearRefreshToken(ctx, profile.ProfileID); clearErr != nil {
			s.LogError(ctx, clearErr, "failed to clear refresh token after reuse", slog.String("profile_id", profile.ProfileID))
		}
		return nil, nil, apperrors.ErrUnauthorized
	}

	tokens, err := s.issueTokens(ctx, profile)
	if err != nil {
		return nil, nil, err
	}
	return profile, tokens, nil
}

func (s *authService) Logout(ctx context.Context, profileID string) error {
	if err := s.profileRepo.ClearRefreshToken(ctx, profileID); err != nil {
		return fmt.Errorf("failed to clear refresh token on logout: %w", err)
	}
	return nil
}

// issueTokens mints a fresh access/refresh pair and persists the refresh
// token hash, rotating out any previous refresh token.
func (s *authService) issueTokens(ctx context.Context, profile *domain.Profile) (*portssvc.AuthTokens, error) {
	accessToken, err := utils.GenerateJWT(profile.ProfileID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateJWT(profile.ProfileID, s.cfg.RefreshTokenSecret, s.cfg.RefreshTokenExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	refreshExpiry := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)
	refreshHash := utils.HashRefreshToken(refreshToken)
	if err := s.profileRepo.UpdateRefreshToken(ctx, profile.ProfileID, refreshHash, refreshExpiry); err != nil {
		return nil, fmt.Errorf("failed to store refresh token hash: %w", err)
	}

	return &portssvc.AuthTokens{
		AccessToken:   accessToken,
		RefreshToken:  refreshToken,
		RefreshExpiry: refreshExpiry,
	}, nil
}
