package services

import (
	"context"
	"time"

	"github.com/akaunku/akaunku-backend/internal/core/domain"
	"github.com/akaunku/akaunku-backend/internal/dto"
)

// AuthTokens carries a freshly minted access/refresh token pair. The
// refresh token is raw here; only its hash is persisted.
type AuthTokens struct {
	AccessToken   string
	RefreshToken  string
	RefreshExpiry time.Time
}

// AuthSvcFacade defines authentication operations.
type AuthSvcFacade interface {
	// Register creates a client profile via public self-signup.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.Profile, error)

	// Login verifies credentials and issues a token pair, storing the
	// refresh token hash against the profile.
	Login(ctx context.Context, email, password string) (*domain.Profile, *AuthTokens, error)

	// Refresh validates and rotates a refresh token, issuing a new pair.
	Refresh(ctx context.Context, rawRefreshToken string) (*domain.Profile, *AuthTokens, error)

	// Logout clears the stored refresh token state for a profile.
	Logout(ctx context.Context, profileID string) error
}
