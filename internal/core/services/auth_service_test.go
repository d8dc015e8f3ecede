package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/akaunku/akaunku-backend/internal/apperrors"
	"github.com/akaunku/akaunku-backend/internal/core/domain"
	portssvc "github.com/akaunku/akaunku-backend/internal/core/ports/services"
	"github.com/akaunku/akaunku-backend/internal/core/services"
	"github.com/akaunku/akaunku-backend/internal/dto"
	"github.com/akaunku/akaunku-backend/internal/platform/config"
	"github.com/akaunku/akaunku-backend/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	mockProfileRepo *MockProfileRepository
	service         portssvc.AuthSvcFacade
	cfg             *config.Config
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockProfileRepo = new(MockProfileRepository)
	suite.cfg = &config.Config{
		JWTSecret:                  "test-access-secret",
		JWTExpiryDuration:          15 * time.Minute,
		JWTIssuer:                  "akaunku-test",
		RefreshTokenSecret:         "test-refresh-secret",
		RefreshTokenExpiryDuration: 24 * time.Hour,
	}
	suite.service = services.NewAuthService(suite.cfg, suite.mockProfileRepo)
}

func (suite *AuthServiceTestSuite) TestRegister_CreatesClientWithHashedPassword() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:    "owner@kedai.example.com",
		FullName: "Aminah binti Omar",
		Password: "password123",
	}

	suite.mockProfileRepo.On("SaveProfile", ctx, mock.MatchedBy(func(p domain.Profile) bool {
		return p.Email == req.Email &&
			p.Role == domain.RoleClient &&
			p.PasswordHash != "" &&
			p.PasswordHash != req.Password
	})).Return(nil).Once()

	profile, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleClient, profile.Role)
	suite.NotEmpty(profile.ProfileID)
	suite.True(utils.CheckPasswordHash(req.Password, profile.PasswordHash))
	suite.mockProfileRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()
	req := dto.RegisterRequest{Email: "dup@example.com", FullName: "Dup", Password: "password123"}

	suite.mockProfileRepo.On("SaveProfile", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	password := "password123"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)

	profile := &domain.Profile{
		ProfileID:    uuid.NewString(),
		Email:        "owner@kedai.example.com",
		Role:         domain.RoleClient,
		PasswordHash: hash,
	}

	suite.mockProfileRepo.On("FindProfileByEmail", ctx, profile.Email).Return(profile, nil).Once()
	suite.mockProfileRepo.On("UpdateRefreshToken", ctx, profile.ProfileID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil).Once()

	got, tokens, err := suite.service.Login(ctx, profile.Email, password)

	suite.Require().NoError(err)
	suite.Equal(profile.ProfileID, got.ProfileID)
	suite.Require().NotNil(tokens)
	suite.NotEmpty(tokens.AccessToken)
	suite.NotEmpty(tokens.RefreshToken)
	suite.True(tokens.RefreshExpiry.After(time.Now()))

	claims, err := utils.ParseAndValidateJWT(tokens.AccessToken, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal(profile.ProfileID, claims.Subject)
	suite.mockProfileRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-password")
	suite.Require().NoError(err)
	profile := &domain.Profile{ProfileID: uuid.NewString(), Email: "a@b.com", PasswordHash: hash}

	suite.mockProfileRepo.On("FindProfileByEmail", ctx, profile.Email).Return(profile, nil).Once()

	_, _, err = suite.service.Login(ctx, profile.Email, "wrong-password")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockProfileRepo.AssertNotCalled(suite.T(), "UpdateRefreshToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownEmailSameError() {
	ctx := context.Background()

	suite.mockProfileRepo.On("FindProfileByEmail", ctx, "ghost@example.com").Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.Login(ctx, "ghost@example.com", "whatever123")

	suite.Require().Error(err)
	// Unknown email and wrong password must be indistinguishable.
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestRefresh_RotatesToken() {
	ctx := context.Background()
	profileID := uuid.NewString()

	rawRefresh, err := utils.GenerateJWT(profileID, suite.cfg.RefreshTokenSecret, suite.cfg.RefreshTokenExpiryDuration, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)

	expiry := time.Now().Add(suite.cfg.RefreshTokenExpiryDuration)
	profile := &domain.Profile{
		ProfileID:              profileID,
		Email:                  "a@b.com",
		Role:                   domain.RoleClient,
		RefreshTokenHash:       utils.HashRefreshToken(rawRefresh),
		RefreshTokenExpiryTime: &expiry,
	}

	suite.mockProfileRepo.On("FindProfileByID", ctx, profileID).Return(profile, nil).Once()
	suite.mockProfileRepo.On("UpdateRefreshToken", ctx, profileID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil).Once()

	got, tokens, err := suite.service.Refresh(ctx, rawRefresh)

	suite.Require().NoError(err)
	suite.Equal(profileID, got.ProfileID)
	suite.NotEmpty(tokens.AccessToken)
	// Rotation must issue a different refresh token.
	suite.NotEqual(rawRefresh, tokens.RefreshToken)
}

func (suite *AuthServiceTestSuite) TestRefresh_ReusedTokenRevokesSession() {
	ctx := context.Background()
	profileID := uuid.NewString()

	rawRefresh, err := utils.GenerateJWT(profileID, suite.cfg.RefreshTokenSecret, suite.cfg.RefreshTokenExpiryDuration, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)

	expiry := time.Now().Add(suite.cfg.RefreshTokenExpiryDuration)
	profile := &domain.Profile{
		ProfileID:              profileID,
		RefreshTokenHash:       utils.HashRefreshToken("some-other-token"),
		RefreshTokenExpiryTime: &expiry,
	}

	suite.mockProfileRepo.On("FindProfileByID", ctx, profileID).Return(profile, nil).Once()
	suite.mockProfileRepo.On("ClearRefreshToken", ctx, profileID).Return(nil).Once()

	_, _, err = suite.service.Refresh(ctx, rawRefresh)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockProfileRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRefresh_GarbageTokenRejected() {
	ctx := context.Background()

	_, _, err := suite.service.Refresh(ctx, "not-a-jwt")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockProfileRepo.AssertNotCalled(suite.T(), "FindProfileByID", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestLogout() {
	ctx := context.Background()
	profileID := uuid.NewString()

	suite.mockProfileRepo.On("ClearRefreshToken", ctx, profileID).Return(nil).Once()

	err := suite.service.Logout(ctx, profileID)

	suite.Require().NoError(err)
	suite.mockProfileRepo.AssertExpectations(suite.T())
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
