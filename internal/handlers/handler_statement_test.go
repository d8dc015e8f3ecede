package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/akaunku/akaunku-backend/internal/core/domain"
	portssvc "github.com/akaunku/akaunku-backend/internal/core/ports/services"
	"github.com/akaunku/akaunku-backend/internal/dto"
	"github.com/akaunku/akaunku-backend/internal/handlers"
	"github.com/akaunku/akaunku-backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock StatementService ---
type MockStatementService struct {
	mock.Mock
}

func (m *MockStatementService) GetStatement(ctx context.Context, statementID string, requester *domain.Profile) (*domain.FinancialStatement, *domain.TaxComputation, error) {
	args := m.Called(ctx, statementID, requester)
	var statement *domain.FinancialStatement
	if args.Get(0) != nil {
		statement = args.Get(0).(*domain.FinancialStatement)
	}
	var computation *domain.TaxComputation
	if args.Get(1) != nil {
		computation = args.Get(1).(*domain.TaxComputation)
	}
	return statement, computation, args.Error(2)
}

func (m *MockStatementService) ListStatements(ctx context.Context, params dto.ListStatementsParams, requester *domain.Profile) ([]domain.FinancialStatement, error) {
	args := m.Called(ctx, params, requester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialStatement), args.Error(1)
}

func (m *MockStatementService) GetTaxComputation(ctx context.Context, statementID string, requester *domain.Profile) (*domain.TaxComputation, error) {
	args := m.Called(ctx, statementID, requester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxComputation), args.Error(1)
}

func (m *MockStatementService) CreateStatement(ctx context.Context, req dto.CreateStatementRequest, bookkeeper *domain.Profile) (*domain.FinancialStatement, *domain.TaxComputation, error) {
	args := m.Called(ctx, req, bookkeeper)
	var statement *domain.FinancialStatement
	if args.Get(0) != nil {
		statement = args.Get(0).(*domain.FinancialStatement)
	}
	var computation *domain.TaxComputation
	if args.Get(1) != nil {
		computation = args.Get(1).(*domain.TaxComputation)
	}
	return statement, computation, args.Error(2)
}

func (m *MockStatementService) UpdateStatement(ctx context.Context, statementID string, req dto.UpdateStatementRequest, bookkeeper *domain.Profile) (*domain.FinancialStatement, error) {
	args := m.Called(ctx, statementID, req, bookkeeper)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialStatement), args.Error(1)
}

func (m *MockStatementService) DeleteStatement(ctx context.Context, statementID string, bookkeeper *domain.Profile) error {
	args := m.Called(ctx, statementID, bookkeeper)
	return args.Error(0)
}

func (m *MockStatementService) SaveTaxComputation(ctx context.Context, statementID string, req dto.TaxComputationRequest, bookkeeper *domain.Profile) (*domain.TaxComputation, error) {
	args := m.Called(ctx, statementID, req, bookkeeper)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxComputation), args.Error(1)
}

var _ portssvc.StatementSvcFacade = (*MockStatementService)(nil)

// --- Mock ProfileService (role lookup for the middleware) ---
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfileByID(ctx context.Context, profileID string) (*domain.Profile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileService) GetProfileByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileService) ListProfiles(ctx context.Context, role domain.UserRole, limit, offset int) ([]domain.Profile, error) {
	args := m.Called(ctx, role, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

func (m *MockProfileService) CreateProfile(ctx context.Context, req dto.AdminCreateUserRequest, creatorID string) (*domain.Profile, error) {
	args := m.Called(ctx, req, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileService) UpdateProfile(ctx context.Context, profileID string, req dto.UpdateProfileRequest, requestingUserID string) (*domain.Profile, error) {
	args := m.Called(ctx, profileID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileService) DeleteProfile(ctx context.Context, profileID string, requestingUserID string) error {
	args := m.Called(ctx, profileID, requestingUserID)
	return args.Error(0)
}

var _ portssvc.ProfileSvcFacade = (*MockProfileService)(nil)

// --- Test Suite ---
type StatementHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockStatementService *MockStatementService
	mockProfileService   *MockProfileService
	jwtSecret            string
}

func (suite *StatementHandlerTestSuite) generateTestToken(profileID string) string {
	claims := jwt.RegisteredClaims{
		Subject:   profileID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tsignedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return tsignedString
}

func (suite *StatementHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockStatementService = new(MockStatementService)
	suite.mockProfileService = new(MockProfileService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterStatementRoutes(v1, suite.mockStatementService, suite.mockProfileService)
}

func (suite *StatementHandlerTestSuite) profileWithRole(role domain.UserRole) *domain.Profile {
	return &domain.Profile{
		ProfileID: uuid.NewString(),
		Email:     "someone@example.com",
		Role:      role,
	}
}

func (suite *StatementHandlerTestSuite) TestCreateStatement_ClientRoleForbidden() {
	client := suite.profileWithRole(domain.RoleClient)
	suite.mockProfileService.On("GetProfileByID", mock.Anything, client.ProfileID).Return(client, nil).Once()

	body, _ := json.Marshal(dto.CreateStatementRequest{ClientID: uuid.NewString(), Year: 2025})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/statements", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(client.ProfileID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
	// The service must never be reached on a role failure.
	suite.mockStatementService.AssertNotCalled(suite.T(), "CreateStatement", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *StatementHandlerTestSuite) TestCreateStatement_BookkeeperAllowed() {
	bookkeeper := suite.profileWithRole(domain.RoleBookkeeper)
	suite.mockProfileService.On("GetProfileByID", mock.Anything, bookkeeper.ProfileID).Return(bookkeeper, nil).Once()

	created := &domain.FinancialStatement{
		StatementID:  uuid.NewString(),
		ClientID:     uuid.NewString(),
		BookkeeperID: bookkeeper.ProfileID,
		Year:         2025,
		Revenue:      decimal.NewFromInt(100000),
	}
	suite.mockStatementService.On("CreateStatement", mock.Anything, mock.AnythingOfType("dto.CreateStatementRequest"), mock.MatchedBy(func(p *domain.Profile) bool {
		return p.ProfileID == bookkeeper.ProfileID
	})).Return(created, nil, nil).Once()

	body, _ := json.Marshal(dto.CreateStatementRequest{ClientID: created.ClientID, Year: 2025})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/statements", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(bookkeeper.ProfileID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.StatementDetailResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.StatementID, resp.Statement.StatementID)
	suite.Nil(resp.Tax)
	suite.mockStatementService.AssertExpectations(suite.T())
}

func (suite *StatementHandlerTestSuite) TestListStatements_ClientAllowed() {
	client := suite.profileWithRole(domain.RoleClient)
	suite.mockProfileService.On("GetProfileByID", mock.Anything, client.ProfileID).Return(client, nil).Once()
	suite.mockStatementService.On("ListStatements", mock.Anything, mock.AnythingOfType("dto.ListStatementsParams"), mock.MatchedBy(func(p *domain.Profile) bool {
		return p.ProfileID == client.ProfileID && p.Role == domain.RoleClient
	})).Return([]domain.FinancialStatement{}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/statements", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(client.ProfileID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockStatementService.AssertExpectations(suite.T())
}

func (suite *StatementHandlerTestSuite) TestStatements_MissingTokenUnauthorized() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/statements", nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockProfileService.AssertNotCalled(suite.T(), "GetProfileByID", mock.Anything, mock.Anything)
}

func (suite *StatementHandlerTestSuite) TestDeleteStatement_ClientRoleForbidden() {
	client := suite.profileWithRole(domain.RoleClient)
	suite.mockProfileService.On("GetProfileByID", mock.Anything, client.ProfileID).Return(client, nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/statements/"+uuid.NewString(), nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(client.ProfileID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockStatementService.AssertNotCalled(suite.T(), "DeleteStatement", mock.Anything, mock.Anything, mock.Anything)
}

func TestStatementHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(StatementHandlerTestSuite))
}
