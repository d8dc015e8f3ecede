package services_test

import (
	"context"
	"testing"

	"github.com/akaunku/akaunku-backend/internal/apperrors"
	"github.com/akaunku/akaunku-backend/internal/core/domain"
	portsrepo "github.com/akaunku/akaunku-backend/internal/core/ports/repositories"
	portssvc "github.com/akaunku/akaunku-backend/internal/core/ports/services"
	"github.com/akaunku/akaunku-backend/internal/core/services"
	"github.com/akaunku/akaunku-backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type StatementServiceTestSuite struct {
	suite.Suite
	mockStatementRepo   *MockStatementRepository
	mockComputationRepo *MockTaxComputationRepository
	mockProfileRepo     *MockProfileRepository
	service             portssvc.StatementSvcFacade

	bookkeeper *domain.Profile
	client     *domain.Profile
}

func (suite *StatementServiceTestSuite) SetupTest() {
	suite.mockStatementRepo = new(MockStatementRepository)
	suite.mockComputationRepo = new(MockTaxComputationRepository)
	suite.mockProfileRepo = new(MockProfileRepository)
	suite.service = services.NewStatementService(suite.mockStatementRepo, suite.mockComputationRepo, suite.mockProfileRepo)

	suite.bookkeeper = &domain.Profile{
		ProfileID: uuid.NewString(),
		Email:     "bk@example.com",
		FullName:  "Bookkeeper",
		Role:      domain.RoleBookkeeper,
	}
	suite.client = &domain.Profile{
		ProfileID: uuid.NewString(),
		Email:     "client@example.com",
		FullName:  "Client",
		Role:      domain.RoleClient,
	}
}

func (suite *StatementServiceTestSuite) TestCreateStatement_Success() {
	ctx := context.Background()
	req := dto.CreateStatementRequest{
		ClientID: suite.client.ProfileID,
		Year:     2025,
		Revenue:  decimal.NewFromInt(100000),
		Cost:     decimal.NewFromInt(40000),
		Expenses: decimal.NewFromInt(20000),
	}

	suite.mockProfileRepo.On("FindProfileByID", ctx, suite.client.ProfileID).Return(suite.client, nil).Once()
	suite.mockStatementRepo.On("SaveStatement", ctx, mock.MatchedBy(func(s domain.FinancialStatement) bool {
		return s.ClientID == suite.client.ProfileID &&
			s.BookkeeperID == suite.bookkeeper.ProfileID &&
			s.Year == 2025 &&
			s.StatementID != "" &&
			s.Revenue.Equal(decimal.NewFromInt(100000))
	})).Return(nil).Once()

	statement, computation, err := suite.service.CreateStatement(ctx, req, suite.bookkeeper)

	suite.Require().NoError(err)
	suite.Require().NotNil(statement)
	suite.Nil(computation)
	suite.Equal(suite.bookkeeper.ProfileID, statement.BookkeeperID)
	suite.mockStatementRepo.AssertExpectations(suite.T())
}

func (suite *StatementServiceTestSuite) TestCreateStatement_WithTaxBlockIsAtomic() {
	ctx := context.Background()
	req := dto.CreateStatementRequest{
		ClientID: suite.client.ProfileID,
		Year:     2025,
		Revenue:  decimal.NewFromInt(100000),
		Tax: &dto.TaxComputationRequest{
			BusinessIncome: decimal.NewFromInt(80000),
			TaxRate:        decimal.NewFromInt(24),
		},
	}

	suite.mockProfileRepo.On("FindProfileByID", ctx, suite.client.ProfileID).Return(suite.client, nil).Once()
	suite.mockStatementRepo.On("SaveStatementWithComputation", ctx,
		mock.AnythingOfType("domain.FinancialStatement"),
		mock.MatchedBy(func(c domain.TaxComputation) bool {
			return c.StatementID != "" && c.BusinessIncome.Equal(decimal.NewFromInt(80000))
		}),
	).Return(nil).Once()

	statement, computation, err := suite.service.CreateStatement(ctx, req, suite.bookkeeper)

	suite.Require().NoError(err)
	suite.Require().NotNil(statement)
	suite.Require().NotNil(computation)
	suite.Equal(statement.StatementID, computation.StatementID)
	// The single-transaction path must be used, never two separate saves.
	suite.mockStatementRepo.AssertNotCalled(suite.T(), "SaveStatement", mock.Anything, mock.Anything)
	suite.mockComputationRepo.AssertNotCalled(suite.T(), "SaveComputation", mock.Anything, mock.Anything)
}

func (suite *StatementServiceTestSuite) TestCreateStatement_RejectsNonClientTarget() {
	ctx := context.Background()
	other := &domain.Profile{ProfileID: uuid.NewString(), Role: domain.RoleBookkeeper}
	req := dto.CreateStatementRequest{ClientID: other.ProfileID, Year: 2025}

	suite.mockProfileRepo.On("FindProfileByID", ctx, other.ProfileID).Return(other, nil).Once()

	_, _, err := suite.service.CreateStatement(ctx, req, suite.bookkeeper)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockStatementRepo.AssertNotCalled(suite.T(), "SaveStatement", mock.Anything, mock.Anything)
}

func (suite *StatementServiceTestSuite) TestGetStatement_ForbiddenForOtherClient() {
	ctx := context.Background()
	statement := &domain.FinancialStatement{
		StatementID:  uuid.NewString(),
		ClientID:     uuid.NewString(), // some other client
		BookkeeperID: suite.bookkeeper.ProfileID,
		Year:         2025,
	}

	suite.mockStatementRepo.On("FindStatementByID", ctx, statement.StatementID).Return(statement, nil).Once()

	_, _, err := suite.service.GetStatement(ctx, statement.StatementID, suite.client)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *StatementServiceTestSuite) TestGetStatement_ComputationOptional() {
	ctx := context.Background()
	statement := &domain.FinancialStatement{
		StatementID:  uuid.NewString(),
		ClientID:     suite.client.ProfileID,
		BookkeeperID: suite.bookkeeper.ProfileID,
		Year:         2025,
	}

	suite.mockStatementRepo.On("FindStatementByID", ctx, statement.StatementID).Return(statement, nil).Once()
	suite.mockComputationRepo.On("FindComputationByStatementID", ctx, statement.StatementID).Return(nil, apperrors.ErrNotFound).Once()

	got, computation, err := suite.service.GetStatement(ctx, statement.StatementID, suite.client)

	suite.Require().NoError(err)
	suite.Equal(statement.StatementID, got.StatementID)
	suite.Nil(computation)
}

func (suite *StatementServiceTestSuite) TestListStatements_ClientAlwaysScopedToSelf() {
	ctx := context.Background()
	// A client asking for another client's rows still only gets their own.
	params := dto.ListStatementsParams{ClientID: uuid.NewString(), Limit: 20}

	suite.mockStatementRepo.On("FindStatements", ctx, mock.MatchedBy(func(f portsrepo.StatementFilter) bool {
		return f.ClientID == suite.client.ProfileID && f.BookkeeperID == ""
	})).Return([]domain.FinancialStatement{}, nil).Once()

	_, err := suite.service.ListStatements(ctx, params, suite.client)

	suite.Require().NoError(err)
	suite.mockStatementRepo.AssertExpectations(suite.T())
}

func (suite *StatementServiceTestSuite) TestListStatements_BookkeeperScopedToOwnClients() {
	ctx := context.Background()
	params := dto.ListStatementsParams{Year: 2024, Limit: 20}

	suite.mockStatementRepo.On("FindStatements", ctx, mock.MatchedBy(func(f portsrepo.StatementFilter) bool {
		return f.BookkeeperID == suite.bookkeeper.ProfileID && f.Year == 2024
	})).Return([]domain.FinancialStatement{}, nil).Once()

	_, err := suite.service.ListStatements(ctx, params, suite.bookkeeper)

	suite.Require().NoError(err)
}

func (suite *StatementServiceTestSuite) TestUpdateStatement_NotFound() {
	ctx := context.Background()
	statementID := uuid.NewString()

	suite.mockStatementRepo.On("FindStatementByID", ctx, statementID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateStatement(ctx, statementID, dto.UpdateStatementRequest{}, suite.bookkeeper)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *StatementServiceTestSuite) TestUpdateStatement_OtherBookkeeperForbidden() {
	ctx := context.Background()
	statement := &domain.FinancialStatement{
		StatementID:  uuid.NewString(),
		ClientID:     suite.client.ProfileID,
		BookkeeperID: uuid.NewString(), // maintained by someone else
	}

	suite.mockStatementRepo.On("FindStatementByID", ctx, statement.StatementID).Return(statement, nil).Once()

	_, err := suite.service.UpdateStatement(ctx, statement.StatementID, dto.UpdateStatementRequest{}, suite.bookkeeper)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockStatementRepo.AssertNotCalled(suite.T(), "UpdateStatement", mock.Anything, mock.Anything)
}

func (suite *StatementServiceTestSuite) TestSaveTaxComputation_KeepsExistingIdentity() {
	ctx := context.Background()
	statement := &domain.FinancialStatement{
		StatementID:  uuid.NewString(),
		ClientID:     suite.client.ProfileID,
		BookkeeperID: suite.bookkeeper.ProfileID,
	}
	existing := &domain.TaxComputation{
		ComputationID: uuid.NewString(),
		StatementID:   statement.StatementID,
	}
	req := dto.TaxComputationRequest{
		BusinessIncome: decimal.NewFromInt(90000),
		TaxRate:        decimal.NewFromInt(24),
	}

	suite.mockStatementRepo.On("FindStatementByID", ctx, statement.StatementID).Return(statement, nil).Once()
	suite.mockComputationRepo.On("FindComputationByStatementID", ctx, statement.StatementID).Return(existing, nil).Once()
	suite.mockComputationRepo.On("SaveComputation", ctx, mock.MatchedBy(func(c domain.TaxComputation) bool {
		return c.ComputationID == existing.ComputationID && c.BusinessIncome.Equal(decimal.NewFromInt(90000))
	})).Return(nil).Once()

	computation, err := suite.service.SaveTaxComputation(ctx, statement.StatementID, req, suite.bookkeeper)

	suite.Require().NoError(err)
	suite.Equal(existing.ComputationID, computation.ComputationID)
	suite.mockComputationRepo.AssertExpectations(suite.T())
}

func TestStatementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatementServiceTestSuite))
}
