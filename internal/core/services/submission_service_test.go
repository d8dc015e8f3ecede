package services_test

import (
	"context"
	"testing"

	"github.com/akaunku/akaunku-backend/internal/apperrors"
	"github.com/akaunku/akaunku-backend/internal/core/domain"
	portssvc "github.com/akaunku/akaunku-backend/internal/core/ports/services"
	"github.com/akaunku/akaunku-backend/internal/core/services"
	"github.com/akaunku/akaunku-backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SubmissionServiceTestSuite struct {
	suite.Suite
	mockSubmissionRepo *MockTaxSubmissionRepository
	mockProfileRepo    *MockProfileRepository
	service            portssvc.SubmissionSvcFacade

	bookkeeper *domain.Profile
	client     *domain.Profile
}

func (suite *SubmissionServiceTestSuite) SetupTest() {
	suite.mockSubmissionRepo = new(MockTaxSubmissionRepository)
	suite.mockProfileRepo = new(MockProfileRepository)
	suite.service = services.NewSubmissionService(suite.mockSubmissionRepo, suite.mockProfileRepo)

	suite.bookkeeper = &domain.Profile{ProfileID: uuid.NewString(), Role: domain.RoleBookkeeper}
	suite.client = &domain.Profile{ProfileID: uuid.NewString(), Role: domain.RoleClient}
}

func (suite *SubmissionServiceTestSuite) TestCreateSubmission_EmptyStatusDefaultsToPending() {
	ctx := context.Background()
	req := dto.CreateSubmissionRequest{
		ClientID:       suite.client.ProfileID,
		AssessmentYear: 2025,
	}

	suite.mockProfileRepo.On("FindProfileByID", ctx, suite.client.ProfileID).Return(suite.client, nil).Once()
	suite.mockSubmissionRepo.On("SaveSubmission", ctx, mock.MatchedBy(func(s domain.TaxSubmission) bool {
		return s.Status == domain.SubmissionPending && s.BookkeeperID == suite.bookkeeper.ProfileID
	})).Return(nil).Once()

	submission, err := suite.service.CreateSubmission(ctx, req, suite.bookkeeper)

	suite.Require().NoError(err)
	suite.Equal(domain.SubmissionPending, submission.Status)
	suite.mockSubmissionRepo.AssertExpectations(suite.T())
}

func (suite *SubmissionServiceTestSuite) TestCreateSubmission_InvalidStatusRejected() {
	ctx := context.Background()
	req := dto.CreateSubmissionRequest{
		ClientID:       suite.client.ProfileID,
		AssessmentYear: 2025,
		Status:         domain.SubmissionStatus("Filed"),
	}

	_, err := suite.service.CreateSubmission(ctx, req, suite.bookkeeper)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSubmissionRepo.AssertNotCalled(suite.T(), "SaveSubmission", mock.Anything, mock.Anything)
}

func (suite *SubmissionServiceTestSuite) TestUpdateSubmission_StatusTransition() {
	ctx := context.Background()
	submission := &domain.TaxSubmission{
		SubmissionID:   uuid.NewString(),
		ClientID:       suite.client.ProfileID,
		BookkeeperID:   suite.bookkeeper.ProfileID,
		AssessmentYear: 2025,
		Status:         domain.SubmissionPending,
	}
	newStatus := domain.SubmissionSubmitted

	suite.mockSubmissionRepo.On("FindSubmissionByID", ctx, submission.SubmissionID).Return(submission, nil).Once()
	suite.mockSubmissionRepo.On("UpdateSubmission", ctx, mock.MatchedBy(func(s domain.TaxSubmission) bool {
		return s.Status == domain.SubmissionSubmitted
	})).Return(nil).Once()

	updated, err := suite.service.UpdateSubmission(ctx, submission.SubmissionID, dto.UpdateSubmissionRequest{Status: &newStatus}, suite.bookkeeper)

	suite.Require().NoError(err)
	suite.Equal(domain.SubmissionSubmitted, updated.Status)
}

func (suite *SubmissionServiceTestSuite) TestGetSubmission_ClientSeesOwnOnly() {
	ctx := context.Background()
	submission := &domain.TaxSubmission{
		SubmissionID: uuid.NewString(),
		ClientID:     uuid.NewString(), // belongs to someone else
		BookkeeperID: suite.bookkeeper.ProfileID,
	}

	suite.mockSubmissionRepo.On("FindSubmissionByID", ctx, submission.SubmissionID).Return(submission, nil).Once()

	_, err := suite.service.GetSubmission(ctx, submission.SubmissionID, suite.client)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *SubmissionServiceTestSuite) TestDeleteSubmission_OtherBookkeeperForbidden() {
	ctx := context.Background()
	submission := &domain.TaxSubmission{
		SubmissionID: uuid.NewString(),
		ClientID:     suite.client.ProfileID,
		BookkeeperID: uuid.NewString(),
	}

	suite.mockSubmissionRepo.On("FindSubmissionByID", ctx, submission.SubmissionID).Return(submission, nil).Once()

	err := suite.service.DeleteSubmission(ctx, submission.SubmissionID, suite.bookkeeper)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockSubmissionRepo.AssertNotCalled(suite.T(), "DeleteSubmission", mock.Anything, mock.Anything)
}

func TestSubmissionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SubmissionServiceTestSuite))
}
