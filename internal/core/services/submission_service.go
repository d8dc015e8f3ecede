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
	"github.com/google/uuid"
)

type submissionService struct {
	BaseService
	submissionRepo portsrepo.TaxSubmissionRepository
	profileRepo    portsrepo.ProfileRepository
}

// NewSubmissionService creates a new instance of submissionService.
func NewSubmissionService(
	submissionRepo portsrepo.TaxSubmissionRepository,
	profileRepo portsrepo.ProfileRepository,
) portssvc.SubmissionSvcFacade {
	return &submissionService{
		submissionRepo: submissionRepo,
		profileRepo:    profileRepo,
	}
}

func authorizeSubmissionRead(submission *domain.TaxSubmission, requester *domain.Profile) error {
	switch requester.Role {
	case domain.RoleAdmin:
		return nil
	case domain.RoleBookkeeper:
		if submission.BookkeeperID == requester.ProfileID {
			return nil
		}
	case domain.RoleClient:
		if submission.ClientID == requester.ProfileID {
			return nil
		}
	}
	return apperrors.ErrForbidden
}

func authorizeSubmissionWrite(submission *domain.TaxSubmission, requester *domain.Profile) error {
	if requester.Role == domain.RoleAdmin {
		return nil
	}
	if requester.Role == domain.RoleBookkeeper && submission.BookkeeperID == requester.ProfileID {
		return nil
	}
	return apperrors.ErrForbidden
}

func (s *submissionService) CreateSubmission(ctx context.Context, req dto.CreateSubmissionRequest, bookkeeper *domain.Profile) (*domain.TaxSubmission, error) {
	status := req.Status
	if status == "" {
		status = domain.SubmissionPending
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid submission status %q: %w", req.Status, apperrors.ErrValidation)
	}

	client, err := s.profileRepo.FindProfileByID(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("client %s not found: %w", req.ClientID, apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to verify client for submission: %w", err)
	}
	if client.Role != domain.RoleClient {
		return nil, fmt.Errorf("profile %s is not a client: %w", req.ClientID, apperrors.ErrValidation)
	}

	now := time.Now()
	submission := domain.TaxSubmission{
		SubmissionID:   uuid.NewString(),
		ClientID:       req.ClientID,
		BookkeeperID:   bookkeeper.ProfileID,
		AssessmentYear: req.AssessmentYear,
		Status:         status,
		SubmissionDate: req.SubmissionDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     bookkeeper.ProfileID,
			LastUpdatedAt: now,
			LastUpdatedBy: bookkeeper.ProfileID,
		},
	}

	if err := s.submissionRepo.SaveSubmission(ctx, submission); err != nil {
		return nil, fmt.Errorf("failed to save tax submission: %w", err)
	}
	s.LogInfo(ctx, "tax submission recorded",
		slog.String("submission_id", submission.SubmissionID),
		slog.String("client_id", submission.ClientID),
		slog.Int("assessment_year", submission.AssessmentYear))
	return &submission, nil
}

func (s *submissionService) GetSubmission(ctx context.Context, submissionID string, requester *domain.Profile) (*domain.TaxSubmission, error) {
	submission, err := s.submissionRepo.FindSubmissionByID(ctx, submissionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get tax submission: %w", err)
	}
	if err := authorizeSubmissionRead(submission, requester); err != nil {
		return nil, err
	}
	return submission, nil
}

func (s *submissionService) ListSubmissions(ctx context.Context, params dto.ListSubmissionsParams, requester *domain.Profile) ([]domain.TaxSubmission, error) {
	filter := portsrepo.SubmissionFilter{
		AssessmentYear: params.AssessmentYear,
		Limit:          params.Limit,
		Offset:         params.Offset,
	}
	switch requester.Role {
	case domain.RoleClient:
		filter.ClientID = requester.ProfileID
	case domain.RoleBookkeeper:
		filter.BookkeeperID = requester.ProfileID
		filter.ClientID = params.ClientID
	case domain.RoleAdmin:
		filter.ClientID = params.ClientID
	default:
		return nil, apperrors.ErrForbidden
	}

	submissions, err := s.submissionRepo.FindSubmissions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tax submissions: %w", err)
	}
	return submissions, nil
}

func (s *submissionService) UpdateSubmission(ctx context.Context, submissionID string, req dto.UpdateSubmissionRequest, bookkeeper *domain.Profile) (*domain.TaxSubmission, error) {
	submission, err := s.submissionRepo.FindSubmissionByID(ctx, submissionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find submission for update: %w", err)
	}
	if err := authorizeSubmissionWrite(submission, bookkeeper); err != nil {
		return nil, err
	}

	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, fmt.Errorf("invalid submission status %q: %w", *req.Status, apperrors.ErrValidation)
		}
		submission.Status = *req.Status
	}
	if req.SubmissionDate != nil {
		submission.SubmissionDate = req.SubmissionDate
	}
	submission.LastUpdatedAt = time.Now()
	submission.LastUpdatedBy = bookkeeper.ProfileID

	if err := s.submissionRepo.UpdateSubmission(ctx, *submission); err != nil {
		return nil, fmt.Errorf("failed to update tax submission: %w", err)
	}
	return submission, nil
}

func (s *submissionService) DeleteSubmission(ctx context.Context, submissionID string, bookkeeper *domain.Profile) error {
	submission, err := s.submissionRepo.FindSubmissionByID(ctx, submissionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to find submission for delete: %w", err)
	}
	if err := authorizeSubmissionWrite(submission, bookkeeper); err != nil {
		return err
	}

	if err := s.submissionRepo.DeleteSubmission(ctx, submissionID); err != nil {
		return fmt.Errorf("failed to delete tax submission: %w", err)
	}
	return nil
}
