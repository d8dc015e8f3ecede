package services

import (
	"context"

	"github.com/akaunku/akaunku-backend/internal/core/domain"
	"github.com/akaunku/akaunku-backend/internal/dto"
)

// SubmissionSvcFacade defines operations on tax submissions. Reads are
// scoped by the requester's role; writes are bookkeeper-only.
type SubmissionSvcFacade interface {
	// CreateSubmission records a submission for one of the bookkeeper's
	// clients. An empty status defaults to Pending.
	CreateSubmission(ctx context.Context, req dto.CreateSubmissionRequest, bookkeeper *domain.Profile) (*domain.TaxSubmission, error)

	// GetSubmission retrieves one submission visible to the requester.
	GetSubmission(ctx context.Context, submissionID string, requester *domain.Profile) (*domain.TaxSubmission, error)

	// ListSubmissions retrieves submissions visible to the requester.
	ListSubmissions(ctx context.Context, params dto.ListSubmissionsParams, requester *domain.Profile) ([]domain.TaxSubmission, error)

	// UpdateSubmission updates a submission's status or filing date.
	UpdateSubmission(ctx context.Context, submissionID string, req dto.UpdateSubmissionRequest, bookkeeper *domain.Profile) (*domain.TaxSubmission, error)

	// DeleteSubmission removes a submission.
	DeleteSubmission(ctx context.Context, submissionID string, bookkeeper *domain.Profile) error
}
