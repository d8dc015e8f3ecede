package repositories

import (
	"context"

	"github.com/akaunku/akaunku-backend/internal/core/domain"
)

// SubmissionFilter narrows submission listings. Zero values mean "no filter".
type SubmissionFilter struct {
	ClientID       string
	BookkeeperID   string
	AssessmentYear int
	Limit          int
	Offset         int
}

// TaxSubmissionRepository defines persistence operations for tax submissions.
type TaxSubmissionRepository interface {
	// SaveSubmission inserts a submission.
	SaveSubmission(ctx context.Context, submission domain.TaxSubmission) error

	// FindSubmissionByID retrieves one submission.
	FindSubmissionByID(ctx context.Context, submissionID string) (*domain.TaxSubmission, error)

	// FindSubmissions retrieves submissions matching the filter, newest
	// assessment year first.
	FindSubmissions(ctx context.Context, filter SubmissionFilter) ([]domain.TaxSubmission, error)

	// UpdateSubmission updates a submission's status and filing date.
	UpdateSubmission(ctx context.Context, submission domain.TaxSubmission) error

	// DeleteSubmission removes a submission.
	DeleteSubmission(ctx context.Context, submissionID string) error

	// CountSubmissionsByStatus tallies a bookkeeper's submissions per status.
	CountSubmissionsByStatus(ctx context.Context, bookkeeperID string) (map[domain.SubmissionStatus]int, error)
}
