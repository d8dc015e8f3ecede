package dto

import (
	"time"

	"github.com/akaunku/akaunku-backend/internal/core/domain"
)

// CreateSubmissionRequest is the payload for recording a tax submission.
type CreateSubmissionRequest struct {
	ClientID       string                  `json:"clientID" binding:"required"`
	AssessmentYear int                     `json:"assessmentYear" binding:"required,gte=1990,lte=2100"`
	Status         domain.SubmissionStatus `json:"status"`
	SubmissionDate *time.Time              `json:"submissionDate"`
}

// UpdateSubmissionRequest is the payload for updating a submission's status
// or filing date.
type UpdateSubmissionRequest struct {
	Status         *domain.SubmissionStatus `json:"status"`
	SubmissionDate *time.Time               `json:"submissionDate"`
}

// ListSubmissionsParams defines query parameters for listing submissions.
type ListSubmissionsParams struct {
	ClientID       string `form:"clientID"`
	AssessmentYear int    `form:"assessmentYear"`
	Limit          int    `form:"limit,default=20"`
	Offset         int    `form:"offset,default=0"`
}

// ListSubmissionsResponse wraps the list of submissions.
type ListSubmissionsResponse struct {
	Submissions []domain.TaxSubmission `json:"submissions"`
}
