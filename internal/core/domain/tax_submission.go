package domain

import "time"

// SubmissionStatus tracks where a tax submission sits in the filing lifecycle.
type SubmissionStatus string

const (
	SubmissionPending   SubmissionStatus = "Pending"
	SubmissionSubmitted SubmissionStatus = "Submitted"
	SubmissionAudited   SubmissionStatus = "Audited"
	SubmissionAmended   SubmissionStatus = "Amended"
)

// IsValid reports whether the status is one of the known values.
func (s SubmissionStatus) IsValid() bool {
	switch s {
	case SubmissionPending, SubmissionSubmitted, SubmissionAudited, SubmissionAmended:
		return true
	}
	return false
}

// TaxSubmission records one filing made on behalf of a client for an
// assessment year.
type TaxSubmission struct {
	SubmissionID   string           `json:"submissionID"` // Primary Key (UUID)
	ClientID       string           `json:"clientID"`
	BookkeeperID   string           `json:"bookkeeperID"`
	AssessmentYear int              `json:"assessmentYear"`
	Status         SubmissionStatus `json:"status"`
	SubmissionDate *time.Time       `json:"submissionDate,omitempty"`
	AuditFields
}
