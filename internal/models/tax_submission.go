package models

import (
	"database/sql"
)

// TaxSubmission is the database representation of a tax submission row.
type TaxSubmission struct {
	SubmissionID   string       `db:"submission_id"`
	ClientID       string       `db:"client_id"`
	BookkeeperID   string       `db:"bookkeeper_id"`
	AssessmentYear int          `db:"assessment_year"`
	Status         string       `db:"status"`
	SubmissionDate sql.NullTime `db:"submission_date"`
	AuditFields
}
