package models

import "database/sql"

// Document is the database representation of an e-signature tracking row.
type Document struct {
	DocumentID           string         `db:"document_id"`
	ClientID             string         `db:"client_id"`
	BookkeeperID         string         `db:"bookkeeper_id"`
	Title                string         `db:"title"`
	ProviderTemplateID   string         `db:"provider_template_id"`
	ProviderSubmissionID sql.NullString `db:"provider_submission_id"`
	Status               string         `db:"status"`
	SigningURL           sql.NullString `db:"signing_url"`
	AuditFields
}
