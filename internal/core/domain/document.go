package domain

// DocumentStatus tracks an e-signature document through the signing flow.
type DocumentStatus string

const (
	DocumentDraft    DocumentStatus = "Draft"
	DocumentSent     DocumentStatus = "Sent"
	DocumentSigned   DocumentStatus = "Signed"
	DocumentDeclined DocumentStatus = "Declined"
)

// IsValid reports whether the status is one of the known values.
func (s DocumentStatus) IsValid() bool {
	switch s {
	case DocumentDraft, DocumentSent, DocumentSigned, DocumentDeclined:
		return true
	}
	return false
}

// Document tracks one document sent to a client for signature through the
// hosted e-signature provider. ProviderSubmissionID and SigningURL come from
// the provider once the document has been sent.
type Document struct {
	DocumentID           string         `json:"documentID"` // Primary Key (UUID)
	ClientID             string         `json:"clientID"`
	BookkeeperID         string         `json:"bookkeeperID"`
	Title                string         `json:"title"`
	ProviderTemplateID   string         `json:"providerTemplateID"`
	ProviderSubmissionID string         `json:"providerSubmissionID,omitempty"`
	Status               DocumentStatus `json:"status"`
	SigningURL           string         `json:"signingURL,omitempty"`
	AuditFields
}
