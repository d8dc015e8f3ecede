package dto

import (
	"github.com/akaunku/akaunku-backend/internal/core/domain"
)

// CreateDocumentRequest is the payload for sending a document to a client
// for signature.
type CreateDocumentRequest struct {
	ClientID           string `json:"clientID" binding:"required"`
	Title              string `json:"title" binding:"required"`
	ProviderTemplateID string `json:"providerTemplateID" binding:"required"`
}

// UpdateDocumentStatusRequest records the outcome of a signing flow, as
// reported back by the bookkeeper tracking the provider submission.
type UpdateDocumentStatusRequest struct {
	Status domain.DocumentStatus `json:"status" binding:"required"`
}

// ListDocumentsParams defines query parameters for listing documents.
type ListDocumentsParams struct {
	ClientID string `form:"clientID"`
	Limit    int    `form:"limit,default=20"`
	Offset   int    `form:"offset,default=0"`
}

// ListDocumentsResponse wraps the list of documents.
type ListDocumentsResponse struct {
	Documents []domain.Document `json:"documents"`
}

// TemplateResponse is one e-signature template available to bookkeepers.
type TemplateResponse struct {
	TemplateID string `json:"templateID"`
	Name       string `json:"name"`
	BuilderURL string `json:"builderURL"`
}

// ListTemplatesResponse wraps the provider's template list.
type ListTemplatesResponse struct {
	Templates []TemplateResponse `json:"templates"`
}
