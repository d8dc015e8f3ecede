package services

import (
	"context"

	"github.com/akaunku/akaunku-backend/internal/core/domain"
	"github.com/akaunku/akaunku-backend/internal/dto"
)

// DocumentSvcFacade defines operations on e-signature documents. Sending is
// bookkeeper-only; reads are scoped by the requester's role.
type DocumentSvcFacade interface {
	// SendForSignature creates a submission at the e-signature provider and
	// records the tracking row.
	SendForSignature(ctx context.Context, req dto.CreateDocumentRequest, bookkeeper *domain.Profile) (*domain.Document, error)

	// UpdateDocumentStatus records a signing outcome (Signed, Declined) on
	// a document the requester manages.
	UpdateDocumentStatus(ctx context.Context, documentID string, req dto.UpdateDocumentStatusRequest, requester *domain.Profile) (*domain.Document, error)

	// GetDocument retrieves one document visible to the requester.
	GetDocument(ctx context.Context, documentID string, requester *domain.Profile) (*domain.Document, error)

	// ListDocuments retrieves documents visible to the requester.
	ListDocuments(ctx context.Context, params dto.ListDocumentsParams, requester *domain.Profile) ([]domain.Document, error)

	// ListTemplates retrieves the provider's templates with builder URLs.
	ListTemplates(ctx context.Context) (dto.ListTemplatesResponse, error)
}
