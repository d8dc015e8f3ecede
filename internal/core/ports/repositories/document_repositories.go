package repositories

import (
	"context"
	"time"

	"github.com/akaunku/akaunku-backend/internal/core/domain"
)

// DocumentFilter narrows document listings. Zero values mean "no filter".
type DocumentFilter struct {
	ClientID     string
	BookkeeperID string
	Status       domain.DocumentStatus
	Limit        int
	Offset       int
}

// DocumentRepository defines persistence operations for e-signature
// tracking rows.
type DocumentRepository interface {
	// SaveDocument inserts a document.
	SaveDocument(ctx context.Context, document domain.Document) error

	// FindDocumentByID retrieves one document.
	FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error)

	// FindDocuments retrieves documents matching the filter, newest first.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]domain.Document, error)

	// UpdateDocumentStatus records a status change reported by the provider.
	UpdateDocumentStatus(ctx context.Context, documentID string, status domain.DocumentStatus, updatedBy string, updatedAt time.Time) error

	// CountDocumentsByStatus tallies a bookkeeper's documents in one status.
	CountDocumentsByStatus(ctx context.Context, bookkeeperID string, status domain.DocumentStatus) (int, error)
}
