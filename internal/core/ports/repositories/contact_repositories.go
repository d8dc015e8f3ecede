package repositories

import (
	"context"

	"github.com/akaunku/akaunku-backend/internal/core/domain"
)

// ContactRepository defines persistence operations for contact messages.
type ContactRepository interface {
	// SaveMessage inserts a message from the public contact form.
	SaveMessage(ctx context.Context, message domain.ContactMessage) error

	// FindMessageByID retrieves one message.
	FindMessageByID(ctx context.Context, messageID string) (*domain.ContactMessage, error)

	// FindMessages retrieves a page of messages, newest first.
	FindMessages(ctx context.Context, includeResolved bool, limit, offset int) ([]domain.ContactMessage, error)

	// MarkMessageResolved flags a message as handled.
	MarkMessageResolved(ctx context.Context, messageID string) error
}
