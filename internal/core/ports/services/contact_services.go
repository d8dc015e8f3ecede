package services

import (
	"context"

	"github.com/akaunku/akaunku-backend/internal/core/domain"
	"github.com/akaunku/akaunku-backend/internal/dto"
)

// ContactSvcFacade defines operations on contact messages. Submission is
// public; listing and resolution are admin-only.
type ContactSvcFacade interface {
	SubmitMessage(ctx context.Context, req dto.CreateContactMessageRequest) (*domain.ContactMessage, error)
	ListMessages(ctx context.Context, includeResolved bool, limit, offset int) ([]domain.ContactMessage, error)
	ResolveMessage(ctx context.Context, messageID string) error
}
