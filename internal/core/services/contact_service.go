package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/akaunku/akaunku-backend/internal/apperrors"
	"github.com/akaunku/akaunku-backend/internal/core/domain"
	portsrepo "github.com/akaunku/akaunku-backend/internal/core/ports/repositories"
	portssvc "github.com/akaunku/akaunku-backend/internal/core/ports/services"
	"github.com/akaunku/akaunku-backend/internal/dto"
	"github.com/google/uuid"
)

type contactService struct {
	BaseService
	contactRepo portsrepo.ContactRepository
}

// NewContactService creates a new instance of contactService.
func NewContactService(contactRepo portsrepo.ContactRepository) portssvc.ContactSvcFacade {
	return &contactService{contactRepo: contactRepo}
}

func (s *contactService) SubmitMessage(ctx context.Context, req dto.CreateContactMessageRequest) (*domain.ContactMessage, error) {
	message := domain.ContactMessage{
		MessageID: uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}

	if err := s.contactRepo.SaveMessage(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to save contact message: %w", err)
	}

	s.LogInfo(ctx, "contact message received", slog.String("message_id", message.MessageID))
	return &message, nil
}

func (s *contactService) ListMessages(ctx context.Context, includeResolved bool, limit, offset int) ([]domain.ContactMessage, error) {
	messages, err := s.contactRepo.FindMessages(ctx, includeResolved, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	return messages, nil
}

func (s *contactService) ResolveMessage(ctx context.Context, messageID string) error {
	if err := s.contactRepo.MarkMessageResolved(ctx, messageID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to resolve contact message: %w", err)
	}
	return nil
}
