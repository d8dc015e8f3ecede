package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/akaunku/akaunku-backend/internal/apperrors"
	"github.com/akaunku/akaunku-backend/internal/clients/esign"
	"github.com/akaunku/akaunku-backend/internal/core/domain"
	portsrepo "github.com/akaunku/akaunku-backend/internal/core/ports/repositories"
	portssvc "github.com/akaunku/akaunku-backend/internal/core/ports/services"
	"github.com/akaunku/akaunku-backend/internal/dto"
	"github.com/google/uuid"
)

// ESignProvider is the slice of the e-signature client this service needs.
// Declared here so tests can stand in a fake without the real HTTP client.
type ESignProvider interface {
	ListTemplates(ctx context.Context) ([]esign.Template, error)
	CreateSubmission(ctx context.Context, req esign.SubmissionRequest) (*esign.Submission, error)
	SigningURL(submitterSlug string) string
	BuilderURL(templateSlug string) string
}

type documentService struct {
	BaseService
	documentRepo portsrepo.DocumentRepository
	profileRepo  portsrepo.ProfileRepository
	provider     ESignProvider
}

// NewDocumentService creates a new instance of documentService.
func NewDocumentService(
	documentRepo portsrepo.DocumentRepository,
	profileRepo portsrepo.ProfileRepository,
	provider ESignProvider,
) portssvc.DocumentSvcFacade {
	return &documentService{
		documentRepo: documentRepo,
		profileRepo:  profileRepo,
		provider:     provider,
	}
}

func (s *documentService) SendForSignature(ctx context.Context, req dto.CreateDocumentRequest, bookkeeper *domain.Profile) (*domain.Document, error) {
	client, err := s.profileRepo.FindProfileByID(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("client %s not found: %w", req.ClientID, apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to verify client for document: %w", err)
	}
	if client.Role != domain.RoleClient {
		return nil, fmt.Errorf("profile %s is not a client: %w", req.ClientID, apperrors.ErrValidation)
	}

	submission, err := s.provider.CreateSubmission(ctx, esign.SubmissionRequest{
		TemplateID: req.ProviderTemplateID,
		SendEmail:  true,
		Submitters: []esign.Submitter{{Email: client.Email, Name: client.FullName}},
	})
	if err != nil {
		s.LogError(ctx, err, "e-signature provider rejected submission",
			slog.String("template_id", req.ProviderTemplateID))
		return nil, err
	}

	signingURL := ""
	if len(submission.Submitters) > 0 && submission.Submitters[0].Slug != "" {
		signingURL = s.provider.SigningURL(submission.Submitters[0].Slug)
	}

	now := time.Now()
	document := domain.Document{
		DocumentID:           uuid.NewString(),
		ClientID:             req.ClientID,
		BookkeeperID:         bookkeeper.ProfileID,
		Title:                req.Title,
		ProviderTemplateID:   req.ProviderTemplateID,
		ProviderSubmissionID: submission.ID,
		Status:               domain.DocumentSent,
		SigningURL:           signingURL,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     bookkeeper.ProfileID,
			LastUpdatedAt: now,
			LastUpdatedBy: bookkeeper.ProfileID,
		},
	}

	if err := s.documentRepo.SaveDocument(ctx, document); err != nil {
		return nil, fmt.Errorf("failed to save document after provider submission: %w", err)
	}

	s.LogInfo(ctx, "document sent for signature",
		slog.String("document_id", document.DocumentID),
		slog.String("client_id", document.ClientID),
		slog.String("provider_submission_id", document.ProviderSubmissionID))
	return &document, nil
}

func (s *documentService) UpdateDocumentStatus(ctx context.Context, documentID string, req dto.UpdateDocumentStatusRequest, requester *domain.Profile) (*domain.Document, error) {
	if !req.Status.IsValid() {
		return nil, fmt.Errorf("invalid document status %q: %w", req.Status, apperrors.ErrValidation)
	}

	document, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get document for status update: %w", err)
	}
	if requester.Role == domain.RoleBookkeeper && document.BookkeeperID != requester.ProfileID {
		return nil, apperrors.ErrForbidden
	}

	now := time.Now()
	if err := s.documentRepo.UpdateDocumentStatus(ctx, documentID, req.Status, requester.ProfileID, now); err != nil {
		return nil, fmt.Errorf("failed to update document status: %w", err)
	}

	document.Status = req.Status
	document.LastUpdatedAt = now
	document.LastUpdatedBy = requester.ProfileID
	s.LogInfo(ctx, "document status updated",
		slog.String("document_id", documentID),
		slog.String("status", string(req.Status)))
	return document, nil
}

func (s *documentService) GetDocument(ctx context.Context, documentID string, requester *domain.Profile) (*domain.Document, error) {
	document, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	switch requester.Role {
	case domain.RoleAdmin:
	case domain.RoleBookkeeper:
		if document.BookkeeperID != requester.ProfileID {
			return nil, apperrors.ErrForbidden
		}
	case domain.RoleClient:
		if document.ClientID != requester.ProfileID {
			return nil, apperrors.ErrForbidden
		}
	default:
		return nil, apperrors.ErrForbidden
	}
	return document, nil
}

func (s *documentService) ListDocuments(ctx context.Context, params dto.ListDocumentsParams, requester *domain.Profile) ([]domain.Document, error) {
	filter := portsrepo.DocumentFilter{
		Limit:  params.Limit,
		Offset: params.Offset,
	}
	switch requester.Role {
	case domain.RoleClient:
		filter.ClientID = requester.ProfileID
	case domain.RoleBookkeeper:
		filter.BookkeeperID = requester.ProfileID
		filter.ClientID = params.ClientID
	case domain.RoleAdmin:
		filter.ClientID = params.ClientID
	default:
		return nil, apperrors.ErrForbidden
	}

	documents, err := s.documentRepo.FindDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return documents, nil
}

func (s *documentService) ListTemplates(ctx context.Context) (dto.ListTemplatesResponse, error) {
	templates, err := s.provider.ListTemplates(ctx)
	if err != nil {
		return dto.ListTemplatesResponse{}, err
	}

	out := make([]dto.TemplateResponse, len(templates))
	for i, t := range templates {
		out[i] = dto.TemplateResponse{
			TemplateID: t.ID,
			Name:       t.Name,
			BuilderURL: s.provider.BuilderURL(t.Slug),
		}
	}
	return dto.ListTemplatesResponse{Templates: out}, nil
}
