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

// statementService implements StatementSvcFacade. Every operation scopes
// its data by the requester: bookkeepers act on statements they maintain,
// clients read their own, admins see everything.
type statementService struct {
	BaseService
	statementRepo   portsrepo.StatementRepository
	computationRepo portsrepo.TaxComputationRepository
	profileRepo     portsrepo.ProfileRepository
}

// NewStatementService creates a new instance of statementService.
func NewStatementService(
	statementRepo portsrepo.StatementRepository,
	computationRepo portsrepo.TaxComputationRepository,
	profileRepo portsrepo.ProfileRepository,
) portssvc.StatementSvcFacade {
	return &statementService{
		statementRepo:   statementRepo,
		computationRepo: computationRepo,
		profileRepo:     profileRepo,
	}
}

// authorizeStatementRead checks whether the requester may see a statement.
func authorizeStatementRead(statement *domain.FinancialStatement, requester *domain.Profile) error {
	switch requester.Role {
	case domain.RoleAdmin:
		return nil
	case domain.RoleBookkeeper:
		if statement.BookkeeperID == requester.ProfileID {
			return nil
		}
	case domain.RoleClient:
		if statement.ClientID == requester.ProfileID {
			return nil
		}
	}
	return apperrors.ErrForbidden
}

// authorizeStatementWrite checks whether the requester may modify a
// statement. Clients never can; bookkeepers only touch their own rows.
func authorizeStatementWrite(statement *domain.FinancialStatement, requester *domain.Profile) error {
	if requester.Role == domain.RoleAdmin {
		return nil
	}
	if requester.Role == domain.RoleBookkeeper && statement.BookkeeperID == requester.ProfileID {
		return nil
	}
	return apperrors.ErrForbidden
}

func (s *statementService) CreateStatement(ctx context.Context, req dto.CreateStatementRequest, bookkeeper *domain.Profile) (*domain.FinancialStatement, *domain.TaxComputation, error) {
	client, err := s.profileRepo.FindProfileByID(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, fmt.Errorf("client %s not found: %w", req.ClientID, apperrors.ErrValidation)
		}
		return nil, nil, fmt.Errorf("failed to verify client for statement: %w", err)
	}
	if client.Role != domain.RoleClient {
		return nil, nil, fmt.Errorf("profile %s is not a client: %w", req.ClientID, apperrors.ErrValidation)
	}

	now := time.Now()
	statementID := req.StatementID
	if statementID == "" {
		statementID = uuid.NewString()
	} else {
		// Resubmits upsert in place, but only over a row the bookkeeper owns.
		existing, err := s.statementRepo.FindStatementByID(ctx, statementID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, fmt.Errorf("failed to check existing statement: %w", err)
		}
		if existing != nil {
			if authErr := authorizeStatementWrite(existing, bookkeeper); authErr != nil {
				return nil, nil, authErr
			}
		}
	}

	statement := domain.FinancialStatement{
		StatementID:      statementID,
		ClientID:         req.ClientID,
		BookkeeperID:     bookkeeper.ProfileID,
		Year:             req.Year,
		Revenue:          req.Revenue,
		Cost:             req.Cost,
		Expenses:         req.Expenses,
		FixedAsset:       req.FixedAsset,
		CurrentAsset:     req.CurrentAsset,
		FixedLiability:   req.FixedLiability,
		CurrentLiability: req.CurrentLiability,
		OwnersEquity:     req.OwnersEquity,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     bookkeeper.ProfileID,
			LastUpdatedAt: now,
			LastUpdatedBy: bookkeeper.ProfileID,
		},
	}

	if req.Tax == nil {
		if err := s.statementRepo.SaveStatement(ctx, statement); err != nil {
			return nil, nil, err
		}
		s.LogInfo(ctx, "statement saved",
			slog.String("statement_id", statement.StatementID),
			slog.String("client_id", statement.ClientID),
			slog.Int("year", statement.Year))
		return &statement, nil, nil
	}

	computation := buildComputation(statement.StatementID, *req.Tax, bookkeeper.ProfileID, now)
	if err := s.statementRepo.SaveStatementWithComputation(ctx, statement, computation); err != nil {
		return nil, nil, err
	}
	s.LogInfo(ctx, "statement saved with tax computation",
		slog.String("statement_id", statement.StatementID),
		slog.String("client_id", statement.ClientID),
		slog.Int("year", statement.Year))
	return &statement, &computation, nil
}

func (s *statementService) GetStatement(ctx context.Context, statementID string, requester *domain.Profile) (*domain.FinancialStatement, *domain.TaxComputation, error) {
	statement, err := s.statementRepo.FindStatementByID(ctx, statementID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("failed to get statement: %w", err)
	}
	if err := authorizeStatementRead(statement, requester); err != nil {
		return nil, nil, err
	}

	computation, err := s.computationRepo.FindComputationByStatementID(ctx, statementID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return statement, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to get tax computation for statement: %w", err)
	}
	return statement, computation, nil
}

func (s *statementService) ListStatements(ctx context.Context, params dto.ListStatementsParams, requester *domain.Profile) ([]domain.FinancialStatement, error) {
	filter := portsrepo.StatementFilter{
		Year:   params.Year,
		Limit:  params.Limit,
		Offset: params.Offset,
	}
	switch requester.Role {
	case domain.RoleClient:
		// Clients only ever see their own statements.
		filter.ClientID = requester.ProfileID
	case domain.RoleBookkeeper:
		filter.BookkeeperID = requester.ProfileID
		filter.ClientID = params.ClientID
	case domain.RoleAdmin:
		filter.ClientID = params.ClientID
	default:
		return nil, apperrors.ErrForbidden
	}

	statements, err := s.statementRepo.FindStatements(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list statements: %w", err)
	}
	return statements, nil
}

func (s *statementService) GetTaxComputation(ctx context.Context, statementID string, requester *domain.Profile) (*domain.TaxComputation, error) {
	statement, err := s.statementRepo.FindStatementByID(ctx, statementID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get statement for computation: %w", err)
	}
	if err := authorizeStatementRead(statement, requester); err != nil {
		return nil, err
	}

	computation, err := s.computationRepo.FindComputationByStatementID(ctx, statementID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get tax computation: %w", err)
	}
	return computation, nil
}

func (s *statementService) UpdateStatement(ctx context.Context, statementID string, req dto.UpdateStatementRequest, bookkeeper *domain.Profile) (*domain.FinancialStatement, error) {
	statement, err := s.statementRepo.FindStatementByID(ctx, statementID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find statement for update: %w", err)
	}
	if err := authorizeStatementWrite(statement, bookkeeper); err != nil {
		return nil, err
	}

	if req.Revenue != nil {
		statement.Revenue = *req.Revenue
	}
	if req.Cost != nil {
		statement.Cost = *req.Cost
	}
	if req.Expenses != nil {
		statement.Expenses = *req.Expenses
	}
	if req.FixedAsset != nil {
		statement.FixedAsset = *req.FixedAsset
	}
	if req.CurrentAsset != nil {
		statement.CurrentAsset = *req.CurrentAsset
	}
	if req.FixedLiability != nil {
		statement.FixedLiability = *req.FixedLiability
	}
	if req.CurrentLiability != nil {
		statement.CurrentLiability = *req.CurrentLiability
	}
	if req.OwnersEquity != nil {
		statement.OwnersEquity = *req.OwnersEquity
	}
	statement.LastUpdatedAt = time.Now()
	statement.LastUpdatedBy = bookkeeper.ProfileID

	if err := s.statementRepo.UpdateStatement(ctx, *statement); err != nil {
		return nil, fmt.Errorf("failed to update statement: %w", err)
	}
	return statement, nil
}

func (s *statementService) DeleteStatement(ctx context.Context, statementID string, bookkeeper *domain.Profile) error {
	statement, err := s.statementRepo.FindStatementByID(ctx, statementID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to find statement for delete: %w", err)
	}
	if err := authorizeStatementWrite(statement, bookkeeper); err != nil {
		return err
	}

	if err := s.statementRepo.DeleteStatement(ctx, statementID); err != nil {
		return fmt.Errorf("failed to delete statement: %w", err)
	}
	s.LogInfo(ctx, "statement deleted", slog.String("statement_id", statementID))
	return nil
}

func (s *statementService) SaveTaxComputation(ctx context.Context, statementID string, req dto.TaxComputationRequest, bookkeeper *domain.Profile) (*domain.TaxComputation, error) {
	statement, err := s.statementRepo.FindStatementByID(ctx, statementID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find statement for computation: %w", err)
	}
	if err := authorizeStatementWrite(statement, bookkeeper); err != nil {
		return nil, err
	}

	now := time.Now()
	computation := buildComputation(statementID, req, bookkeeper.ProfileID, now)

	// When replacing an existing computation, keep its identity and
	// creation audit trail; the upsert only rewrites the figures.
	existing, err := s.computationRepo.FindComputationByStatementID(ctx, statementID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing computation: %w", err)
	}
	if existing != nil {
		computation.ComputationID = existing.ComputationID
		computation.CreatedAt = existing.CreatedAt
		computation.CreatedBy = existing.CreatedBy
	}

	if err := s.computationRepo.SaveComputation(ctx, computation); err != nil {
		return nil, fmt.Errorf("failed to save tax computation: %w", err)
	}
	return &computation, nil
}

// buildComputation assembles a fresh computation row from the request.
func buildComputation(statementID string, req dto.TaxComputationRequest, authorID string, now time.Time) domain.TaxComputation {
	return domain.TaxComputation{
		ComputationID:        uuid.NewString(),
		StatementID:          statementID,
		BusinessIncome:       req.BusinessIncome,
		DisallowableExpenses: req.DisallowableExpenses,
		CapitalAllowance:     req.CapitalAllowance,
		PersonalRelief:       req.PersonalRelief,
		TaxRebate:            req.TaxRebate,
		TaxRate:              req.TaxRate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     authorID,
			LastUpdatedAt: now,
			LastUpdatedBy: authorID,
		},
	}
}
