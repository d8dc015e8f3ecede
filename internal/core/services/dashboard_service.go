package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/akaunku/akaunku-backend/internal/apperrors"
	"github.com/akaunku/akaunku-backend/internal/core/domain"
	portsrepo "github.com/akaunku/akaunku-backend/internal/core/ports/repositories"
	portssvc "github.com/akaunku/akaunku-backend/internal/core/ports/services"
	"github.com/akaunku/akaunku-backend/internal/dto"
	"github.com/akaunku/akaunku-backend/internal/utils/finance"
)

// rosterFetchLimit bounds the per-bookkeeper roster scan. Practices in the
// target segment run tens of clients, not thousands.
const rosterFetchLimit = 500

// dashboardService implements DashboardSvcFacade. It builds exactly one of
// the two dashboard shapes, chosen by the requester's role, so a client
// token can never pull bookkeeper data through this path.
type dashboardService struct {
	BaseService
	statementRepo   portsrepo.StatementRepository
	computationRepo portsrepo.TaxComputationRepository
	submissionRepo  portsrepo.TaxSubmissionRepository
	documentRepo    portsrepo.DocumentRepository
	profileRepo     portsrepo.ProfileRepository
}

// NewDashboardService creates a new instance of dashboardService.
func NewDashboardService(
	statementRepo portsrepo.StatementRepository,
	computationRepo portsrepo.TaxComputationRepository,
	submissionRepo portsrepo.TaxSubmissionRepository,
	documentRepo portsrepo.DocumentRepository,
	profileRepo portsrepo.ProfileRepository,
) portssvc.DashboardSvcFacade {
	return &dashboardService{
		statementRepo:   statementRepo,
		computationRepo: computationRepo,
		submissionRepo:  submissionRepo,
		documentRepo:    documentRepo,
		profileRepo:     profileRepo,
	}
}

func (s *dashboardService) BuildDashboard(ctx context.Context, requester *domain.Profile) (*dto.DashboardResponse, error) {
	switch requester.Role {
	case domain.RoleBookkeeper, domain.RoleAdmin:
		bookkeeper, err := s.buildBookkeeperDashboard(ctx, requester)
		if err != nil {
			return nil, err
		}
		return &dto.DashboardResponse{Role: requester.Role, Bookkeeper: bookkeeper}, nil
	case domain.RoleClient:
		client, err := s.buildClientDashboard(ctx, requester)
		if err != nil {
			return nil, err
		}
		return &dto.DashboardResponse{Role: requester.Role, Client: client}, nil
	default:
		return nil, apperrors.ErrForbidden
	}
}

// buildBookkeeperDashboard assembles the client roster plus workload
// counters for one bookkeeper.
func (s *dashboardService) buildBookkeeperDashboard(ctx context.Context, bookkeeper *domain.Profile) (*dto.BookkeeperDashboard, error) {
	statements, err := s.statementRepo.FindStatements(ctx, portsrepo.StatementFilter{
		BookkeeperID: bookkeeper.ProfileID,
		Limit:        rosterFetchLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load statements for dashboard: %w", err)
	}

	// Statements arrive newest year first, so the first row seen per
	// client is that client's latest statement.
	latestByClient := make(map[string]*domain.FinancialStatement)
	clientOrder := []string{}
	for i := range statements {
		st := &statements[i]
		if _, seen := latestByClient[st.ClientID]; !seen {
			latestByClient[st.ClientID] = st
			clientOrder = append(clientOrder, st.ClientID)
		}
	}

	clients := []dto.ClientSummary{}
	for _, clientID := range clientOrder {
		profile, err := s.profileRepo.FindProfileByID(ctx, clientID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				// Soft-deleted client; its figures no longer belong on the roster.
				continue
			}
			return nil, fmt.Errorf("failed to load client profile for dashboard: %w", err)
		}
		latest := latestByClient[clientID]
		revenue := latest.Revenue
		netProfit := finance.NetProfit(finance.GrossProfit(latest.Revenue, latest.Cost), latest.Expenses)
		clients = append(clients, dto.ClientSummary{
			Client:     dto.ToProfileResponse(profile),
			LatestYear: latest.Year,
			Revenue:    &revenue,
			NetProfit:  &netProfit,
		})
	}

	submissionCounts, err := s.submissionRepo.CountSubmissionsByStatus(ctx, bookkeeper.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("failed to count submissions for dashboard: %w", err)
	}

	pendingDocuments, err := s.documentRepo.CountDocumentsByStatus(ctx, bookkeeper.ProfileID, domain.DocumentSent)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending documents for dashboard: %w", err)
	}

	return &dto.BookkeeperDashboard{
		Clients:          clients,
		StatementCount:   len(statements),
		SubmissionCounts: submissionCounts,
		PendingDocuments: pendingDocuments,
	}, nil
}

// buildClientDashboard assembles the per-year statement history with
// derived metrics and tax figures for one client.
func (s *dashboardService) buildClientDashboard(ctx context.Context, client *domain.Profile) (*dto.ClientDashboard, error) {
	statements, err := s.statementRepo.FindStatements(ctx, portsrepo.StatementFilter{
		ClientID: client.ProfileID,
		Limit:    rosterFetchLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load statements for client dashboard: %w", err)
	}

	statementIDs := make([]string, len(statements))
	for i, st := range statements {
		statementIDs[i] = st.StatementID
	}
	computations := map[string]domain.TaxComputation{}
	if len(statementIDs) > 0 {
		computations, err = s.computationRepo.FindComputationsByStatementIDs(ctx, statementIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load tax computations for client dashboard: %w", err)
		}
	}

	years := make([]dto.ClientYear, len(statements))
	for i, st := range statements {
		year := dto.ClientYear{
			Statement: st,
			Metrics:   finance.ComputeStatementMetrics(st),
		}
		if comp, ok := computations[st.StatementID]; ok {
			result := finance.ComputeTax(comp)
			year.Tax = &result
		}
		years[i] = year
	}

	submissions, err := s.submissionRepo.FindSubmissions(ctx, portsrepo.SubmissionFilter{
		ClientID: client.ProfileID,
		Limit:    rosterFetchLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load submissions for client dashboard: %w", err)
	}

	return &dto.ClientDashboard{
		Years:       years,
		Submissions: submissions,
	}, nil
}
