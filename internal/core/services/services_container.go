package services

import (
	portsrepo "github.com/akaunku/akaunku-backend/internal/core/ports/repositories"
	portssvc "github.com/akaunku/akaunku-backend/internal/core/ports/services"
	"github.com/akaunku/akaunku-backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, esignProvider ESignProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Auth = NewAuthService(cfg, repos.ProfileRepo)
	container.Profile = NewProfileService(repos.ProfileRepo)
	container.Statement = NewStatementService(repos.StatementRepo, repos.TaxComputationRepo, repos.ProfileRepo)
	container.Submission = NewSubmissionService(repos.TaxSubmissionRepo, repos.ProfileRepo)
	container.Dashboard = NewDashboardService(
		repos.StatementRepo,
		repos.TaxComputationRepo,
		repos.TaxSubmissionRepo,
		repos.DocumentRepo,
		repos.ProfileRepo,
	)
	container.Blog = NewBlogService(repos.BlogRepo)
	container.Contact = NewContactService(repos.ContactRepo)
	container.Document = NewDocumentService(repos.DocumentRepo, repos.ProfileRepo, esignProvider)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AuthSvcFacade       = (*authService)(nil)
	_ portssvc.ProfileSvcFacade    = (*profileService)(nil)
	_ portssvc.StatementSvcFacade  = (*statementService)(nil)
	_ portssvc.SubmissionSvcFacade = (*submissionService)(nil)
	_ portssvc.DashboardSvcFacade  = (*dashboardService)(nil)
	_ portssvc.BlogSvcFacade       = (*blogService)(nil)
	_ portssvc.ContactSvcFacade    = (*contactService)(nil)
	_ portssvc.DocumentSvcFacade   = (*documentService)(nil)
)
