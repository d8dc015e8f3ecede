package repositories

// RepositoryProvider bundles every repository implementation for injection
// into the service container.
type RepositoryProvider struct {
	ProfileRepo        ProfileRepository
	StatementRepo      StatementRepository
	TaxComputationRepo TaxComputationRepository
	TaxSubmissionRepo  TaxSubmissionRepository
	BlogRepo           BlogRepository
	ContactRepo        ContactRepository
	DocumentRepo       DocumentRepository
}
