package services

// ServiceContainer holds instances of all the application services. This is
// the main entry point for accessing service functionality and is what the
// handlers are wired against.
type ServiceContainer struct {
	Auth       AuthSvcFacade
	Profile    ProfileSvcFacade
	Statement  StatementSvcFacade
	Submission SubmissionSvcFacade
	Dashboard  DashboardSvcFacade
	Blog       BlogSvcFacade
	Contact    ContactSvcFacade
	Document   DocumentSvcFacade
}
