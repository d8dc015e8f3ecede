package services

import (
	"context"

	"github.com/akaunku/akaunku-backend/internal/core/domain"
	"github.com/akaunku/akaunku-backend/internal/dto"
)

// StatementReaderSvc defines read operations for financial statements.
// Every read is scoped by the requester's identity: bookkeepers see rows
// they maintain, clients see their own rows, mirroring row-level security.
type StatementReaderSvc interface {
	// GetStatement retrieves one statement with its tax computation, if
	// any. The computation pointer is nil when none exists.
	GetStatement(ctx context.Context, statementID string, requester *domain.Profile) (*domain.FinancialStatement, *domain.TaxComputation, error)

	// ListStatements retrieves statements visible to the requester.
	ListStatements(ctx context.Context, params dto.ListStatementsParams, requester *domain.Profile) ([]domain.FinancialStatement, error)

	// GetTaxComputation retrieves the computation linked to a statement.
	GetTaxComputation(ctx context.Context, statementID string, requester *domain.Profile) (*domain.TaxComputation, error)
}

// StatementWriterSvc defines write operations for financial statements.
// All writes are bookkeeper-only.
type StatementWriterSvc interface {
	// CreateStatement upserts a statement for one of the bookkeeper's
	// clients. When the request embeds a tax block, the statement and
	// computation are written in a single transaction.
	CreateStatement(ctx context.Context, req dto.CreateStatementRequest, bookkeeper *domain.Profile) (*domain.FinancialStatement, *domain.TaxComputation, error)

	// UpdateStatement updates statement figures.
	UpdateStatement(ctx context.Context, statementID string, req dto.UpdateStatementRequest, bookkeeper *domain.Profile) (*domain.FinancialStatement, error)

	// DeleteStatement removes a statement and its computation.
	DeleteStatement(ctx context.Context, statementID string, bookkeeper *domain.Profile) error

	// SaveTaxComputation creates or replaces the computation linked to a
	// statement.
	SaveTaxComputation(ctx context.Context, statementID string, req dto.TaxComputationRequest, bookkeeper *domain.Profile) (*domain.TaxComputation, error)
}

// StatementSvcFacade combines statement service interfaces.
type StatementSvcFacade interface {
	StatementReaderSvc
	StatementWriterSvc
}
