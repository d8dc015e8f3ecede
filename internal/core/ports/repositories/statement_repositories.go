package repositories

import (
	"context"

	"github.com/akaunku/akaunku-backend/internal/core/domain"
)

// StatementFilter narrows statement listings. Zero values mean "no filter".
type StatementFilter struct {
	ClientID     string
	BookkeeperID string
	Year         int
	Limit        int
	Offset       int
}

// StatementRepository defines persistence operations for financial
// statements and their linked tax computations.
type StatementRepository interface {
	// SaveStatement upserts a statement by ID. A different row for the same
	// (client, year) yields ErrDuplicate via the unique constraint.
	SaveStatement(ctx context.Context, statement domain.FinancialStatement) error

	// SaveStatementWithComputation writes the statement and its tax
	// computation in one database transaction; both commit or neither does.
	SaveStatementWithComputation(ctx context.Context, statement domain.FinancialStatement, computation domain.TaxComputation) error

	// FindStatementByID retrieves one statement.
	FindStatementByID(ctx context.Context, statementID string) (*domain.FinancialStatement, error)

	// FindStatements retrieves statements matching the filter, newest year first.
	FindStatements(ctx context.Context, filter StatementFilter) ([]domain.FinancialStatement, error)

	// UpdateStatement updates statement figures.
	UpdateStatement(ctx context.Context, statement domain.FinancialStatement) error

	// DeleteStatement removes a statement and, via cascade, its computation.
	DeleteStatement(ctx context.Context, statementID string) error
}

// TaxComputationRepository defines persistence operations for tax
// computations.
type TaxComputationRepository interface {
	// SaveComputation upserts the computation for a statement; the
	// one-per-statement constraint makes the upsert well defined.
	SaveComputation(ctx context.Context, computation domain.TaxComputation) error

	// FindComputationByStatementID retrieves the computation linked to a statement.
	FindComputationByStatementID(ctx context.Context, statementID string) (*domain.TaxComputation, error)

	// FindComputationsByStatementIDs retrieves computations for several
	// statements at once, keyed by statement ID.
	FindComputationsByStatementIDs(ctx context.Context, statementIDs []string) (map[string]domain.TaxComputation, error)
}
