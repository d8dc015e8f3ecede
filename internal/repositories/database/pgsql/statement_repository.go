package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/akaunku/akaunku-backend/internal/apperrors"
	"github.com/akaunku/akaunku-backend/internal/core/domain"
	portsrepo "github.com/akaunku/akaunku-backend/internal/core/ports/repositories"
	"github.com/akaunku/akaunku-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxStatementRepository struct {
	BaseRepository
}

func newPgxStatementRepository(db *pgxpool.Pool) portsrepo.StatementRepository {
	return &PgxStatementRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.StatementRepository = (*PgxStatementRepository)(nil)

func toModelStatement(d domain.FinancialStatement) models.FinancialStatement {
	return models.FinancialStatement{
		StatementID:      d.StatementID,
		ClientID:         d.ClientID,
		BookkeeperID:     d.BookkeeperID,
		Year:             d.Year,
		Revenue:          d.Revenue,
		Cost:             d.Cost,
		Expenses:         d.Expenses,
		FixedAsset:       d.FixedAsset,
		CurrentAsset:     d.CurrentAsset,
		FixedLiability:   d.FixedLiability,
		CurrentLiability: d.CurrentLiability,
		OwnersEquity:     d.OwnersEquity,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainStatement(m models.FinancialStatement) domain.FinancialStatement {
	return domain.FinancialStatement{
		StatementID:      m.StatementID,
		ClientID:         m.ClientID,
		BookkeeperID:     m.BookkeeperID,
		Year:             m.Year,
		Revenue:          m.Revenue,
		Cost:             m.Cost,
		Expenses:         m.Expenses,
		FixedAsset:       m.FixedAsset,
		CurrentAsset:     m.CurrentAsset,
		FixedLiability:   m.FixedLiability,
		CurrentLiability: m.CurrentLiability,
		OwnersEquity:     m.OwnersEquity,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const statementColumns = `statement_id, client_id, bookkeeper_id, year,
		revenue, cost, expenses,
		fixed_asset, current_asset, fixed_liability, current_liability, owners_equity,
		created_at, created_by, last_updated_at, last_updated_by`

func scanStatement(row pgx.Row) (models.FinancialStatement, error) {
	var m models.FinancialStatement
	err := row.Scan(
		&m.StatementID,
		&m.ClientID,
		&m.BookkeeperID,
		&m.Year,
		&m.Revenue,
		&m.Cost,
		&m.Expenses,
		&m.FixedAsset,
		&m.CurrentAsset,
		&m.FixedLiability,
		&m.CurrentLiability,
		&m.OwnersEquity,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

const upsertStatementQuery = `
        INSERT INTO financial_statements (statement_id, client_id, bookkeeper_id, year,
            revenue, cost, expenses,
            fixed_asset, current_asset, fixed_liability, current_liability, owners_equity,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
        ON CONFLICT (statement_id) DO UPDATE SET
            revenue = EXCLUDED.revenue,
            cost = EXCLUDED.cost,
            expenses = EXCLUDED.expenses,
            fixed_asset = EXCLUDED.fixed_asset,
            current_asset = EXCLUDED.current_asset,
            fixed_liability = EXCLUDED.fixed_liability,
            current_liability = EXCLUDED.current_liability,
            owners_equity = EXCLUDED.owners_equity,
            last_updated_at = EXCLUDED.last_updated_at,
            last_updated_by = EXCLUDED.last_updated_by;
    `

func statementUpsertArgs(m models.FinancialStatement) []any {
	return []any{
		m.StatementID,
		m.ClientID,
		m.BookkeeperID,
		m.Year,
		m.Revenue,
		m.Cost,
		m.Expenses,
		m.FixedAsset,
		m.CurrentAsset,
		m.FixedLiability,
		m.CurrentLiability,
		m.OwnersEquity,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	}
}

func (r *PgxStatementRepository) SaveStatement(ctx context.Context, statement domain.FinancialStatement) error {
	m := toModelStatement(statement)
	_, err := r.Pool.Exec(ctx, upsertStatementQuery, statementUpsertArgs(m)...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("a statement already exists for this client and year: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save statement: %w", err)
	}
	return nil
}

// SaveStatementWithComputation writes the statement and its computation in
// one transaction so a crash between the two writes cannot leave them
// inconsistent.
func (r *PgxStatementRepository) SaveStatementWithComputation(ctx context.Context, statement domain.FinancialStatement, computation domain.TaxComputation) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := toModelStatement(statement)
	if _, err := tx.Exec(ctx, upsertStatementQuery, statementUpsertArgs(m)...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("a statement already exists for this client and year: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save statement in transaction: %w", err)
	}

	cm := toModelComputation(computation)
	if _, err := tx.Exec(ctx, upsertComputationQuery, computationUpsertArgs(cm)...); err != nil {
		return fmt.Errorf("failed to save tax computation in transaction: %w", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxStatementRepository) FindStatementByID(ctx context.Context, statementID string) (*domain.FinancialStatement, error) {
	query := `SELECT ` + statementColumns + ` FROM financial_statements WHERE statement_id = $1;`
	m, err := scanStatement(r.Pool.QueryRow(ctx, query, statementID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find statement by ID %s: %w", statementID, err)
	}
	d := toDomainStatement(m)
	return &d, nil
}

func (r *PgxStatementRepository) FindStatements(ctx context.Context, filter portsrepo.StatementFilter) ([]domain.FinancialStatement, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + statementColumns + `
        FROM financial_statements
        WHERE ($1 = '' OR client_id = $1)
          AND ($2 = '' OR bookkeeper_id = $2)
          AND ($3 = 0 OR year = $3)
        ORDER BY year DESC, created_at DESC
        LIMIT $4 OFFSET $5;`
	rows, err := r.Pool.Query(ctx, query, filter.ClientID, filter.BookkeeperID, filter.Year, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query statements: %w", err)
	}
	defer rows.Close()

	statements := []domain.FinancialStatement{}
	for rows.Next() {
		m, err := scanStatement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan statement row: %w", err)
		}
		statements = append(statements, toDomainStatement(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating statement rows: %w", rows.Err())
	}
	return statements, nil
}

func (r *PgxStatementRepository) UpdateStatement(ctx context.Context, statement domain.FinancialStatement) error {
	m := toModelStatement(statement)
	query := `
        UPDATE financial_statements
        SET revenue = $1, cost = $2, expenses = $3,
            fixed_asset = $4, current_asset = $5,
            fixed_liability = $6, current_liability = $7, owners_equity = $8,
            last_updated_at = $9, last_updated_by = $10
        WHERE statement_id = $11;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Revenue,
		m.Cost,
		m.Expenses,
		m.FixedAsset,
		m.CurrentAsset,
		m.FixedLiability,
		m.CurrentLiability,
		m.OwnersEquity,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.StatementID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update statement query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("statement not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxStatementRepository) DeleteStatement(ctx context.Context, statementID string) error {
	// The tax_computations FK cascades, removing any linked computation.
	query := `DELETE FROM financial_statements WHERE statement_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, statementID)
	if err != nil {
		return fmt.Errorf("failed to delete statement: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("statement not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
