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

type PgxTaxComputationRepository struct {
	BaseRepository
}

func newPgxTaxComputationRepository(db *pgxpool.Pool) portsrepo.TaxComputationRepository {
	return &PgxTaxComputationRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.TaxComputationRepository = (*PgxTaxComputationRepository)(nil)

func toModelComputation(d domain.TaxComputation) models.TaxComputation {
	return models.TaxComputation{
		ComputationID:        d.ComputationID,
		StatementID:          d.StatementID,
		BusinessIncome:       d.BusinessIncome,
		DisallowableExpenses: d.DisallowableExpenses,
		CapitalAllowance:     d.CapitalAllowance,
		PersonalRelief:       d.PersonalRelief,
		TaxRebate:            d.TaxRebate,
		TaxRate:              d.TaxRate,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainComputation(m models.TaxComputation) domain.TaxComputation {
	return domain.TaxComputation{
		ComputationID:        m.ComputationID,
		StatementID:          m.StatementID,
		BusinessIncome:       m.BusinessIncome,
		DisallowableExpenses: m.DisallowableExpenses,
		CapitalAllowance:     m.CapitalAllowance,
		PersonalRelief:       m.PersonalRelief,
		TaxRebate:            m.TaxRebate,
		TaxRate:              m.TaxRate,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const computationColumns = `computation_id, statement_id,
		business_income, disallowable_expenses, capital_allowance,
		personal_relief, tax_rebate, tax_rate,
		created_at, created_by, last_updated_at, last_updated_by`

// The one-computation-per-statement unique constraint makes an upsert on
// statement_id well defined.
const upsertComputationQuery = `
        INSERT INTO tax_computations (computation_id, statement_id,
            business_income, disallowable_expenses, capital_allowance,
            personal_relief, tax_rebate, tax_rate,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        ON CONFLICT (statement_id) DO UPDATE SET
            business_income = EXCLUDED.business_income,
            disallowable_expenses = EXCLUDED.disallowable_expenses,
            capital_allowance = EXCLUDED.capital_allowance,
            personal_relief = EXCLUDED.personal_relief,
            tax_rebate = EXCLUDED.tax_rebate,
            tax_rate = EXCLUDED.tax_rate,
            last_updated_at = EXCLUDED.last_updated_at,
            last_updated_by = EXCLUDED.last_updated_by;
    `

func computationUpsertArgs(m models.TaxComputation) []any {
	return []any{
		m.ComputationID,
		m.StatementID,
		m.BusinessIncome,
		m.DisallowableExpenses,
		m.CapitalAllowance,
		m.PersonalRelief,
		m.TaxRebate,
		m.TaxRate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	}
}

func scanComputation(row pgx.Row) (models.TaxComputation, error) {
	var m models.TaxComputation
	err := row.Scan(
		&m.ComputationID,
		&m.StatementID,
		&m.BusinessIncome,
		&m.DisallowableExpenses,
		&m.CapitalAllowance,
		&m.PersonalRelief,
		&m.TaxRebate,
		&m.TaxRate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxTaxComputationRepository) SaveComputation(ctx context.Context, computation domain.TaxComputation) error {
	m := toModelComputation(computation)
	if _, err := r.Pool.Exec(ctx, upsertComputationQuery, computationUpsertArgs(m)...); err != nil {
		return fmt.Errorf("failed to save tax computation: %w", err)
	}
	return nil
}

func (r *PgxTaxComputationRepository) FindComputationByStatementID(ctx context.Context, statementID string) (*domain.TaxComputation, error) {
	query := `SELECT ` + computationColumns + ` FROM tax_computations WHERE statement_id = $1;`
	m, err := scanComputation(r.Pool.QueryRow(ctx, query, statementID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find tax computation for statement %s: %w", statementID, err)
	}
	d := toDomainComputation(m)
	return &d, nil
}

func (r *PgxTaxComputationRepository) FindComputationsByStatementIDs(ctx context.Context, statementIDs []string) (map[string]domain.TaxComputation, error) {
	if len(statementIDs) == 0 {
		return map[string]domain.TaxComputation{}, nil
	}

	query := `SELECT ` + computationColumns + ` FROM tax_computations WHERE statement_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, statementIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query tax computations: %w", err)
	}
	defer rows.Close()

	computations := make(map[string]domain.TaxComputation, len(statementIDs))
	for rows.Next() {
		m, err := scanComputation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tax computation row: %w", err)
		}
		computations[m.StatementID] = toDomainComputation(m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating tax computation rows: %w", rows.Err())
	}
	return computations, nil
}
