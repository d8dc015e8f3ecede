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

type PgxTaxSubmissionRepository struct {
	BaseRepository
}

func newPgxTaxSubmissionRepository(db *pgxpool.Pool) portsrepo.TaxSubmissionRepository {
	return &PgxTaxSubmissionRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.TaxSubmissionRepository = (*PgxTaxSubmissionRepository)(nil)

func toModelSubmission(d domain.TaxSubmission) models.TaxSubmission {
	m := models.TaxSubmission{
		SubmissionID:   d.SubmissionID,
		ClientID:       d.ClientID,
		BookkeeperID:   d.BookkeeperID,
		AssessmentYear: d.AssessmentYear,
		Status:         string(d.Status),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
	if d.SubmissionDate != nil {
		m.SubmissionDate.Time = *d.SubmissionDate
		m.SubmissionDate.Valid = true
	}
	return m
}

func toDomainSubmission(m models.TaxSubmission) domain.TaxSubmission {
	d := domain.TaxSubmission{
		SubmissionID:   m.SubmissionID,
		ClientID:       m.ClientID,
		BookkeeperID:   m.BookkeeperID,
		AssessmentYear: m.AssessmentYear,
		Status:         domain.SubmissionStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	if m.SubmissionDate.Valid {
		t := m.SubmissionDate.Time
		d.SubmissionDate = &t
	}
	return d
}

const submissionColumns = `submission_id, client_id, bookkeeper_id, assessment_year,
		status, submission_date,
		created_at, created_by, last_updated_at, last_updated_by`

func scanSubmission(row pgx.Row) (models.TaxSubmission, error) {
	var m models.TaxSubmission
	err := row.Scan(
		&m.SubmissionID,
		&m.ClientID,
		&m.BookkeeperID,
		&m.AssessmentYear,
		&m.Status,
		&m.SubmissionDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxTaxSubmissionRepository) SaveSubmission(ctx context.Context, submission domain.TaxSubmission) error {
	m := toModelSubmission(submission)
	query := `
        INSERT INTO tax_submissions (submission_id, client_id, bookkeeper_id, assessment_year,
            status, submission_date,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.SubmissionID,
		m.ClientID,
		m.BookkeeperID,
		m.AssessmentYear,
		m.Status,
		m.SubmissionDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save tax submission: %w", err)
	}
	return nil
}

func (r *PgxTaxSubmissionRepository) FindSubmissionByID(ctx context.Context, submissionID string) (*domain.TaxSubmission, error) {
	query := `SELECT ` + submissionColumns + ` FROM tax_submissions WHERE submission_id = $1;`
	m, err := scanSubmission(r.Pool.QueryRow(ctx, query, submissionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find tax submission by ID %s: %w", submissionID, err)
	}
	d := toDomainSubmission(m)
	return &d, nil
}

func (r *PgxTaxSubmissionRepository) FindSubmissions(ctx context.Context, filter portsrepo.SubmissionFilter) ([]domain.TaxSubmission, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + submissionColumns + `
        FROM tax_submissions
        WHERE ($1 = '' OR client_id = $1)
          AND ($2 = '' OR bookkeeper_id = $2)
          AND ($3 = 0 OR assessment_year = $3)
        ORDER BY assessment_year DESC, created_at DESC
        LIMIT $4 OFFSET $5;`
	rows, err := r.Pool.Query(ctx, query, filter.ClientID, filter.BookkeeperID, filter.AssessmentYear, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query tax submissions: %w", err)
	}
	defer rows.Close()

	submissions := []domain.TaxSubmission{}
	for rows.Next() {
		m, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tax submission row: %w", err)
		}
		submissions = append(submissions, toDomainSubmission(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating tax submission rows: %w", rows.Err())
	}
	return submissions, nil
}

func (r *PgxTaxSubmissionRepository) UpdateSubmission(ctx context.Context, submission domain.TaxSubmission) error {
	m := toModelSubmission(submission)
	query := `
        UPDATE tax_submissions
        SET status = $1, submission_date = $2, last_updated_at = $3, last_updated_by = $4
        WHERE submission_id = $5;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Status,
		m.SubmissionDate,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.SubmissionID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update submission query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("tax submission not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTaxSubmissionRepository) DeleteSubmission(ctx context.Context, submissionID string) error {
	query := `DELETE FROM tax_submissions WHERE submission_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, submissionID)
	if err != nil {
		return fmt.Errorf("failed to delete tax submission: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("tax submission not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTaxSubmissionRepository) CountSubmissionsByStatus(ctx context.Context, bookkeeperID string) (map[domain.SubmissionStatus]int, error) {
	query := `
        SELECT status, COUNT(*)
        FROM tax_submissions
        WHERE bookkeeper_id = $1
        GROUP BY status;
    `
	rows, err := r.Pool.Query(ctx, query, bookkeeperID)
	if err != nil {
		return nil, fmt.Errorf("failed to count submissions by status: %w", err)
	}
	defer rows.Close()

	counts := map[domain.SubmissionStatus]int{}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan submission count row: %w", err)
		}
		counts[domain.SubmissionStatus(status)] = count
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating submission count rows: %w", rows.Err())
	}
	return counts, nil
}
