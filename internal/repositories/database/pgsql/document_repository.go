package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/akaunku/akaunku-backend/internal/apperrors"
	"github.com/akaunku/akaunku-backend/internal/core/domain"
	portsrepo "github.com/akaunku/akaunku-backend/internal/core/ports/repositories"
	"github.com/akaunku/akaunku-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDocumentRepository struct {
	BaseRepository
}

func newPgxDocumentRepository(db *pgxpool.Pool) portsrepo.DocumentRepository {
	return &PgxDocumentRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.DocumentRepository = (*PgxDocumentRepository)(nil)

func toModelDocument(d domain.Document) models.Document {
	m := models.Document{
		DocumentID:         d.DocumentID,
		ClientID:           d.ClientID,
		BookkeeperID:       d.BookkeeperID,
		Title:              d.Title,
		ProviderTemplateID: d.ProviderTemplateID,
		Status:             string(d.Status),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
	if d.ProviderSubmissionID != "" {
		m.ProviderSubmissionID = sql.NullString{String: d.ProviderSubmissionID, Valid: true}
	}
	if d.SigningURL != "" {
		m.SigningURL = sql.NullString{String: d.SigningURL, Valid: true}
	}
	return m
}

func toDomainDocument(m models.Document) domain.Document {
	return domain.Document{
		DocumentID:           m.DocumentID,
		ClientID:             m.ClientID,
		BookkeeperID:         m.BookkeeperID,
		Title:                m.Title,
		ProviderTemplateID:   m.ProviderTemplateID,
		ProviderSubmissionID: m.ProviderSubmissionID.String,
		Status:               domain.DocumentStatus(m.Status),
		SigningURL:           m.SigningURL.String,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const documentColumns = `document_id, client_id, bookkeeper_id, title, provider_template_id,
    provider_submission_id, status, signing_url, created_at, created_by, last_updated_at, last_updated_by`

func scanDocument(row pgx.Row) (models.Document, error) {
	var m models.Document
	err := row.Scan(
		&m.DocumentID,
		&m.ClientID,
		&m.BookkeeperID,
		&m.Title,
		&m.ProviderTemplateID,
		&m.ProviderSubmissionID,
		&m.Status,
		&m.SigningURL,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxDocumentRepository) SaveDocument(ctx context.Context, document domain.Document) error {
	m := toModelDocument(document)
	query := `
        INSERT INTO documents (` + documentColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.DocumentID,
		m.ClientID,
		m.BookkeeperID,
		m.Title,
		m.ProviderTemplateID,
		m.ProviderSubmissionID,
		m.Status,
		m.SigningURL,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

func (r *PgxDocumentRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE document_id = $1;`
	m, err := scanDocument(r.Pool.QueryRow(ctx, query, documentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find document by ID %s: %w", documentID, err)
	}
	d := toDomainDocument(m)
	return &d, nil
}

func (r *PgxDocumentRepository) FindDocuments(ctx context.Context, filter portsrepo.DocumentFilter) ([]domain.Document, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + documentColumns + `
        FROM documents
        WHERE ($1 = '' OR client_id = $1)
          AND ($2 = '' OR bookkeeper_id = $2)
          AND ($3 = '' OR status = $3)
        ORDER BY created_at DESC
        LIMIT $4 OFFSET $5;`
	rows, err := r.Pool.Query(ctx, query, filter.ClientID, filter.BookkeeperID, string(filter.Status), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	documents := []domain.Document{}
	for rows.Next() {
		m, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document row: %w", err)
		}
		documents = append(documents, toDomainDocument(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating document rows: %w", rows.Err())
	}
	return documents, nil
}

func (r *PgxDocumentRepository) UpdateDocumentStatus(ctx context.Context, documentID string, status domain.DocumentStatus, updatedBy string, updatedAt time.Time) error {
	query := `
        UPDATE documents
        SET status = $2, last_updated_by = $3, last_updated_at = $4
        WHERE document_id = $1;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, documentID, string(status), updatedBy, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update document status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("document not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxDocumentRepository) CountDocumentsByStatus(ctx context.Context, bookkeeperID string, status domain.DocumentStatus) (int, error) {
	query := `SELECT COUNT(*) FROM documents WHERE bookkeeper_id = $1 AND status = $2;`
	var count int
	if err := r.Pool.QueryRow(ctx, query, bookkeeperID, string(status)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count documents by status: %w", err)
	}
	return count, nil
}
