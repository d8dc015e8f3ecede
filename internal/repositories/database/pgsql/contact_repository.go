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

type PgxContactRepository struct {
	BaseRepository
}

func newPgxContactRepository(db *pgxpool.Pool) portsrepo.ContactRepository {
	return &PgxContactRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ContactRepository = (*PgxContactRepository)(nil)

func toDomainMessage(m models.ContactMessage) domain.ContactMessage {
	return domain.ContactMessage{
		MessageID: m.MessageID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		Resolved:  m.Resolved,
		CreatedAt: m.CreatedAt,
	}
}

const contactColumns = `message_id, name, email, subject, message, resolved, created_at`

func scanMessage(row pgx.Row) (models.ContactMessage, error) {
	var m models.ContactMessage
	err := row.Scan(
		&m.MessageID,
		&m.Name,
		&m.Email,
		&m.Subject,
		&m.Message,
		&m.Resolved,
		&m.CreatedAt,
	)
	return m, err
}

func (r *PgxContactRepository) SaveMessage(ctx context.Context, message domain.ContactMessage) error {
	query := `
        INSERT INTO contact_messages (message_id, name, email, subject, message, resolved, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.Pool.Exec(ctx, query,
		message.MessageID,
		message.Name,
		message.Email,
		message.Subject,
		message.Message,
		message.Resolved,
		message.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save contact message: %w", err)
	}
	return nil
}

func (r *PgxContactRepository) FindMessageByID(ctx context.Context, messageID string) (*domain.ContactMessage, error) {
	query := `SELECT ` + contactColumns + ` FROM contact_messages WHERE message_id = $1;`
	m, err := scanMessage(r.Pool.QueryRow(ctx, query, messageID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find contact message by ID %s: %w", messageID, err)
	}
	d := toDomainMessage(m)
	return &d, nil
}

func (r *PgxContactRepository) FindMessages(ctx context.Context, includeResolved bool, limit, offset int) ([]domain.ContactMessage, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + contactColumns + `
        FROM contact_messages
        WHERE ($1 OR resolved = FALSE)
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3;`
	rows, err := r.Pool.Query(ctx, query, includeResolved, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query contact messages: %w", err)
	}
	defer rows.Close()

	messages := []domain.ContactMessage{}
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact message row: %w", err)
		}
		messages = append(messages, toDomainMessage(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating contact message rows: %w", rows.Err())
	}
	return messages, nil
}

func (r *PgxContactRepository) MarkMessageResolved(ctx context.Context, messageID string) error {
	query := `UPDATE contact_messages SET resolved = TRUE WHERE message_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, messageID)
	if err != nil {
		return fmt.Errorf("failed to mark message resolved: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("contact message not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
