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

type PgxProfileRepository struct {
	BaseRepository
}

func newPgxProfileRepository(db *pgxpool.Pool) portsrepo.ProfileRepository {
	return &PgxProfileRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ProfileRepository = (*PgxProfileRepository)(nil)

func toModelProfile(d domain.Profile) models.Profile {
	m := models.Profile{
		ProfileID:    d.ProfileID,
		Email:        d.Email,
		FullName:     d.FullName,
		Role:         string(d.Role),
		PasswordHash: d.PasswordHash,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
		DeletedAt: d.DeletedAt,
	}
	if d.RefreshTokenHash != "" {
		m.RefreshTokenHash = sql.NullString{String: d.RefreshTokenHash, Valid: true}
	}
	if d.RefreshTokenExpiryTime != nil {
		m.RefreshTokenExpiryTime = sql.NullTime{Time: *d.RefreshTokenExpiryTime, Valid: true}
	}
	return m
}

func toDomainProfile(m models.Profile) domain.Profile {
	d := domain.Profile{
		ProfileID:    m.ProfileID,
		Email:        m.Email,
		FullName:     m.FullName,
		Role:         domain.UserRole(m.Role),
		PasswordHash: m.PasswordHash,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
		DeletedAt: m.DeletedAt,
	}
	if m.RefreshTokenHash.Valid {
		d.RefreshTokenHash = m.RefreshTokenHash.String
	}
	if m.RefreshTokenExpiryTime.Valid {
		t := m.RefreshTokenExpiryTime.Time
		d.RefreshTokenExpiryTime = &t
	}
	return d
}

const profileColumns = `profile_id, email, full_name, role, password_hash,
		created_at, created_by, last_updated_at, last_updated_by, deleted_at,
		refresh_token_hash, refresh_token_expiry_time`

func scanProfile(row pgx.Row) (models.Profile, error) {
	var m models.Profile
	err := row.Scan(
		&m.ProfileID,
		&m.Email,
		&m.FullName,
		&m.Role,
		&m.PasswordHash,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
		&m.RefreshTokenHash,
		&m.RefreshTokenExpiryTime,
	)
	return m, err
}

func (r *PgxProfileRepository) SaveProfile(ctx context.Context, profile domain.Profile) error {
	m := toModelProfile(profile)
	query := `
        INSERT INTO profiles (profile_id, email, full_name, role, password_hash,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.ProfileID,
		m.Email,
		m.FullName,
		m.Role,
		m.PasswordHash,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("profile email already registered: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

func (r *PgxProfileRepository) FindProfileByID(ctx context.Context, profileID string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE profile_id = $1 AND deleted_at IS NULL;`
	m, err := scanProfile(r.Pool.QueryRow(ctx, query, profileID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find profile by ID %s: %w", profileID, err)
	}
	d := toDomainProfile(m)
	return &d, nil
}

func (r *PgxProfileRepository) FindProfileByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE email = $1 AND deleted_at IS NULL;`
	m, err := scanProfile(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find profile by email: %w", err)
	}
	d := toDomainProfile(m)
	return &d, nil
}

func (r *PgxProfileRepository) FindProfiles(ctx context.Context, role domain.UserRole, limit, offset int) ([]domain.Profile, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + profileColumns + `
        FROM profiles
        WHERE deleted_at IS NULL AND ($1 = '' OR role = $1)
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3;`
	rows, err := r.Pool.Query(ctx, query, string(role), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	profiles := []domain.Profile{}
	for rows.Next() {
		m, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile row: %w", err)
		}
		profiles = append(profiles, toDomainProfile(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating profile rows: %w", rows.Err())
	}
	return profiles, nil
}

func (r *PgxProfileRepository) UpdateProfile(ctx context.Context, profile domain.Profile) error {
	m := toModelProfile(profile)
	query := `
        UPDATE profiles
        SET full_name = $1, last_updated_at = $2, last_updated_by = $3
        WHERE profile_id = $4 AND deleted_at IS NULL;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.FullName,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.ProfileID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update profile query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("profile not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxProfileRepository) UpdateRefreshToken(ctx context.Context, profileID string, refreshTokenHash string, expiryTime time.Time) error {
	query := `
        UPDATE profiles
        SET refresh_token_hash = $1, refresh_token_expiry_time = $2
        WHERE profile_id = $3 AND deleted_at IS NULL;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, refreshTokenHash, expiryTime, profileID)
	if err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("profile not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxProfileRepository) ClearRefreshToken(ctx context.Context, profileID string) error {
	query := `
        UPDATE profiles
        SET refresh_token_hash = NULL, refresh_token_expiry_time = NULL
        WHERE profile_id = $1 AND deleted_at IS NULL;
    `
	if _, err := r.Pool.Exec(ctx, query, profileID); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}

func (r *PgxProfileRepository) MarkProfileDeleted(ctx context.Context, profileID string, deletedAt time.Time, deletedBy string) error {
	query := `
        UPDATE profiles
        SET deleted_at = $1, last_updated_at = $1, last_updated_by = $2
        WHERE profile_id = $3 AND deleted_at IS NULL;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, deletedAt, deletedBy, profileID)
	if err != nil {
		return fmt.Errorf("failed to mark profile as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("profile not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}
