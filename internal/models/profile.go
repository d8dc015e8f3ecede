package models

import (
	"database/sql"
	"time"
)

// Profile is the database representation of a user profile row.
type Profile struct {
	ProfileID    string `db:"profile_id"`
	Email        string `db:"email"`
	FullName     string `db:"full_name"`
	Role         string `db:"role"`
	PasswordHash string `db:"password_hash"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`

	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}
