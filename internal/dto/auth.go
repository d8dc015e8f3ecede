package dto

import (
	"github.com/akaunku/akaunku-backend/internal/core/domain"
)

// RegisterRequest is the payload for public self-signup. Self-signup always
// produces a client profile; bookkeeper and admin profiles come from the
// admin create-user route.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"fullName" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the payload for email/password login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the access token and the authenticated profile. The
// refresh token travels separately as an HTTP-only cookie.
type AuthResponse struct {
	AccessToken string          `json:"accessToken"`
	Profile     ProfileResponse `json:"profile"`
}

// AdminCreateUserRequest is the payload for the admin-only create-user
// route. Unlike self-signup it may assign any role.
type AdminCreateUserRequest struct {
	Email    string          `json:"email" binding:"required,email"`
	FullName string          `json:"fullName" binding:"required"`
	Password string          `json:"password" binding:"required,min=8"`
	Role     domain.UserRole `json:"role" binding:"required"`
}
