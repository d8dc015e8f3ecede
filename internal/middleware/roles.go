package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/akaunku/akaunku-backend/internal/apperrors"
	"github.com/akaunku/akaunku-backend/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// ProfileLoader loads the profile backing an authenticated identity. The
// profile service satisfies this.
type ProfileLoader interface {
	GetProfileByID(ctx context.Context, profileID string) (*domain.Profile, error)
}

// RequireRoles loads the authenticated user's profile and rejects the
// request with 403 unless the profile's role is one of the allowed roles.
// The loaded profile is stored in the request context for handlers.
//
// The role string on the profile is the sole authorization key; everything
// role-gated in the API hangs off this middleware.
func RequireRoles(profiles ProfileLoader, allowed ...domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			logger.Error("User ID missing from context in role check")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		profile, err := profiles.GetProfileByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				logger.Warn("Profile not found for authenticated user")
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
				return
			}
			logger.Error("Failed to load profile for role check", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve user role"})
			return
		}

		permitted := false
		for _, role := range allowed {
			if profile.Role == role {
				permitted = true
				break
			}
		}
		if !permitted {
			logger.Warn("Role not permitted for route", "role", string(profile.Role))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), profileKey, profile)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
