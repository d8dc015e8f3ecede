package middleware

import (
	"github.com/akaunku/akaunku-backend/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// userIDKey is the key used to store the authenticated profile's ID in the
// request context. A custom type prevents collisions.
const userIDKey = contextKey("userID")

// profileKey is the key used by RequireRoles to store the loaded profile.
const profileKey = contextKey("profile")

// GetUserIDFromContext retrieves the authenticated profile ID from the
// request context.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v := c.Request.Context().Value(userIDKey); v != nil {
		if id, ok := v.(string); ok {
			return id, true
		}
	}
	return "", false
}

// GetProfileFromContext retrieves the authenticated profile loaded by
// RequireRoles. Handlers behind a role gate can rely on it being present.
func GetProfileFromContext(c *gin.Context) (*domain.Profile, bool) {
	if v := c.Request.Context().Value(profileKey); v != nil {
		if p, ok := v.(*domain.Profile); ok {
			return p, true
		}
	}
	return nil, false
}
