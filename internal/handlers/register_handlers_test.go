package handlers_test

import (
	"testing"

	portssvc "github.com/akaunku/akaunku-backend/internal/core/ports/services"
	"github.com/akaunku/akaunku-backend/internal/handlers"
	"github.com/akaunku/akaunku-backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mounting the full route table must not panic: gin rejects duplicate
// registrations and conflicting wildcard names at registration time, so the
// public blog reads and the admin blog CRUD have to live on disjoint paths.
func TestRegisterRoutes_MountsFullRouteTable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := &config.Config{
		JWTSecret:    "test-secret-key-that-is-long-enough",
		IsProduction: true,
	}

	require.NotPanics(t, func() {
		handlers.RegisterRoutes(r, cfg, &portssvc.ServiceContainer{})
	})

	registered := make(map[string]bool)
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"GET /health",
		"POST /api/v1/auth/login",
		"POST /api/v1/auth/register",
		"POST /api/v1/auth/refresh",
		"POST /api/v1/auth/logout",
		"GET /api/v1/blog",
		"GET /api/v1/blog/:slug",
		"POST /api/v1/contact",
		"GET /api/v1/profiles/me",
		"POST /api/v1/profiles",
		"GET /api/v1/statements",
		"POST /api/v1/statements",
		"PUT /api/v1/statements/:id/tax",
		"GET /api/v1/submissions",
		"GET /api/v1/dashboard",
		"POST /api/v1/documents",
		"PUT /api/v1/documents/:id/status",
		"GET /api/v1/admin/blog",
		"POST /api/v1/admin/blog",
		"GET /api/v1/admin/contact",
		"PUT /api/v1/admin/contact/:id/resolve",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "route %s not registered", route)
	}
}
