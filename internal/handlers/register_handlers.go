package handlers

import (
	"github.com/akaunku/akaunku-backend/cmd/docs"
	portssvc "github.com/akaunku/akaunku-backend/internal/core/ports/services"
	"github.com/akaunku/akaunku-backend/internal/middleware"
	"github.com/akaunku/akaunku-backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidations()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public routes: authentication, blog reads, contact form
	registerAuthRoutes(r, cfg, services)
	registerPublicBlogRoutes(r, services.Blog)
	registerPublicContactRoutes(r, services.Contact)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	// Delegate route registration to specific handlers, passing required services
	registerProfileRoutes(v1, services.Profile)
	RegisterStatementRoutes(v1, services.Statement, services.Profile)
	registerSubmissionRoutes(v1, services.Submission, services.Profile)
	registerDashboardRoutes(v1, services.Dashboard, services.Profile)
	registerDocumentRoutes(v1, services.Document, services.Profile)
	registerAdminBlogRoutes(v1, services.Blog, services.Profile)
	registerAdminContactRoutes(v1, services.Contact, services.Profile)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
