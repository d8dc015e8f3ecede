package handlers

import (
	"net/http"

	"github.com/akaunku/akaunku-backend/internal/core/domain"
	portssvc "github.com/akaunku/akaunku-backend/internal/core/ports/services"
	"github.com/akaunku/akaunku-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// dashboardHandler serves the role-dispatched dashboard.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

func newDashboardHandler(ds portssvc.DashboardSvcFacade) *dashboardHandler {
	return &dashboardHandler{dashboardService: ds}
}

func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade, profileService portssvc.ProfileSvcFacade) {
	h := newDashboardHandler(dashboardService)

	anyRole := middleware.RequireRoles(profileService, domain.RoleAdmin, domain.RoleBookkeeper, domain.RoleClient)
	rg.GET("/dashboard", anyRole, h.getDashboard)
}

// getDashboard godoc
// @Summary Get the caller's dashboard
// @Description Returns the bookkeeper workload view or the client year-by-year view, chosen by the caller's role. The payloads are disjoint.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	requester, ok := middleware.GetProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	dashboard, err := h.dashboardService.BuildDashboard(c.Request.Context(), requester)
	if err != nil {
		respondError(c, err, "build dashboard")
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
