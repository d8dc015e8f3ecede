package handlers

import (
	"net/http"

	"github.com/akaunku/akaunku-backend/internal/core/domain"
	portssvc "github.com/akaunku/akaunku-backend/internal/core/ports/services"
	"github.com/akaunku/akaunku-backend/internal/dto"
	"github.com/akaunku/akaunku-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statementHandler handles HTTP requests for financial statements and
// their tax computations.
type statementHandler struct {
	statementService portssvc.StatementSvcFacade
}

func newStatementHandler(ss portssvc.StatementSvcFacade) *statementHandler {
	return &statementHandler{statementService: ss}
}

// RegisterStatementRoutes registers all statement-related routes. Reads are
// open to every authenticated role (scoped in the service); writes require
// a bookkeeper or admin.
func RegisterStatementRoutes(rg *gin.RouterGroup, statementService portssvc.StatementSvcFacade, profileService portssvc.ProfileSvcFacade) {
	h := newStatementHandler(statementService)

	anyRole := middleware.RequireRoles(profileService, domain.RoleAdmin, domain.RoleBookkeeper, domain.RoleClient)
	writerRole := middleware.RequireRoles(profileService, domain.RoleAdmin, domain.RoleBookkeeper)

	statements := rg.Group("/statements")
	{
		statements.GET("", anyRole, h.listStatements)
		statements.GET("/:id", anyRole, h.getStatement)
		statements.GET("/:id/tax", anyRole, h.getTaxComputation)
		statements.POST("", writerRole, h.createStatement)
		statements.PUT("/:id", writerRole, h.updateStatement)
		statements.DELETE("/:id", writerRole, h.deleteStatement)
		statements.PUT("/:id/tax", writerRole, h.saveTaxComputation)
	}
}

// createStatement godoc
// @Summary Create a financial statement
// @Description Records a statement for a client. An embedded tax block is written atomically with the statement. Resubmitting the same statement ID upserts.
// @Tags statements
// @Accept json
// @Produce json
// @Param statement body dto.CreateStatementRequest true "Statement figures"
// @Success 201 {object} dto.StatementDetailResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Statement already exists for this client and year"
// @Security BearerAuth
// @Router /statements [post]
func (h *statementHandler) createStatement(c *gin.Context) {
	requester, ok := middleware.GetProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateStatementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	statement, computation, err := h.statementService.CreateStatement(c.Request.Context(), req, requester)
	if err != nil {
		respondError(c, err, "create statement")
		return
	}

	resp := dto.StatementDetailResponse{
		Statement: *statement,
		Metrics:   dto.ToStatementResponse(*statement).Metrics,
	}
	if computation != nil {
		tax := dto.ToTaxComputationResponse(*computation)
		resp.Tax = &tax
	}
	c.JSON(http.StatusCreated, resp)
}

// getStatement godoc
// @Summary Get a statement with derived metrics
// @Tags statements
// @Produce json
// @Param id path string true "Statement ID"
// @Success 200 {object} dto.StatementDetailResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /statements/{id} [get]
func (h *statementHandler) getStatement(c *gin.Context) {
	requester, ok := middleware.GetProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	statement, computation, err := h.statementService.GetStatement(c.Request.Context(), c.Param("id"), requester)
	if err != nil {
		respondError(c, err, "retrieve statement")
		return
	}

	resp := dto.StatementDetailResponse{
		Statement: *statement,
		Metrics:   dto.ToStatementResponse(*statement).Metrics,
	}
	if computation != nil {
		tax := dto.ToTaxComputationResponse(*computation)
		resp.Tax = &tax
	}
	c.JSON(http.StatusOK, resp)
}

// listStatements godoc
// @Summary List statements visible to the caller
// @Description Bookkeepers see statements they maintain, clients see their own, admins see all.
// @Tags statements
// @Produce json
// @Param clientID query string false "Filter by client (bookkeeper and admin only)"
// @Param year query int false "Filter by year"
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListStatementsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /statements [get]
func (h *statementHandler) listStatements(c *gin.Context) {
	requester, ok := middleware.GetProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListStatementsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	statements, err := h.statementService.ListStatements(c.Request.Context(), params, requester)
	if err != nil {
		respondError(c, err, "list statements")
		return
	}
	c.JSON(http.StatusOK, dto.ToListStatementsResponse(statements))
}

// updateStatement godoc
// @Summary Update statement figures
// @Tags statements
// @Accept json
// @Produce json
// @Param id path string true "Statement ID"
// @Param statement body dto.UpdateStatementRequest true "Fields to update"
// @Success 200 {object} dto.StatementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /statements/{id} [put]
func (h *statementHandler) updateStatement(c *gin.Context) {
	requester, ok := middleware.GetProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateStatementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	statement, err := h.statementService.UpdateStatement(c.Request.Context(), c.Param("id"), req, requester)
	if err != nil {
		respondError(c, err, "update statement")
		return
	}
	c.JSON(http.StatusOK, dto.ToStatementResponse(*statement))
}

// deleteStatement godoc
// @Summary Delete a statement and its tax computation
// @Tags statements
// @Produce json
// @Param id path string true "Statement ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /statements/{id} [delete]
func (h *statementHandler) deleteStatement(c *gin.Context) {
	requester, ok := middleware.GetProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.statementService.DeleteStatement(c.Request.Context(), c.Param("id"), requester); err != nil {
		respondError(c, err, "delete statement")
		return
	}
	c.Status(http.StatusNoContent)
}

// getTaxComputation godoc
// @Summary Get the tax computation linked to a statement
// @Tags statements
// @Produce json
// @Param id path string true "Statement ID"
// @Success 200 {object} dto.TaxComputationResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /statements/{id}/tax [get]
func (h *statementHandler) getTaxComputation(c *gin.Context) {
	requester, ok := middleware.GetProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	computation, err := h.statementService.GetTaxComputation(c.Request.Context(), c.Param("id"), requester)
	if err != nil {
		respondError(c, err, "retrieve tax computation")
		return
	}
	c.JSON(http.StatusOK, dto.ToTaxComputationResponse(*computation))
}

// saveTaxComputation godoc
// @Summary Create or replace a statement's tax computation
// @Tags statements
// @Accept json
// @Produce json
// @Param id path string true "Statement ID"
// @Param computation body dto.TaxComputationRequest true "Computation inputs"
// @Success 200 {object} dto.TaxComputationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /statements/{id}/tax [put]
func (h *statementHandler) saveTaxComputation(c *gin.Context) {
	requester, ok := middleware.GetProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.TaxComputationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	computation, err := h.statementService.SaveTaxComputation(c.Request.Context(), c.Param("id"), req, requester)
	if err != nil {
		respondError(c, err, "save tax computation")
		return
	}
	c.JSON(http.StatusOK, dto.ToTaxComputationResponse(*computation))
}
