package handlers

import (
	"net/http"

	"github.com/akaunku/akaunku-backend/internal/core/domain"
	portssvc "github.com/akaunku/akaunku-backend/internal/core/ports/services"
	"github.com/akaunku/akaunku-backend/internal/dto"
	"github.com/akaunku/akaunku-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// submissionHandler handles HTTP requests for tax submissions.
type submissionHandler struct {
	submissionService portssvc.SubmissionSvcFacade
}

func newSubmissionHandler(ss portssvc.SubmissionSvcFacade) *submissionHandler {
	return &submissionHandler{submissionService: ss}
}

func registerSubmissionRoutes(rg *gin.RouterGroup, submissionService portssvc.SubmissionSvcFacade, profileService portssvc.ProfileSvcFacade) {
	h := newSubmissionHandler(submissionService)

	anyRole := middleware.RequireRoles(profileService, domain.RoleAdmin, domain.RoleBookkeeper, domain.RoleClient)
	writerRole := middleware.RequireRoles(profileService, domain.RoleAdmin, domain.RoleBookkeeper)

	submissions := rg.Group("/submissions")
	{
		submissions.GET("", anyRole, h.listSubmissions)
		submissions.GET("/:id", anyRole, h.getSubmission)
		submissions.POST("", writerRole, h.createSubmission)
		submissions.PUT("/:id", writerRole, h.updateSubmission)
		submissions.DELETE("/:id", writerRole, h.deleteSubmission)
	}
}

// createSubmission godoc
// @Summary Record a tax submission
// @Description Records a filing for a client. An omitted status defaults to Pending.
// @Tags submissions
// @Accept json
// @Produce json
// @Param submission body dto.CreateSubmissionRequest true "Submission details"
// @Success 201 {object} domain.TaxSubmission
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /submissions [post]
func (h *submissionHandler) createSubmission(c *gin.Context) {
	requester, ok := middleware.GetProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	submission, err := h.submissionService.CreateSubmission(c.Request.Context(), req, requester)
	if err != nil {
		respondError(c, err, "create submission")
		return
	}
	c.JSON(http.StatusCreated, submission)
}

// getSubmission godoc
// @Summary Get a tax submission
// @Tags submissions
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} domain.TaxSubmission
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /submissions/{id} [get]
func (h *submissionHandler) getSubmission(c *gin.Context) {
	requester, ok := middleware.GetProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	submission, err := h.submissionService.GetSubmission(c.Request.Context(), c.Param("id"), requester)
	if err != nil {
		respondError(c, err, "retrieve submission")
		return
	}
	c.JSON(http.StatusOK, submission)
}

// listSubmissions godoc
// @Summary List tax submissions visible to the caller
// @Tags submissions
// @Produce json
// @Param clientID query string false "Filter by client (bookkeeper and admin only)"
// @Param assessmentYear query int false "Filter by assessment year"
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListSubmissionsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /submissions [get]
func (h *submissionHandler) listSubmissions(c *gin.Context) {
	requester, ok := middleware.GetProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListSubmissionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	submissions, err := h.submissionService.ListSubmissions(c.Request.Context(), params, requester)
	if err != nil {
		respondError(c, err, "list submissions")
		return
	}
	c.JSON(http.StatusOK, dto.ListSubmissionsResponse{Submissions: submissions})
}

// updateSubmission godoc
// @Summary Update a submission's status or filing date
// @Tags submissions
// @Accept json
// @Produce json
// @Param id path string true "Submission ID"
// @Param submission body dto.UpdateSubmissionRequest true "Fields to update"
// @Success 200 {object} domain.TaxSubmission
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /submissions/{id} [put]
func (h *submissionHandler) updateSubmission(c *gin.Context) {
	requester, ok := middleware.GetProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	submission, err := h.submissionService.UpdateSubmission(c.Request.Context(), c.Param("id"), req, requester)
	if err != nil {
		respondError(c, err, "update submission")
		return
	}
	c.JSON(http.StatusOK, submission)
}

// deleteSubmission godoc
// @Summary Delete a tax submission
// @Tags submissions
// @Produce json
// @Param id path string true "Submission ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /submissions/{id} [delete]
func (h *submissionHandler) deleteSubmission(c *gin.Context) {
	requester, ok := middleware.GetProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.submissionService.DeleteSubmission(c.Request.Context(), c.Param("id"), requester); err != nil {
		respondError(c, err, "delete submission")
		return
	}
	c.Status(http.StatusNoContent)
}
