package handlers

import (
	"net/http"

	"github.com/akaunku/akaunku-backend/internal/core/domain"
	portssvc "github.com/akaunku/akaunku-backend/internal/core/ports/services"
	"github.com/akaunku/akaunku-backend/internal/dto"
	"github.com/akaunku/akaunku-backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// contactHandler handles the public contact form and its admin inbox.
type contactHandler struct {
	contactService portssvc.ContactSvcFacade
}

func newContactHandler(cs portssvc.ContactSvcFacade) *contactHandler {
	return &contactHandler{contactService: cs}
}

// registerPublicContactRoutes registers the unauthenticated submit route,
// rate limited per IP to keep the form from being used as a spam relay.
func registerPublicContactRoutes(rg *gin.Engine, contactService portssvc.ContactSvcFacade) {
	h := newContactHandler(contactService)

	rate, _ := limiter.NewRateFromFormatted("10-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)

	rg.POST("/api/v1/contact", middleware.RateLimit(ipLimiter), h.submitMessage)
}

// registerAdminContactRoutes registers the authenticated inbox routes.
func registerAdminContactRoutes(rg *gin.RouterGroup, contactService portssvc.ContactSvcFacade, profileService portssvc.ProfileSvcFacade) {
	h := newContactHandler(contactService)

	adminOnly := middleware.RequireRoles(profileService, domain.RoleAdmin)

	contact := rg.Group("/admin/contact", adminOnly)
	{
		contact.GET("", h.listMessages)
		contact.PUT("/:id/resolve", h.resolveMessage)
	}
}

// submitMessage godoc
// @Summary Submit a contact form message
// @Tags contact
// @Accept json
// @Produce json
// @Param message body dto.CreateContactMessageRequest true "Message details"
// @Success 201 {object} domain.ContactMessage
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse "Rate limited"
// @Router /contact [post]
func (h *contactHandler) submitMessage(c *gin.Context) {
	var req dto.CreateContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	message, err := h.contactService.SubmitMessage(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "submit contact message")
		return
	}
	c.JSON(http.StatusCreated, message)
}

// listMessages godoc
// @Summary List contact messages
// @Tags contact
// @Produce json
// @Param includeResolved query bool false "Include resolved messages" default(false)
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListContactMessagesResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/contact [get]
func (h *contactHandler) listMessages(c *gin.Context) {
	var params dto.ListContactMessagesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	messages, err := h.contactService.ListMessages(c.Request.Context(), params.IncludeResolved, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "list contact messages")
		return
	}
	c.JSON(http.StatusOK, dto.ListContactMessagesResponse{Messages: messages})
}

// resolveMessage godoc
// @Summary Mark a contact message as resolved
// @Tags contact
// @Produce json
// @Param id path string true "Message ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/contact/{id}/resolve [put]
func (h *contactHandler) resolveMessage(c *gin.Context) {
	if err := h.contactService.ResolveMessage(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "resolve contact message")
		return
	}
	c.Status(http.StatusNoContent)
}
