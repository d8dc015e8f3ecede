package handlers

import (
	"net/http"

	"github.com/akaunku/akaunku-backend/internal/core/domain"
	portssvc "github.com/akaunku/akaunku-backend/internal/core/ports/services"
	"github.com/akaunku/akaunku-backend/internal/dto"
	"github.com/akaunku/akaunku-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// documentHandler handles HTTP requests for e-signature documents.
type documentHandler struct {
	documentService portssvc.DocumentSvcFacade
}

func newDocumentHandler(ds portssvc.DocumentSvcFacade) *documentHandler {
	return &documentHandler{documentService: ds}
}

func registerDocumentRoutes(rg *gin.RouterGroup, documentService portssvc.DocumentSvcFacade, profileService portssvc.ProfileSvcFacade) {
	h := newDocumentHandler(documentService)

	anyRole := middleware.RequireRoles(profileService, domain.RoleAdmin, domain.RoleBookkeeper, domain.RoleClient)
	writerRole := middleware.RequireRoles(profileService, domain.RoleAdmin, domain.RoleBookkeeper)

	documents := rg.Group("/documents")
	{
		documents.GET("", anyRole, h.listDocuments)
		documents.GET("/:id", anyRole, h.getDocument)
		documents.POST("", writerRole, h.sendForSignature)
		documents.PUT("/:id/status", writerRole, h.updateDocumentStatus)
		documents.GET("/templates", writerRole, h.listTemplates)
	}
}

// updateDocumentStatus godoc
// @Summary Record a document's signing outcome
// @Description Moves a document to Signed or Declined once the bookkeeper confirms the outcome at the provider.
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param status body dto.UpdateDocumentStatusRequest true "New status"
// @Success 200 {object} domain.Document
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents/{id}/status [put]
func (h *documentHandler) updateDocumentStatus(c *gin.Context) {
	requester, ok := middleware.GetProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateDocumentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	document, err := h.documentService.UpdateDocumentStatus(c.Request.Context(), c.Param("id"), req, requester)
	if err != nil {
		respondError(c, err, "update document status")
		return
	}
	c.JSON(http.StatusOK, document)
}

// sendForSignature godoc
// @Summary Send a document to a client for signature
// @Description Creates a submission at the e-signature provider and records the tracking row with the signing URL.
// @Tags documents
// @Accept json
// @Produce json
// @Param document body dto.CreateDocumentRequest true "Document details"
// @Success 201 {object} domain.Document
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse "E-signature provider unavailable"
// @Security BearerAuth
// @Router /documents [post]
func (h *documentHandler) sendForSignature(c *gin.Context) {
	requester, ok := middleware.GetProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	document, err := h.documentService.SendForSignature(c.Request.Context(), req, requester)
	if err != nil {
		respondError(c, err, "send document for signature")
		return
	}
	c.JSON(http.StatusCreated, document)
}

// getDocument godoc
// @Summary Get a document
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} domain.Document
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents/{id} [get]
func (h *documentHandler) getDocument(c *gin.Context) {
	requester, ok := middleware.GetProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	document, err := h.documentService.GetDocument(c.Request.Context(), c.Param("id"), requester)
	if err != nil {
		respondError(c, err, "retrieve document")
		return
	}
	c.JSON(http.StatusOK, document)
}

// listDocuments godoc
// @Summary List documents visible to the caller
// @Tags documents
// @Produce json
// @Param clientID query string false "Filter by client (bookkeeper and admin only)"
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListDocumentsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents [get]
func (h *documentHandler) listDocuments(c *gin.Context) {
	requester, ok := middleware.GetProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListDocumentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	documents, err := h.documentService.ListDocuments(c.Request.Context(), params, requester)
	if err != nil {
		respondError(c, err, "list documents")
		return
	}
	c.JSON(http.StatusOK, dto.ListDocumentsResponse{Documents: documents})
}

// listTemplates godoc
// @Summary List e-signature templates
// @Description Lists the provider's reusable templates with builder URLs for editing.
// @Tags documents
// @Produce json
// @Success 200 {object} dto.ListTemplatesResponse
// @Failure 403 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse "E-signature provider unavailable"
// @Security BearerAuth
// @Router /documents/templates [get]
func (h *documentHandler) listTemplates(c *gin.Context) {
	templates, err := h.documentService.ListTemplates(c.Request.Context())
	if err != nil {
		respondError(c, err, "list templates")
		return
	}
	c.JSON(http.StatusOK, templates)
}
