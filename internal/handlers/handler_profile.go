package handlers

import (
	"net/http"

	"github.com/akaunku/akaunku-backend/internal/core/domain"
	portssvc "github.com/akaunku/akaunku-backend/internal/core/ports/services"
	"github.com/akaunku/akaunku-backend/internal/dto"
	"github.com/akaunku/akaunku-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// profileHandler handles HTTP requests related to profiles.
type profileHandler struct {
	profileService portssvc.ProfileSvcFacade
}

func newProfileHandler(ps portssvc.ProfileSvcFacade) *profileHandler {
	return &profileHandler{profileService: ps}
}

// registerProfileRoutes registers all profile-related routes.
func registerProfileRoutes(rg *gin.RouterGroup, profileService portssvc.ProfileSvcFacade) {
	h := newProfileHandler(profileService)

	adminOnly := middleware.RequireRoles(profileService, domain.RoleAdmin)

	profiles := rg.Group("/profiles")
	{
		profiles.GET("/me", h.getOwnProfile)
		profiles.PUT("/me", h.updateOwnProfile)
		profiles.GET("", adminOnly, h.listProfiles)
		profiles.POST("", adminOnly, h.createProfile)
		profiles.GET("/:id", adminOnly, h.getProfile)
		profiles.DELETE("/:id", adminOnly, h.deleteProfile)
	}
}

// getOwnProfile godoc
// @Summary Get the authenticated profile
// @Tags profiles
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/me [get]
func (h *profileHandler) getOwnProfile(c *gin.Context) {
	profileID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	profile, err := h.profileService.GetProfileByID(c.Request.Context(), profileID)
	if err != nil {
		respondError(c, err, "retrieve profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// updateOwnProfile godoc
// @Summary Update the authenticated profile
// @Description Updates mutable fields of the caller's own profile. The role cannot be changed.
// @Tags profiles
// @Accept json
// @Produce json
// @Param profile body dto.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/me [put]
func (h *profileHandler) updateOwnProfile(c *gin.Context) {
	profileID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), profileID, req, profileID)
	if err != nil {
		respondError(c, err, "update profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// listProfiles godoc
// @Summary List profiles
// @Description Lists profiles, optionally filtered by role. Admin only.
// @Tags profiles
// @Produce json
// @Param role query string false "Filter by role (admin, bookkeeper, client)"
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListProfilesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles [get]
func (h *profileHandler) listProfiles(c *gin.Context) {
	var params dto.ListProfilesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	profiles, err := h.profileService.ListProfiles(c.Request.Context(), domain.UserRole(params.Role), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "list profiles")
		return
	}
	c.JSON(http.StatusOK, dto.ToListProfilesResponse(profiles))
}

// createProfile godoc
// @Summary Create a profile with an explicit role
// @Description Creates a profile of any role. Admin only; self-signup always yields a client.
// @Tags profiles
// @Accept json
// @Produce json
// @Param profile body dto.AdminCreateUserRequest true "Profile details"
// @Success 201 {object} dto.ProfileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Security BearerAuth
// @Router /profiles [post]
func (h *profileHandler) createProfile(c *gin.Context) {
	creator, ok := middleware.GetProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.AdminCreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	profile, err := h.profileService.CreateProfile(c.Request.Context(), req, creator.ProfileID)
	if err != nil {
		respondError(c, err, "create profile")
		return
	}
	c.JSON(http.StatusCreated, dto.ToProfileResponse(profile))
}

// getProfile godoc
// @Summary Get a profile by ID
// @Tags profiles
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} dto.ProfileResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{id} [get]
func (h *profileHandler) getProfile(c *gin.Context) {
	profile, err := h.profileService.GetProfileByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "retrieve profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// deleteProfile godoc
// @Summary Soft-delete a profile
// @Tags profiles
// @Produce json
// @Param id path string true "Profile ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{id} [delete]
func (h *profileHandler) deleteProfile(c *gin.Context) {
	requester, ok := middleware.GetProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.profileService.DeleteProfile(c.Request.Context(), c.Param("id"), requester.ProfileID); err != nil {
		respondError(c, err, "delete profile")
		return
	}
	c.Status(http.StatusNoContent)
}
