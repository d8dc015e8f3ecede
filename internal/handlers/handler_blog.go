package handlers

import (
	"net/http"

	"github.com/akaunku/akaunku-backend/internal/core/domain"
	portssvc "github.com/akaunku/akaunku-backend/internal/core/ports/services"
	"github.com/akaunku/akaunku-backend/internal/dto"
	"github.com/akaunku/akaunku-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// blogHandler handles HTTP requests for blog posts. Reads of published
// posts are public; everything else is admin-only.
type blogHandler struct {
	blogService portssvc.BlogSvcFacade
}

func newBlogHandler(bs portssvc.BlogSvcFacade) *blogHandler {
	return &blogHandler{blogService: bs}
}

// registerPublicBlogRoutes registers the unauthenticated read routes.
func registerPublicBlogRoutes(rg *gin.Engine, blogService portssvc.BlogSvcFacade) {
	h := newBlogHandler(blogService)

	blog := rg.Group("/api/v1/blog")
	{
		blog.GET("", h.listPublishedPosts)
		blog.GET("/:slug", h.getPublishedPost)
	}
}

// registerAdminBlogRoutes registers the authenticated management routes.
func registerAdminBlogRoutes(rg *gin.RouterGroup, blogService portssvc.BlogSvcFacade, profileService portssvc.ProfileSvcFacade) {
	h := newBlogHandler(blogService)

	adminOnly := middleware.RequireRoles(profileService, domain.RoleAdmin)

	// Lives under /admin/blog: the public read routes already own
	// /blog and /blog/:slug on the engine.
	posts := rg.Group("/admin/blog", adminOnly)
	{
		posts.GET("", h.listAllPosts)
		posts.GET("/:id", h.getPost)
		posts.POST("", h.createPost)
		posts.PUT("/:id", h.updatePost)
		posts.DELETE("/:id", h.deletePost)
	}
}

// listPublishedPosts godoc
// @Summary List published blog posts
// @Tags blog
// @Produce json
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListBlogPostsResponse
// @Router /blog [get]
func (h *blogHandler) listPublishedPosts(c *gin.Context) {
	var params dto.ListBlogPostsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	posts, err := h.blogService.ListPosts(c.Request.Context(), true, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "list blog posts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListBlogPostsResponse(posts))
}

// getPublishedPost godoc
// @Summary Get a published blog post by slug
// @Tags blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} dto.BlogPostResponse
// @Failure 404 {object} ErrorResponse
// @Router /blog/{slug} [get]
func (h *blogHandler) getPublishedPost(c *gin.Context) {
	post, err := h.blogService.GetPublishedPostBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err, "retrieve blog post")
		return
	}
	c.JSON(http.StatusOK, dto.ToBlogPostResponse(post))
}

// listAllPosts godoc
// @Summary List all blog posts including drafts
// @Tags blog
// @Produce json
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListBlogPostsResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/blog [get]
func (h *blogHandler) listAllPosts(c *gin.Context) {
	var params dto.ListBlogPostsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	posts, err := h.blogService.ListPosts(c.Request.Context(), false, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "list blog posts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListBlogPostsResponse(posts))
}

// getPost godoc
// @Summary Get a blog post by ID, draft or published
// @Tags blog
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} dto.BlogPostResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/blog/{id} [get]
func (h *blogHandler) getPost(c *gin.Context) {
	post, err := h.blogService.GetPostByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "retrieve blog post")
		return
	}
	c.JSON(http.StatusOK, dto.ToBlogPostResponse(post))
}

// createPost godoc
// @Summary Create a blog post
// @Tags blog
// @Accept json
// @Produce json
// @Param post body dto.CreateBlogPostRequest true "Post content"
// @Success 201 {object} dto.BlogPostResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Slug already in use"
// @Security BearerAuth
// @Router /admin/blog [post]
func (h *blogHandler) createPost(c *gin.Context) {
	author, ok := middleware.GetProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	post, err := h.blogService.CreatePost(c.Request.Context(), req, author)
	if err != nil {
		respondError(c, err, "create blog post")
		return
	}
	c.JSON(http.StatusCreated, dto.ToBlogPostResponse(post))
}

// updatePost godoc
// @Summary Update a blog post
// @Tags blog
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param post body dto.UpdateBlogPostRequest true "Fields to update"
// @Success 200 {object} dto.BlogPostResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/blog/{id} [put]
func (h *blogHandler) updatePost(c *gin.Context) {
	editor, ok := middleware.GetProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	post, err := h.blogService.UpdatePost(c.Request.Context(), c.Param("id"), req, editor)
	if err != nil {
		respondError(c, err, "update blog post")
		return
	}
	c.JSON(http.StatusOK, dto.ToBlogPostResponse(post))
}

// deletePost godoc
// @Summary Delete a blog post
// @Tags blog
// @Produce json
// @Param id path string true "Post ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/blog/{id} [delete]
func (h *blogHandler) deletePost(c *gin.Context) {
	if err := h.blogService.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "delete blog post")
		return
	}
	c.Status(http.StatusNoContent)
}
