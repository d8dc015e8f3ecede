package dto

import (
	"time"

	"github.com/akaunku/akaunku-backend/internal/core/domain"
)

// CreateBlogPostRequest is the payload for creating a blog post.
type CreateBlogPostRequest struct {
	Title     string `json:"title" binding:"required"`
	Slug      string `json:"slug" binding:"required,slug"`
	Excerpt   string `json:"excerpt"`
	Content   string `json:"content" binding:"required"`
	Published bool   `json:"published"`
}

// UpdateBlogPostRequest is the payload for updating a blog post.
type UpdateBlogPostRequest struct {
	Title     *string `json:"title"`
	Excerpt   *string `json:"excerpt"`
	Content   *string `json:"content"`
	Published *bool   `json:"published"`
}

// BlogPostResponse is the public representation of a blog post.
type BlogPostResponse struct {
	PostID    string    `json:"postID"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToBlogPostResponse converts a domain.BlogPost to its response DTO.
func ToBlogPostResponse(p *domain.BlogPost) BlogPostResponse {
	return BlogPostResponse{
		PostID:    p.PostID,
		Title:     p.Title,
		Slug:      p.Slug,
		Excerpt:   p.Excerpt,
		Content:   p.Content,
		Published: p.Published,
		CreatedAt: p.CreatedAt,
	}
}

// ListBlogPostsParams defines query parameters for listing posts.
type ListBlogPostsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListBlogPostsResponse wraps the list of posts.
type ListBlogPostsResponse struct {
	Posts []BlogPostResponse `json:"posts"`
}

// ToListBlogPostsResponse converts a slice of domain.BlogPost to its DTO.
func ToListBlogPostsResponse(posts []domain.BlogPost) ListBlogPostsResponse {
	out := make([]BlogPostResponse, len(posts))
	for i := range posts {
		out[i] = ToBlogPostResponse(&posts[i])
	}
	return ListBlogPostsResponse{Posts: out}
}
