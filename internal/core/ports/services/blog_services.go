package services

import (
	"context"

	"github.com/akaunku/akaunku-backend/internal/core/domain"
	"github.com/akaunku/akaunku-backend/internal/dto"
)

// BlogSvcFacade defines operations on blog posts. Public reads return
// published posts only; the rest is admin-only.
type BlogSvcFacade interface {
	CreatePost(ctx context.Context, req dto.CreateBlogPostRequest, author *domain.Profile) (*domain.BlogPost, error)
	UpdatePost(ctx context.Context, postID string, req dto.UpdateBlogPostRequest, editor *domain.Profile) (*domain.BlogPost, error)
	DeletePost(ctx context.Context, postID string) error
	GetPostByID(ctx context.Context, postID string) (*domain.BlogPost, error)
	GetPublishedPostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	ListPosts(ctx context.Context, publishedOnly bool, limit, offset int) ([]domain.BlogPost, error)
}
