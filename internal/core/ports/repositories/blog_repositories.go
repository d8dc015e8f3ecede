package repositories

import (
	"context"

	"github.com/akaunku/akaunku-backend/internal/core/domain"
)

// BlogRepository defines persistence operations for blog posts.
type BlogRepository interface {
	// SavePost inserts a post. Duplicate slugs yield ErrDuplicate.
	SavePost(ctx context.Context, post domain.BlogPost) error

	// FindPostByID retrieves one post regardless of published state.
	FindPostByID(ctx context.Context, postID string) (*domain.BlogPost, error)

	// FindPostBySlug retrieves one published post by slug.
	FindPostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)

	// FindPosts retrieves a page of posts, optionally published-only,
	// newest first.
	FindPosts(ctx context.Context, publishedOnly bool, limit, offset int) ([]domain.BlogPost, error)

	// UpdatePost updates a post.
	UpdatePost(ctx context.Context, post domain.BlogPost) error

	// DeletePost removes a post.
	DeletePost(ctx context.Context, postID string) error
}
