package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/akaunku/akaunku-backend/internal/apperrors"
	"github.com/akaunku/akaunku-backend/internal/core/domain"
	portsrepo "github.com/akaunku/akaunku-backend/internal/core/ports/repositories"
	portssvc "github.com/akaunku/akaunku-backend/internal/core/ports/services"
	"github.com/akaunku/akaunku-backend/internal/dto"
	"github.com/google/uuid"
)

type blogService struct {
	BaseService
	blogRepo portsrepo.BlogRepository
}

// NewBlogService creates a new instance of blogService.
func NewBlogService(blogRepo portsrepo.BlogRepository) portssvc.BlogSvcFacade {
	return &blogService{blogRepo: blogRepo}
}

func (s *blogService) CreatePost(ctx context.Context, req dto.CreateBlogPostRequest, author *domain.Profile) (*domain.BlogPost, error) {
	now := time.Now()
	post := domain.BlogPost{
		PostID:    uuid.NewString(),
		Title:     req.Title,
		Slug:      req.Slug,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		Published: req.Published,
		AuthorID:  author.ProfileID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     author.ProfileID,
			LastUpdatedAt: now,
			LastUpdatedBy: author.ProfileID,
		},
	}

	if err := s.blogRepo.SavePost(ctx, post); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create blog post: %w", err)
	}

	s.LogInfo(ctx, "blog post created", slog.String("post_id", post.PostID), slog.String("slug", post.Slug))
	return &post, nil
}

func (s *blogService) UpdatePost(ctx context.Context, postID string, req dto.UpdateBlogPostRequest, editor *domain.Profile) (*domain.BlogPost, error) {
	post, err := s.blogRepo.FindPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find blog post for update: %w", err)
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Excerpt != nil {
		post.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Published != nil {
		post.Published = *req.Published
	}
	post.LastUpdatedAt = time.Now()
	post.LastUpdatedBy = editor.ProfileID

	if err := s.blogRepo.UpdatePost(ctx, *post); err != nil {
		return nil, fmt.Errorf("failed to update blog post: %w", err)
	}
	return post, nil
}

func (s *blogService) DeletePost(ctx context.Context, postID string) error {
	if err := s.blogRepo.DeletePost(ctx, postID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete blog post: %w", err)
	}
	return nil
}

func (s *blogService) GetPostByID(ctx context.Context, postID string) (*domain.BlogPost, error) {
	post, err := s.blogRepo.FindPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}
	return post, nil
}

func (s *blogService) GetPublishedPostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	post, err := s.blogRepo.FindPostBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get blog post by slug: %w", err)
	}
	return post, nil
}

func (s *blogService) ListPosts(ctx context.Context, publishedOnly bool, limit, offset int) ([]domain.BlogPost, error) {
	posts, err := s.blogRepo.FindPosts(ctx, publishedOnly, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	return posts, nil
}
