package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/akaunku/akaunku-backend/internal/apperrors"
	"github.com/akaunku/akaunku-backend/internal/core/domain"
	portsrepo "github.com/akaunku/akaunku-backend/internal/core/ports/repositories"
	"github.com/akaunku/akaunku-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBlogRepository struct {
	BaseRepository
}

func newPgxBlogRepository(db *pgxpool.Pool) portsrepo.BlogRepository {
	return &PgxBlogRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.BlogRepository = (*PgxBlogRepository)(nil)

func toDomainPost(m models.BlogPost) domain.BlogPost {
	return domain.BlogPost{
		PostID:    m.PostID,
		Title:     m.Title,
		Slug:      m.Slug,
		Excerpt:   m.Excerpt,
		Content:   m.Content,
		Published: m.Published,
		AuthorID:  m.AuthorID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const blogColumns = `post_id, title, slug, excerpt, content, published, author_id,
		created_at, created_by, last_updated_at, last_updated_by`

func scanPost(row pgx.Row) (models.BlogPost, error) {
	var m models.BlogPost
	err := row.Scan(
		&m.PostID,
		&m.Title,
		&m.Slug,
		&m.Excerpt,
		&m.Content,
		&m.Published,
		&m.AuthorID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxBlogRepository) SavePost(ctx context.Context, post domain.BlogPost) error {
	query := `
        INSERT INTO blog_posts (post_id, title, slug, excerpt, content, published, author_id,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.Pool.Exec(ctx, query,
		post.PostID,
		post.Title,
		post.Slug,
		post.Excerpt,
		post.Content,
		post.Published,
		post.AuthorID,
		post.CreatedAt,
		post.CreatedBy,
		post.LastUpdatedAt,
		post.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("a post with this slug already exists: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save blog post: %w", err)
	}
	return nil
}

func (r *PgxBlogRepository) FindPostByID(ctx context.Context, postID string) (*domain.BlogPost, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts WHERE post_id = $1;`
	m, err := scanPost(r.Pool.QueryRow(ctx, query, postID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find blog post by ID %s: %w", postID, err)
	}
	d := toDomainPost(m)
	return &d, nil
}

func (r *PgxBlogRepository) FindPostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts WHERE slug = $1 AND published = TRUE;`
	m, err := scanPost(r.Pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find blog post by slug: %w", err)
	}
	d := toDomainPost(m)
	return &d, nil
}

func (r *PgxBlogRepository) FindPosts(ctx context.Context, publishedOnly bool, limit, offset int) ([]domain.BlogPost, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + blogColumns + `
        FROM blog_posts
        WHERE (NOT $1 OR published = TRUE)
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3;`
	rows, err := r.Pool.Query(ctx, query, publishedOnly, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query blog posts: %w", err)
	}
	defer rows.Close()

	posts := []domain.BlogPost{}
	for rows.Next() {
		m, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan blog post row: %w", err)
		}
		posts = append(posts, toDomainPost(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating blog post rows: %w", rows.Err())
	}
	return posts, nil
}

func (r *PgxBlogRepository) UpdatePost(ctx context.Context, post domain.BlogPost) error {
	query := `
        UPDATE blog_posts
        SET title = $1, excerpt = $2, content = $3, published = $4,
            last_updated_at = $5, last_updated_by = $6
        WHERE post_id = $7;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		post.Title,
		post.Excerpt,
		post.Content,
		post.Published,
		post.LastUpdatedAt,
		post.LastUpdatedBy,
		post.PostID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update blog post query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("blog post not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxBlogRepository) DeletePost(ctx context.Context, postID string) error {
	query := `DELETE FROM blog_posts WHERE post_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("blog post not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
