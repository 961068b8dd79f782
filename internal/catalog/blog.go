package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const blogPostColumns = "id, title, excerpt, content, author, category, image_url, created_at"

func scanBlogPost(row pgx.Row) (*BlogPost, error) {
	var b BlogPost
	err := row.Scan(
		&b.ID, &b.Title, &b.Excerpt, &b.Content, &b.Author,
		&b.Category, &b.ImageURL, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("catalog: scan blog post: %w", err)
	}
	return &b, nil
}

// ListBlogPosts returns all articles, newest first. An optional category
// narrows the result.
func (s *Store) ListBlogPosts(ctx context.Context, category string) ([]BlogPost, error) {
	query := "SELECT " + blogPostColumns + " FROM blog_posts"
	var args []any
	if category != "" {
		query += " WHERE category = $1"
		args = append(args, category)
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("catalog: list blog posts: %w", err)
	}
	defer rows.Close()

	posts := make([]BlogPost, 0)
	for rows.Next() {
		b, err := scanBlogPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog: list blog posts: %w", err)
	}
	return posts, nil
}

// GetBlogPost returns a single article by ID.
func (s *Store) GetBlogPost(ctx context.Context, id uuid.UUID) (*BlogPost, error) {
	row := s.db.QueryRow(ctx, "SELECT "+blogPostColumns+" FROM blog_posts WHERE id = $1", id)
	return scanBlogPost(row)
}

// CreateBlogPost validates, sanitizes, and inserts a new article.
func (s *Store) CreateBlogPost(ctx context.Context, in BlogPostInput) (*BlogPost, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	in = in.sanitized()

	row := s.db.QueryRow(ctx, `
		INSERT INTO blog_posts (title, excerpt, content, author, category, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+blogPostColumns,
		in.Title, in.Excerpt, in.Content, in.Author, in.Category, in.ImageURL,
	)
	return scanBlogPost(row)
}

// UpdateBlogPost applies a partial update and returns the updated article.
func (s *Store) UpdateBlogPost(ctx context.Context, id uuid.UUID, upd BlogPostUpdate) (*BlogPost, error) {
	if err := upd.Validate(); err != nil {
		return nil, err
	}
	upd = upd.sanitized()

	var (
		sets []string
		args []any
	)
	set := func(column string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Title != nil {
		set("title", *upd.Title)
	}
	if upd.Excerpt != nil {
		set("excerpt", *upd.Excerpt)
	}
	if upd.Content != nil {
		set("content", *upd.Content)
	}
	if upd.Author != nil {
		set("author", *upd.Author)
	}
	if upd.Category != nil {
		set("category", *upd.Category)
	}
	if upd.ImageURL != nil {
		set("image_url", *upd.ImageURL)
	}

	if len(sets) == 0 {
		return nil, ErrNoFields
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE blog_posts SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), blogPostColumns,
	)
	return scanBlogPost(s.db.QueryRow(ctx, query, args...))
}

// DeleteBlogPost removes an article by ID.
func (s *Store) DeleteBlogPost(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, "DELETE FROM blog_posts WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("catalog: delete blog post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
