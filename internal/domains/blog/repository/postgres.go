package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	b "studio-backend/internal/domains/blog"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) b.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) List(ctx context.Context) ([]*b.Post, error) {
	query := `
    SELECT id, title, excerpt, content, author, date, category, image_url, created_at, updated_at
    FROM blog_posts
    ORDER BY date DESC
  `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, b.NewListPostsError(err)
	}
	defer rows.Close()

	var posts []*b.Post
	for rows.Next() {
		var post b.Post
		err := rows.Scan(
			&post.ID, &post.Title, &post.Excerpt, &post.Content, &post.Author,
			&post.Date, &post.Category, &post.ImageURL, &post.CreatedAt, &post.UpdatedAt,
		)
		if err != nil {
			return nil, b.NewListPostsError(err)
		}
		posts = append(posts, &post)
	}

	if err = rows.Err(); err != nil {
		return nil, b.NewListPostsError(err)
	}

	return posts, nil
}

func (r *postgresRepository) Create(ctx context.Context, post *b.Post) (*b.Post, error) {
	query := `
    INSERT INTO blog_posts (id, title, excerpt, content, author, date, category, image_url, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
    RETURNING id, title, excerpt, content, author, date, category, image_url, created_at, updated_at
  `

	row := r.pool.QueryRow(
		ctx, query,
		post.ID, post.Title, post.Excerpt, post.Content, post.Author,
		post.Date, post.Category, post.ImageURL,
	)

	var created b.Post
	err := row.Scan(
		&created.ID, &created.Title, &created.Excerpt, &created.Content, &created.Author,
		&created.Date, &created.Category, &created.ImageURL, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return nil, b.NewCreatePostError(err)
	}

	return &created, nil
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, req *b.UpdateRequest) (*b.Post, error) {
	query := `
    UPDATE blog_posts
    SET title      = COALESCE($1, title),
        excerpt    = COALESCE($2, excerpt),
        content    = COALESCE($3, content),
        author     = COALESCE($4, author),
        date       = COALESCE($5, date),
        category   = COALESCE($6, category),
        image_url  = COALESCE($7, image_url),
        updated_at = NOW()
    WHERE id = $8
    RETURNING id, title, excerpt, content, author, date, category, image_url, created_at, updated_at
  `

	row := r.pool.QueryRow(
		ctx, query,
		req.Title, req.Excerpt, req.Content, req.Author, req.Date, req.Category, req.ImageURL, id,
	)

	var updated b.Post
	err := row.Scan(
		&updated.ID, &updated.Title, &updated.Excerpt, &updated.Content, &updated.Author,
		&updated.Date, &updated.Category, &updated.ImageURL, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, b.ErrPostNotFound
		}
		return nil, b.NewUpdatePostError(err)
	}

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return b.NewDeletePostError(err)
	}

	if result.RowsAffected() == 0 {
		return b.ErrPostNotFound
	}

	return nil
}
