package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"studio-backend/internal/domains/media"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) media.Repository {
	return &postgresRepository{pool: pool}
}

// GetReferencedURLs collects every asset URL the collections point at:
// business logos, blog post images and registration payment proofs.
func (r *postgresRepository) GetReferencedURLs(ctx context.Context) ([]string, error) {
	query := `
    SELECT logo FROM businesses WHERE logo <> ''
    UNION
    SELECT image_url FROM blog_posts WHERE image_url <> ''
    UNION
    SELECT payment_proof FROM registrations WHERE payment_proof <> ''
  `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query referenced urls: %w", err)
	}
	defer rows.Close()

	var urls []string
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, fmt.Errorf("failed to scan referenced url: %w", err)
		}
		urls = append(urls, url)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read referenced urls: %w", err)
	}

	return urls, nil
}
