package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	b "studio-backend/internal/domains/business"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) b.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) List(ctx context.Context) ([]*b.Business, error) {
	query := `
    SELECT id, name, logo, category, description, is_new, created_at, updated_at
    FROM businesses
    ORDER BY created_at DESC
  `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, b.NewListBusinessesError(err)
	}
	defer rows.Close()

	var businesses []*b.Business
	for rows.Next() {
		var biz b.Business
		err := rows.Scan(
			&biz.ID, &biz.Name, &biz.Logo, &biz.Category,
			&biz.Description, &biz.IsNew, &biz.CreatedAt, &biz.UpdatedAt,
		)
		if err != nil {
			return nil, b.NewListBusinessesError(err)
		}
		businesses = append(businesses, &biz)
	}

	if err = rows.Err(); err != nil {
		return nil, b.NewListBusinessesError(err)
	}

	return businesses, nil
}

func (r *postgresRepository) Create(ctx context.Context, biz *b.Business) (*b.Business, error) {
	query := `
    INSERT INTO businesses (id, name, logo, category, description, is_new, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
    RETURNING id, name, logo, category, description, is_new, created_at, updated_at
  `

	row := r.pool.QueryRow(
		ctx, query,
		biz.ID, biz.Name, biz.Logo, biz.Category, biz.Description, biz.IsNew,
	)

	var created b.Business
	err := row.Scan(
		&created.ID, &created.Name, &created.Logo, &created.Category,
		&created.Description, &created.IsNew, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return nil, b.NewCreateBusinessError(err)
	}

	return &created, nil
}

// Update relies on COALESCE so that fields absent from the request keep
// their stored value; updated_at always moves.
func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, req *b.UpdateRequest) (*b.Business, error) {
	query := `
    UPDATE businesses
    SET name        = COALESCE($1, name),
        logo        = COALESCE($2, logo),
        category    = COALESCE($3, category),
        description = COALESCE($4, description),
        is_new      = COALESCE($5, is_new),
        updated_at  = NOW()
    WHERE id = $6
    RETURNING id, name, logo, category, description, is_new, created_at, updated_at
  `

	row := r.pool.QueryRow(
		ctx, query,
		req.Name, req.Logo, req.Category, req.Description, req.IsNew, id,
	)

	var updated b.Business
	err := row.Scan(
		&updated.ID, &updated.Name, &updated.Logo, &updated.Category,
		&updated.Description, &updated.IsNew, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, b.ErrBusinessNotFound
		}
		return nil, b.NewUpdateBusinessError(err)
	}

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM businesses WHERE id = $1`, id)
	if err != nil {
		return b.NewDeleteBusinessError(err)
	}

	if result.RowsAffected() == 0 {
		return b.ErrBusinessNotFound
	}

	return nil
}
