package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	s "studio-backend/internal/domains/settings"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) s.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Get(ctx context.Context, key string) (*s.Setting, error) {
	query := `
    SELECT key, value, updated_at
    FROM site_settings
    WHERE key = $1
  `

	row := r.pool.QueryRow(ctx, query, key)

	var setting s.Setting
	err := row.Scan(&setting.Key, &setting.Value, &setting.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, s.ErrSettingNotFound
		}
		return nil, s.NewGetSettingError(err)
	}

	return &setting, nil
}

func (r *postgresRepository) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return s.NewSetSettingError(err)
	}

	query := `
    INSERT INTO site_settings (key, value, updated_at)
    VALUES ($1, $2, NOW())
    ON CONFLICT (key) DO UPDATE
    SET value = EXCLUDED.value, updated_at = NOW()
  `

	if _, err := r.pool.Exec(ctx, query, key, data); err != nil {
		return s.NewSetSettingError(err)
	}

	return nil
}
