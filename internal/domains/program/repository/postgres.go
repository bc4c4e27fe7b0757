package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	p "studio-backend/internal/domains/program"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) p.Repository {
	return &postgresRepository{pool: pool}
}

// scanProgram decodes one row, unmarshalling the JSONB list columns.
func scanProgram(row pgx.Row) (*p.Program, error) {
	var prog p.Program
	var accentColors, features []byte

	err := row.Scan(
		&prog.ID, &prog.Name, &prog.Description, &prog.PrimaryColor,
		&accentColors, &features, &prog.CreatedAt, &prog.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(accentColors, &prog.AccentColors); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(features, &prog.Features); err != nil {
		return nil, err
	}

	return &prog, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]*p.Program, error) {
	query := `
    SELECT id, name, description, primary_color, accent_colors, features, created_at, updated_at
    FROM programs
    ORDER BY created_at ASC
  `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, p.NewListProgramsError(err)
	}
	defer rows.Close()

	var programs []*p.Program
	for rows.Next() {
		prog, err := scanProgram(rows)
		if err != nil {
			return nil, p.NewListProgramsError(err)
		}
		programs = append(programs, prog)
	}

	if err = rows.Err(); err != nil {
		return nil, p.NewListProgramsError(err)
	}

	return programs, nil
}

func (r *postgresRepository) Create(ctx context.Context, prog *p.Program) (*p.Program, error) {
	accentColors, err := json.Marshal(prog.AccentColors)
	if err != nil {
		return nil, p.NewCreateProgramError(err)
	}
	features, err := json.Marshal(prog.Features)
	if err != nil {
		return nil, p.NewCreateProgramError(err)
	}

	query := `
    INSERT INTO programs (id, name, description, primary_color, accent_colors, features, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
    RETURNING id, name, description, primary_color, accent_colors, features, created_at, updated_at
  `

	row := r.pool.QueryRow(
		ctx, query,
		prog.ID, prog.Name, prog.Description, prog.PrimaryColor, accentColors, features,
	)

	created, err := scanProgram(row)
	if err != nil {
		return nil, p.NewCreateProgramError(err)
	}

	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, id string, req *p.UpdateRequest) (*p.Program, error) {
	var accentColors, features []byte
	var err error

	if req.AccentColors != nil {
		if accentColors, err = json.Marshal(*req.AccentColors); err != nil {
			return nil, p.NewUpdateProgramError(err)
		}
	}
	if req.Features != nil {
		if features, err = json.Marshal(*req.Features); err != nil {
			return nil, p.NewUpdateProgramError(err)
		}
	}

	query := `
    UPDATE programs
    SET name          = COALESCE($1, name),
        description   = COALESCE($2, description),
        primary_color = COALESCE($3, primary_color),
        accent_colors = COALESCE($4, accent_colors),
        features      = COALESCE($5, features),
        updated_at    = NOW()
    WHERE id = $6
    RETURNING id, name, description, primary_color, accent_colors, features, created_at, updated_at
  `

	row := r.pool.QueryRow(ctx, query, req.Name, req.Description, req.PrimaryColor, accentColors, features, id)

	updated, err := scanProgram(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, p.ErrProgramNotFound
		}
		return nil, p.NewUpdateProgramError(err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM programs WHERE id = $1`, id)
	if err != nil {
		return p.NewDeleteProgramError(err)
	}

	if result.RowsAffected() == 0 {
		return p.ErrProgramNotFound
	}

	return nil
}
