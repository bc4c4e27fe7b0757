package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	reg "studio-backend/internal/domains/registration"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) reg.Repository {
	return &postgresRepository{pool: pool}
}

const registrationColumns = `
  id, full_name, phone_number, country, industry, business_idea,
  open_to_collaboration, born_again, available_8_weeks,
  time_preference, days_preference, payment_method, payment_proof, created_at
`

func scanRegistration(row pgx.Row) (*reg.Registration, error) {
	var r reg.Registration
	var daysPreference []byte

	err := row.Scan(
		&r.ID, &r.FullName, &r.PhoneNumber, &r.Country, &r.Industry, &r.BusinessIdea,
		&r.OpenToCollaboration, &r.BornAgain, &r.Available8Weeks,
		&r.TimePreference, &daysPreference, &r.PaymentMethod, &r.PaymentProof, &r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(daysPreference, &r.DaysPreference); err != nil {
		return nil, err
	}

	return &r, nil
}

func (p *postgresRepository) List(ctx context.Context) ([]*reg.Registration, error) {
	query := `
    SELECT ` + registrationColumns + `
    FROM registrations
    ORDER BY created_at DESC
  `

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, reg.NewListRegistrationsError(err)
	}
	defer rows.Close()

	var registrations []*reg.Registration
	for rows.Next() {
		r, err := scanRegistration(rows)
		if err != nil {
			return nil, reg.NewListRegistrationsError(err)
		}
		registrations = append(registrations, r)
	}

	if err = rows.Err(); err != nil {
		return nil, reg.NewListRegistrationsError(err)
	}

	return registrations, nil
}

func (p *postgresRepository) Create(ctx context.Context, r *reg.Registration) (*reg.Registration, error) {
	daysPreference, err := json.Marshal(r.DaysPreference)
	if err != nil {
		return nil, reg.NewCreateRegistrationError(err)
	}

	query := `
    INSERT INTO registrations (
      id, full_name, phone_number, country, industry, business_idea,
      open_to_collaboration, born_again, available_8_weeks,
      time_preference, days_preference, payment_method, payment_proof, created_at
    )
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW())
    RETURNING ` + registrationColumns

	row := p.pool.QueryRow(
		ctx, query,
		r.ID, r.FullName, r.PhoneNumber, r.Country, r.Industry, r.BusinessIdea,
		r.OpenToCollaboration, r.BornAgain, r.Available8Weeks,
		r.TimePreference, daysPreference, r.PaymentMethod, r.PaymentProof,
	)

	created, err := scanRegistration(row)
	if err != nil {
		return nil, reg.NewCreateRegistrationError(err)
	}

	return created, nil
}

func (p *postgresRepository) Update(ctx context.Context, id uuid.UUID, req *reg.UpdateRequest) (*reg.Registration, error) {
	var daysPreference []byte
	var err error

	if req.DaysPreference != nil {
		if daysPreference, err = json.Marshal(*req.DaysPreference); err != nil {
			return nil, reg.NewUpdateRegistrationError(err)
		}
	}

	query := `
    UPDATE registrations
    SET full_name             = COALESCE($1, full_name),
        phone_number          = COALESCE($2, phone_number),
        country               = COALESCE($3, country),
        industry              = COALESCE($4, industry),
        business_idea         = COALESCE($5, business_idea),
        open_to_collaboration = COALESCE($6, open_to_collaboration),
        born_again            = COALESCE($7, born_again),
        available_8_weeks     = COALESCE($8, available_8_weeks),
        time_preference       = COALESCE($9, time_preference),
        days_preference       = COALESCE($10, days_preference),
        payment_method        = COALESCE($11, payment_method),
        payment_proof         = COALESCE($12, payment_proof)
    WHERE id = $13
    RETURNING ` + registrationColumns

	row := p.pool.QueryRow(
		ctx, query,
		req.FullName, req.PhoneNumber, req.Country, req.Industry, req.BusinessIdea,
		req.OpenToCollaboration, req.BornAgain, req.Available8Weeks,
		req.TimePreference, daysPreference, req.PaymentMethod, req.PaymentProof, id,
	)

	updated, err := scanRegistration(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, reg.ErrRegistrationNotFound
		}
		return nil, reg.NewUpdateRegistrationError(err)
	}

	return updated, nil
}

func (p *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := p.pool.Exec(ctx, `DELETE FROM registrations WHERE id = $1`, id)
	if err != nil {
		return reg.NewDeleteRegistrationError(err)
	}

	if result.RowsAffected() == 0 {
		return reg.ErrRegistrationNotFound
	}

	return nil
}
