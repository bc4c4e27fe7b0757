package business

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Business is a showcased venture. Logo is an unowned asset reference:
// only the URL is stored, the asset itself lives on the media host.
type Business struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Logo        string    `json:"logo" db:"logo"`
	Category    string    `json:"category" db:"category"`
	Description string    `json:"description" db:"description"`
	IsNew       bool      `json:"isNew" db:"is_new"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

type CreateRequest struct {
	Name        string `json:"name"`
	Logo        string `json:"logo"`
	Category    string `json:"category"`
	Description string `json:"description"`
	IsNew       bool   `json:"isNew"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Category, validation.Required, validation.Length(1, 100)),
	)
}

// UpdateRequest carries a partial update: nil fields keep their stored
// value.
type UpdateRequest struct {
	Name        *string `json:"name"`
	Logo        *string `json:"logo"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	IsNew       *bool   `json:"isNew"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&r.Category, validation.NilOrNotEmpty, validation.Length(1, 100)),
	)
}
