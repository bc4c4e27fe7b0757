package blog

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Post is a published article. Date is the event date shown to readers,
// distinct from the store-assigned created_at. ImageURL is an unowned
// asset reference.
type Post struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Excerpt   string    `json:"excerpt" db:"excerpt"`
	Content   string    `json:"content" db:"content"`
	Author    string    `json:"author" db:"author"`
	Date      time.Time `json:"date" db:"date"`
	Category  string    `json:"category" db:"category"`
	ImageURL  string    `json:"imageUrl" db:"image_url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// PostResponse adds the rendered markdown body.
type PostResponse struct {
	Post
	ContentHTML string `json:"contentHtml"`
}

type CreateRequest struct {
	Title    string    `json:"title"`
	Excerpt  string    `json:"excerpt"`
	Content  string    `json:"content"`
	Author   string    `json:"author"`
	Date     time.Time `json:"date"`
	Category string    `json:"category"`
	ImageURL string    `json:"imageUrl"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 300)),
		validation.Field(&r.Content, validation.Required),
		validation.Field(&r.Author, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Date, validation.Required),
	)
}

type UpdateRequest struct {
	Title    *string    `json:"title"`
	Excerpt  *string    `json:"excerpt"`
	Content  *string    `json:"content"`
	Author   *string    `json:"author"`
	Date     *time.Time `json:"date"`
	Category *string    `json:"category"`
	ImageURL *string    `json:"imageUrl"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, 300)),
		validation.Field(&r.Author, validation.NilOrNotEmpty, validation.Length(1, 100)),
	)
}
