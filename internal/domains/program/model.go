package program

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Program is an accelerator track. IDs are strings rather than UUIDs so
// the built-in defaults keep their stable slug identifiers.
type Program struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Description  string    `json:"description" db:"description"`
	PrimaryColor string    `json:"primaryColor" db:"primary_color"`
	AccentColors []string  `json:"accentColors" db:"accent_colors"`
	Features     []string  `json:"features" db:"features"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

type CreateRequest struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	PrimaryColor string   `json:"primaryColor"`
	AccentColors []string `json:"accentColors"`
	Features     []string `json:"features"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Description, validation.Required),
	)
}

type UpdateRequest struct {
	Name         *string   `json:"name"`
	Description  *string   `json:"description"`
	PrimaryColor *string   `json:"primaryColor"`
	AccentColors *[]string `json:"accentColors"`
	Features     *[]string `json:"features"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 200)),
	)
}

// Defaults are the three fixed programs shown while the collection is
// empty. They are never persisted implicitly; Seed stores them on
// operator request.
func Defaults() []*Program {
	return []*Program{
		{
			ID:           "kingdom-entrepreneur",
			Name:         "Kingdom Entrepreneur",
			Description:  "Transform your business with biblical principles and modern strategies.",
			PrimaryColor: "#1e40af",
			AccentColors: []string{"#3b82f6", "#60a5fa", "#93c5fd"},
			Features: []string{
				"Biblical business principles",
				"Modern marketing strategies",
				"Financial management",
				"Leadership development",
				"Networking opportunities",
			},
		},
		{
			ID:           "faith-based-leadership",
			Name:         "Faith-Based Leadership",
			Description:  "Develop leadership skills grounded in faith and integrity.",
			PrimaryColor: "#059669",
			AccentColors: []string{"#10b981", "#34d399", "#6ee7b7"},
			Features: []string{
				"Servant leadership principles",
				"Team building strategies",
				"Conflict resolution",
				"Communication skills",
				"Decision making frameworks",
			},
		},
		{
			ID:           "kingdom-finance",
			Name:         "Kingdom Finance",
			Description:  "Master financial stewardship with Godly wisdom.",
			PrimaryColor: "#dc2626",
			AccentColors: []string{"#ef4444", "#f87171", "#fca5a5"},
			Features: []string{
				"Biblical financial principles",
				"Investment strategies",
				"Debt management",
				"Wealth building",
				"Generosity planning",
			},
		},
	}
}
