package registration

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Registration is a program application. PaymentProof is an unowned
// asset reference (screenshot uploaded through the media relay);
// payments themselves happen out of band.
type Registration struct {
	ID                  uuid.UUID `json:"id" db:"id"`
	FullName            string    `json:"fullName" db:"full_name"`
	PhoneNumber         string    `json:"phoneNumber" db:"phone_number"`
	Country             string    `json:"country" db:"country"`
	Industry            string    `json:"industry" db:"industry"`
	BusinessIdea        string    `json:"businessIdea" db:"business_idea"`
	OpenToCollaboration bool      `json:"openToCollaboration" db:"open_to_collaboration"`
	BornAgain           bool      `json:"bornAgain" db:"born_again"`
	Available8Weeks     bool      `json:"available8Weeks" db:"available_8_weeks"`
	TimePreference      string    `json:"timePreference" db:"time_preference"`
	DaysPreference      []string  `json:"daysPreference" db:"days_preference"`
	PaymentMethod       string    `json:"paymentMethod" db:"payment_method"`
	PaymentProof        string    `json:"paymentProof" db:"payment_proof"`
	CreatedAt           time.Time `json:"createdAt" db:"created_at"`
}

type CreateRequest struct {
	FullName            string   `json:"fullName"`
	PhoneNumber         string   `json:"phoneNumber"`
	Country             string   `json:"country"`
	Industry            string   `json:"industry"`
	BusinessIdea        string   `json:"businessIdea"`
	OpenToCollaboration bool     `json:"openToCollaboration"`
	BornAgain           bool     `json:"bornAgain"`
	Available8Weeks     bool     `json:"available8Weeks"`
	TimePreference      string   `json:"timePreference"`
	DaysPreference      []string `json:"daysPreference"`
	PaymentMethod       string   `json:"paymentMethod"`
	PaymentProof        string   `json:"paymentProof"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FullName, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.PhoneNumber, validation.Required, validation.Length(5, 30)),
		validation.Field(&r.Country, validation.Required, validation.Length(1, 100)),
	)
}

type UpdateRequest struct {
	FullName            *string   `json:"fullName"`
	PhoneNumber         *string   `json:"phoneNumber"`
	Country             *string   `json:"country"`
	Industry            *string   `json:"industry"`
	BusinessIdea        *string   `json:"businessIdea"`
	OpenToCollaboration *bool     `json:"openToCollaboration"`
	BornAgain           *bool     `json:"bornAgain"`
	Available8Weeks     *bool     `json:"available8Weeks"`
	TimePreference      *string   `json:"timePreference"`
	DaysPreference      *[]string `json:"daysPreference"`
	PaymentMethod       *string   `json:"paymentMethod"`
	PaymentProof        *string   `json:"paymentProof"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FullName, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&r.PhoneNumber, validation.NilOrNotEmpty, validation.Length(5, 30)),
	)
}
