package settings

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Well-known setting keys. The table is a generic key/value store; these
// are the documents the site actually uses.
const (
	KeyAdminPassword     = "admin_password"
	KeyRegistrationPrice = "registration_price"
	KeyContactInfo       = "contact_info"
	KeySocialMediaLinks  = "social_media_links"
)

// Setting is one keyed document. Value is opaque JSON; typed accessors
// on the service layer interpret it.
type Setting struct {
	Key       string          `json:"key" db:"key"`
	Value     json.RawMessage `json:"value" db:"value"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

type ContactInfo struct {
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	WhatsApp string `json:"whatsapp"`
	Location string `json:"location"`
}

type SocialMediaLinks struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
	LinkedIn  string `json:"linkedin"`
}

// DefaultRegistrationPrice is returned when the setting was never
// written.
func DefaultRegistrationPrice() decimal.Decimal {
	return decimal.NewFromInt(3000)
}

func DefaultContactInfo() *ContactInfo {
	return &ContactInfo{
		Phone:    "+254 700 123 456",
		Email:    "info@kingdombusinessstudio.com",
		WhatsApp: "+254700123456",
		Location: "Nairobi, Kenya",
	}
}

func DefaultSocialMediaLinks() *SocialMediaLinks {
	return &SocialMediaLinks{
		Facebook:  "https://facebook.com/kingdombusinessstudio",
		Instagram: "https://instagram.com/kingdombusinessstudio",
		Twitter:   "https://twitter.com/kingdombusiness",
		LinkedIn:  "https://linkedin.com/company/kingdom-business-studio",
	}
}
