package settings

import (
	"context"

	"github.com/shopspring/decimal"
)

// Service exposes the keyed store plus typed accessors for the four site
// settings. Typed reads are fail-open: on store failure they answer the
// documented default and report degraded=true instead of erroring.
// Writes are fail-closed.
type Service interface {
	// Get unmarshals the stored value into dest. found=false means the
	// key was never written.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error

	RegistrationPrice(ctx context.Context) (decimal.Decimal, bool)
	UpdateRegistrationPrice(ctx context.Context, price decimal.Decimal) error

	ContactInfo(ctx context.Context) (*ContactInfo, bool)
	UpdateContactInfo(ctx context.Context, info *ContactInfo) error

	SocialMediaLinks(ctx context.Context) (*SocialMediaLinks, bool)
	UpdateSocialMediaLinks(ctx context.Context, links *SocialMediaLinks) error
}
