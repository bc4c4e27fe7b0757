package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	s "studio-backend/internal/domains/settings"
	"studio-backend/pkg/cache"
	"studio-backend/pkg/logger"
)

const cacheTTL = 5 * time.Minute

type settingsService struct {
	repo  s.Repository
	cache cache.Cache
}

func NewSettingsService(repo s.Repository, c cache.Cache) s.Service {
	return &settingsService{repo: repo, cache: c}
}

func cacheKey(key string) string {
	return "settings:" + key
}

// Get reads through the cache into the settings table.
func (svc *settingsService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if svc.cache != nil {
		if found, err := svc.cache.Get(ctx, cacheKey(key), dest); err == nil && found {
			return true, nil
		}
	}

	setting, err := svc.repo.Get(ctx, key)
	if err != nil {
		if errors.Is(err, s.ErrSettingNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(setting.Value, dest); err != nil {
		return false, s.NewGetSettingError(err)
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, cacheKey(key), json.RawMessage(setting.Value), cacheTTL); err != nil {
			logger.Warn("settings cache set failed", map[string]interface{}{"key": key, "error": err.Error()})
		}
	}

	return true, nil
}

// Set upserts and invalidates the cache entry.
func (svc *settingsService) Set(ctx context.Context, key string, value interface{}) error {
	if err := svc.repo.Set(ctx, key, value); err != nil {
		return err
	}

	if svc.cache != nil {
		if err := svc.cache.Delete(ctx, cacheKey(key)); err != nil {
			logger.Warn("settings cache invalidation failed", map[string]interface{}{"key": key, "error": err.Error()})
		}
	}

	return nil
}

func (svc *settingsService) RegistrationPrice(ctx context.Context) (decimal.Decimal, bool) {
	var price decimal.Decimal
	found, err := svc.Get(ctx, s.KeyRegistrationPrice, &price)
	if err != nil {
		logger.Error("registration price read degraded to default", err)
		return s.DefaultRegistrationPrice(), true
	}
	if !found {
		return s.DefaultRegistrationPrice(), false
	}
	return price, false
}

func (svc *settingsService) UpdateRegistrationPrice(ctx context.Context, price decimal.Decimal) error {
	return svc.Set(ctx, s.KeyRegistrationPrice, price)
}

func (svc *settingsService) ContactInfo(ctx context.Context) (*s.ContactInfo, bool) {
	var info s.ContactInfo
	found, err := svc.Get(ctx, s.KeyContactInfo, &info)
	if err != nil {
		logger.Error("contact info read degraded to default", err)
		return s.DefaultContactInfo(), true
	}
	if !found {
		return s.DefaultContactInfo(), false
	}
	return &info, false
}

func (svc *settingsService) UpdateContactInfo(ctx context.Context, info *s.ContactInfo) error {
	return svc.Set(ctx, s.KeyContactInfo, info)
}

func (svc *settingsService) SocialMediaLinks(ctx context.Context) (*s.SocialMediaLinks, bool) {
	var links s.SocialMediaLinks
	found, err := svc.Get(ctx, s.KeySocialMediaLinks, &links)
	if err != nil {
		logger.Error("social links read degraded to default", err)
		return s.DefaultSocialMediaLinks(), true
	}
	if !found {
		return s.DefaultSocialMediaLinks(), false
	}
	return &links, false
}

func (svc *settingsService) UpdateSocialMediaLinks(ctx context.Context, links *s.SocialMediaLinks) error {
	return svc.Set(ctx, s.KeySocialMediaLinks, links)
}
