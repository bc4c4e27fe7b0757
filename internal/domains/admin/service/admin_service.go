package service

import (
	"context"
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	a "studio-backend/internal/domains/admin"
	"studio-backend/internal/domains/settings"
	"studio-backend/pkg/jwt"
	"studio-backend/pkg/logger"
)

type adminService struct {
	settings   settings.Service
	jwtManager *jwt.Manager
	username   string
}

func NewAdminService(settingsService settings.Service, jwtManager *jwt.Manager, username string) a.Service {
	return &adminService{
		settings:   settingsService,
		jwtManager: jwtManager,
		username:   username,
	}
}

func (s *adminService) Login(ctx context.Context, username, password string) (*a.Session, error) {
	hash, err := s.passwordHash(ctx)
	if err != nil {
		return nil, err
	}

	// Compare the password first so the username check does not short
	// circuit the work factor.
	passwordOK := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1

	if !passwordOK || !usernameOK {
		return nil, a.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtManager.GenerateSessionToken(username)
	if err != nil {
		return nil, a.NewCredentialLookupError(err)
	}

	return &a.Session{Token: token, ExpiresAt: expiresAt}, nil
}

func (s *adminService) ChangePassword(ctx context.Context, newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return a.NewPasswordUpdateError(err)
	}

	if err := s.settings.Set(ctx, settings.KeyAdminPassword, string(hash)); err != nil {
		return a.NewPasswordUpdateError(err)
	}

	return nil
}

func (s *adminService) EnsureBootstrapPassword(ctx context.Context, password string) error {
	var stored string
	found, err := s.settings.Get(ctx, settings.KeyAdminPassword, &stored)
	if err != nil {
		return a.NewCredentialLookupError(err)
	}
	if found {
		return nil
	}

	logger.Info("no admin password configured, storing bootstrap password", nil)
	return s.ChangePassword(ctx, password)
}

// passwordHash resolves the stored bcrypt hash. Lookup failure is
// returned as an error: login must not degrade to a default password.
func (s *adminService) passwordHash(ctx context.Context) (string, error) {
	var hash string
	found, err := s.settings.Get(ctx, settings.KeyAdminPassword, &hash)
	if err != nil {
		return "", a.NewCredentialLookupError(err)
	}
	if !found || hash == "" {
		return "", a.ErrPasswordNotConfigured
	}
	return hash, nil
}
