package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	a "studio-backend/internal/domains/admin"
	"studio-backend/internal/domains/settings"
	"studio-backend/pkg/jwt"
)

// fakeSettings backs the credential gate with an in-memory store.
type fakeSettings struct {
	values map[string]json.RawMessage
	getErr error
}

func newFakeSettings() *fakeSettings {
	return &fakeSettings{values: map[string]json.RawMessage{}}
}

func (f *fakeSettings) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if f.getErr != nil {
		return false, f.getErr
	}
	value, ok := f.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(value, dest)
}

func (f *fakeSettings) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.values[key] = data
	return nil
}

func (f *fakeSettings) RegistrationPrice(ctx context.Context) (decimal.Decimal, bool) {
	return settings.DefaultRegistrationPrice(), false
}

func (f *fakeSettings) UpdateRegistrationPrice(ctx context.Context, price decimal.Decimal) error {
	return nil
}

func (f *fakeSettings) ContactInfo(ctx context.Context) (*settings.ContactInfo, bool) {
	return settings.DefaultContactInfo(), false
}

func (f *fakeSettings) UpdateContactInfo(ctx context.Context, info *settings.ContactInfo) error {
	return nil
}

func (f *fakeSettings) SocialMediaLinks(ctx context.Context) (*settings.SocialMediaLinks, bool) {
	return settings.DefaultSocialMediaLinks(), false
}

func (f *fakeSettings) UpdateSocialMediaLinks(ctx context.Context, links *settings.SocialMediaLinks) error {
	return nil
}

func setupGate(t *testing.T, password string) (a.Service, *fakeSettings) {
	t.Helper()

	store := newFakeSettings()
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		require.NoError(t, err)
		require.NoError(t, store.Set(context.Background(), settings.KeyAdminPassword, string(hash)))
	}

	manager := jwt.NewManager("test-secret", 12*time.Hour)
	return NewAdminService(store, manager, "admin"), store
}

func TestLogin_CorrectCredentialsIssueSession(t *testing.T) {
	svc, _ := setupGate(t, "kingdomstudio2025")

	session, err := svc.Login(context.Background(), "admin", "kingdomstudio2025")

	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.WithinDuration(t, time.Now().Add(12*time.Hour), session.ExpiresAt, time.Minute)
}

func TestLogin_WrongPasswordRejected(t *testing.T) {
	svc, _ := setupGate(t, "kingdomstudio2025")

	_, err := svc.Login(context.Background(), "admin", "wrong")

	assert.ErrorIs(t, err, a.ErrInvalidCredentials)
}

func TestLogin_WrongUsernameRejected(t *testing.T) {
	svc, _ := setupGate(t, "kingdomstudio2025")

	_, err := svc.Login(context.Background(), "other", "kingdomstudio2025")

	assert.ErrorIs(t, err, a.ErrInvalidCredentials)
}

func TestLogin_NoStoredPasswordFailsClosed(t *testing.T) {
	svc, _ := setupGate(t, "")

	_, err := svc.Login(context.Background(), "admin", "anything")

	assert.ErrorIs(t, err, a.ErrPasswordNotConfigured)
}

func TestLogin_LookupFailureFailsClosed(t *testing.T) {
	svc, store := setupGate(t, "kingdomstudio2025")
	store.getErr = errors.New("connection refused")

	_, err := svc.Login(context.Background(), "admin", "kingdomstudio2025")

	require.Error(t, err)
	assert.NotErrorIs(t, err, a.ErrInvalidCredentials)
}

func TestChangePassword_StoresNewHash(t *testing.T) {
	svc, store := setupGate(t, "old-password")

	require.NoError(t, svc.ChangePassword(context.Background(), "new-password"))

	_, err := svc.Login(context.Background(), "admin", "old-password")
	assert.ErrorIs(t, err, a.ErrInvalidCredentials)

	session, err := svc.Login(context.Background(), "admin", "new-password")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)

	// The stored value must be a hash, never the plaintext.
	var stored string
	found, err := store.Get(context.Background(), settings.KeyAdminPassword, &stored)
	require.NoError(t, err)
	require.True(t, found)
	assert.NotEqual(t, "new-password", stored)
}

func TestEnsureBootstrapPassword_OnlyWritesWhenAbsent(t *testing.T) {
	svc, _ := setupGate(t, "")

	require.NoError(t, svc.EnsureBootstrapPassword(context.Background(), "kingdomstudio2025"))

	session, err := svc.Login(context.Background(), "admin", "kingdomstudio2025")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)

	// A second call must not overwrite a changed password.
	require.NoError(t, svc.ChangePassword(context.Background(), "operator-set"))
	require.NoError(t, svc.EnsureBootstrapPassword(context.Background(), "kingdomstudio2025"))

	_, err = svc.Login(context.Background(), "admin", "kingdomstudio2025")
	assert.ErrorIs(t, err, a.ErrInvalidCredentials)
}
