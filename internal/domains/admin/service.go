package admin

import "context"

// Service is the credential gate. Password verification is a bcrypt
// comparison against the stored hash; a failed lookup fails the login
// (fail-closed) instead of degrading to a default password.
type Service interface {
	// Login verifies the credentials and issues a session.
	// Wrong username or password yields ErrInvalidCredentials; a missing
	// password document yields ErrPasswordNotConfigured.
	Login(ctx context.Context, username, password string) (*Session, error)

	// ChangePassword hashes and stores a new admin password.
	ChangePassword(ctx context.Context, newPassword string) error

	// EnsureBootstrapPassword stores the hashed bootstrap password if no
	// admin password exists yet. Called once at startup; never at login.
	EnsureBootstrapPassword(ctx context.Context, password string) error
}
