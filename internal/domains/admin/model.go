package admin

import "time"

// Session is an issued admin session: a signed bearer token with an
// explicit expiry, replacing the original persistent client-side flag.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	NewPassword string `json:"newPassword"`
}
