package models

// ErrorResponse is the standard JSON error envelope. Message is always a
// fixed, non-leaking string; internal causes stay in the logs.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AuthResponse is returned by login and register: a bearer token plus the
// public projection of the authenticated user.
type AuthResponse struct {
	AccessToken string     `json:"access_token"`
	ExpiresAt   int64      `json:"expires_at"`
	User        PublicUser `json:"user"`
}

// TokenResponse is returned by refresh, which re-issues the token only.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}
