package dto

import "time"

// LoginRequest carries username/password credentials.
// Fields are checked by the handler so that a missing field yields a specific message.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Message   string    `json:"message"`
}

// GoogleTokenLoginRequest carries a Google ID token obtained by a client-side sign-in.
type GoogleTokenLoginRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}
