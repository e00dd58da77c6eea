package domain

import "time"

// AuthUser is a login identity. Username is the email of the role record it belongs to.
type AuthUser struct {
	UserID       string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// AuthSession is an issued, not yet invalidated, session. SessionID is the JWT ID claim.
type AuthSession struct {
	SessionID string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// GoogleUserInfo holds the subset of Google's userinfo response used for sign-in.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
}
