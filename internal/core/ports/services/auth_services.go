package services

import (
	"context"
	"time"

	"github.com/SscSPs/travel_request_app/internal/core/domain"
)

// SessionInfo describes a validated session.
type SessionInfo struct {
	SessionID string
	UserID    string
	Email     string
}

// AuthSvc issues and invalidates sessions and provisions login identities.
type AuthSvc interface {
	// Login verifies username/password and issues a session token.
	Login(ctx context.Context, username, password string) (token string, expiresAt time.Time, err error)

	// LoginWithVerifiedEmail issues a session token for the login bound to an email
	// verified by an external provider.
	LoginWithVerifiedEmail(ctx context.Context, email string) (token string, expiresAt time.Time, err error)

	// ValidateSession checks the token signature, expiry and that the session was not invalidated.
	ValidateSession(ctx context.Context, token string) (*SessionInfo, error)

	// Logout invalidates the session.
	Logout(ctx context.Context, sessionID string) error

	// EnsureAuthUser provisions a login bound to email unless one exists.
	// It reports whether a login was created.
	EnsureAuthUser(ctx context.Context, email, password string) (*domain.AuthUser, bool, error)
}

// GoogleOAuthSvc implements Google sign-in.
type GoogleOAuthSvc interface {
	// Enabled reports whether Google sign-in is configured.
	Enabled() bool
	GenerateStateString(ctx context.Context) (string, error)
	GetGoogleLoginURL(ctx context.Context, state string) string

	// ExchangeCodeForEmail exchanges an authorization code and returns the verified email.
	ExchangeCodeForEmail(ctx context.Context, code string) (string, error)

	// ValidateIDToken validates a Google ID token and returns the verified email.
	ValidateIDToken(ctx context.Context, idToken string) (string, error)
}
