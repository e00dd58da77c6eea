package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/travel_request_app/internal/core/domain"
)

// AuthUserRepository stores login identities.
type AuthUserRepository interface {
	FindAuthUserByID(ctx context.Context, userID string) (*domain.AuthUser, error)
	FindAuthUserByUsername(ctx context.Context, username string) (*domain.AuthUser, error)
	FindAuthUserByEmail(ctx context.Context, email string) (*domain.AuthUser, error)
	SaveAuthUser(ctx context.Context, user domain.AuthUser) error
}

// SessionRepository stores issued sessions so they can be invalidated before expiry.
type SessionRepository interface {
	SaveSession(ctx context.Context, session domain.AuthSession) error
	FindSession(ctx context.Context, sessionID string) (*domain.AuthSession, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// DeleteExpiredSessions removes sessions that expired before now.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}
