package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/travel_request_app/internal/apperrors"
	"github.com/SscSPs/travel_request_app/internal/core/domain"
	portsrepo "github.com/SscSPs/travel_request_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/travel_request_app/internal/core/ports/services"
	"github.com/SscSPs/travel_request_app/internal/platform/config"
	"github.com/SscSPs/travel_request_app/internal/utils"
	"github.com/google/uuid"
)

// authService issues JWT session tokens backed by server-side session rows,
// so that logout invalidates a token before it expires.
type authService struct {
	BaseService
	cfg         *config.Config
	userRepo    portsrepo.AuthUserRepository
	sessionRepo portsrepo.SessionRepository
}

func NewAuthService(cfg *config.Config, userRepo portsrepo.AuthUserRepository, sessionRepo portsrepo.SessionRepository) portssvc.AuthSvc {
	return &authService{
		cfg:         cfg,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
	}
}

var _ portssvc.AuthSvc = (*authService)(nil)

func errInvalidCredentials() error {
	return apperrors.NewAppError(http.StatusUnauthorized, "Invalid credentials", apperrors.ErrUnauthorized)
}

func (s *authService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	user, err := s.userRepo.FindAuthUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "Login attempt for unknown username")
			return "", time.Time{}, errInvalidCredentials()
		}
		s.LogError(ctx, err, "Failed to look up login")
		return "", time.Time{}, fmt.Errorf("failed to look up login: %w", err)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogInfo(ctx, "Login attempt with wrong password", slog.String("user_id", user.UserID))
		return "", time.Time{}, errInvalidCredentials()
	}
	return s.issueSession(ctx, user)
}

func (s *authService) LoginWithVerifiedEmail(ctx context.Context, email string) (string, time.Time, error) {
	user, err := s.userRepo.FindAuthUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", time.Time{}, apperrors.NewAppError(http.StatusUnauthorized, "No account is registered for this email", apperrors.ErrUnauthorized)
		}
		return "", time.Time{}, fmt.Errorf("failed to look up login: %w", err)
	}
	return s.issueSession(ctx, user)
}

func (s *authService) issueSession(ctx context.Context, user *domain.AuthUser) (string, time.Time, error) {
	now := time.Now().UTC()
	session := domain.AuthSession{
		SessionID: uuid.NewString(),
		UserID:    user.UserID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.JWTExpiryDuration),
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, user.UserID, user.Email, s.cfg.JWTSecret, s.cfg.JWTIssuer, now, s.cfg.JWTExpiryDuration)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign session token", slog.String("user_id", user.UserID))
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	if err := s.sessionRepo.SaveSession(ctx, session); err != nil {
		s.LogError(ctx, err, "Failed to store session", slog.String("user_id", user.UserID))
		return "", time.Time{}, fmt.Errorf("failed to store session: %w", err)
	}

	s.LogInfo(ctx, "Session issued", slog.String("user_id", user.UserID), slog.String("session_id", session.SessionID))
	return token, session.ExpiresAt, nil
}

func (s *authService) ValidateSession(ctx context.Context, token string) (*portssvc.SessionInfo, error) {
	claims, err := utils.ParseSessionJWT(token, s.cfg.JWTSecret, s.cfg.JWTIssuer)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusUnauthorized, "Invalid token", err)
	}

	session, err := s.sessionRepo.FindSession(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewAppError(http.StatusUnauthorized, "Session has ended, please log in again", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session.UserID != claims.Subject || !time.Now().Before(session.ExpiresAt) {
		return nil, apperrors.NewAppError(http.StatusUnauthorized, "Session has ended, please log in again", apperrors.ErrUnauthorized)
	}

	return &portssvc.SessionInfo{
		SessionID: session.SessionID,
		UserID:    session.UserID,
		Email:     claims.Email,
	}, nil
}

// Logout deletes the session and purges any expired ones.
func (s *authService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessionRepo.DeleteSession(ctx, sessionID); err != nil {
		s.LogError(ctx, err, "Failed to delete session", slog.String("session_id", sessionID))
		return fmt.Errorf("failed to log out: %w", err)
	}
	if purged, err := s.sessionRepo.DeleteExpiredSessions(ctx, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to purge expired sessions")
	} else if purged > 0 {
		s.LogDebug(ctx, "Purged expired sessions", slog.Int64("count", purged))
	}
	return nil
}

func (s *authService) EnsureAuthUser(ctx context.Context, email, password string) (*domain.AuthUser, bool, error) {
	existing, err := s.userRepo.FindAuthUserByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to look up login: %w", err)
	}

	if password == "" {
		return nil, false, apperrors.NewFieldValidationError(map[string]string{"password": "required when no login exists for this email"})
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, false, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.AuthUser{
		UserID:       uuid.NewString(),
		Username:     email,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.userRepo.SaveAuthUser(ctx, user); err != nil {
		return nil, false, fmt.Errorf("failed to create login: %w", err)
	}
	return &user, true, nil
}
