package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/SscSPs/travel_request_app/internal/apperrors"
	"github.com/SscSPs/travel_request_app/internal/core/domain"
	portssvc "github.com/SscSPs/travel_request_app/internal/core/ports/services"
	"github.com/SscSPs/travel_request_app/internal/platform/config"
	"github.com/SscSPs/travel_request_app/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

var errGoogleDisabled = apperrors.NewAppError(http.StatusNotFound, "Google sign-in is not configured", apperrors.ErrNotFound)

// googleOAuthService resolves a Google account to its verified email.
type googleOAuthService struct {
	BaseService
	cfg          *config.Config
	oauth2Config *oauth2.Config
}

func NewGoogleOAuthService(cfg *config.Config) portssvc.GoogleOAuthSvc {
	return &googleOAuthService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email"},
			Endpoint:     google.Endpoint,
		},
	}
}

var _ portssvc.GoogleOAuthSvc = (*googleOAuthService)(nil)

func (s *googleOAuthService) Enabled() bool {
	return s.cfg.GoogleOAuthEnabled()
}

// GenerateStateString creates the CSRF token of the OAuth flow.
func (s *googleOAuthService) GenerateStateString(ctx context.Context) (string, error) {
	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate state string for OAuth: %w", err)
	}
	return state, nil
}

func (s *googleOAuthService) GetGoogleLoginURL(ctx context.Context, state string) string {
	return s.oauth2Config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (s *googleOAuthService) ExchangeCodeForEmail(ctx context.Context, code string) (string, error) {
	if !s.Enabled() {
		return "", errGoogleDisabled
	}
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return "", apperrors.NewAppError(http.StatusUnauthorized, "Failed to exchange authorization code", errors.Join(apperrors.ErrUnauthorized, err))
	}

	resp, err := s.oauth2Config.Client(ctx, token).Get(googleUserInfoURL)
	if err != nil {
		return "", fmt.Errorf("failed to get user info from google: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("google api returned non-200 status for userinfo: %s", resp.Status)
	}

	var info domain.GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", fmt.Errorf("failed to decode user info from google: %w", err)
	}
	if info.Email == "" || !info.VerifiedEmail {
		return "", apperrors.NewAppError(http.StatusUnauthorized, "Google account email is not verified", apperrors.ErrUnauthorized)
	}
	return info.Email, nil
}

func (s *googleOAuthService) ValidateIDToken(ctx context.Context, idToken string) (string, error) {
	if s.cfg.GoogleClientID == "" {
		return "", errGoogleDisabled
	}
	payload, err := idtoken.Validate(ctx, idToken, s.cfg.GoogleClientID)
	if err != nil {
		return "", apperrors.NewAppError(http.StatusUnauthorized, "Invalid Google ID token", errors.Join(apperrors.ErrUnauthorized, err))
	}
	email, _ := payload.Claims["email"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	if email == "" || !verified {
		return "", apperrors.NewAppError(http.StatusUnauthorized, "Google account email is not verified", apperrors.ErrUnauthorized)
	}
	return email, nil
}
