package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	portssvc "github.com/SscSPs/travel_request_app/internal/core/ports/services"
	"github.com/SscSPs/travel_request_app/internal/dto"
	"github.com/SscSPs/travel_request_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	oauthStateCookie = "oauthstate"
	oauthStateMaxAge = 10 * 60
)

// googleOAuthHandler signs users in with Google. The verified Google email must
// belong to an existing login; no logins are created here.
type googleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthSvc
	authService        portssvc.AuthSvc
	frontendBaseURL    string
	secureCookies      bool
}

func newGoogleOAuthHandler(gs portssvc.GoogleOAuthSvc, as portssvc.AuthSvc, frontendBaseURL string, secureCookies bool) *googleOAuthHandler {
	return &googleOAuthHandler{
		googleOAuthService: gs,
		authService:        as,
		frontendBaseURL:    strings.TrimRight(frontendBaseURL, "/"),
		secureCookies:      secureCookies,
	}
}

// registerGoogleOAuthRoutes registers the Google sign-in routes under /auth/google.
func registerGoogleOAuthRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, frontendBaseURL string, secureCookies bool) {
	h := newGoogleOAuthHandler(services.GoogleOAuth, services.Auth, frontendBaseURL, secureCookies)
	google := rg.Group("/auth/google")
	{
		google.GET("/login", h.login)
		google.GET("/callback", h.callback)
		google.POST("/token", h.tokenLogin)
	}
}

func (h *googleOAuthHandler) disabled(c *gin.Context) bool {
	if h.googleOAuthService.Enabled() {
		return false
	}
	c.JSON(http.StatusNotFound, ErrorResponse{Error: "Google sign-in is not configured"})
	return true
}

// login godoc
// @Summary Start Google sign-in
// @Description Redirects to the Google consent screen.
// @Tags auth
// @Success 307
// @Failure 404 {object} ErrorResponse "Google sign-in is not configured"
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/login [get]
func (h *googleOAuthHandler) login(c *gin.Context) {
	if h.disabled(c) {
		return
	}
	ctx := c.Request.Context()
	state, err := h.googleOAuthService.GenerateStateString(ctx)
	if err != nil {
		respondError(c, err, "Failed to start Google sign-in")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, oauthStateMaxAge, "/", "", h.secureCookies, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleOAuthService.GetGoogleLoginURL(ctx, state))
}

// callback godoc
// @Summary Google sign-in callback
// @Description Exchanges the authorization code and issues a session token. When a
// @Description frontend URL is configured the token is handed over by redirect.
// @Tags auth
// @Produce json
// @Param state query string true "OAuth state"
// @Param code query string true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Success 307
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /auth/google/callback [get]
func (h *googleOAuthHandler) callback(c *gin.Context) {
	if h.disabled(c) {
		return
	}
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	expectedState, err := c.Cookie(oauthStateCookie)
	c.SetCookie(oauthStateCookie, "", -1, "/", "", h.secureCookies, true)
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		logger.Warn("OAuth state mismatch")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid OAuth state"})
		return
	}
	if errParam := c.Query("error"); errParam != "" {
		logger.Warn("Google sign-in was not completed", slog.String("reason", errParam))
		h.finish(c, "", dto.LoginResponse{}, errParam)
		return
	}
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Authorization code is required"})
		return
	}

	email, err := h.googleOAuthService.ExchangeCodeForEmail(ctx, code)
	if err != nil {
		respondError(c, err, "Failed to complete Google sign-in")
		return
	}
	token, expiresAt, err := h.authService.LoginWithVerifiedEmail(ctx, email)
	if err != nil {
		respondError(c, err, "Failed to complete Google sign-in")
		return
	}

	logger.Info("Google sign-in completed")
	h.finish(c, token, dto.LoginResponse{Token: token, ExpiresAt: expiresAt, Message: "Login successful"}, "")
}

// finish hands the result to the frontend by redirect, or as JSON when no frontend is configured.
func (h *googleOAuthHandler) finish(c *gin.Context, token string, resp dto.LoginResponse, errReason string) {
	if h.frontendBaseURL == "" {
		if errReason != "" {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Google sign-in failed: " + errReason})
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}
	fragment := url.Values{}
	if errReason != "" {
		fragment.Set("error", errReason)
	} else {
		fragment.Set("token", token)
		fragment.Set("expires_at", strconv.FormatInt(resp.ExpiresAt.Unix(), 10))
	}
	c.Redirect(http.StatusTemporaryRedirect, h.frontendBaseURL+"/auth/callback#"+fragment.Encode())
}

// tokenLogin godoc
// @Summary Sign in with a Google ID token
// @Description Validates an ID token obtained by client-side Google sign-in and issues a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.GoogleTokenLoginRequest true "Google ID token"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /auth/google/token [post]
func (h *googleOAuthHandler) tokenLogin(c *gin.Context) {
	var req dto.GoogleTokenLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	ctx := c.Request.Context()

	email, err := h.googleOAuthService.ValidateIDToken(ctx, req.IDToken)
	if err != nil {
		respondError(c, err, "Failed to validate Google ID token")
		return
	}
	token, expiresAt, err := h.authService.LoginWithVerifiedEmail(ctx, email)
	if err != nil {
		respondError(c, err, "Failed to sign in")
		return
	}
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, ExpiresAt: expiresAt, Message: "Login successful"})
}
