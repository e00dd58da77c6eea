package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/travel_request_app/internal/apperrors"
	"github.com/SscSPs/travel_request_app/internal/core/domain"
	portssvc "github.com/SscSPs/travel_request_app/internal/core/ports/services"
	"github.com/SscSPs/travel_request_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAuthService struct {
	mock.Mock
}

var _ portssvc.AuthSvc = (*mockAuthService)(nil)

func (m *mockAuthService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *mockAuthService) LoginWithVerifiedEmail(ctx context.Context, email string) (string, time.Time, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *mockAuthService) ValidateSession(ctx context.Context, token string) (*portssvc.SessionInfo, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.SessionInfo), args.Error(1)
}

func (m *mockAuthService) Logout(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

func (m *mockAuthService) EnsureAuthUser(ctx context.Context, email, password string) (*domain.AuthUser, bool, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.AuthUser), args.Bool(1), args.Error(2)
}

type mockIdentityService struct {
	mock.Mock
}

var _ portssvc.IdentitySvc = (*mockIdentityService)(nil)

func (m *mockIdentityService) ResolvePrincipal(ctx context.Context, email string, userID string) (*domain.Principal, error) {
	args := m.Called(ctx, email, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Principal), args.Error(1)
}

func init() {
	gin.SetMode(gin.TestMode)
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func serve(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	session := &portssvc.SessionInfo{SessionID: "s-1", UserID: "u-1", Email: "jane@example.com"}

	tests := []struct {
		name       string
		header     string
		setup      func(m *mockAuthService)
		wantStatus int
		wantError  string
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantError:  "Authentication credentials were not provided.",
		},
		{
			name:       "wrong scheme",
			header:     "Token abc",
			wantStatus: http.StatusUnauthorized,
			wantError:  "Authorization header format must be Bearer {token}",
		},
		{
			name:   "expired token",
			header: "Bearer old",
			setup: func(m *mockAuthService) {
				m.On("ValidateSession", mock.Anything, "old").Return(nil, jwt.ErrTokenExpired)
			},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Token has expired",
		},
		{
			name:   "ended session",
			header: "Bearer ended",
			setup: func(m *mockAuthService) {
				m.On("ValidateSession", mock.Anything, "ended").
					Return(nil, apperrors.NewAppError(http.StatusUnauthorized, "Session has ended, please log in again", apperrors.ErrUnauthorized))
			},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Session has ended, please log in again",
		},
		{
			name:   "valid session",
			header: "bearer good",
			setup: func(m *mockAuthService) {
				m.On("ValidateSession", mock.Anything, "good").Return(session, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := new(mockAuthService)
			if tt.setup != nil {
				tt.setup(authSvc)
			}

			r := gin.New()
			r.GET("/protected", middleware.AuthMiddleware(authSvc), func(c *gin.Context) {
				userID, _ := middleware.GetUserIDFromContext(c)
				email, _ := middleware.GetEmailFromContext(c)
				sessionID, _ := middleware.GetSessionIDFromContext(c)
				c.JSON(http.StatusOK, gin.H{"user_id": userID, "email": email, "session_id": sessionID})
			})

			w := serve(r, tt.header)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, errorOf(t, w))
				return
			}
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "u-1", body["user_id"])
			assert.Equal(t, "jane@example.com", body["email"])
			assert.Equal(t, "s-1", body["session_id"])
		})
	}
}

func TestRequireRole(t *testing.T) {
	session := &portssvc.SessionInfo{SessionID: "s-1", UserID: "u-1", Email: "jane@example.com"}
	manager := &domain.Principal{Role: domain.RoleManager, ID: "m-1", Email: "jane@example.com", UserID: "u-1"}

	tests := []struct {
		name       string
		role       domain.Role
		resolved   *domain.Principal
		resolveErr error
		wantStatus int
		wantError  string
	}{
		{
			name:       "matching role",
			role:       domain.RoleManager,
			resolved:   manager,
			wantStatus: http.StatusOK,
		},
		{
			name:       "other role",
			role:       domain.RoleAdmin,
			resolved:   manager,
			wantStatus: http.StatusNotFound,
			wantError:  "Admin profile not found",
		},
		{
			name:       "no profile",
			role:       domain.RoleEmployee,
			resolveErr: apperrors.NewProfileNotFoundError(domain.RoleEmployee.Title()),
			wantStatus: http.StatusNotFound,
			wantError:  "Employee profile not found",
		},
		{
			name:       "ambiguous profile",
			role:       domain.RoleEmployee,
			resolveErr: apperrors.NewAppError(http.StatusConflict, "Email is bound to more than one profile (employee, manager)", apperrors.ErrAmbiguousIdentity),
			wantStatus: http.StatusConflict,
			wantError:  "Email is bound to more than one profile (employee, manager)",
		},
		{
			name:       "lookup failure",
			role:       domain.RoleEmployee,
			resolveErr: assert.AnError,
			wantStatus: http.StatusInternalServerError,
			wantError:  "Failed to resolve profile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := new(mockAuthService)
			authSvc.On("ValidateSession", mock.Anything, "good").Return(session, nil)
			identitySvc := new(mockIdentityService)
			if tt.resolveErr != nil {
				identitySvc.On("ResolvePrincipal", mock.Anything, "jane@example.com", "u-1").Return(nil, tt.resolveErr)
			} else {
				identitySvc.On("ResolvePrincipal", mock.Anything, "jane@example.com", "u-1").Return(tt.resolved, nil)
			}

			r := gin.New()
			r.GET("/protected",
				middleware.AuthMiddleware(authSvc),
				middleware.RequireRole(identitySvc, tt.role),
				func(c *gin.Context) {
					p, ok := middleware.GetPrincipalFromContext(c)
					require.True(t, ok)
					c.JSON(http.StatusOK, gin.H{"id": p.ID})
				})

			w := serve(r, "Bearer good")

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, errorOf(t, w))
				return
			}
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "m-1", body["id"])
			identitySvc.AssertExpectations(t)
		})
	}
}

func TestRateLimit(t *testing.T) {
	limiterInstance, err := middleware.NewMemoryLimiter("2-M")
	require.NoError(t, err)

	r := gin.New()
	r.POST("/login", middleware.RateLimit(limiterInstance), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "203.0.113.7:5000"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
}

func TestNewMemoryLimiter_InvalidRate(t *testing.T) {
	_, err := middleware.NewMemoryLimiter("lots")
	assert.Error(t, err)
}
