package middleware

import (
	"context"

	"github.com/SscSPs/travel_request_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const (
	userIDKey    = contextKey("userID")
	emailKey     = contextKey("email")
	sessionIDKey = contextKey("sessionID")
	principalKey = contextKey("principal")
)

// GetUserIDFromContext retrieves the authenticated user ID from the request context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	return stringFromCtx(c.Request.Context(), userIDKey)
}

// GetEmailFromContext retrieves the email bound to the authenticated session.
func GetEmailFromContext(c *gin.Context) (string, bool) {
	return stringFromCtx(c.Request.Context(), emailKey)
}

// GetSessionIDFromContext retrieves the id of the authenticated session.
func GetSessionIDFromContext(c *gin.Context) (string, bool) {
	return stringFromCtx(c.Request.Context(), sessionIDKey)
}

// GetPrincipalFromContext retrieves the principal resolved by RequireRole.
func GetPrincipalFromContext(c *gin.Context) (domain.Principal, bool) {
	p, ok := c.Request.Context().Value(principalKey).(domain.Principal)
	return p, ok
}

func stringFromCtx(ctx context.Context, key contextKey) (string, bool) {
	v, ok := ctx.Value(key).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
