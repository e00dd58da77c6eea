package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/travel_request_app/internal/apperrors"
	"github.com/SscSPs/travel_request_app/internal/core/domain"
	portssvc "github.com/SscSPs/travel_request_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// RequireRole resolves the authenticated email to its role record and aborts
// unless it belongs to role. Must run after AuthMiddleware.
func RequireRole(identitySvc portssvc.IdentitySvc, role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		email, ok := GetEmailFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication credentials were not provided."})
			return
		}
		userID, _ := GetUserIDFromContext(c)

		principal, err := identitySvc.ResolvePrincipal(c.Request.Context(), email, userID)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrProfileNotFound):
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": role.Title() + " profile not found"})
			case errors.Is(err, apperrors.ErrAmbiguousIdentity):
				c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": apperrors.Message(err, "Email is bound to more than one profile")})
			default:
				logger.Error("Failed to resolve principal", slog.String("error", err.Error()))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve profile"})
			}
			return
		}

		if principal.Role != role {
			logger.Warn("Principal has wrong role",
				slog.String("role", string(principal.Role)),
				slog.String("required_role", string(role)))
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": role.Title() + " profile not found"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), principalKey, *principal)
		enrichedLogger := logger.With(
			slog.String("role", string(principal.Role)),
			slog.String("principal_id", principal.ID),
		)
		c.Request = c.Request.WithContext(WithLogger(ctx, enrichedLogger))
		c.Next()
	}
}
