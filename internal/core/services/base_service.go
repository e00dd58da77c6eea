package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/travel_request_app/internal/apperrors"
	"github.com/SscSPs/travel_request_app/internal/core/domain"
	"github.com/SscSPs/travel_request_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the request-scoped logger from context or the default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// RequireRole fails with a profile-not-found error unless principal holds role.
func (s *BaseService) RequireRole(ctx context.Context, principal domain.Principal, role domain.Role) error {
	if principal.Role == role {
		return nil
	}
	s.LogDebug(ctx, "Principal lacks required role",
		slog.String("role", string(principal.Role)),
		slog.String("required_role", string(role)))
	return apperrors.NewProfileNotFoundError(role.Title())
}
