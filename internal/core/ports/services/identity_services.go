package services

import (
	"context"

	"github.com/SscSPs/travel_request_app/internal/core/domain"
)

// IdentitySvc maps an authenticated login to exactly one role record.
type IdentitySvc interface {
	// ResolvePrincipal looks the email up in the employee, manager and admin records.
	// It fails with ErrProfileNotFound when nothing matches and with
	// ErrAmbiguousIdentity when more than one record matches.
	ResolvePrincipal(ctx context.Context, email string, userID string) (*domain.Principal, error)
}
