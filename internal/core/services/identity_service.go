package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/travel_request_app/internal/apperrors"
	"github.com/SscSPs/travel_request_app/internal/core/domain"
	portsrepo "github.com/SscSPs/travel_request_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/travel_request_app/internal/core/ports/services"
)

// identityService resolves an authenticated email to exactly one role record.
type identityService struct {
	BaseService
	employeeRepo portsrepo.EmployeeReader
	managerRepo  portsrepo.ManagerReader
	adminRepo    portsrepo.AdminRepositoryFacade
}

func NewIdentityService(employeeRepo portsrepo.EmployeeReader, managerRepo portsrepo.ManagerReader, adminRepo portsrepo.AdminRepositoryFacade) portssvc.IdentitySvc {
	return &identityService{
		employeeRepo: employeeRepo,
		managerRepo:  managerRepo,
		adminRepo:    adminRepo,
	}
}

var _ portssvc.IdentitySvc = (*identityService)(nil)

// lookupRecord converts a not-found result into (nil, nil).
func lookupRecord[T domain.Identity](ctx context.Context, find func(context.Context, string) (T, error), email string) (domain.Identity, error) {
	record, err := find(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return record, nil
}

func (s *identityService) ResolvePrincipal(ctx context.Context, email string, userID string) (*domain.Principal, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, apperrors.NewAppError(401, "Authentication credentials were not provided.", apperrors.ErrUnauthorized)
	}

	type candidate struct {
		role   domain.Role
		record domain.Identity
	}
	var matches []candidate

	lookups := []struct {
		role domain.Role
		find func() (domain.Identity, error)
	}{
		{domain.RoleEmployee, func() (domain.Identity, error) { return lookupRecord(ctx, s.employeeRepo.FindEmployeeByEmail, email) }},
		{domain.RoleManager, func() (domain.Identity, error) { return lookupRecord(ctx, s.managerRepo.FindManagerByEmail, email) }},
		{domain.RoleAdmin, func() (domain.Identity, error) { return lookupRecord(ctx, s.adminRepo.FindAdminByEmail, email) }},
	}
	for _, l := range lookups {
		record, err := l.find()
		if err != nil {
			s.LogError(ctx, err, "Failed to look up role record", slog.String("role", string(l.role)))
			return nil, fmt.Errorf("failed to resolve %s profile: %w", l.role, err)
		}
		if record != nil {
			matches = append(matches, candidate{role: l.role, record: record})
		}
	}

	switch len(matches) {
	case 0:
		return nil, apperrors.NewAppError(404, "profile not found", apperrors.ErrProfileNotFound)
	case 1:
		p := domain.NewPrincipal(matches[0].role, matches[0].record, userID)
		return &p, nil
	default:
		roles := make([]string, len(matches))
		for i, m := range matches {
			roles[i] = string(m.role)
		}
		s.LogError(ctx, apperrors.ErrAmbiguousIdentity, "Email is bound to several role records", slog.Any("roles", roles))
		return nil, apperrors.NewAppError(409, "Email is bound to more than one profile ("+strings.Join(roles, ", ")+")", apperrors.ErrAmbiguousIdentity)
	}
}
