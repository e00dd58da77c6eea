package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/travel_request_app/internal/apperrors"
	"github.com/SscSPs/travel_request_app/internal/core/domain"
	portsrepo "github.com/SscSPs/travel_request_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/travel_request_app/internal/core/ports/services"
	"github.com/SscSPs/travel_request_app/internal/dto"
	"github.com/google/uuid"
)

// authProvisioner is the slice of AuthSvc the directory needs.
type authProvisioner interface {
	EnsureAuthUser(ctx context.Context, email, password string) (*domain.AuthUser, bool, error)
}

// directoryService implements admin-only management of employees and managers.
type directoryService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
	managerRepo  portsrepo.ManagerRepositoryFacade
	adminRepo    portsrepo.AdminRepositoryFacade
	auth         authProvisioner
}

func NewDirectoryService(
	employeeRepo portsrepo.EmployeeRepositoryFacade,
	managerRepo portsrepo.ManagerRepositoryFacade,
	adminRepo portsrepo.AdminRepositoryFacade,
	auth authProvisioner,
) portssvc.DirectorySvcFacade {
	return &directoryService{
		employeeRepo: employeeRepo,
		managerRepo:  managerRepo,
		adminRepo:    adminRepo,
		auth:         auth,
	}
}

var _ portssvc.DirectorySvcFacade = (*directoryService)(nil)

// ensureEmailAvailable rejects an email already held by any role record other than selfID.
func (s *directoryService) ensureEmailAvailable(ctx context.Context, email, selfID string) error {
	checks := []struct {
		role domain.Role
		find func() (domain.Identity, error)
	}{
		{domain.RoleEmployee, func() (domain.Identity, error) { return lookupRecord(ctx, s.employeeRepo.FindEmployeeByEmail, email) }},
		{domain.RoleManager, func() (domain.Identity, error) { return lookupRecord(ctx, s.managerRepo.FindManagerByEmail, email) }},
		{domain.RoleAdmin, func() (domain.Identity, error) { return lookupRecord(ctx, s.adminRepo.FindAdminByEmail, email) }},
	}
	for _, c := range checks {
		record, err := c.find()
		if err != nil {
			return fmt.Errorf("failed to check email availability: %w", err)
		}
		if record != nil && record.GetID() != selfID {
			return apperrors.NewConflictError("email is already used by another " + string(c.role))
		}
	}
	return nil
}

func (s *directoryService) ensureManager(ctx context.Context, managerID string) error {
	if _, err := s.managerRepo.FindManagerByID(ctx, managerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewFieldValidationError(map[string]string{"manager": "manager does not exist"})
		}
		return fmt.Errorf("failed to load manager: %w", err)
	}
	return nil
}

// provisionLogin creates the login for a new personnel record unless one exists.
// It runs after the record is saved so a failed save never leaves a login behind.
func (s *directoryService) provisionLogin(ctx context.Context, email, password string) error {
	user, created, err := s.auth.EnsureAuthUser(ctx, email, password)
	if err != nil {
		return err
	}
	if created {
		s.LogInfo(ctx, "Login provisioned", slog.String("user_id", user.UserID))
	}
	return nil
}

func personnelStatus(status *string) string {
	if status == nil || strings.TrimSpace(*status) == "" {
		return domain.DefaultPersonnelStatus
	}
	return *status
}

func (s *directoryService) ListEmployees(ctx context.Context, principal domain.Principal) ([]domain.Employee, error) {
	if err := s.RequireRole(ctx, principal, domain.RoleAdmin); err != nil {
		return nil, err
	}
	employees, err := s.employeeRepo.FindEmployees(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees")
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

func (s *directoryService) GetEmployee(ctx context.Context, principal domain.Principal, employeeID string) (*domain.Employee, error) {
	if err := s.RequireRole(ctx, principal, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.employeeRepo.FindEmployeeByID(ctx, employeeID)
}

func (s *directoryService) CreateEmployee(ctx context.Context, principal domain.Principal, req dto.CreatePersonnelRequest) (*domain.Employee, error) {
	if err := s.RequireRole(ctx, principal, domain.RoleAdmin); err != nil {
		return nil, err
	}
	email := strings.TrimSpace(req.Email)
	if err := s.ensureEmailAvailable(ctx, email, ""); err != nil {
		return nil, err
	}
	if req.Manager != nil && *req.Manager != "" {
		if err := s.ensureManager(ctx, *req.Manager); err != nil {
			return nil, err
		}
	}
	employee := domain.Employee{
		PersonFields: domain.PersonFields{
			ID:        uuid.NewString(),
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     email,
		},
		Department: req.Department,
		Status:     personnelStatus(req.Status),
		CreatedAt:  time.Now().UTC(),
	}
	if req.Manager != nil && *req.Manager != "" {
		employee.ManagerID = req.Manager
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		s.LogError(ctx, err, "Failed to save employee")
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	if err := s.provisionLogin(ctx, email, req.Password); err != nil {
		if _, derr := s.employeeRepo.DeleteEmployee(ctx, employee.ID); derr != nil {
			s.LogError(ctx, derr, "Failed to discard employee without login", slog.String("employee_id", employee.ID))
		}
		return nil, err
	}
	s.LogInfo(ctx, "Employee created", slog.String("employee_id", employee.ID))
	return &employee, nil
}

func (s *directoryService) UpdateEmployee(ctx context.Context, principal domain.Principal, employeeID string, req dto.UpdatePersonnelRequest) (*domain.Employee, error) {
	if err := s.RequireRole(ctx, principal, domain.RoleAdmin); err != nil {
		return nil, err
	}
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	patch := req.ToPatch()
	if patch.Email != nil && !strings.EqualFold(*patch.Email, employee.Email) {
		if err := s.ensureEmailAvailable(ctx, *patch.Email, employee.ID); err != nil {
			return nil, err
		}
	}
	if patch.ManagerID != nil && *patch.ManagerID != "" {
		if err := s.ensureManager(ctx, *patch.ManagerID); err != nil {
			return nil, err
		}
	}

	patch.ApplyTo(employee)
	if err := s.employeeRepo.UpdateEmployee(ctx, *employee); err != nil {
		s.LogError(ctx, err, "Failed to update employee", slog.String("employee_id", employeeID))
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return employee, nil
}

func (s *directoryService) DeleteEmployee(ctx context.Context, principal domain.Principal, employeeID string) error {
	if err := s.RequireRole(ctx, principal, domain.RoleAdmin); err != nil {
		return err
	}
	removed, err := s.employeeRepo.DeleteEmployee(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete employee", slog.String("employee_id", employeeID))
		}
		return err
	}
	s.LogInfo(ctx, "Employee deleted",
		slog.String("employee_id", employeeID),
		slog.Int64("deleted_requests", removed))
	return nil
}

func (s *directoryService) ListManagers(ctx context.Context, principal domain.Principal) ([]domain.Manager, error) {
	if err := s.RequireRole(ctx, principal, domain.RoleAdmin); err != nil {
		return nil, err
	}
	managers, err := s.managerRepo.FindManagers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list managers")
		return nil, fmt.Errorf("failed to list managers: %w", err)
	}
	return managers, nil
}

func (s *directoryService) GetManager(ctx context.Context, principal domain.Principal, managerID string) (*domain.Manager, error) {
	if err := s.RequireRole(ctx, principal, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.managerRepo.FindManagerByID(ctx, managerID)
}

func (s *directoryService) CreateManager(ctx context.Context, principal domain.Principal, req dto.CreatePersonnelRequest) (*domain.Manager, error) {
	if err := s.RequireRole(ctx, principal, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if req.Manager != nil && *req.Manager != "" {
		return nil, apperrors.NewFieldValidationError(map[string]string{"manager": "managers cannot be assigned a manager"})
	}
	email := strings.TrimSpace(req.Email)
	if err := s.ensureEmailAvailable(ctx, email, ""); err != nil {
		return nil, err
	}
	manager := domain.Manager{
		PersonFields: domain.PersonFields{
			ID:        uuid.NewString(),
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     email,
		},
		Department: req.Department,
		Status:     personnelStatus(req.Status),
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.managerRepo.SaveManager(ctx, manager); err != nil {
		s.LogError(ctx, err, "Failed to save manager")
		return nil, fmt.Errorf("failed to create manager: %w", err)
	}
	if err := s.provisionLogin(ctx, email, req.Password); err != nil {
		if _, derr := s.managerRepo.DeleteManager(ctx, manager.ID); derr != nil {
			s.LogError(ctx, derr, "Failed to discard manager without login", slog.String("manager_id", manager.ID))
		}
		return nil, err
	}
	s.LogInfo(ctx, "Manager created", slog.String("manager_id", manager.ID))
	return &manager, nil
}

func (s *directoryService) UpdateManager(ctx context.Context, principal domain.Principal, managerID string, req dto.UpdatePersonnelRequest) (*domain.Manager, error) {
	if err := s.RequireRole(ctx, principal, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if req.Manager != nil {
		return nil, apperrors.NewFieldValidationError(map[string]string{"manager": "managers cannot be assigned a manager"})
	}
	manager, err := s.managerRepo.FindManagerByID(ctx, managerID)
	if err != nil {
		return nil, err
	}

	patch := req.ToPatch()
	if patch.Email != nil && !strings.EqualFold(*patch.Email, manager.Email) {
		if err := s.ensureEmailAvailable(ctx, *patch.Email, manager.ID); err != nil {
			return nil, err
		}
	}

	patch.ApplyToManager(manager)
	if err := s.managerRepo.UpdateManager(ctx, *manager); err != nil {
		s.LogError(ctx, err, "Failed to update manager", slog.String("manager_id", managerID))
		return nil, fmt.Errorf("failed to update manager: %w", err)
	}
	return manager, nil
}

// DeleteManager unassigns the manager's employees and removes its assigned requests.
func (s *directoryService) DeleteManager(ctx context.Context, principal domain.Principal, managerID string) error {
	if err := s.RequireRole(ctx, principal, domain.RoleAdmin); err != nil {
		return err
	}
	result, err := s.managerRepo.DeleteManager(ctx, managerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete manager", slog.String("manager_id", managerID))
		}
		return err
	}
	s.LogInfo(ctx, "Manager deleted",
		slog.String("manager_id", managerID),
		slog.Int64("unassigned_employees", result.UnassignedEmployees),
		slog.Int64("deleted_requests", result.DeletedRequests))
	return nil
}
