package services

import (
	"context"

	"github.com/SscSPs/travel_request_app/internal/core/domain"
	"github.com/SscSPs/travel_request_app/internal/dto"
)

// EmployeeDirectorySvc defines admin-only management of employee records
type EmployeeDirectorySvc interface {
	ListEmployees(ctx context.Context, principal domain.Principal) ([]domain.Employee, error)
	GetEmployee(ctx context.Context, principal domain.Principal, employeeID string) (*domain.Employee, error)
	CreateEmployee(ctx context.Context, principal domain.Principal, req dto.CreatePersonnelRequest) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, principal domain.Principal, employeeID string, req dto.UpdatePersonnelRequest) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, principal domain.Principal, employeeID string) error
}

// ManagerDirectorySvc defines admin-only management of manager records
type ManagerDirectorySvc interface {
	ListManagers(ctx context.Context, principal domain.Principal) ([]domain.Manager, error)
	GetManager(ctx context.Context, principal domain.Principal, managerID string) (*domain.Manager, error)
	CreateManager(ctx context.Context, principal domain.Principal, req dto.CreatePersonnelRequest) (*domain.Manager, error)
	UpdateManager(ctx context.Context, principal domain.Principal, managerID string, req dto.UpdatePersonnelRequest) (*domain.Manager, error)
	DeleteManager(ctx context.Context, principal domain.Principal, managerID string) error
}

// DirectorySvcFacade combines the personnel directory interfaces
type DirectorySvcFacade interface {
	EmployeeDirectorySvc
	ManagerDirectorySvc
}
