package repositories

import (
	"context"

	"github.com/SscSPs/travel_request_app/internal/core/domain"
)

// EmployeeReader defines read operations for employee records
type EmployeeReader interface {
	// FindEmployeeByID retrieves an employee by ID.
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// FindEmployeeByEmail retrieves an employee by its unique email.
	FindEmployeeByEmail(ctx context.Context, email string) (*domain.Employee, error)

	// FindEmployees retrieves all employees.
	FindEmployees(ctx context.Context) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for employee records
type EmployeeWriter interface {
	SaveEmployee(ctx context.Context, employee domain.Employee) error
	UpdateEmployee(ctx context.Context, employee domain.Employee) error
}

// EmployeeLifecycleManager removes employees together with their dependents.
type EmployeeLifecycleManager interface {
	// DeleteEmployee deletes the employee's travel requests and then the employee,
	// in one transaction. It returns the number of travel requests removed.
	DeleteEmployee(ctx context.Context, employeeID string) (int64, error)
}

// EmployeeRepositoryFacade combines all employee repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
	EmployeeLifecycleManager
}

// ManagerDeletion reports the explicit cascade performed when a manager is deleted.
type ManagerDeletion struct {
	UnassignedEmployees int64
	DeletedRequests     int64
}

// ManagerReader defines read operations for manager records
type ManagerReader interface {
	FindManagerByID(ctx context.Context, managerID string) (*domain.Manager, error)
	FindManagerByEmail(ctx context.Context, email string) (*domain.Manager, error)
	FindManagers(ctx context.Context) ([]domain.Manager, error)
}

// ManagerWriter defines write operations for manager records
type ManagerWriter interface {
	SaveManager(ctx context.Context, manager domain.Manager) error
	UpdateManager(ctx context.Context, manager domain.Manager) error
}

// ManagerLifecycleManager removes managers together with their dependents.
type ManagerLifecycleManager interface {
	// DeleteManager nulls manager_id on dependent employees, deletes the travel
	// requests assigned to the manager and deletes the manager, in one transaction.
	DeleteManager(ctx context.Context, managerID string) (*ManagerDeletion, error)
}

// ManagerRepositoryFacade combines all manager repository interfaces
type ManagerRepositoryFacade interface {
	ManagerReader
	ManagerWriter
	ManagerLifecycleManager
}

// AdminRepositoryFacade defines operations on admin records.
type AdminRepositoryFacade interface {
	FindAdminByID(ctx context.Context, adminID string) (*domain.Admin, error)
	FindAdminByEmail(ctx context.Context, email string) (*domain.Admin, error)
	FindAdmins(ctx context.Context) ([]domain.Admin, error)

	// UpsertAdmin inserts the admin or updates the names of the admin with the same email.
	// It returns the stored record.
	UpsertAdmin(ctx context.Context, admin domain.Admin) (*domain.Admin, error)

	// DeleteAdmin clears processed_by on requests the admin processed and deletes it.
	DeleteAdmin(ctx context.Context, adminID string) error
}
