package pgsql

import (
	"context"
	"strings"

	"github.com/SscSPs/travel_request_app/internal/apperrors"
	"github.com/SscSPs/travel_request_app/internal/core/domain"
	portsrepo "github.com/SscSPs/travel_request_app/internal/core/ports/repositories"
	"github.com/SscSPs/travel_request_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const employeeEntity = "employee"

const employeeColumns = `employee_id, first_name, last_name, email, department, manager_id, status, created_at`

type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

func toModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		EmployeeID: d.ID,
		FirstName:  d.FirstName,
		LastName:   d.LastName,
		Email:      d.Email,
		Department: d.Department,
		ManagerID:  d.ManagerID,
		Status:     d.Status,
		CreatedAt:  d.CreatedAt,
	}
}

func toDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		PersonFields: domain.PersonFields{
			ID:        m.EmployeeID,
			FirstName: m.FirstName,
			LastName:  m.LastName,
			Email:     m.Email,
		},
		Department: m.Department,
		ManagerID:  m.ManagerID,
		Status:     m.Status,
		CreatedAt:  m.CreatedAt,
	}
}

func (r *PgxEmployeeRepository) findOne(ctx context.Context, where string, arg any) (*domain.Employee, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+employeeColumns+` FROM employees WHERE `+where, arg)
	if err != nil {
		return nil, translateError(err, employeeEntity)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Employee])
	if err != nil {
		return nil, translateError(err, employeeEntity)
	}
	e := toDomainEmployee(m)
	return &e, nil
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	return r.findOne(ctx, "employee_id = $1", employeeID)
}

// FindEmployeeByEmail matches the email case-insensitively.
func (r *PgxEmployeeRepository) FindEmployeeByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	return r.findOne(ctx, "LOWER(email) = $1", strings.ToLower(email))
}

func (r *PgxEmployeeRepository) FindEmployees(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY last_name, first_name`)
	if err != nil {
		return nil, translateError(err, employeeEntity)
	}
	rowModels, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Employee])
	if err != nil {
		return nil, translateError(err, employeeEntity)
	}
	employees := make([]domain.Employee, len(rowModels))
	for i, m := range rowModels {
		employees[i] = toDomainEmployee(m)
	}
	return employees, nil
}

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	m := toModelEmployee(employee)
	query := `
		INSERT INTO employees (employee_id, first_name, last_name, email, department, manager_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query, m.EmployeeID, m.FirstName, m.LastName, m.Email, m.Department, m.ManagerID, m.Status, m.CreatedAt)
	return translateError(err, employeeEntity)
}

func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	m := toModelEmployee(employee)
	query := `
		UPDATE employees
		SET first_name = $2, last_name = $3, email = $4, department = $5, manager_id = $6, status = $7
		WHERE employee_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.EmployeeID, m.FirstName, m.LastName, m.Email, m.Department, m.ManagerID, m.Status)
	if err != nil {
		return translateError(err, employeeEntity)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(employeeEntity + " not found")
	}
	return nil
}

// DeleteEmployee removes the employee and every request it submitted in one
// transaction and returns the number of requests removed.
func (r *PgxEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID string) (int64, error) {
	var removed int64
	err := r.InTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM travel_requests WHERE employee_id = $1`, employeeID)
		if err != nil {
			return translateError(err, travelRequestEntity)
		}
		removed = tag.RowsAffected()

		tag, err = tx.Exec(ctx, `DELETE FROM employees WHERE employee_id = $1`, employeeID)
		if err != nil {
			return translateError(err, employeeEntity)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError(employeeEntity + " not found")
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
