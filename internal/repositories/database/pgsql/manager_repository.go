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

const managerEntity = "manager"

const managerColumns = `manager_id, first_name, last_name, email, department, status, created_at`

type PgxManagerRepository struct {
	BaseRepository
}

func newPgxManagerRepository(pool *pgxpool.Pool) portsrepo.ManagerRepositoryFacade {
	return &PgxManagerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ManagerRepositoryFacade = (*PgxManagerRepository)(nil)

func toDomainManager(m models.Manager) domain.Manager {
	return domain.Manager{
		PersonFields: domain.PersonFields{
			ID:        m.ManagerID,
			FirstName: m.FirstName,
			LastName:  m.LastName,
			Email:     m.Email,
		},
		Department: m.Department,
		Status:     m.Status,
		CreatedAt:  m.CreatedAt,
	}
}

func (r *PgxManagerRepository) findOne(ctx context.Context, where string, arg any) (*domain.Manager, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+managerColumns+` FROM managers WHERE `+where, arg)
	if err != nil {
		return nil, translateError(err, managerEntity)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Manager])
	if err != nil {
		return nil, translateError(err, managerEntity)
	}
	mgr := toDomainManager(m)
	return &mgr, nil
}

func (r *PgxManagerRepository) FindManagerByID(ctx context.Context, managerID string) (*domain.Manager, error) {
	return r.findOne(ctx, "manager_id = $1", managerID)
}

func (r *PgxManagerRepository) FindManagerByEmail(ctx context.Context, email string) (*domain.Manager, error) {
	return r.findOne(ctx, "LOWER(email) = $1", strings.ToLower(email))
}

func (r *PgxManagerRepository) FindManagers(ctx context.Context) ([]domain.Manager, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+managerColumns+` FROM managers ORDER BY last_name, first_name`)
	if err != nil {
		return nil, translateError(err, managerEntity)
	}
	rowModels, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Manager])
	if err != nil {
		return nil, translateError(err, managerEntity)
	}
	managers := make([]domain.Manager, len(rowModels))
	for i, m := range rowModels {
		managers[i] = toDomainManager(m)
	}
	return managers, nil
}

func (r *PgxManagerRepository) SaveManager(ctx context.Context, manager domain.Manager) error {
	query := `
		INSERT INTO managers (manager_id, first_name, last_name, email, department, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query, manager.ID, manager.FirstName, manager.LastName, manager.Email, manager.Department, manager.Status, manager.CreatedAt)
	return translateError(err, managerEntity)
}

func (r *PgxManagerRepository) UpdateManager(ctx context.Context, manager domain.Manager) error {
	query := `
		UPDATE managers
		SET first_name = $2, last_name = $3, email = $4, department = $5, status = $6
		WHERE manager_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, manager.ID, manager.FirstName, manager.LastName, manager.Email, manager.Department, manager.Status)
	if err != nil {
		return translateError(err, managerEntity)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(managerEntity + " not found")
	}
	return nil
}

// DeleteManager unassigns the manager's employees, removes the requests assigned
// to it and then the manager itself, in one transaction.
func (r *PgxManagerRepository) DeleteManager(ctx context.Context, managerID string) (*portsrepo.ManagerDeletion, error) {
	result := &portsrepo.ManagerDeletion{}
	err := r.InTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `UPDATE employees SET manager_id = NULL WHERE manager_id = $1`, managerID)
		if err != nil {
			return translateError(err, employeeEntity)
		}
		result.UnassignedEmployees = tag.RowsAffected()

		tag, err = tx.Exec(ctx, `DELETE FROM travel_requests WHERE manager_id = $1`, managerID)
		if err != nil {
			return translateError(err, travelRequestEntity)
		}
		result.DeletedRequests = tag.RowsAffected()

		tag, err = tx.Exec(ctx, `DELETE FROM managers WHERE manager_id = $1`, managerID)
		if err != nil {
			return translateError(err, managerEntity)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError(managerEntity + " not found")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
