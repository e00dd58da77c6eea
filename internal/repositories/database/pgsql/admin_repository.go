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

const adminEntity = "admin"

type PgxAdminRepository struct {
	BaseRepository
}

func newPgxAdminRepository(pool *pgxpool.Pool) portsrepo.AdminRepositoryFacade {
	return &PgxAdminRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AdminRepositoryFacade = (*PgxAdminRepository)(nil)

func toDomainAdmin(m models.Admin) domain.Admin {
	return domain.Admin{PersonFields: domain.PersonFields{
		ID:        m.AdminID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
	}}
}

func (r *PgxAdminRepository) findOne(ctx context.Context, where string, arg any) (*domain.Admin, error) {
	rows, err := r.Pool.Query(ctx, `SELECT admin_id, first_name, last_name, email FROM admins WHERE `+where, arg)
	if err != nil {
		return nil, translateError(err, adminEntity)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Admin])
	if err != nil {
		return nil, translateError(err, adminEntity)
	}
	a := toDomainAdmin(m)
	return &a, nil
}

func (r *PgxAdminRepository) FindAdminByID(ctx context.Context, adminID string) (*domain.Admin, error) {
	return r.findOne(ctx, "admin_id = $1", adminID)
}

func (r *PgxAdminRepository) FindAdminByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	return r.findOne(ctx, "LOWER(email) = $1", strings.ToLower(email))
}

func (r *PgxAdminRepository) FindAdmins(ctx context.Context) ([]domain.Admin, error) {
	rows, err := r.Pool.Query(ctx, `SELECT admin_id, first_name, last_name, email FROM admins ORDER BY email`)
	if err != nil {
		return nil, translateError(err, adminEntity)
	}
	rowModels, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Admin])
	if err != nil {
		return nil, translateError(err, adminEntity)
	}
	admins := make([]domain.Admin, len(rowModels))
	for i, m := range rowModels {
		admins[i] = toDomainAdmin(m)
	}
	return admins, nil
}

// UpsertAdmin inserts the admin or, when its email is already present, updates
// the names. The stored record is returned.
func (r *PgxAdminRepository) UpsertAdmin(ctx context.Context, admin domain.Admin) (*domain.Admin, error) {
	query := `
		INSERT INTO admins (admin_id, first_name, last_name, email)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name
		RETURNING admin_id, first_name, last_name, email;
	`
	rows, err := r.Pool.Query(ctx, query, admin.ID, admin.FirstName, admin.LastName, admin.Email)
	if err != nil {
		return nil, translateError(err, adminEntity)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Admin])
	if err != nil {
		return nil, translateError(err, adminEntity)
	}
	stored := toDomainAdmin(m)
	return &stored, nil
}

// DeleteAdmin clears processed_by on the requests the admin closed and then
// removes the admin, in one transaction.
func (r *PgxAdminRepository) DeleteAdmin(ctx context.Context, adminID string) error {
	return r.InTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `UPDATE travel_requests SET processed_by = NULL WHERE processed_by = $1`, adminID); err != nil {
			return translateError(err, travelRequestEntity)
		}
		tag, err := tx.Exec(ctx, `DELETE FROM admins WHERE admin_id = $1`, adminID)
		if err != nil {
			return translateError(err, adminEntity)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError(adminEntity + " not found")
		}
		return nil
	})
}
