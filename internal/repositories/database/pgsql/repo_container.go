package pgsql

import (
	portsrepo "github.com/SscSPs/travel_request_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	authRepo := newPgxAuthRepository(dbPool)

	return portsrepo.RepositoryProvider{
		EmployeeRepo:      newPgxEmployeeRepository(dbPool),
		ManagerRepo:       newPgxManagerRepository(dbPool),
		AdminRepo:         newPgxAdminRepository(dbPool),
		TravelRequestRepo: newPgxTravelRequestRepository(dbPool),
		AuthUserRepo:      authRepo,
		SessionRepo:       authRepo,
	}
}
