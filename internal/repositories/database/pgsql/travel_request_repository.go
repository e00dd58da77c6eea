package pgsql

import (
	"context"
	"fmt"
	"net/http"

	"github.com/SscSPs/travel_request_app/internal/apperrors"
	"github.com/SscSPs/travel_request_app/internal/core/domain"
	portsrepo "github.com/SscSPs/travel_request_app/internal/core/ports/repositories"
	"github.com/SscSPs/travel_request_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const travelRequestEntity = "travel request"

type PgxTravelRequestRepository struct {
	BaseRepository
}

func newPgxTravelRequestRepository(pool *pgxpool.Pool) portsrepo.TravelRequestRepositoryFacade {
	return &PgxTravelRequestRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TravelRequestRepositoryFacade = (*PgxTravelRequestRepository)(nil)

func toModelTravelRequest(d domain.TravelRequest) models.TravelRequest {
	return models.TravelRequest{
		RequestID:          d.ID,
		EmployeeID:         d.EmployeeID,
		ManagerID:          d.ManagerID,
		ProcessedBy:        d.ProcessedBy,
		FromDate:           d.FromDate,
		ToDate:             d.ToDate,
		Location:           d.Location,
		Destination:        d.Destination,
		TravelMode:         d.TravelMode,
		LodgingRequired:    d.LodgingRequired,
		PurposeOfTravel:    d.PurposeOfTravel,
		Status:             string(d.Status),
		ManagerNote:        d.ManagerNote,
		AdminNote:          d.AdminNote,
		FurtherInformation: d.FurtherInformation,
		ResubmissionCount:  d.ResubmissionCount,
		IsClosed:           d.IsClosed,
		CreatedAt:          d.CreatedAt,
	}
}

func toDomainTravelRequest(m models.TravelRequest) domain.TravelRequest {
	return domain.TravelRequest{
		ID:                 m.RequestID,
		EmployeeID:         m.EmployeeID,
		ManagerID:          m.ManagerID,
		ProcessedBy:        m.ProcessedBy,
		FromDate:           m.FromDate,
		ToDate:             m.ToDate,
		Location:           m.Location,
		Destination:        m.Destination,
		TravelMode:         m.TravelMode,
		LodgingRequired:    m.LodgingRequired,
		PurposeOfTravel:    m.PurposeOfTravel,
		Status:             domain.TravelRequestStatus(m.Status),
		ManagerNote:        m.ManagerNote,
		AdminNote:          m.AdminNote,
		FurtherInformation: m.FurtherInformation,
		ResubmissionCount:  m.ResubmissionCount,
		IsClosed:           m.IsClosed,
		CreatedAt:          m.CreatedAt,
	}
}

func collectTravelRequests(rows pgx.Rows) ([]domain.TravelRequest, error) {
	rowModels, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.TravelRequest])
	if err != nil {
		return nil, err
	}
	requests := make([]domain.TravelRequest, len(rowModels))
	for i, m := range rowModels {
		requests[i] = toDomainTravelRequest(m)
	}
	return requests, nil
}

func findTravelRequest(ctx context.Context, q querier, requestID string, scope domain.RequestScope, forUpdate bool) (*domain.TravelRequest, error) {
	query, args := buildFindQuery(requestID, scope, forUpdate)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, travelRequestEntity)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.TravelRequest])
	if err != nil {
		return nil, translateError(err, travelRequestEntity)
	}
	tr := toDomainTravelRequest(m)
	return &tr, nil
}

// FindTravelRequest returns the request only when it is inside scope; a request
// outside scope is reported as not found.
func (r *PgxTravelRequestRepository) FindTravelRequest(ctx context.Context, requestID string, scope domain.RequestScope) (*domain.TravelRequest, error) {
	return findTravelRequest(ctx, r.Pool, requestID, scope, false)
}

func (r *PgxTravelRequestRepository) ListTravelRequests(ctx context.Context, scope domain.RequestScope, filter domain.TravelRequestFilter) ([]domain.TravelRequest, error) {
	query, args, err := buildListQuery(scope, filter)
	if err != nil {
		return nil, apperrors.NewValidationFailedError(err.Error())
	}
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, travelRequestEntity)
	}
	requests, err := collectTravelRequests(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan travel requests: %w", err)
	}
	return requests, nil
}

func (r *PgxTravelRequestRepository) SaveTravelRequest(ctx context.Context, request domain.TravelRequest) error {
	m := toModelTravelRequest(request)
	query := `
		INSERT INTO travel_requests (
			request_id, employee_id, manager_id, processed_by, from_date, to_date,
			location, destination, travel_mode, lodging_required, purpose_of_travel,
			status, manager_note, admin_note, further_information, resubmission_count,
			is_closed, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RequestID, m.EmployeeID, m.ManagerID, m.ProcessedBy, m.FromDate, m.ToDate,
		m.Location, m.Destination, m.TravelMode, m.LodgingRequired, m.PurposeOfTravel,
		m.Status, m.ManagerNote, m.AdminNote, m.FurtherInformation, m.ResubmissionCount,
		m.IsClosed, m.CreatedAt,
	)
	return translateError(err, travelRequestEntity)
}

func updateTravelRequest(ctx context.Context, q querier, request domain.TravelRequest) error {
	m := toModelTravelRequest(request)
	query := `
		UPDATE travel_requests SET
			manager_id = $2, processed_by = $3, from_date = $4, to_date = $5,
			location = $6, destination = $7, travel_mode = $8, lodging_required = $9,
			purpose_of_travel = $10, status = $11, manager_note = $12, admin_note = $13,
			further_information = $14, resubmission_count = $15, is_closed = $16
		WHERE request_id = $1;
	`
	tag, err := q.Exec(ctx, query,
		m.RequestID, m.ManagerID, m.ProcessedBy, m.FromDate, m.ToDate,
		m.Location, m.Destination, m.TravelMode, m.LodgingRequired,
		m.PurposeOfTravel, m.Status, m.ManagerNote, m.AdminNote,
		m.FurtherInformation, m.ResubmissionCount, m.IsClosed,
	)
	if err != nil {
		return translateError(err, travelRequestEntity)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(travelRequestEntity + " not found")
	}
	return nil
}

// ModifyTravelRequest locks the request inside scope, lets apply mutate it and
// writes it back, all in one transaction. Nothing is written when apply fails.
func (r *PgxTravelRequestRepository) ModifyTravelRequest(ctx context.Context, requestID string, scope domain.RequestScope, apply func(*domain.TravelRequest) error) (*domain.TravelRequest, error) {
	var updated *domain.TravelRequest
	err := r.InTx(ctx, func(tx pgx.Tx) error {
		tr, err := findTravelRequest(ctx, tx, requestID, scope, true)
		if err != nil {
			return err
		}
		if err := apply(tr); err != nil {
			return err
		}
		if err := updateTravelRequest(ctx, tx, *tr); err != nil {
			return err
		}
		updated = tr
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// RemoveTravelRequest locks the request inside scope and deletes it when check passes.
func (r *PgxTravelRequestRepository) RemoveTravelRequest(ctx context.Context, requestID string, scope domain.RequestScope, check func(*domain.TravelRequest) error) error {
	return r.InTx(ctx, func(tx pgx.Tx) error {
		tr, err := findTravelRequest(ctx, tx, requestID, scope, true)
		if err != nil {
			return err
		}
		if check != nil {
			if err := check(tr); err != nil {
				return err
			}
		}
		if _, err := tx.Exec(ctx, `DELETE FROM travel_requests WHERE request_id = $1`, tr.ID); err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete travel request", err)
		}
		return nil
	})
}
