package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/travel_request_app/internal/apperrors"
	"github.com/SscSPs/travel_request_app/internal/core/domain"
	portsrepo "github.com/SscSPs/travel_request_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/travel_request_app/internal/core/ports/services"
	"github.com/SscSPs/travel_request_app/internal/dto"
	"github.com/google/uuid"
)

// travelRequestService drives the travel request lifecycle on behalf of an explicit principal.
type travelRequestService struct {
	BaseService
	requestRepo  portsrepo.TravelRequestRepositoryFacade
	employeeRepo portsrepo.EmployeeReader
	managerRepo  portsrepo.ManagerReader
	now          func() time.Time
}

// TravelRequestServiceOption configures a travelRequestService.
type TravelRequestServiceOption func(*travelRequestService)

// WithClock overrides the time source used for created_at.
func WithClock(now func() time.Time) TravelRequestServiceOption {
	return func(s *travelRequestService) {
		s.now = now
	}
}

func NewTravelRequestService(
	requestRepo portsrepo.TravelRequestRepositoryFacade,
	employeeRepo portsrepo.EmployeeReader,
	managerRepo portsrepo.ManagerReader,
	opts ...TravelRequestServiceOption,
) portssvc.TravelRequestSvcFacade {
	s := &travelRequestService{
		requestRepo:  requestRepo,
		employeeRepo: employeeRepo,
		managerRepo:  managerRepo,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.TravelRequestSvcFacade = (*travelRequestService)(nil)

func (s *travelRequestService) ListTravelRequests(ctx context.Context, principal domain.Principal, filter domain.TravelRequestFilter) ([]domain.TravelRequest, error) {
	requests, err := s.requestRepo.ListTravelRequests(ctx, domain.ScopeFor(principal), filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list travel requests")
		return nil, fmt.Errorf("failed to list travel requests: %w", err)
	}
	return requests, nil
}

func (s *travelRequestService) GetTravelRequest(ctx context.Context, principal domain.Principal, requestID string) (*domain.TravelRequest, error) {
	tr, err := s.requestRepo.FindTravelRequest(ctx, requestID, domain.ScopeFor(principal))
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get travel request", slog.String("request_id", requestID))
		}
		return nil, err
	}
	return tr, nil
}

// SubmitTravelRequest creates a pending request owned by the calling employee.
// The manager is taken from the request when given, else from the employee's assignment.
func (s *travelRequestService) SubmitTravelRequest(ctx context.Context, principal domain.Principal, req dto.CreateTravelRequestRequest) (*domain.TravelRequest, error) {
	if err := s.RequireRole(ctx, principal, domain.RoleEmployee); err != nil {
		return nil, err
	}

	managerID, err := s.resolveManager(ctx, principal.ID, req.Manager)
	if err != nil {
		return nil, err
	}

	details, err := req.ToPatch()
	if err != nil {
		return nil, err
	}

	tr, err := domain.NewTravelRequest(uuid.NewString(), principal.ID, managerID, details, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.requestRepo.SaveTravelRequest(ctx, *tr); err != nil {
		s.LogError(ctx, err, "Failed to save travel request", slog.String("employee_id", principal.ID))
		return nil, fmt.Errorf("failed to submit travel request: %w", err)
	}

	s.LogInfo(ctx, "Travel request submitted",
		slog.String("request_id", tr.ID),
		slog.String("manager_id", managerID))
	return tr, nil
}

func (s *travelRequestService) resolveManager(ctx context.Context, employeeID string, requested *string) (string, error) {
	var managerID string
	if requested != nil && *requested != "" {
		managerID = *requested
	} else {
		employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
		if err != nil {
			return "", fmt.Errorf("failed to load employee: %w", err)
		}
		if employee.ManagerID == nil {
			return "", apperrors.NewFieldValidationError(map[string]string{"manager": "no manager is assigned; specify one"})
		}
		managerID = *employee.ManagerID
	}
	if err := s.ensureManagerExists(ctx, "manager", managerID); err != nil {
		return "", err
	}
	return managerID, nil
}

func (s *travelRequestService) ensureManagerExists(ctx context.Context, field, managerID string) error {
	if _, err := s.managerRepo.FindManagerByID(ctx, managerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewFieldValidationError(map[string]string{field: "manager does not exist"})
		}
		return fmt.Errorf("failed to load manager: %w", err)
	}
	return nil
}

// PerformAction applies action to the request inside the principal's scope as one
// atomic read-modify-write.
func (s *travelRequestService) PerformAction(ctx context.Context, principal domain.Principal, requestID string, action domain.Action, input domain.ActionInput) (*domain.TravelRequest, error) {
	actor, ok := domain.ActorOf(action)
	if !ok {
		return nil, apperrors.NewValidationFailedError("unknown action " + string(action))
	}
	if err := s.RequireRole(ctx, principal, actor); err != nil {
		return nil, err
	}
	if input.Patch.ManagerID != nil && principal.Role == domain.RoleAdmin {
		if err := s.ensureManagerExists(ctx, "manager", *input.Patch.ManagerID); err != nil {
			return nil, err
		}
	}

	var from domain.TravelRequestStatus
	tr, err := s.requestRepo.ModifyTravelRequest(ctx, requestID, domain.ScopeFor(principal), func(tr *domain.TravelRequest) error {
		from = tr.Status
		return tr.Perform(action, principal, input)
	})
	if err != nil {
		if !isExpectedWorkflowError(err) {
			s.LogError(ctx, err, "Failed to perform travel request action",
				slog.String("request_id", requestID),
				slog.String("action", string(action)))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Travel request action performed",
		slog.String("request_id", requestID),
		slog.String("action", string(action)),
		slog.String("from_status", string(from)),
		slog.String("to_status", string(tr.Status)))
	return tr, nil
}

// DeleteTravelRequest removes an employee's own request while it is still editable.
func (s *travelRequestService) DeleteTravelRequest(ctx context.Context, principal domain.Principal, requestID string) error {
	if err := s.RequireRole(ctx, principal, domain.RoleEmployee); err != nil {
		return err
	}
	err := s.requestRepo.RemoveTravelRequest(ctx, requestID, domain.ScopeFor(principal), func(tr *domain.TravelRequest) error {
		return tr.Perform(domain.ActionDelete, principal, domain.ActionInput{})
	})
	if err != nil {
		if !isExpectedWorkflowError(err) {
			s.LogError(ctx, err, "Failed to delete travel request", slog.String("request_id", requestID))
		}
		return err
	}
	s.LogInfo(ctx, "Travel request deleted", slog.String("request_id", requestID))
	return nil
}

func isExpectedWorkflowError(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrOperationNotAllowed) ||
		errors.Is(err, apperrors.ErrValidation)
}
