package repositories

import (
	"context"

	"github.com/SscSPs/travel_request_app/internal/core/domain"
)

// TravelRequestReader defines scoped read operations for travel requests.
// A request outside the scope is reported as not found.
type TravelRequestReader interface {
	// FindTravelRequest retrieves a request by ID within scope.
	FindTravelRequest(ctx context.Context, requestID string, scope domain.RequestScope) (*domain.TravelRequest, error)

	// ListTravelRequests retrieves the requests within scope that match filter.
	ListTravelRequests(ctx context.Context, scope domain.RequestScope, filter domain.TravelRequestFilter) ([]domain.TravelRequest, error)
}

// TravelRequestWriter defines write operations for travel requests.
type TravelRequestWriter interface {
	// SaveTravelRequest persists a newly submitted request.
	SaveTravelRequest(ctx context.Context, request domain.TravelRequest) error
}

// TravelRequestMutator applies read-modify-write changes atomically.
type TravelRequestMutator interface {
	// ModifyTravelRequest locks the request within scope, calls apply on it and
	// writes the result back in the same transaction. If apply fails nothing is written.
	ModifyTravelRequest(ctx context.Context, requestID string, scope domain.RequestScope, apply func(*domain.TravelRequest) error) (*domain.TravelRequest, error)

	// RemoveTravelRequest locks the request within scope, calls check on it and
	// deletes it in the same transaction if check passes.
	RemoveTravelRequest(ctx context.Context, requestID string, scope domain.RequestScope, check func(*domain.TravelRequest) error) error
}

// TravelRequestRepositoryFacade combines all travel request repository interfaces
type TravelRequestRepositoryFacade interface {
	TravelRequestReader
	TravelRequestWriter
	TravelRequestMutator
}
