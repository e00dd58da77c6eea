package services

import (
	"context"

	"github.com/SscSPs/travel_request_app/internal/core/domain"
	"github.com/SscSPs/travel_request_app/internal/dto"
)

// TravelRequestReaderSvc defines ownership-scoped reads
type TravelRequestReaderSvc interface {
	// ListTravelRequests returns the requests visible to the principal that match filter.
	ListTravelRequests(ctx context.Context, principal domain.Principal, filter domain.TravelRequestFilter) ([]domain.TravelRequest, error)

	// GetTravelRequest returns one request visible to the principal.
	GetTravelRequest(ctx context.Context, principal domain.Principal, requestID string) (*domain.TravelRequest, error)
}

// TravelRequestWorkflowSvc defines the lifecycle operations
type TravelRequestWorkflowSvc interface {
	// SubmitTravelRequest creates a pending request owned by the employee principal.
	SubmitTravelRequest(ctx context.Context, principal domain.Principal, req dto.CreateTravelRequestRequest) (*domain.TravelRequest, error)

	// PerformAction applies a lifecycle action atomically and returns the updated request.
	PerformAction(ctx context.Context, principal domain.Principal, requestID string, action domain.Action, input domain.ActionInput) (*domain.TravelRequest, error)

	// DeleteTravelRequest deletes the employee principal's own request if it is still mutable.
	DeleteTravelRequest(ctx context.Context, principal domain.Principal, requestID string) error
}

// TravelRequestSvcFacade combines all travel request service interfaces
type TravelRequestSvcFacade interface {
	TravelRequestReaderSvc
	TravelRequestWorkflowSvc
}
