package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/travel_request_app/internal/core/domain"
	portssvc "github.com/SscSPs/travel_request_app/internal/core/ports/services"
	"github.com/SscSPs/travel_request_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockAuthService) LoginWithVerifiedEmail(ctx context.Context, email string) (string, time.Time, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockAuthService) ValidateSession(ctx context.Context, token string) (*portssvc.SessionInfo, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.SessionInfo), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockAuthService) EnsureAuthUser(ctx context.Context, email, password string) (*domain.AuthUser, bool, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.AuthUser), args.Bool(1), args.Error(2)
}

var _ portssvc.AuthSvc = (*MockAuthService)(nil)

// --- Mock IdentityService ---
type MockIdentityService struct {
	mock.Mock
}

func (m *MockIdentityService) ResolvePrincipal(ctx context.Context, email string, userID string) (*domain.Principal, error) {
	args := m.Called(ctx, email, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Principal), args.Error(1)
}

var _ portssvc.IdentitySvc = (*MockIdentityService)(nil)

// --- Mock TravelRequestService ---
type MockTravelRequestService struct {
	mock.Mock
}

func (m *MockTravelRequestService) ListTravelRequests(ctx context.Context, principal domain.Principal, filter domain.TravelRequestFilter) ([]domain.TravelRequest, error) {
	args := m.Called(ctx, principal, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TravelRequest), args.Error(1)
}

func (m *MockTravelRequestService) GetTravelRequest(ctx context.Context, principal domain.Principal, requestID string) (*domain.TravelRequest, error) {
	args := m.Called(ctx, principal, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TravelRequest), args.Error(1)
}

func (m *MockTravelRequestService) SubmitTravelRequest(ctx context.Context, principal domain.Principal, req dto.CreateTravelRequestRequest) (*domain.TravelRequest, error) {
	args := m.Called(ctx, principal, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TravelRequest), args.Error(1)
}

func (m *MockTravelRequestService) PerformAction(ctx context.Context, principal domain.Principal, requestID string, action domain.Action, input domain.ActionInput) (*domain.TravelRequest, error) {
	args := m.Called(ctx, principal, requestID, action, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TravelRequest), args.Error(1)
}

func (m *MockTravelRequestService) DeleteTravelRequest(ctx context.Context, principal domain.Principal, requestID string) error {
	args := m.Called(ctx, principal, requestID)
	return args.Error(0)
}

var _ portssvc.TravelRequestSvcFacade = (*MockTravelRequestService)(nil)

// --- Mock DirectoryService ---
type MockDirectoryService struct {
	mock.Mock
}

func (m *MockDirectoryService) ListEmployees(ctx context.Context, principal domain.Principal) ([]domain.Employee, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockDirectoryService) GetEmployee(ctx context.Context, principal domain.Principal, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, principal, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockDirectoryService) CreateEmployee(ctx context.Context, principal domain.Principal, req dto.CreatePersonnelRequest) (*domain.Employee, error) {
	args := m.Called(ctx, principal, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockDirectoryService) UpdateEmployee(ctx context.Context, principal domain.Principal, employeeID string, req dto.UpdatePersonnelRequest) (*domain.Employee, error) {
	args := m.Called(ctx, principal, employeeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockDirectoryService) DeleteEmployee(ctx context.Context, principal domain.Principal, employeeID string) error {
	args := m.Called(ctx, principal, employeeID)
	return args.Error(0)
}

func (m *MockDirectoryService) ListManagers(ctx context.Context, principal domain.Principal) ([]domain.Manager, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Manager), args.Error(1)
}

func (m *MockDirectoryService) GetManager(ctx context.Context, principal domain.Principal, managerID string) (*domain.Manager, error) {
	args := m.Called(ctx, principal, managerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Manager), args.Error(1)
}

func (m *MockDirectoryService) CreateManager(ctx context.Context, principal domain.Principal, req dto.CreatePersonnelRequest) (*domain.Manager, error) {
	args := m.Called(ctx, principal, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Manager), args.Error(1)
}

func (m *MockDirectoryService) UpdateManager(ctx context.Context, principal domain.Principal, managerID string, req dto.UpdatePersonnelRequest) (*domain.Manager, error) {
	args := m.Called(ctx, principal, managerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Manager), args.Error(1)
}

func (m *MockDirectoryService) DeleteManager(ctx context.Context, principal domain.Principal, managerID string) error {
	args := m.Called(ctx, principal, managerID)
	return args.Error(0)
}

var _ portssvc.DirectorySvcFacade = (*MockDirectoryService)(nil)

// --- Mock GoogleOAuthService ---
type MockGoogleOAuthService struct {
	mock.Mock
}

func (m *MockGoogleOAuthService) Enabled() bool {
	return m.Called().Bool(0)
}

func (m *MockGoogleOAuthService) GenerateStateString(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGoogleOAuthService) GetGoogleLoginURL(ctx context.Context, state string) string {
	return m.Called(ctx, state).String(0)
}

func (m *MockGoogleOAuthService) ExchangeCodeForEmail(ctx context.Context, code string) (string, error) {
	args := m.Called(ctx, code)
	return args.String(0), args.Error(1)
}

func (m *MockGoogleOAuthService) ValidateIDToken(ctx context.Context, idToken string) (string, error) {
	args := m.Called(ctx, idToken)
	return args.String(0), args.Error(1)
}

var _ portssvc.GoogleOAuthSvc = (*MockGoogleOAuthService)(nil)
