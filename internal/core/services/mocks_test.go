package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/travel_request_app/internal/core/domain"
	portsrepo "github.com/SscSPs/travel_request_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock EmployeeRepository ---
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	var e *domain.Employee
	if args.Get(0) != nil {
		e = args.Get(0).(*domain.Employee)
	}
	return e, args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeeByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	args := m.Called(ctx, email)
	var e *domain.Employee
	if args.Get(0) != nil {
		e = args.Get(0).(*domain.Employee)
	}
	return e, args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployees(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	var es []domain.Employee
	if args.Get(0) != nil {
		es = args.Get(0).([]domain.Employee)
	}
	return es, args.Error(1)
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID string) (int64, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock ManagerRepository ---
type MockManagerRepository struct {
	mock.Mock
}

func (m *MockManagerRepository) FindManagerByID(ctx context.Context, managerID string) (*domain.Manager, error) {
	args := m.Called(ctx, managerID)
	var mgr *domain.Manager
	if args.Get(0) != nil {
		mgr = args.Get(0).(*domain.Manager)
	}
	return mgr, args.Error(1)
}

func (m *MockManagerRepository) FindManagerByEmail(ctx context.Context, email string) (*domain.Manager, error) {
	args := m.Called(ctx, email)
	var mgr *domain.Manager
	if args.Get(0) != nil {
		mgr = args.Get(0).(*domain.Manager)
	}
	return mgr, args.Error(1)
}

func (m *MockManagerRepository) FindManagers(ctx context.Context) ([]domain.Manager, error) {
	args := m.Called(ctx)
	var ms []domain.Manager
	if args.Get(0) != nil {
		ms = args.Get(0).([]domain.Manager)
	}
	return ms, args.Error(1)
}

func (m *MockManagerRepository) SaveManager(ctx context.Context, manager domain.Manager) error {
	args := m.Called(ctx, manager)
	return args.Error(0)
}

func (m *MockManagerRepository) UpdateManager(ctx context.Context, manager domain.Manager) error {
	args := m.Called(ctx, manager)
	return args.Error(0)
}

func (m *MockManagerRepository) DeleteManager(ctx context.Context, managerID string) (*portsrepo.ManagerDeletion, error) {
	args := m.Called(ctx, managerID)
	var res *portsrepo.ManagerDeletion
	if args.Get(0) != nil {
		res = args.Get(0).(*portsrepo.ManagerDeletion)
	}
	return res, args.Error(1)
}

// --- Mock AdminRepository ---
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) FindAdminByID(ctx context.Context, adminID string) (*domain.Admin, error) {
	args := m.Called(ctx, adminID)
	var a *domain.Admin
	if args.Get(0) != nil {
		a = args.Get(0).(*domain.Admin)
	}
	return a, args.Error(1)
}

func (m *MockAdminRepository) FindAdminByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	args := m.Called(ctx, email)
	var a *domain.Admin
	if args.Get(0) != nil {
		a = args.Get(0).(*domain.Admin)
	}
	return a, args.Error(1)
}

func (m *MockAdminRepository) FindAdmins(ctx context.Context) ([]domain.Admin, error) {
	args := m.Called(ctx)
	var as []domain.Admin
	if args.Get(0) != nil {
		as = args.Get(0).([]domain.Admin)
	}
	return as, args.Error(1)
}

func (m *MockAdminRepository) UpsertAdmin(ctx context.Context, admin domain.Admin) (*domain.Admin, error) {
	args := m.Called(ctx, admin)
	var a *domain.Admin
	if args.Get(0) != nil {
		a = args.Get(0).(*domain.Admin)
	}
	return a, args.Error(1)
}

func (m *MockAdminRepository) DeleteAdmin(ctx context.Context, adminID string) error {
	args := m.Called(ctx, adminID)
	return args.Error(0)
}

// --- Mock TravelRequestRepository ---
// ModifyTravelRequest and RemoveTravelRequest run the callback against a copy of
// the stubbed request so a failed callback leaves the stub untouched.
type MockTravelRequestRepository struct {
	mock.Mock
}

func (m *MockTravelRequestRepository) FindTravelRequest(ctx context.Context, requestID string, scope domain.RequestScope) (*domain.TravelRequest, error) {
	args := m.Called(ctx, requestID, scope)
	var tr *domain.TravelRequest
	if args.Get(0) != nil {
		tr = args.Get(0).(*domain.TravelRequest)
	}
	return tr, args.Error(1)
}

func (m *MockTravelRequestRepository) ListTravelRequests(ctx context.Context, scope domain.RequestScope, filter domain.TravelRequestFilter) ([]domain.TravelRequest, error) {
	args := m.Called(ctx, scope, filter)
	var trs []domain.TravelRequest
	if args.Get(0) != nil {
		trs = args.Get(0).([]domain.TravelRequest)
	}
	return trs, args.Error(1)
}

func (m *MockTravelRequestRepository) SaveTravelRequest(ctx context.Context, request domain.TravelRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockTravelRequestRepository) ModifyTravelRequest(ctx context.Context, requestID string, scope domain.RequestScope, apply func(*domain.TravelRequest) error) (*domain.TravelRequest, error) {
	args := m.Called(ctx, requestID, scope)
	if args.Error(1) != nil {
		return nil, args.Error(1)
	}
	working := *args.Get(0).(*domain.TravelRequest)
	if err := apply(&working); err != nil {
		return nil, err
	}
	return &working, nil
}

func (m *MockTravelRequestRepository) RemoveTravelRequest(ctx context.Context, requestID string, scope domain.RequestScope, check func(*domain.TravelRequest) error) error {
	args := m.Called(ctx, requestID, scope)
	if args.Error(1) != nil {
		return args.Error(1)
	}
	working := *args.Get(0).(*domain.TravelRequest)
	return check(&working)
}

// --- Mock AuthUserRepository / SessionRepository ---
type MockAuthRepository struct {
	mock.Mock
}

func (m *MockAuthRepository) FindAuthUserByID(ctx context.Context, userID string) (*domain.AuthUser, error) {
	args := m.Called(ctx, userID)
	var u *domain.AuthUser
	if args.Get(0) != nil {
		u = args.Get(0).(*domain.AuthUser)
	}
	return u, args.Error(1)
}

func (m *MockAuthRepository) FindAuthUserByUsername(ctx context.Context, username string) (*domain.AuthUser, error) {
	args := m.Called(ctx, username)
	var u *domain.AuthUser
	if args.Get(0) != nil {
		u = args.Get(0).(*domain.AuthUser)
	}
	return u, args.Error(1)
}

func (m *MockAuthRepository) FindAuthUserByEmail(ctx context.Context, email string) (*domain.AuthUser, error) {
	args := m.Called(ctx, email)
	var u *domain.AuthUser
	if args.Get(0) != nil {
		u = args.Get(0).(*domain.AuthUser)
	}
	return u, args.Error(1)
}

func (m *MockAuthRepository) SaveAuthUser(ctx context.Context, user domain.AuthUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockAuthRepository) SaveSession(ctx context.Context, session domain.AuthSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockAuthRepository) FindSession(ctx context.Context, sessionID string) (*domain.AuthSession, error) {
	args := m.Called(ctx, sessionID)
	var s *domain.AuthSession
	if args.Get(0) != nil {
		s = args.Get(0).(*domain.AuthSession)
	}
	return s, args.Error(1)
}

func (m *MockAuthRepository) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockAuthRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock login provisioner ---
type MockAuthProvisioner struct {
	mock.Mock
}

func (m *MockAuthProvisioner) EnsureAuthUser(ctx context.Context, email, password string) (*domain.AuthUser, bool, error) {
	args := m.Called(ctx, email, password)
	var u *domain.AuthUser
	if args.Get(0) != nil {
		u = args.Get(0).(*domain.AuthUser)
	}
	return u, args.Bool(1), args.Error(2)
}
