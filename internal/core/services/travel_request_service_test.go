package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/travel_request_app/internal/apperrors"
	"github.com/SscSPs/travel_request_app/internal/core/domain"
	portssvc "github.com/SscSPs/travel_request_app/internal/core/ports/services"
	"github.com/SscSPs/travel_request_app/internal/core/services"
	"github.com/SscSPs/travel_request_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func employeePrincipal(id string) domain.Principal {
	return domain.Principal{Role: domain.RoleEmployee, ID: id, Email: "emp@example.com"}
}

func managerPrincipal(id string) domain.Principal {
	return domain.Principal{Role: domain.RoleManager, ID: id, Email: "mgr@example.com"}
}

func adminPrincipal(id string) domain.Principal {
	return domain.Principal{Role: domain.RoleAdmin, ID: id, Email: "admin@example.com"}
}

func validCreateRequest() dto.CreateTravelRequestRequest {
	return dto.CreateTravelRequestRequest{
		Location:        "Berlin",
		Destination:     "Paris",
		TravelMode:      "Flight",
		PurposeOfTravel: "Client meeting",
	}
}

func storedRequest(employeeID, managerID string, status domain.TravelRequestStatus) *domain.TravelRequest {
	return &domain.TravelRequest{
		ID:              uuid.NewString(),
		EmployeeID:      employeeID,
		ManagerID:       managerID,
		Location:        "Berlin",
		Destination:     "Paris",
		TravelMode:      "Flight",
		PurposeOfTravel: "Client meeting",
		Status:          status,
		IsClosed:        status == domain.StatusClosed,
		CreatedAt:       time.Now(),
	}
}

// --- Test Suite ---
type TravelRequestServiceTestSuite struct {
	suite.Suite
	requestRepo  *MockTravelRequestRepository
	employeeRepo *MockEmployeeRepository
	managerRepo  *MockManagerRepository
	service      portssvc.TravelRequestSvcFacade

	ctx        context.Context
	employeeID string
	managerID  string
	adminID    string
}

func (suite *TravelRequestServiceTestSuite) SetupTest() {
	suite.requestRepo = new(MockTravelRequestRepository)
	suite.employeeRepo = new(MockEmployeeRepository)
	suite.managerRepo = new(MockManagerRepository)
	suite.service = services.NewTravelRequestService(suite.requestRepo, suite.employeeRepo, suite.managerRepo)

	suite.ctx = context.Background()
	suite.employeeID = uuid.NewString()
	suite.managerID = uuid.NewString()
	suite.adminID = uuid.NewString()
}

func TestTravelRequestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TravelRequestServiceTestSuite))
}

// --- SubmitTravelRequest Tests ---
func (suite *TravelRequestServiceTestSuite) TestSubmit_UsesAssignedManager() {
	employee := &domain.Employee{PersonFields: domain.PersonFields{ID: suite.employeeID}, ManagerID: &suite.managerID}
	suite.employeeRepo.On("FindEmployeeByID", suite.ctx, suite.employeeID).Return(employee, nil).Once()
	suite.managerRepo.On("FindManagerByID", suite.ctx, suite.managerID).Return(&domain.Manager{}, nil).Once()
	suite.requestRepo.On("SaveTravelRequest", suite.ctx, mock.MatchedBy(func(tr domain.TravelRequest) bool {
		return tr.EmployeeID == suite.employeeID && tr.ManagerID == suite.managerID
	})).Return(nil).Once()

	tr, err := suite.service.SubmitTravelRequest(suite.ctx, employeePrincipal(suite.employeeID), validCreateRequest())

	suite.Require().NoError(err)
	suite.NotEmpty(tr.ID)
	suite.Equal(domain.StatusPending, tr.Status)
	suite.Zero(tr.ResubmissionCount)
	suite.False(tr.IsClosed)
	suite.Equal("Paris", tr.Destination)
	suite.employeeRepo.AssertExpectations(suite.T())
	suite.managerRepo.AssertExpectations(suite.T())
	suite.requestRepo.AssertExpectations(suite.T())
}

func (suite *TravelRequestServiceTestSuite) TestSubmit_ExplicitManager() {
	other := uuid.NewString()
	req := validCreateRequest()
	req.Manager = &other
	suite.managerRepo.On("FindManagerByID", suite.ctx, other).Return(&domain.Manager{}, nil).Once()
	suite.requestRepo.On("SaveTravelRequest", suite.ctx, mock.AnythingOfType("domain.TravelRequest")).Return(nil).Once()

	tr, err := suite.service.SubmitTravelRequest(suite.ctx, employeePrincipal(suite.employeeID), req)

	suite.Require().NoError(err)
	suite.Equal(other, tr.ManagerID)
	suite.employeeRepo.AssertNotCalled(suite.T(), "FindEmployeeByID", mock.Anything, mock.Anything)
}

func (suite *TravelRequestServiceTestSuite) TestSubmit_NoManagerAvailable() {
	employee := &domain.Employee{PersonFields: domain.PersonFields{ID: suite.employeeID}}
	suite.employeeRepo.On("FindEmployeeByID", suite.ctx, suite.employeeID).Return(employee, nil).Once()

	tr, err := suite.service.SubmitTravelRequest(suite.ctx, employeePrincipal(suite.employeeID), validCreateRequest())

	suite.Nil(tr)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(apperrors.FieldErrors(err), "manager")
	suite.requestRepo.AssertNotCalled(suite.T(), "SaveTravelRequest", mock.Anything, mock.Anything)
}

func (suite *TravelRequestServiceTestSuite) TestSubmit_UnknownManager() {
	req := validCreateRequest()
	req.Manager = &suite.managerID
	suite.managerRepo.On("FindManagerByID", suite.ctx, suite.managerID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.SubmitTravelRequest(suite.ctx, employeePrincipal(suite.employeeID), req)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TravelRequestServiceTestSuite) TestSubmit_MissingTripFields() {
	req := validCreateRequest()
	req.Destination = ""
	req.Manager = &suite.managerID
	suite.managerRepo.On("FindManagerByID", suite.ctx, suite.managerID).Return(&domain.Manager{}, nil).Once()

	_, err := suite.service.SubmitTravelRequest(suite.ctx, employeePrincipal(suite.employeeID), req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(apperrors.FieldErrors(err), "destination")
}

func (suite *TravelRequestServiceTestSuite) TestSubmit_RequiresEmployee() {
	_, err := suite.service.SubmitTravelRequest(suite.ctx, managerPrincipal(suite.managerID), validCreateRequest())

	suite.ErrorIs(err, apperrors.ErrProfileNotFound)
	suite.Equal("Employee profile not found", apperrors.Message(err, ""))
}

// --- List / Get Tests ---
func (suite *TravelRequestServiceTestSuite) TestList_ScopedToManager() {
	managerID := suite.managerID
	filter := domain.TravelRequestFilter{}
	expected := []domain.TravelRequest{*storedRequest(suite.employeeID, managerID, domain.StatusPending)}
	suite.requestRepo.On("ListTravelRequests", suite.ctx, domain.RequestScope{ManagerID: &managerID}, filter).Return(expected, nil).Once()

	got, err := suite.service.ListTravelRequests(suite.ctx, managerPrincipal(managerID), filter)

	suite.Require().NoError(err)
	suite.Equal(expected, got)
	suite.requestRepo.AssertExpectations(suite.T())
}

func (suite *TravelRequestServiceTestSuite) TestList_AdminUnscoped() {
	filter := domain.TravelRequestFilter{}
	suite.requestRepo.On("ListTravelRequests", suite.ctx, domain.RequestScope{}, filter).Return([]domain.TravelRequest{}, nil).Once()

	_, err := suite.service.ListTravelRequests(suite.ctx, adminPrincipal(suite.adminID), filter)

	suite.Require().NoError(err)
	suite.requestRepo.AssertExpectations(suite.T())
}

func (suite *TravelRequestServiceTestSuite) TestGet_OutsideScopeIsNotFound() {
	employeeID := suite.employeeID
	suite.requestRepo.On("FindTravelRequest", suite.ctx, "other-request", domain.RequestScope{EmployeeID: &employeeID}).
		Return(nil, apperrors.NewNotFoundError("travel request not found")).Once()

	tr, err := suite.service.GetTravelRequest(suite.ctx, employeePrincipal(employeeID), "other-request")

	suite.Nil(tr)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- PerformAction Tests ---
func (suite *TravelRequestServiceTestSuite) TestPerformAction_ApproveSetsNote() {
	managerID := suite.managerID
	stored := storedRequest(suite.employeeID, managerID, domain.StatusPending)
	suite.requestRepo.On("ModifyTravelRequest", suite.ctx, stored.ID, domain.RequestScope{ManagerID: &managerID}).Return(stored, nil).Once()

	tr, err := suite.service.PerformAction(suite.ctx, managerPrincipal(managerID), stored.ID, domain.ActionApprove,
		domain.ActionInput{Note: domain.StringPtr("ok")})

	suite.Require().NoError(err)
	suite.Equal(domain.StatusApproved, tr.Status)
	suite.Equal("ok", *tr.ManagerNote)
}

func (suite *TravelRequestServiceTestSuite) TestPerformAction_CloseRequiresApproved() {
	stored := storedRequest(suite.employeeID, suite.managerID, domain.StatusPending)
	suite.requestRepo.On("ModifyTravelRequest", suite.ctx, stored.ID, domain.RequestScope{}).Return(stored, nil).Once()

	tr, err := suite.service.PerformAction(suite.ctx, adminPrincipal(suite.adminID), stored.ID, domain.ActionClose, domain.ActionInput{})

	suite.Nil(tr)
	suite.ErrorIs(err, apperrors.ErrOperationNotAllowed)
	suite.Equal("Request is not approved", apperrors.Message(err, ""))
	suite.Equal(domain.StatusPending, stored.Status)
}

func (suite *TravelRequestServiceTestSuite) TestPerformAction_EmployeeCannotEditApproved() {
	employeeID := suite.employeeID
	stored := storedRequest(employeeID, suite.managerID, domain.StatusApproved)
	suite.requestRepo.On("ModifyTravelRequest", suite.ctx, stored.ID, domain.RequestScope{EmployeeID: &employeeID}).Return(stored, nil).Once()

	_, err := suite.service.PerformAction(suite.ctx, employeePrincipal(employeeID), stored.ID, domain.ActionEdit,
		domain.ActionInput{Patch: domain.TravelRequestPatch{Destination: domain.StringPtr("Rome")}})

	suite.ErrorIs(err, apperrors.ErrOperationNotAllowed)
	suite.Equal("Paris", stored.Destination)
}

func (suite *TravelRequestServiceTestSuite) TestPerformAction_WrongRole() {
	_, err := suite.service.PerformAction(suite.ctx, employeePrincipal(suite.employeeID), "r1", domain.ActionApprove, domain.ActionInput{})

	suite.ErrorIs(err, apperrors.ErrProfileNotFound)
	suite.Equal("Manager profile not found", apperrors.Message(err, ""))
	suite.requestRepo.AssertNotCalled(suite.T(), "ModifyTravelRequest", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TravelRequestServiceTestSuite) TestPerformAction_AdminReassignToUnknownManager() {
	target := uuid.NewString()
	suite.managerRepo.On("FindManagerByID", suite.ctx, target).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.PerformAction(suite.ctx, adminPrincipal(suite.adminID), "r1", domain.ActionAdminUpdate,
		domain.ActionInput{Patch: domain.TravelRequestPatch{ManagerID: &target}})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.requestRepo.AssertNotCalled(suite.T(), "ModifyTravelRequest", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TravelRequestServiceTestSuite) TestPerformAction_UnknownAction() {
	_, err := suite.service.PerformAction(suite.ctx, adminPrincipal(suite.adminID), "r1", domain.Action("teleport"), domain.ActionInput{})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- DeleteTravelRequest Tests ---
func (suite *TravelRequestServiceTestSuite) TestDelete_PendingAllowed() {
	employeeID := suite.employeeID
	stored := storedRequest(employeeID, suite.managerID, domain.StatusFIRequired)
	suite.requestRepo.On("RemoveTravelRequest", suite.ctx, stored.ID, domain.RequestScope{EmployeeID: &employeeID}).Return(stored, nil).Once()

	err := suite.service.DeleteTravelRequest(suite.ctx, employeePrincipal(employeeID), stored.ID)

	suite.NoError(err)
	suite.requestRepo.AssertExpectations(suite.T())
}

func (suite *TravelRequestServiceTestSuite) TestDelete_RejectedNotAllowed() {
	employeeID := suite.employeeID
	stored := storedRequest(employeeID, suite.managerID, domain.StatusRejected)
	suite.requestRepo.On("RemoveTravelRequest", suite.ctx, stored.ID, domain.RequestScope{EmployeeID: &employeeID}).Return(stored, nil).Once()

	err := suite.service.DeleteTravelRequest(suite.ctx, employeePrincipal(employeeID), stored.ID)

	suite.ErrorIs(err, apperrors.ErrOperationNotAllowed)
	suite.Equal("Cannot delete request", apperrors.Message(err, ""))
}
