package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/travel_request_app/internal/apperrors"
	"github.com/SscSPs/travel_request_app/internal/core/domain"
	portsrepo "github.com/SscSPs/travel_request_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/travel_request_app/internal/core/ports/services"
	"github.com/SscSPs/travel_request_app/internal/core/services"
	"github.com/SscSPs/travel_request_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DirectoryServiceTestSuite struct {
	suite.Suite
	employeeRepo *MockEmployeeRepository
	managerRepo  *MockManagerRepository
	adminRepo    *MockAdminRepository
	auth         *MockAuthProvisioner
	service      portssvc.DirectorySvcFacade

	ctx   context.Context
	admin domain.Principal
}

func (suite *DirectoryServiceTestSuite) SetupTest() {
	suite.employeeRepo = new(MockEmployeeRepository)
	suite.managerRepo = new(MockManagerRepository)
	suite.adminRepo = new(MockAdminRepository)
	suite.auth = new(MockAuthProvisioner)
	suite.service = services.NewDirectoryService(suite.employeeRepo, suite.managerRepo, suite.adminRepo, suite.auth)
	suite.ctx = context.Background()
	suite.admin = adminPrincipal(uuid.NewString())
}

func TestDirectoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DirectoryServiceTestSuite))
}

// emailIsFree stubs all three role lookups as not found.
func (suite *DirectoryServiceTestSuite) emailIsFree(email string) {
	nf := apperrors.NewNotFoundError("not found")
	suite.employeeRepo.On("FindEmployeeByEmail", suite.ctx, email).Return(nil, nf)
	suite.managerRepo.On("FindManagerByEmail", suite.ctx, email).Return(nil, nf)
	suite.adminRepo.On("FindAdminByEmail", suite.ctx, email).Return(nil, nf)
}

func (suite *DirectoryServiceTestSuite) TestListEmployees_RequiresAdmin() {
	_, err := suite.service.ListEmployees(suite.ctx, managerPrincipal(uuid.NewString()))

	suite.ErrorIs(err, apperrors.ErrProfileNotFound)
	suite.Equal("Admin profile not found", apperrors.Message(err, ""))
	suite.employeeRepo.AssertNotCalled(suite.T(), "FindEmployees", mock.Anything)
}

func (suite *DirectoryServiceTestSuite) TestCreateEmployee_Success() {
	managerID := uuid.NewString()
	req := dto.CreatePersonnelRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "s3cret-pass",
		Manager:   &managerID,
	}
	suite.emailIsFree(req.Email)
	suite.managerRepo.On("FindManagerByID", suite.ctx, managerID).Return(&domain.Manager{}, nil)
	suite.auth.On("EnsureAuthUser", suite.ctx, req.Email, req.Password).
		Return(&domain.AuthUser{UserID: "u-1", Email: req.Email}, true, nil)
	suite.employeeRepo.On("SaveEmployee", suite.ctx, mock.MatchedBy(func(e domain.Employee) bool {
		return e.Email == req.Email && e.ManagerID != nil && *e.ManagerID == managerID && e.Status == domain.DefaultPersonnelStatus
	})).Return(nil)

	employee, err := suite.service.CreateEmployee(suite.ctx, suite.admin, req)

	suite.Require().NoError(err)
	suite.NotEmpty(employee.ID)
	suite.Equal("Jane", employee.FirstName)
	suite.employeeRepo.AssertExpectations(suite.T())
	suite.auth.AssertExpectations(suite.T())
}

func (suite *DirectoryServiceTestSuite) TestCreateEmployee_EmailHeldByManager() {
	email := "taken@example.com"
	nf := apperrors.NewNotFoundError("not found")
	suite.employeeRepo.On("FindEmployeeByEmail", suite.ctx, email).Return(nil, nf)
	suite.managerRepo.On("FindManagerByEmail", suite.ctx, email).
		Return(&domain.Manager{PersonFields: domain.PersonFields{ID: "m-1", Email: email}}, nil)

	_, err := suite.service.CreateEmployee(suite.ctx, suite.admin, dto.CreatePersonnelRequest{
		FirstName: "A", LastName: "B", Email: email, Password: "password1",
	})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.employeeRepo.AssertNotCalled(suite.T(), "SaveEmployee", mock.Anything, mock.Anything)
}

func (suite *DirectoryServiceTestSuite) TestCreateEmployee_UnknownManager() {
	managerID := uuid.NewString()
	email := "new@example.com"
	suite.emailIsFree(email)
	suite.managerRepo.On("FindManagerByID", suite.ctx, managerID).Return(nil, apperrors.NewNotFoundError("manager not found"))

	_, err := suite.service.CreateEmployee(suite.ctx, suite.admin, dto.CreatePersonnelRequest{
		FirstName: "A", LastName: "B", Email: email, Password: "password1", Manager: &managerID,
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(apperrors.FieldErrors(err), "manager")
	suite.auth.AssertNotCalled(suite.T(), "EnsureAuthUser", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DirectoryServiceTestSuite) TestCreateEmployee_MissingPasswordForNewLogin() {
	email := "nopass@example.com"
	suite.emailIsFree(email)
	var savedID string
	suite.employeeRepo.On("SaveEmployee", suite.ctx, mock.AnythingOfType("domain.Employee")).
		Run(func(args mock.Arguments) { savedID = args.Get(1).(domain.Employee).ID }).
		Return(nil).Once()
	suite.auth.On("EnsureAuthUser", suite.ctx, email, "").
		Return(nil, false, apperrors.NewFieldValidationError(map[string]string{"password": "required"}))
	suite.employeeRepo.On("DeleteEmployee", suite.ctx, mock.AnythingOfType("string")).Return(int64(0), nil).Once()

	_, err := suite.service.CreateEmployee(suite.ctx, suite.admin, dto.CreatePersonnelRequest{
		FirstName: "A", LastName: "B", Email: email,
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(apperrors.FieldErrors(err), "password")
	suite.employeeRepo.AssertCalled(suite.T(), "DeleteEmployee", suite.ctx, savedID)
}

func (suite *DirectoryServiceTestSuite) TestCreateEmployee_SaveFailureLeavesNoLogin() {
	email := "race@example.com"
	suite.emailIsFree(email)
	suite.employeeRepo.On("SaveEmployee", suite.ctx, mock.AnythingOfType("domain.Employee")).
		Return(apperrors.NewConflictError("employee already exists")).Once()

	_, err := suite.service.CreateEmployee(suite.ctx, suite.admin, dto.CreatePersonnelRequest{
		FirstName: "A", LastName: "B", Email: email, Password: "password1",
	})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.auth.AssertNotCalled(suite.T(), "EnsureAuthUser", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DirectoryServiceTestSuite) TestCreateManager_SaveFailureLeavesNoLogin() {
	email := "boss@example.com"
	suite.emailIsFree(email)
	suite.managerRepo.On("SaveManager", suite.ctx, mock.AnythingOfType("domain.Manager")).
		Return(apperrors.NewConflictError("manager already exists")).Once()

	_, err := suite.service.CreateManager(suite.ctx, suite.admin, dto.CreatePersonnelRequest{
		FirstName: "A", LastName: "B", Email: email, Password: "password1",
	})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.auth.AssertNotCalled(suite.T(), "EnsureAuthUser", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DirectoryServiceTestSuite) TestUpdateEmployee_EmptyManagerUnassigns() {
	employeeID := uuid.NewString()
	managerID := uuid.NewString()
	suite.employeeRepo.On("FindEmployeeByID", suite.ctx, employeeID).Return(&domain.Employee{
		PersonFields: domain.PersonFields{ID: employeeID, FirstName: "A", Email: "a@example.com"},
		ManagerID:    &managerID,
		Status:       domain.DefaultPersonnelStatus,
	}, nil)
	suite.employeeRepo.On("UpdateEmployee", suite.ctx, mock.MatchedBy(func(e domain.Employee) bool {
		return e.ManagerID == nil
	})).Return(nil)

	employee, err := suite.service.UpdateEmployee(suite.ctx, suite.admin, employeeID, dto.UpdatePersonnelRequest{
		Manager: domain.StringPtr(""),
	})

	suite.Require().NoError(err)
	suite.Nil(employee.ManagerID)
	suite.managerRepo.AssertNotCalled(suite.T(), "FindManagerByID", mock.Anything, mock.Anything)
}

func (suite *DirectoryServiceTestSuite) TestCreateManager_RejectsManagerField() {
	_, err := suite.service.CreateManager(suite.ctx, suite.admin, dto.CreatePersonnelRequest{
		FirstName: "A", LastName: "B", Email: "m@example.com", Manager: domain.StringPtr(uuid.NewString()),
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(apperrors.FieldErrors(err), "manager")
}

func (suite *DirectoryServiceTestSuite) TestDeleteEmployee() {
	employeeID := uuid.NewString()
	suite.employeeRepo.On("DeleteEmployee", suite.ctx, employeeID).Return(int64(3), nil)

	err := suite.service.DeleteEmployee(suite.ctx, suite.admin, employeeID)

	suite.NoError(err)
	suite.employeeRepo.AssertExpectations(suite.T())
}

func (suite *DirectoryServiceTestSuite) TestDeleteManager_NotFound() {
	managerID := uuid.NewString()
	suite.managerRepo.On("DeleteManager", suite.ctx, managerID).Return(nil, apperrors.NewNotFoundError("manager not found"))

	err := suite.service.DeleteManager(suite.ctx, suite.admin, managerID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *DirectoryServiceTestSuite) TestDeleteManager_ReportsCascade() {
	managerID := uuid.NewString()
	suite.managerRepo.On("DeleteManager", suite.ctx, managerID).
		Return(&portsrepo.ManagerDeletion{UnassignedEmployees: 2, DeletedRequests: 1}, nil)

	err := suite.service.DeleteManager(suite.ctx, suite.admin, managerID)

	suite.NoError(err)
	suite.managerRepo.AssertExpectations(suite.T())
}
