package services

import (
	portsrepo "github.com/SscSPs/travel_request_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/travel_request_app/internal/core/ports/services"
	"github.com/SscSPs/travel_request_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Auth first: the directory provisions logins through it.
	container.Auth = NewAuthService(cfg, repos.AuthUserRepo, repos.SessionRepo)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	container.Identity = NewIdentityService(repos.EmployeeRepo, repos.ManagerRepo, repos.AdminRepo)
	container.TravelRequest = NewTravelRequestService(repos.TravelRequestRepo, repos.EmployeeRepo, repos.ManagerRepo)
	container.Directory = NewDirectoryService(repos.EmployeeRepo, repos.ManagerRepo, repos.AdminRepo, container.Auth)

	return container
}
