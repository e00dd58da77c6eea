package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/travel_request_app/cmd/docs"
	"github.com/SscSPs/travel_request_app/internal/core/domain"
	portssvc "github.com/SscSPs/travel_request_app/internal/core/ports/services"
	"github.com/SscSPs/travel_request_app/internal/middleware"
	"github.com/SscSPs/travel_request_app/internal/platform/config"
	"github.com/SscSPs/travel_request_app/internal/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	analytics *utils.PosthogClientWrapper,
) error {
	useJSONFieldNames()

	if cfg.FrontendBaseURL != "" {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{cfg.FrontendBaseURL},
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
			ExposeHeaders:    []string{middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	loginLimiter, err := middleware.NewMemoryLimiter(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("invalid login rate limit %q: %w", cfg.LoginRateLimit, err)
	}

	public := r.Group("/api/v1")
	registerAuthRoutes(public, services.Auth, loginLimiter)
	registerGoogleOAuthRoutes(public, services, cfg.FrontendBaseURL, cfg.IsProduction)

	setupAPIV1Routes(r, services, analytics)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures one authenticated group per role surface.
// RequireRole resolves the principal before any handler runs.
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceContainer, analytics *utils.PosthogClientWrapper) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(services.Auth), middleware.PosthogMiddleware(analytics))

	requests := newTravelRequestHandler(services.TravelRequest, analytics)

	employee := v1.Group("/employee", middleware.RequireRole(services.Identity, domain.RoleEmployee))
	registerEmployeeRoutes(employee, requests)

	manager := v1.Group("/manager", middleware.RequireRole(services.Identity, domain.RoleManager))
	registerManagerRoutes(manager, requests)

	admin := v1.Group("/myadmin", middleware.RequireRole(services.Identity, domain.RoleAdmin))
	registerAdminRequestRoutes(admin, requests)
	registerPersonnelRoutes(admin, services.Directory)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
