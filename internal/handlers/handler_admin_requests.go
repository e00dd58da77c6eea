package handlers

import (
	"github.com/SscSPs/travel_request_app/internal/core/domain"
	"github.com/SscSPs/travel_request_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// adminRequestHandler serves every travel request to admins.
type adminRequestHandler struct {
	*travelRequestHandler
}

func registerAdminRequestRoutes(rg *gin.RouterGroup, base *travelRequestHandler) {
	h := &adminRequestHandler{travelRequestHandler: base}

	requests := rg.Group("/requests")
	{
		requests.GET("", h.list)
		requests.GET("/:id", h.get)
		requests.POST("/:id/close", h.close)
		requests.PUT("/:id/update", h.updateRequest)
	}
}

// list godoc
// @Summary List all travel requests
// @Tags admin
// @Produce json
// @Param id query string false "Request ID"
// @Param name query string false "Employee first/last name contains"
// @Param from_date query string false "From date lower bound (YYYY-MM-DD)"
// @Param to_date query string false "To date upper bound (YYYY-MM-DD)"
// @Param status query string false "Status" Enums(pending, FI_required, approved, rejected, closed)
// @Param sort_by query string false "Sort field, prefix with - for descending"
// @Success 200 {array} dto.TravelRequestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Admin profile not found"
// @Security BearerAuth
// @Router /myadmin/requests [get]
func (h *adminRequestHandler) list(c *gin.Context) {
	h.listRequests(c)
}

// get godoc
// @Summary Get a travel request
// @Tags admin
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} dto.TravelRequestResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /myadmin/requests/{id} [get]
func (h *adminRequestHandler) get(c *gin.Context) {
	h.getRequest(c)
}

// close godoc
// @Summary Close an approved travel request
// @Tags admin
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} ErrorResponse "Request is not approved"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /myadmin/requests/{id}/close [post]
func (h *adminRequestHandler) close(c *gin.Context) {
	h.perform(c, domain.ActionClose, domain.ActionInput{}, "Request closed")
}

// updateRequest godoc
// @Summary Update a travel request
// @Description Partially updates trip fields, the admin note and the assigned manager. The status is unchanged.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body dto.AdminUpdateTravelRequestRequest true "Fields to update"
// @Success 200 {object} dto.TravelRequestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /myadmin/requests/{id}/update [put]
func (h *adminRequestHandler) updateRequest(c *gin.Context) {
	h.update(c, domain.ActionAdminUpdate, &dto.AdminUpdateTravelRequestRequest{})
}
