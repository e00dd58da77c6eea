package handlers

import (
	"net/http"

	"github.com/SscSPs/travel_request_app/internal/core/domain"
	"github.com/SscSPs/travel_request_app/internal/dto"
	"github.com/SscSPs/travel_request_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// employeeRequestHandler serves an employee's own travel requests.
type employeeRequestHandler struct {
	*travelRequestHandler
}

func registerEmployeeRoutes(rg *gin.RouterGroup, base *travelRequestHandler) {
	h := &employeeRequestHandler{travelRequestHandler: base}

	requests := rg.Group("/requests")
	{
		requests.GET("", h.list)
		requests.POST("", h.create)
		requests.GET("/:id", h.get)
		requests.PUT("/:id", h.edit)
		requests.DELETE("/:id", h.delete)
	}
}

// list godoc
// @Summary List own travel requests
// @Description Lists the travel requests submitted by the calling employee.
// @Tags employee
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
// @Failure 404 {object} ErrorResponse "Employee profile not found"
// @Security BearerAuth
// @Router /employee/requests [get]
func (h *employeeRequestHandler) list(c *gin.Context) {
	h.listRequests(c)
}

// create godoc
// @Summary Submit a travel request
// @Description Creates a pending travel request. The manager defaults to the employee's assigned manager.
// @Tags employee
// @Accept json
// @Produce json
// @Param request body dto.CreateTravelRequestRequest true "Trip details"
// @Success 201 {object} dto.TravelRequestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Employee profile not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employee/requests [post]
func (h *employeeRequestHandler) create(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.CreateTravelRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	tr, err := h.travelRequestService.SubmitTravelRequest(c.Request.Context(), p, req)
	if err != nil {
		respondError(c, err, "Failed to submit travel request")
		return
	}

	middleware.PosthogEvent(c, h.analytics, "travel_request_submitted", map[string]any{
		"request_id": tr.ID,
		"manager_id": tr.ManagerID,
	})
	c.JSON(http.StatusCreated, dto.ToTravelRequestResponse(tr))
}

// get godoc
// @Summary Get an own travel request
// @Tags employee
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} dto.TravelRequestResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employee/requests/{id} [get]
func (h *employeeRequestHandler) get(c *gin.Context) {
	h.getRequest(c)
}

// edit godoc
// @Summary Edit an own travel request
// @Description Partially updates trip fields while the request is pending or FI_required. The status is unchanged.
// @Tags employee
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body dto.UpdateTravelRequestRequest true "Fields to update"
// @Success 200 {object} dto.TravelRequestResponse
// @Failure 400 {object} ErrorResponse "Invalid input or Cannot update request"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employee/requests/{id} [put]
func (h *employeeRequestHandler) edit(c *gin.Context) {
	h.update(c, domain.ActionEdit, &dto.UpdateTravelRequestRequest{})
}

// delete godoc
// @Summary Delete an own travel request
// @Description Deletes the request while it is pending or FI_required.
// @Tags employee
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} ErrorResponse "Cannot delete request"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employee/requests/{id} [delete]
func (h *employeeRequestHandler) delete(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	requestID := c.Param("id")
	if err := h.travelRequestService.DeleteTravelRequest(c.Request.Context(), p, requestID); err != nil {
		respondError(c, err, "Failed to delete travel request")
		return
	}
	middleware.PosthogEvent(c, h.analytics, "travel_request_deleted", map[string]any{"request_id": requestID})
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Request deleted"})
}
