package handlers

import (
	"errors"
	"io"

	"github.com/SscSPs/travel_request_app/internal/core/domain"
	"github.com/SscSPs/travel_request_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// managerRequestHandler serves the requests assigned to the calling manager.
type managerRequestHandler struct {
	*travelRequestHandler
}

func registerManagerRoutes(rg *gin.RouterGroup, base *travelRequestHandler) {
	h := &managerRequestHandler{travelRequestHandler: base}

	requests := rg.Group("/requests")
	{
		requests.GET("", h.list)
		requests.GET("/:id", h.get)
		requests.POST("/:id/approve", h.approve)
		requests.POST("/:id/reject", h.reject)
		requests.POST("/:id/fi_request", h.requestInfo)
		requests.PUT("/:id/update", h.updateRequest)
	}
}

// list godoc
// @Summary List assigned travel requests
// @Description Lists the requests assigned to the calling manager, with optional filters and sorting.
// @Tags manager
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
// @Failure 404 {object} ErrorResponse "Manager profile not found"
// @Security BearerAuth
// @Router /manager/requests [get]
func (h *managerRequestHandler) list(c *gin.Context) {
	h.listRequests(c)
}

// get godoc
// @Summary Get an assigned travel request
// @Tags manager
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} dto.TravelRequestResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /manager/requests/{id} [get]
func (h *managerRequestHandler) get(c *gin.Context) {
	h.getRequest(c)
}

// decide binds the optional decision body and performs action.
func (h *managerRequestHandler) decide(c *gin.Context, action domain.Action, message string) {
	var req dto.DecisionRequest
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			respondBindError(c, err)
			return
		}
	}
	h.perform(c, action, domain.ActionInput{Note: req.ManagerNote}, message)
}

// approve godoc
// @Summary Approve a travel request
// @Tags manager
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param body body dto.DecisionRequest false "Optional manager note"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /manager/requests/{id}/approve [post]
func (h *managerRequestHandler) approve(c *gin.Context) {
	h.decide(c, domain.ActionApprove, "Request approved")
}

// reject godoc
// @Summary Reject a travel request
// @Tags manager
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param body body dto.DecisionRequest false "Optional manager note"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /manager/requests/{id}/reject [post]
func (h *managerRequestHandler) reject(c *gin.Context) {
	h.decide(c, domain.ActionReject, "Request rejected")
}

// requestInfo godoc
// @Summary Request further information
// @Description Moves the request to FI_required so the employee can edit it.
// @Tags manager
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param body body dto.DecisionRequest false "Optional manager note"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /manager/requests/{id}/fi_request [post]
func (h *managerRequestHandler) requestInfo(c *gin.Context) {
	h.decide(c, domain.ActionRequestInfo, "Further information requested")
}

// updateRequest godoc
// @Summary Update an assigned travel request
// @Description Partially updates trip fields and the manager note. The status is unchanged.
// @Tags manager
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body dto.ManagerUpdateTravelRequestRequest true "Fields to update"
// @Success 200 {object} dto.TravelRequestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /manager/requests/{id}/update [put]
func (h *managerRequestHandler) updateRequest(c *gin.Context) {
	h.update(c, domain.ActionManagerUpdate, &dto.ManagerUpdateTravelRequestRequest{})
}
