package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/travel_request_app/internal/core/domain"
	portssvc "github.com/SscSPs/travel_request_app/internal/core/ports/services"
	"github.com/SscSPs/travel_request_app/internal/dto"
	"github.com/SscSPs/travel_request_app/internal/middleware"
	"github.com/SscSPs/travel_request_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// travelRequestHandler holds what the employee, manager and admin request
// surfaces share. Every call runs on behalf of the principal resolved by
// middleware.RequireRole.
type travelRequestHandler struct {
	travelRequestService portssvc.TravelRequestSvcFacade
	analytics            *utils.PosthogClientWrapper
}

func newTravelRequestHandler(ts portssvc.TravelRequestSvcFacade, analytics *utils.PosthogClientWrapper) *travelRequestHandler {
	return &travelRequestHandler{
		travelRequestService: ts,
		analytics:            analytics,
	}
}

// principal returns the resolved principal or aborts the request.
func principal(c *gin.Context) (domain.Principal, bool) {
	p, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Principal not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication credentials were not provided."})
	}
	return p, ok
}

func (h *travelRequestHandler) listRequests(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var params dto.ListTravelRequestsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	filter, err := params.ToFilter()
	if err != nil {
		respondError(c, err, "Invalid query parameters")
		return
	}

	requests, err := h.travelRequestService.ListTravelRequests(c.Request.Context(), p, filter)
	if err != nil {
		respondError(c, err, "Failed to list travel requests")
		return
	}
	c.JSON(http.StatusOK, dto.ToTravelRequestResponses(requests))
}

func (h *travelRequestHandler) getRequest(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	tr, err := h.travelRequestService.GetTravelRequest(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve travel request")
		return
	}
	c.JSON(http.StatusOK, dto.ToTravelRequestResponse(tr))
}

// perform runs action and reports the outcome. When message is empty the
// updated request is returned, otherwise a confirmation message.
func (h *travelRequestHandler) perform(c *gin.Context, action domain.Action, input domain.ActionInput, message string) {
	p, ok := principal(c)
	if !ok {
		return
	}
	requestID := c.Param("id")

	tr, err := h.travelRequestService.PerformAction(c.Request.Context(), p, requestID, action, input)
	if err != nil {
		respondError(c, err, "Failed to update travel request")
		return
	}

	middleware.PosthogEvent(c, h.analytics, "travel_request_"+string(action), map[string]any{
		"request_id": requestID,
		"status":     string(tr.Status),
	})
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Travel request action performed",
		slog.String("request_id", requestID),
		slog.String("action", string(action)))

	if message != "" {
		c.JSON(http.StatusOK, dto.MessageResponse{Message: message})
		return
	}
	c.JSON(http.StatusOK, dto.ToTravelRequestResponse(tr))
}

// patchSource is implemented by the update DTOs of every role.
type patchSource interface {
	ToPatch() (domain.TravelRequestPatch, error)
}

// update binds req, converts it and performs action with the resulting patch.
func (h *travelRequestHandler) update(c *gin.Context, action domain.Action, req patchSource) {
	if err := c.ShouldBindJSON(req); err != nil {
		respondBindError(c, err)
		return
	}
	patch, err := req.ToPatch()
	if err != nil {
		respondError(c, err, "Invalid input")
		return
	}
	h.perform(c, action, domain.ActionInput{Patch: patch}, "")
}
