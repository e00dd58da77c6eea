package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/travel_request_app/internal/core/ports/services"
	"github.com/SscSPs/travel_request_app/internal/dto"
	"github.com/SscSPs/travel_request_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// personnelHandler lets admins manage employee and manager records.
type personnelHandler struct {
	directoryService portssvc.DirectorySvcFacade
}

func newPersonnelHandler(ds portssvc.DirectorySvcFacade) *personnelHandler {
	return &personnelHandler{directoryService: ds}
}

func registerPersonnelRoutes(rg *gin.RouterGroup, directoryService portssvc.DirectorySvcFacade) {
	h := newPersonnelHandler(directoryService)

	employees := rg.Group("/employees")
	{
		employees.GET("", h.listEmployees)
		employees.POST("", h.createEmployee)
		employees.GET("/:id", h.getEmployee)
		employees.PUT("/:id", h.updateEmployee)
		employees.DELETE("/:id", h.deleteEmployee)
	}

	managers := rg.Group("/managers")
	{
		managers.GET("", h.listManagers)
		managers.POST("", h.createManager)
		managers.GET("/:id", h.getManager)
		managers.PUT("/:id", h.updateManager)
		managers.DELETE("/:id", h.deleteManager)
	}
}

// listEmployees godoc
// @Summary List employees
// @Tags admin
// @Produce json
// @Success 200 {array} dto.EmployeeResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Admin profile not found"
// @Security BearerAuth
// @Router /myadmin/employees [get]
func (h *personnelHandler) listEmployees(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	employees, err := h.directoryService.ListEmployees(c.Request.Context(), p)
	if err != nil {
		respondError(c, err, "Failed to list employees")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponses(employees))
}

// createEmployee godoc
// @Summary Create an employee
// @Description Creates the employee record and, unless one exists for the email, its login.
// @Tags admin
// @Accept json
// @Produce json
// @Param employee body dto.CreatePersonnelRequest true "Employee details"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already in use"
// @Security BearerAuth
// @Router /myadmin/employees [post]
func (h *personnelHandler) createEmployee(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.CreatePersonnelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	employee, err := h.directoryService.CreateEmployee(c.Request.Context(), p, req)
	if err != nil {
		respondError(c, err, "Failed to create employee")
		return
	}
	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

// getEmployee godoc
// @Summary Get an employee
// @Tags admin
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /myadmin/employees/{id} [get]
func (h *personnelHandler) getEmployee(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	employee, err := h.directoryService.GetEmployee(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve employee")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// updateEmployee godoc
// @Summary Update an employee
// @Description Partially updates the employee. An empty manager unassigns it.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param employee body dto.UpdatePersonnelRequest true "Fields to update"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /myadmin/employees/{id} [put]
func (h *personnelHandler) updateEmployee(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.UpdatePersonnelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	employee, err := h.directoryService.UpdateEmployee(c.Request.Context(), p, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update employee")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// deleteEmployee godoc
// @Summary Delete an employee
// @Description Deletes the employee together with its travel requests. The login is kept.
// @Tags admin
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /myadmin/employees/{id} [delete]
func (h *personnelHandler) deleteEmployee(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	employeeID := c.Param("id")
	if err := h.directoryService.DeleteEmployee(c.Request.Context(), p, employeeID); err != nil {
		respondError(c, err, "Failed to delete employee")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Employee deleted", slog.String("employee_id", employeeID))
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Employee deleted"})
}

// listManagers godoc
// @Summary List managers
// @Tags admin
// @Produce json
// @Success 200 {array} dto.ManagerResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Admin profile not found"
// @Security BearerAuth
// @Router /myadmin/managers [get]
func (h *personnelHandler) listManagers(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	managers, err := h.directoryService.ListManagers(c.Request.Context(), p)
	if err != nil {
		respondError(c, err, "Failed to list managers")
		return
	}
	c.JSON(http.StatusOK, dto.ToManagerResponses(managers))
}

// createManager godoc
// @Summary Create a manager
// @Description Creates the manager record and, unless one exists for the email, its login.
// @Tags admin
// @Accept json
// @Produce json
// @Param manager body dto.CreatePersonnelRequest true "Manager details"
// @Success 201 {object} dto.ManagerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already in use"
// @Security BearerAuth
// @Router /myadmin/managers [post]
func (h *personnelHandler) createManager(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.CreatePersonnelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	manager, err := h.directoryService.CreateManager(c.Request.Context(), p, req)
	if err != nil {
		respondError(c, err, "Failed to create manager")
		return
	}
	c.JSON(http.StatusCreated, dto.ToManagerResponse(manager))
}

// getManager godoc
// @Summary Get a manager
// @Tags admin
// @Produce json
// @Param id path string true "Manager ID"
// @Success 200 {object} dto.ManagerResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /myadmin/managers/{id} [get]
func (h *personnelHandler) getManager(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	manager, err := h.directoryService.GetManager(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve manager")
		return
	}
	c.JSON(http.StatusOK, dto.ToManagerResponse(manager))
}

// updateManager godoc
// @Summary Update a manager
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Manager ID"
// @Param manager body dto.UpdatePersonnelRequest true "Fields to update"
// @Success 200 {object} dto.ManagerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /myadmin/managers/{id} [put]
func (h *personnelHandler) updateManager(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.UpdatePersonnelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	manager, err := h.directoryService.UpdateManager(c.Request.Context(), p, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update manager")
		return
	}
	c.JSON(http.StatusOK, dto.ToManagerResponse(manager))
}

// deleteManager godoc
// @Summary Delete a manager
// @Description Unassigns the manager's employees, deletes the requests assigned to it and then the manager.
// @Tags admin
// @Produce json
// @Param id path string true "Manager ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /myadmin/managers/{id} [delete]
func (h *personnelHandler) deleteManager(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	managerID := c.Param("id")
	if err := h.directoryService.DeleteManager(c.Request.Context(), p, managerID); err != nil {
		respondError(c, err, "Failed to delete manager")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Manager deleted", slog.String("manager_id", managerID))
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Manager deleted"})
}
