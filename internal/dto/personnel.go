package dto

import (
	"time"

	"github.com/SscSPs/travel_request_app/internal/core/domain"
)

// CreatePersonnelRequest creates an employee or a manager.
// Password is used only when no login exists yet for the email.
type CreatePersonnelRequest struct {
	FirstName  string  `json:"first_name" binding:"required,max=50"`
	LastName   string  `json:"last_name" binding:"required,max=50"`
	Email      string  `json:"email" binding:"required,email,max=254"`
	Password   string  `json:"password" binding:"omitempty,min=8,max=128"`
	Department *string `json:"department" binding:"omitempty,max=100"`
	Status     *string `json:"status" binding:"omitempty,max=20"`
	Manager    *string `json:"manager" binding:"omitempty,uuid"` // Employees only
}

// UpdatePersonnelRequest is a partial update of an employee or a manager.
type UpdatePersonnelRequest struct {
	FirstName  *string `json:"first_name" binding:"omitempty,min=1,max=50"`
	LastName   *string `json:"last_name" binding:"omitempty,min=1,max=50"`
	Email      *string `json:"email" binding:"omitempty,email,max=254"`
	Department *string `json:"department" binding:"omitempty,max=100"`
	Status     *string `json:"status" binding:"omitempty,min=1,max=20"`
	// Manager reassigns an employee; an empty string unassigns it.
	Manager *string `json:"manager" binding:"omitempty,uuid"`
}

// ToPatch converts the request into a domain patch.
func (r UpdatePersonnelRequest) ToPatch() domain.PersonnelPatch {
	return domain.PersonnelPatch{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		Department: r.Department,
		Status:     r.Status,
		ManagerID:  r.Manager,
	}
}

// EmployeeResponse is the representation of an employee record.
type EmployeeResponse struct {
	ID         string    `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Department *string   `json:"department"`
	Manager    *string   `json:"manager"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// ManagerResponse is the representation of a manager record.
type ManagerResponse struct {
	ID         string    `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Department *string   `json:"department"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Email:      e.Email,
		Department: e.Department,
		Manager:    e.ManagerID,
		Status:     e.Status,
		CreatedAt:  e.CreatedAt,
	}
}

func ToEmployeeResponses(employees []domain.Employee) []EmployeeResponse {
	responses := make([]EmployeeResponse, len(employees))
	for i := range employees {
		responses[i] = ToEmployeeResponse(&employees[i])
	}
	return responses
}

func ToManagerResponse(m *domain.Manager) ManagerResponse {
	return ManagerResponse{
		ID:         m.ID,
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		Email:      m.Email,
		Department: m.Department,
		Status:     m.Status,
		CreatedAt:  m.CreatedAt,
	}
}

func ToManagerResponses(managers []domain.Manager) []ManagerResponse {
	responses := make([]ManagerResponse, len(managers))
	for i := range managers {
		responses[i] = ToManagerResponse(&managers[i])
	}
	return responses
}
