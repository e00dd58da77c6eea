package domain

import (
	"time"
)

// DefaultPersonnelStatus is assigned to new employees and managers.
const DefaultPersonnelStatus = "active"

// Employee is a person who submits travel requests.
type Employee struct {
	PersonFields
	Department *string
	ManagerID  *string // Nil when no manager is assigned
	Status     string
	CreatedAt  time.Time
}

// Manager is a person who decides on travel requests assigned to them.
type Manager struct {
	PersonFields
	Department *string
	Status     string
	CreatedAt  time.Time
}

// Admin is a privileged principal that closes requests and manages personnel.
type Admin struct {
	PersonFields
}

// PersonnelPatch holds a partial update for an employee or a manager.
// Nil fields are left untouched.
type PersonnelPatch struct {
	FirstName  *string
	LastName   *string
	Email      *string
	Department *string
	Status     *string
	// ManagerID applies to employees only. An empty string unassigns the manager.
	ManagerID *string
}

func (p PersonnelPatch) applyPerson(f *PersonFields) {
	if p.FirstName != nil {
		f.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		f.LastName = *p.LastName
	}
	if p.Email != nil {
		f.Email = *p.Email
	}
}

// ApplyTo merges the patch into e.
func (p PersonnelPatch) ApplyTo(e *Employee) {
	p.applyPerson(&e.PersonFields)
	if p.Department != nil {
		e.Department = p.Department
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
	if p.ManagerID != nil {
		if *p.ManagerID == "" {
			e.ManagerID = nil
		} else {
			e.ManagerID = p.ManagerID
		}
	}
}

// ApplyToManager merges the patch into m. ManagerID is ignored.
func (p PersonnelPatch) ApplyToManager(m *Manager) {
	p.applyPerson(&m.PersonFields)
	if p.Department != nil {
		m.Department = p.Department
	}
	if p.Status != nil {
		m.Status = *p.Status
	}
}
