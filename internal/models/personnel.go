package models

import (
	"time"
)

// Employee is the row shape of the employees table.
type Employee struct {
	EmployeeID string    `db:"employee_id"`
	FirstName  string    `db:"first_name"`
	LastName   string    `db:"last_name"`
	Email      string    `db:"email"`
	Department *string   `db:"department"`
	ManagerID  *string   `db:"manager_id"` // Nullable
	Status     string    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
}

// Manager is the row shape of the managers table.
type Manager struct {
	ManagerID  string    `db:"manager_id"`
	FirstName  string    `db:"first_name"`
	LastName   string    `db:"last_name"`
	Email      string    `db:"email"`
	Department *string   `db:"department"`
	Status     string    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
}

// Admin is the row shape of the admins table.
type Admin struct {
	AdminID   string `db:"admin_id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Email     string `db:"email"`
}
