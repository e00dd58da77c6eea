package domain

// Role identifies which role table a principal was resolved from.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

// Title returns the capitalised role name used in caller-facing messages.
func (r Role) Title() string {
	switch r {
	case RoleEmployee:
		return "Employee"
	case RoleManager:
		return "Manager"
	case RoleAdmin:
		return "Admin"
	default:
		return string(r)
	}
}

// Principal is an authenticated actor resolved to exactly one role record.
// It is passed explicitly into every core operation.
type Principal struct {
	Role   Role
	ID     string // ID of the role record (employee, manager or admin)
	Email  string
	Name   string
	UserID string // ID of the authentication identity
}

// NewPrincipal builds a Principal from a role record.
func NewPrincipal(role Role, record Identity, userID string) Principal {
	return Principal{
		Role:   role,
		ID:     record.GetID(),
		Email:  record.GetEmail(),
		Name:   record.FullName(),
		UserID: userID,
	}
}
