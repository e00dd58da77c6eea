package domain

// Identity is the capability set shared by every role record.
type Identity interface {
	GetID() string
	GetEmail() string
	FullName() string
}

// PersonFields holds the identity fields common to employees, managers and admins.
type PersonFields struct {
	ID        string
	FirstName string
	LastName  string
	Email     string // Unique within its role table
}

func (p PersonFields) GetID() string    { return p.ID }
func (p PersonFields) GetEmail() string { return p.Email }

func (p PersonFields) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}
