package domain

import (
	"strings"
	"time"

	"github.com/SscSPs/travel_request_app/internal/apperrors"
)

// RequestScope restricts travel request access to what a principal owns.
// An empty scope (admin) sees everything.
type RequestScope struct {
	EmployeeID *string
	ManagerID  *string
}

// ScopeFor returns the ownership scope of p.
func ScopeFor(p Principal) RequestScope {
	id := p.ID
	switch p.Role {
	case RoleEmployee:
		return RequestScope{EmployeeID: &id}
	case RoleManager:
		return RequestScope{ManagerID: &id}
	default:
		return RequestScope{}
	}
}

// SortableFields lists the names accepted by sort_by.
var SortableFields = []string{
	"id", "from_date", "to_date", "location", "destination", "travel_mode",
	"lodging_required", "purpose_of_travel", "status", "resubmission_count",
	"is_closed", "created_at", "employee__first_name", "employee__last_name",
}

// SortSpec is a single-field ordering.
type SortSpec struct {
	Field      string
	Descending bool
}

// ParseSort parses "field" or "-field". An unknown field is a validation error.
func ParseSort(raw string) (*SortSpec, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	spec := &SortSpec{Field: raw}
	if strings.HasPrefix(raw, "-") {
		spec.Field = strings.TrimPrefix(raw, "-")
		spec.Descending = true
	}
	for _, f := range SortableFields {
		if f == spec.Field {
			return spec, nil
		}
	}
	return nil, apperrors.NewFieldValidationError(map[string]string{"sort_by": "unknown sort field " + spec.Field})
}

// TravelRequestFilter holds the optional refinements applied on top of the ownership
// scope. All set refinements are combined with AND.
type TravelRequestFilter struct {
	ID       *string
	Name     *string    // Case-insensitive substring of the employee's first or last name
	FromDate *time.Time // Inclusive lower bound on from_date
	ToDate   *time.Time // Inclusive upper bound on to_date
	Status   *TravelRequestStatus
	Sort     *SortSpec
}
