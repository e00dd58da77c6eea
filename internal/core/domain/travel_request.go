package domain

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/SscSPs/travel_request_app/internal/apperrors"
)

// TravelRequestStatus is the lifecycle state of a travel request.
type TravelRequestStatus string

const (
	StatusPending    TravelRequestStatus = "pending"
	StatusFIRequired TravelRequestStatus = "FI_required" // Further information required
	StatusApproved   TravelRequestStatus = "approved"
	StatusRejected   TravelRequestStatus = "rejected"
	StatusClosed     TravelRequestStatus = "closed"
)

// AllStatuses lists every lifecycle state.
var AllStatuses = []TravelRequestStatus{StatusPending, StatusFIRequired, StatusApproved, StatusRejected, StatusClosed}

// IsValid reports whether s is a known lifecycle state.
func (s TravelRequestStatus) IsValid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Field length limits.
const (
	MaxLocationLength    = 100
	MaxDestinationLength = 100
	MaxTravelModeLength  = 50
	MaxPurposeLength     = 255
)

// TravelRequest is an employee's request to travel, decided by the assigned manager
// and closed by an admin.
type TravelRequest struct {
	ID          string
	EmployeeID  string
	ManagerID   string
	ProcessedBy *string // Admin that closed the request

	FromDate        *time.Time
	ToDate          *time.Time
	Location        string
	Destination     string
	TravelMode      string
	LodgingRequired bool
	PurposeOfTravel string

	Status             TravelRequestStatus
	ManagerNote        *string
	AdminNote          *string
	FurtherInformation *string
	ResubmissionCount  int
	IsClosed           bool
	CreatedAt          time.Time
}

// TravelRequestPatch is a partial update of a travel request. Nil fields are left untouched.
// Workflow fields (status, is_closed, resubmission_count) are never patchable.
type TravelRequestPatch struct {
	FromDate           *time.Time
	ToDate             *time.Time
	ClearFromDate      bool // wins over FromDate
	ClearToDate        bool // wins over ToDate
	Location           *string
	Destination        *string
	TravelMode         *string
	LodgingRequired    *bool
	PurposeOfTravel    *string
	FurtherInformation *string
	ManagerNote        *string
	AdminNote          *string
	ManagerID          *string
}

// permittedFor rejects patch fields that role may not change.
func (p TravelRequestPatch) permittedFor(role Role) error {
	denied := map[string]string{}
	if p.ManagerNote != nil && role != RoleManager {
		denied["manager_note"] = "not editable by " + string(role)
	}
	if p.AdminNote != nil && role != RoleAdmin {
		denied["admin_note"] = "not editable by " + string(role)
	}
	if p.ManagerID != nil && role != RoleAdmin {
		denied["manager_id"] = "not editable by " + string(role)
	}
	if len(denied) > 0 {
		return apperrors.NewFieldValidationError(denied)
	}
	return nil
}

func (p TravelRequestPatch) applyTo(tr *TravelRequest) {
	switch {
	case p.ClearFromDate:
		tr.FromDate = nil
	case p.FromDate != nil:
		tr.FromDate = p.FromDate
	}
	switch {
	case p.ClearToDate:
		tr.ToDate = nil
	case p.ToDate != nil:
		tr.ToDate = p.ToDate
	}
	if p.Location != nil {
		tr.Location = *p.Location
	}
	if p.Destination != nil {
		tr.Destination = *p.Destination
	}
	if p.TravelMode != nil {
		tr.TravelMode = *p.TravelMode
	}
	if p.LodgingRequired != nil {
		tr.LodgingRequired = *p.LodgingRequired
	}
	if p.PurposeOfTravel != nil {
		tr.PurposeOfTravel = *p.PurposeOfTravel
	}
	if p.FurtherInformation != nil {
		tr.FurtherInformation = p.FurtherInformation
	}
	if p.ManagerNote != nil {
		tr.ManagerNote = p.ManagerNote
	}
	if p.AdminNote != nil {
		tr.AdminNote = p.AdminNote
	}
	if p.ManagerID != nil {
		tr.ManagerID = *p.ManagerID
	}
}

// NewTravelRequest creates a submitted request owned by employeeID and assigned to managerID.
func NewTravelRequest(id, employeeID, managerID string, details TravelRequestPatch, now time.Time) (*TravelRequest, error) {
	if err := details.permittedFor(RoleEmployee); err != nil {
		return nil, err
	}
	tr := &TravelRequest{
		ID:                id,
		EmployeeID:        employeeID,
		ManagerID:         managerID,
		Status:            StatusPending,
		ResubmissionCount: 0,
		IsClosed:          false,
		CreatedAt:         now,
	}
	details.applyTo(tr)
	if err := tr.Validate(); err != nil {
		return nil, err
	}
	return tr, nil
}

// Validate checks required trip fields, length limits and date ordering.
func (tr *TravelRequest) Validate() error {
	fields := map[string]string{}
	checkText := func(name, value string, max int) {
		if strings.TrimSpace(value) == "" {
			fields[name] = "this field is required"
		} else if utf8.RuneCountInString(value) > max {
			fields[name] = "ensure this field has no more than " + strconv.Itoa(max) + " characters"
		}
	}
	checkText("location", tr.Location, MaxLocationLength)
	checkText("destination", tr.Destination, MaxDestinationLength)
	checkText("travel_mode", tr.TravelMode, MaxTravelModeLength)
	checkText("purpose_of_travel", tr.PurposeOfTravel, MaxPurposeLength)
	if tr.EmployeeID == "" {
		fields["employee_id"] = "this field is required"
	}
	if tr.ManagerID == "" {
		fields["manager_id"] = "this field is required"
	}
	if tr.FromDate != nil && tr.ToDate != nil && tr.ToDate.Before(*tr.FromDate) {
		fields["to_date"] = "must not be before from_date"
	}
	if len(fields) > 0 {
		return apperrors.NewFieldValidationError(fields)
	}
	return nil
}
