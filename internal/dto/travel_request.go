package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/SscSPs/travel_request_app/internal/apperrors"
	"github.com/SscSPs/travel_request_app/internal/core/domain"
)

// DateLayout is the wire format of trip dates.
const DateLayout = "2006-01-02"

// CreateTravelRequestRequest is submitted by an employee.
// Manager defaults to the employee's assigned manager.
type CreateTravelRequestRequest struct {
	Manager            *string `json:"manager" binding:"omitempty,uuid"`
	FromDate           *string `json:"from_date" binding:"omitempty,datetime=2006-01-02"`
	ToDate             *string `json:"to_date" binding:"omitempty,datetime=2006-01-02"`
	Location           string  `json:"location" binding:"required,max=100"`
	Destination        string  `json:"destination" binding:"required,max=100"`
	TravelMode         string  `json:"travel_mode" binding:"required,max=50"`
	LodgingRequired    bool    `json:"lodging_required"`
	PurposeOfTravel    string  `json:"purpose_of_travel" binding:"required,max=255"`
	FurtherInformation *string `json:"further_information"`
}

// ToPatch converts the request into the trip details of a new travel request.
func (r CreateTravelRequestRequest) ToPatch() (domain.TravelRequestPatch, error) {
	from, to, err := parseDateRange(r.FromDate, r.ToDate)
	if err != nil {
		return domain.TravelRequestPatch{}, err
	}
	lodging := r.LodgingRequired
	return domain.TravelRequestPatch{
		FromDate:           from,
		ToDate:             to,
		Location:           &r.Location,
		Destination:        &r.Destination,
		TravelMode:         &r.TravelMode,
		LodgingRequired:    &lodging,
		PurposeOfTravel:    &r.PurposeOfTravel,
		FurtherInformation: r.FurtherInformation,
	}, nil
}

// OptionalDate is a date field of a partial update. It tells an omitted field
// apart from an explicit null or "", both of which clear the date.
type OptionalDate struct {
	Set   bool
	Value string
}

func (d *OptionalDate) UnmarshalJSON(data []byte) error {
	d.Set = true
	d.Value = ""
	if string(data) == "null" {
		return nil
	}
	return json.Unmarshal(data, &d.Value)
}

// toPatch returns the parsed date, or clear=true when the date is to be removed.
func (d OptionalDate) toPatch(field string) (value *time.Time, clear bool, err error) {
	if !d.Set {
		return nil, false, nil
	}
	if strings.TrimSpace(d.Value) == "" {
		return nil, true, nil
	}
	value, err = parseDate(field, d.Value)
	return value, false, err
}

// UpdateTravelRequestRequest is a partial update of the trip fields.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateTravelRequestRequest struct {
	FromDate           OptionalDate `json:"from_date" swaggertype:"string"`
	ToDate             OptionalDate `json:"to_date" swaggertype:"string"`
	Location           *string `json:"location" binding:"omitempty,max=100"`
	Destination        *string `json:"destination" binding:"omitempty,max=100"`
	TravelMode         *string `json:"travel_mode" binding:"omitempty,max=50"`
	LodgingRequired    *bool   `json:"lodging_required"`
	PurposeOfTravel    *string `json:"purpose_of_travel" binding:"omitempty,max=255"`
	FurtherInformation *string `json:"further_information"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateTravelRequestRequest) ToPatch() (domain.TravelRequestPatch, error) {
	from, clearFrom, err := r.FromDate.toPatch("from_date")
	if err != nil {
		return domain.TravelRequestPatch{}, err
	}
	to, clearTo, err := r.ToDate.toPatch("to_date")
	if err != nil {
		return domain.TravelRequestPatch{}, err
	}
	return domain.TravelRequestPatch{
		FromDate:           from,
		ToDate:             to,
		ClearFromDate:      clearFrom,
		ClearToDate:        clearTo,
		Location:           r.Location,
		Destination:        r.Destination,
		TravelMode:         r.TravelMode,
		LodgingRequired:    r.LodgingRequired,
		PurposeOfTravel:    r.PurposeOfTravel,
		FurtherInformation: r.FurtherInformation,
	}, nil
}

// ManagerUpdateTravelRequestRequest adds the manager note to the trip fields.
type ManagerUpdateTravelRequestRequest struct {
	UpdateTravelRequestRequest
	ManagerNote *string `json:"manager_note"`
}

func (r ManagerUpdateTravelRequestRequest) ToPatch() (domain.TravelRequestPatch, error) {
	patch, err := r.UpdateTravelRequestRequest.ToPatch()
	if err != nil {
		return patch, err
	}
	patch.ManagerNote = r.ManagerNote
	return patch, nil
}

// AdminUpdateTravelRequestRequest adds the admin note and manager reassignment.
type AdminUpdateTravelRequestRequest struct {
	UpdateTravelRequestRequest
	AdminNote *string `json:"admin_note"`
	Manager   *string `json:"manager" binding:"omitempty,uuid"`
}

func (r AdminUpdateTravelRequestRequest) ToPatch() (domain.TravelRequestPatch, error) {
	patch, err := r.UpdateTravelRequestRequest.ToPatch()
	if err != nil {
		return patch, err
	}
	patch.AdminNote = r.AdminNote
	if r.Manager != nil && *r.Manager != "" {
		patch.ManagerID = r.Manager
	}
	return patch, nil
}

// DecisionRequest is the optional body of approve / reject / fi_request.
type DecisionRequest struct {
	ManagerNote *string `json:"manager_note"`
}

// ListTravelRequestsParams defines the query refinements of the request lists.
// Empty values are ignored.
type ListTravelRequestsParams struct {
	ID       string `form:"id" binding:"omitempty,uuid"`
	Name     string `form:"name"`
	FromDate string `form:"from_date" binding:"omitempty,datetime=2006-01-02"`
	ToDate   string `form:"to_date" binding:"omitempty,datetime=2006-01-02"`
	Status   string `form:"status" binding:"omitempty,oneof=pending FI_required approved rejected closed"`
	SortBy   string `form:"sort_by"`
}

// ToFilter converts the query parameters into a domain filter.
func (p ListTravelRequestsParams) ToFilter() (domain.TravelRequestFilter, error) {
	var filter domain.TravelRequestFilter
	if id := strings.TrimSpace(p.ID); id != "" {
		filter.ID = &id
	}
	if name := strings.TrimSpace(p.Name); name != "" {
		filter.Name = &name
	}
	from, err := parseDate("from_date", p.FromDate)
	if err != nil {
		return filter, err
	}
	filter.FromDate = from
	to, err := parseDate("to_date", p.ToDate)
	if err != nil {
		return filter, err
	}
	filter.ToDate = to
	if p.Status != "" {
		status := domain.TravelRequestStatus(p.Status)
		if !status.IsValid() {
			return filter, apperrors.NewFieldValidationError(map[string]string{"status": "unknown status " + p.Status})
		}
		filter.Status = &status
	}
	sort, err := domain.ParseSort(p.SortBy)
	if err != nil {
		return filter, err
	}
	filter.Sort = sort
	return filter, nil
}

// TravelRequestResponse is the field-complete representation of a travel request.
type TravelRequestResponse struct {
	ID                 string    `json:"id"`
	Employee           string    `json:"employee"`
	Manager            string    `json:"manager"`
	FromDate           *string   `json:"from_date"`
	ToDate             *string   `json:"to_date"`
	Location           string    `json:"location"`
	Destination        string    `json:"destination"`
	TravelMode         string    `json:"travel_mode"`
	LodgingRequired    bool      `json:"lodging_required"`
	PurposeOfTravel    string    `json:"purpose_of_travel"`
	Status             string    `json:"status"`
	ManagerNote        *string   `json:"manager_note"`
	AdminNote          *string   `json:"admin_note"`
	FurtherInformation *string   `json:"further_information"`
	ProcessedBy        *string   `json:"processed_by"`
	ResubmissionCount  int       `json:"resubmission_count"`
	IsClosed           bool      `json:"is_closed"`
	CreatedAt          time.Time `json:"created_at"`
}

// ToTravelRequestResponse converts a domain.TravelRequest to its response DTO.
func ToTravelRequestResponse(tr *domain.TravelRequest) TravelRequestResponse {
	return TravelRequestResponse{
		ID:                 tr.ID,
		Employee:           tr.EmployeeID,
		Manager:            tr.ManagerID,
		FromDate:           formatDate(tr.FromDate),
		ToDate:             formatDate(tr.ToDate),
		Location:           tr.Location,
		Destination:        tr.Destination,
		TravelMode:         tr.TravelMode,
		LodgingRequired:    tr.LodgingRequired,
		PurposeOfTravel:    tr.PurposeOfTravel,
		Status:             string(tr.Status),
		ManagerNote:        tr.ManagerNote,
		AdminNote:          tr.AdminNote,
		FurtherInformation: tr.FurtherInformation,
		ProcessedBy:        tr.ProcessedBy,
		ResubmissionCount:  tr.ResubmissionCount,
		IsClosed:           tr.IsClosed,
		CreatedAt:          tr.CreatedAt,
	}
}

// ToTravelRequestResponses converts a slice of domain.TravelRequest.
func ToTravelRequestResponses(requests []domain.TravelRequest) []TravelRequestResponse {
	responses := make([]TravelRequestResponse, len(requests))
	for i := range requests {
		responses[i] = ToTravelRequestResponse(&requests[i])
	}
	return responses
}

// MessageResponse is returned by actions that only confirm success.
type MessageResponse struct {
	Message string `json:"message"`
}

func parseDateRange(from, to *string) (*time.Time, *time.Time, error) {
	var fromStr, toStr string
	if from != nil {
		fromStr = *from
	}
	if to != nil {
		toStr = *to
	}
	fromDate, err := parseDate("from_date", fromStr)
	if err != nil {
		return nil, nil, err
	}
	toDate, err := parseDate("to_date", toStr)
	if err != nil {
		return nil, nil, err
	}
	return fromDate, toDate, nil
}

func parseDate(field, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, apperrors.NewFieldValidationError(map[string]string{field: "date has wrong format, use YYYY-MM-DD"})
	}
	return &t, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}
