package models

import (
	"time"
)

// TravelRequest is the row shape of the travel_requests table.
type TravelRequest struct {
	RequestID          string     `db:"request_id"`
	EmployeeID         string     `db:"employee_id"`
	ManagerID          string     `db:"manager_id"`
	ProcessedBy        *string    `db:"processed_by"`
	FromDate           *time.Time `db:"from_date"`
	ToDate             *time.Time `db:"to_date"`
	Location           string     `db:"location"`
	Destination        string     `db:"destination"`
	TravelMode         string     `db:"travel_mode"`
	LodgingRequired    bool       `db:"lodging_required"`
	PurposeOfTravel    string     `db:"purpose_of_travel"`
	Status             string     `db:"status"`
	ManagerNote        *string    `db:"manager_note"`
	AdminNote          *string    `db:"admin_note"`
	FurtherInformation *string    `db:"further_information"`
	ResubmissionCount  int        `db:"resubmission_count"`
	IsClosed           bool       `db:"is_closed"`
	CreatedAt          time.Time  `db:"created_at"`
}
