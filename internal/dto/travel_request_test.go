package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/travel_request_app/internal/apperrors"
	"github.com/SscSPs/travel_request_app/internal/core/domain"
	"github.com/SscSPs/travel_request_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateTravelRequestRequest_DatePatch(t *testing.T) {
	march := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		body      string
		wantFrom  *time.Time
		wantClear bool
	}{
		{name: "omitted", body: `{"destination":"Rome"}`},
		{name: "explicit null", body: `{"from_date":null}`, wantClear: true},
		{name: "empty string", body: `{"from_date":""}`, wantClear: true},
		{name: "date", body: `{"from_date":"2025-03-01"}`, wantFrom: &march},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req dto.UpdateTravelRequestRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			patch, err := req.ToPatch()

			require.NoError(t, err)
			assert.Equal(t, tt.wantClear, patch.ClearFromDate)
			assert.False(t, patch.ClearToDate)
			if tt.wantFrom == nil {
				assert.Nil(t, patch.FromDate)
			} else {
				require.NotNil(t, patch.FromDate)
				assert.True(t, tt.wantFrom.Equal(*patch.FromDate))
			}
		})
	}
}

func TestUpdateTravelRequestRequest_BadDate(t *testing.T) {
	var req dto.UpdateTravelRequestRequest
	require.NoError(t, json.Unmarshal([]byte(`{"to_date":"05/03/2025"}`), &req))

	_, err := req.ToPatch()

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, apperrors.FieldErrors(err), "to_date")
}

func TestManagerUpdateTravelRequestRequest_ClearsDateOnRequest(t *testing.T) {
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	tr := &domain.TravelRequest{
		ID: "tr-1", EmployeeID: "emp-1", ManagerID: "mgr-1",
		Location: "Berlin", Destination: "Paris", TravelMode: "Flight", PurposeOfTravel: "Conference",
		FromDate: &from, Status: domain.StatusPending,
	}
	var req dto.ManagerUpdateTravelRequestRequest
	require.NoError(t, json.Unmarshal([]byte(`{"from_date":null,"manager_note":"dates pending"}`), &req))
	patch, err := req.ToPatch()
	require.NoError(t, err)

	manager := domain.Principal{Role: domain.RoleManager, ID: "mgr-1"}
	require.NoError(t, tr.Perform(domain.ActionManagerUpdate, manager, domain.ActionInput{Patch: patch}))

	assert.Nil(t, tr.FromDate)
	assert.Equal(t, "dates pending", *tr.ManagerNote)
}
