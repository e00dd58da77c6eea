package domain_test

import (
	"testing"

	"github.com/SscSPs/travel_request_app/internal/apperrors"
	"github.com/SscSPs/travel_request_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSort(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    *domain.SortSpec
		wantErr bool
	}{
		{name: "empty", raw: "", want: nil},
		{name: "ascending", raw: "from_date", want: &domain.SortSpec{Field: "from_date"}},
		{name: "descending", raw: "-created_at", want: &domain.SortSpec{Field: "created_at", Descending: true}},
		{name: "related field", raw: "employee__last_name", want: &domain.SortSpec{Field: "employee__last_name"}},
		{name: "unknown", raw: "salary", wantErr: true},
		{name: "sql injection attempt", raw: "status; DROP TABLE travel_requests", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseSort(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				assert.Contains(t, apperrors.FieldErrors(err), "sort_by")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScopeFor(t *testing.T) {
	emp := domain.ScopeFor(domain.Principal{Role: domain.RoleEmployee, ID: "e"})
	require.NotNil(t, emp.EmployeeID)
	assert.Equal(t, "e", *emp.EmployeeID)
	assert.Nil(t, emp.ManagerID)

	mgr := domain.ScopeFor(domain.Principal{Role: domain.RoleManager, ID: "m"})
	require.NotNil(t, mgr.ManagerID)
	assert.Equal(t, "m", *mgr.ManagerID)
	assert.Nil(t, mgr.EmployeeID)

	adm := domain.ScopeFor(domain.Principal{Role: domain.RoleAdmin, ID: "a"})
	assert.Equal(t, domain.RequestScope{}, adm)
}

func TestStatusIsValid(t *testing.T) {
	assert.True(t, domain.TravelRequestStatus("FI_required").IsValid())
	assert.False(t, domain.TravelRequestStatus("fi_required").IsValid())
}
