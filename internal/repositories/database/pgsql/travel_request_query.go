package pgsql

import (
	"fmt"
	"strings"

	"github.com/SscSPs/travel_request_app/internal/core/domain"
)

const travelRequestColumns = `tr.request_id, tr.employee_id, tr.manager_id, tr.processed_by,
	tr.from_date, tr.to_date, tr.location, tr.destination, tr.travel_mode,
	tr.lodging_required, tr.purpose_of_travel, tr.status, tr.manager_note,
	tr.admin_note, tr.further_information, tr.resubmission_count, tr.is_closed, tr.created_at`

// sortColumns maps every entry of domain.SortableFields to a column.
var sortColumns = map[string]string{
	"id":                   "tr.request_id",
	"from_date":            "tr.from_date",
	"to_date":              "tr.to_date",
	"location":             "tr.location",
	"destination":          "tr.destination",
	"travel_mode":          "tr.travel_mode",
	"lodging_required":     "tr.lodging_required",
	"purpose_of_travel":    "tr.purpose_of_travel",
	"status":               "tr.status",
	"resubmission_count":   "tr.resubmission_count",
	"is_closed":            "tr.is_closed",
	"created_at":           "tr.created_at",
	"employee__first_name": "e.first_name",
	"employee__last_name":  "e.last_name",
}

// whereBuilder accumulates AND-ed conditions with positional arguments.
type whereBuilder struct {
	conds []string
	args  []any
}

func (w *whereBuilder) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf(cond, len(w.args)))
}

func (w *whereBuilder) clause() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

func (w *whereBuilder) scope(scope domain.RequestScope) {
	if scope.EmployeeID != nil {
		w.add("tr.employee_id = $%d", *scope.EmployeeID)
	}
	if scope.ManagerID != nil {
		w.add("tr.manager_id = $%d", *scope.ManagerID)
	}
}

// buildListQuery renders the scoped, filtered and ordered travel request list query.
func buildListQuery(scope domain.RequestScope, filter domain.TravelRequestFilter) (string, []any, error) {
	var w whereBuilder
	w.scope(scope)

	if filter.ID != nil {
		w.add("tr.request_id = $%d", *filter.ID)
	}
	if filter.Name != nil {
		w.add("(e.first_name ILIKE $%[1]d OR e.last_name ILIKE $%[1]d)", "%"+escapeLike(*filter.Name)+"%")
	}
	if filter.FromDate != nil {
		w.add("tr.from_date >= $%d", *filter.FromDate)
	}
	if filter.ToDate != nil {
		w.add("tr.to_date <= $%d", *filter.ToDate)
	}
	if filter.Status != nil {
		w.add("tr.status = $%d", string(*filter.Status))
	}

	order := "tr.created_at DESC"
	if filter.Sort != nil {
		col, ok := sortColumns[filter.Sort.Field]
		if !ok {
			return "", nil, fmt.Errorf("unsupported sort field %q", filter.Sort.Field)
		}
		dir := "ASC"
		if filter.Sort.Descending {
			dir = "DESC"
		}
		// Secondary key keeps the order stable across equal values.
		order = col + " " + dir + ", tr.created_at DESC"
	}

	query := "SELECT " + travelRequestColumns +
		" FROM travel_requests tr JOIN employees e ON e.employee_id = tr.employee_id" +
		w.clause() + " ORDER BY " + order
	return query, w.args, nil
}

// buildFindQuery renders a single-request lookup limited to scope. When
// forUpdate is set the row is locked until the surrounding transaction ends.
func buildFindQuery(requestID string, scope domain.RequestScope, forUpdate bool) (string, []any) {
	var w whereBuilder
	w.add("tr.request_id = $%d", requestID)
	w.scope(scope)

	query := "SELECT " + travelRequestColumns + " FROM travel_requests tr" + w.clause()
	if forUpdate {
		query += " FOR UPDATE"
	}
	return query, w.args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
