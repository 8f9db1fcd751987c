package patient

import (
	"fmt"
	"strings"
)

// Filter is the structured configuration accepted by the listing operation.
// Every field is optional and independently narrowing; zero values impose no
// constraint. Limit <= 0 disables the LIMIT/OFFSET clause and returns the
// entire filtered set.
type Filter struct {
	Search         string
	Status         string
	Treatment      string
	DateFrom       string
	DateTo         string
	OrderBy        string
	OrderDirection string
	Limit          int
	Offset         int
}

// sortColumns is the closed set of recognized sort keys, mapped to the SQL
// identifiers they sort on. User input never reaches identifier position:
// anything outside this map is rejected by Validate.
var sortColumns = map[string]string{
	"patient_id":     "p.patient_id",
	"first_name":     "p.first_name",
	"last_name":      "p.last_name",
	"age":            "age",
	"check_in_date":  "e.check_in_date",
	"treatment_name": "t.name",
	"doctor_name":    "d.name",
	"status":         "p.status",
	"created_at":     "p.created_at",
}

// Validate checks the sort configuration against the allow-list. Empty
// values fall back to patient_id ASC.
func (f *Filter) Validate() error {
	if f.OrderBy == "" {
		f.OrderBy = "patient_id"
	}
	if _, ok := sortColumns[f.OrderBy]; !ok {
		return fmt.Errorf("unrecognized sort key %q", f.OrderBy)
	}

	f.OrderDirection = strings.ToUpper(f.OrderDirection)
	switch f.OrderDirection {
	case "":
		f.OrderDirection = "ASC"
	case "ASC", "DESC":
	default:
		return fmt.Errorf("order direction must be ASC or DESC, got %q", f.OrderDirection)
	}
	return nil
}

// rowCols are the SELECT columns for one listing row. Age is computed from
// the date of birth at query time.
const rowCols = `p.id, p.patient_id, p.first_name, p.last_name, p.date_of_birth,
	DATE_PART('year', AGE(p.date_of_birth))::int AS age,
	p.email, p.phone, p.address, p.emergency_contact_name, p.emergency_contact_phone,
	p.status, e.check_in_date, e.episode_id, t.name AS treatment_name, d.name AS doctor_name,
	p.created_at, p.updated_at`

// listJoins brings in the patient's active episode (left join, so patients
// without one still appear) and the episode's treatment and doctor.
const listJoins = `FROM patients p
	LEFT JOIN episodes e ON e.patient_id = p.id AND e.status = 'active'
	LEFT JOIN treatments t ON t.id = e.treatment_id
	LEFT JOIN doctors d ON d.id = e.doctor_id`

// listQuery composes the WHERE clause by conjunction from a Filter. All
// predicate values are positionally bound; the ORDER BY identifier comes from
// the sortColumns allow-list only.
type listQuery struct {
	where string
	args  []interface{}
	idx   int
}

func newListQuery(f Filter) *listQuery {
	q := &listQuery{idx: 1}

	if f.Search != "" {
		// One bound parameter matched against three columns.
		q.add(fmt.Sprintf("(p.first_name ILIKE $%d OR p.last_name ILIKE $%d OR p.patient_id ILIKE $%d)",
			q.idx, q.idx, q.idx), "%"+f.Search+"%")
	}
	if f.Status != "" {
		q.add(fmt.Sprintf("p.status = $%d", q.idx), f.Status)
	}
	if f.Treatment != "" {
		q.add(fmt.Sprintf("t.name = $%d", q.idx), f.Treatment)
	}
	if f.DateFrom != "" {
		q.add(fmt.Sprintf("e.check_in_date >= $%d", q.idx), f.DateFrom)
	}
	if f.DateTo != "" {
		q.add(fmt.Sprintf("e.check_in_date <= $%d", q.idx), f.DateTo)
	}

	return q
}

func (q *listQuery) add(clause string, args ...interface{}) {
	q.where += " AND " + clause
	q.args = append(q.args, args...)
	q.idx += len(args)
}

// CountSQL returns the aggregate count query sharing the WHERE predicate.
func (q *listQuery) CountSQL() string {
	return "SELECT COUNT(*) " + listJoins + " WHERE 1=1" + q.where
}

// CountArgs returns the arguments for the count query.
func (q *listQuery) CountArgs() []interface{} {
	return q.args
}

// DataSQL returns the row query. The sort column is resolved through the
// allow-list; p.id is appended as a deterministic tiebreaker so equal sort
// keys always come back in the same order.
func (q *listQuery) DataSQL(f Filter) string {
	sql := "SELECT " + rowCols + " " + listJoins + " WHERE 1=1" + q.where
	sql += fmt.Sprintf(" ORDER BY %s %s, p.id", sortColumns[f.OrderBy], f.OrderDirection)
	if f.Limit > 0 {
		sql += fmt.Sprintf(" LIMIT $%d OFFSET $%d", q.idx, q.idx+1)
	}
	return sql
}

// DataArgs returns the arguments for the row query.
func (q *listQuery) DataArgs(f Filter) []interface{} {
	if f.Limit <= 0 {
		return q.args
	}
	result := make([]interface{}, len(q.args)+2)
	copy(result, q.args)
	result[len(q.args)] = f.Limit
	result[len(q.args)+1] = f.Offset
	return result
}
