package store

import (
	"fmt"
	"strings"

	"recruitcrm/internal/contact"
)

// FilterAll is the sentinel value presentation layers pass for "no filter".
// It matches everything, exactly like leaving the field empty.
const FilterAll = "all"

// Filter narrows the rows List returns. The zero value matches everything;
// a field set to the empty string or FilterAll imposes no condition.
type Filter struct {
	Company string
	Status  string
}

// filterableColumns is the allow-list for equality conditions. Conditions
// on any other column are rejected before reaching SQL.
var filterableColumns = map[string]bool{
	"company": true,
	"status":  true,
}

// condition is one equality test against a filterable column.
type condition struct {
	column string
	value  string
}

// conditions converts the filter to its equality conditions, dropping
// unset and sentinel values.
func (f Filter) conditions() []condition {
	var conds []condition
	if f.Company != "" && f.Company != FilterAll {
		conds = append(conds, condition{column: "company", value: f.Company})
	}
	if f.Status != "" && f.Status != FilterAll {
		conds = append(conds, condition{column: "status", value: f.Status})
	}
	return conds
}

// buildWhere compiles equality conditions into a parameterized WHERE
// fragment. Returns an empty fragment when no conditions apply.
// Values are never interpolated into the SQL text.
func buildWhere(conds []condition) (string, []any, error) {
	if len(conds) == 0 {
		return "", nil, nil
	}

	var parts []string
	var params []any
	for _, cond := range conds {
		if !filterableColumns[cond.column] {
			return "", nil, fmt.Errorf("column %q is not filterable", cond.column)
		}

		// Rows stored before the status column existed hold NULL or ''
		// and read as the default status, so the default-status filter
		// must match them too.
		if cond.column == "status" && cond.value == contact.DefaultStatus {
			parts = append(parts, "(status = ? OR status IS NULL OR status = '')")
			params = append(params, cond.value)
			continue
		}

		parts = append(parts, cond.column+" = ?")
		params = append(params, cond.value)
	}

	return " WHERE " + strings.Join(parts, " AND "), params, nil
}
