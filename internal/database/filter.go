package database

import (
	"strings"
	"time"
)

// DeliveryFilter is the combined predicate applied to delivery queries:
// an optional creation-date range, status/priority token sets, and region
// ids. The zero value matches every delivery.
//
// Each bound of the date range is independently optional; a one-sided
// range constrains only that side.
type DeliveryFilter struct {
	From       *time.Time
	To         *time.Time
	Statuses   []string
	Priorities []string
	RegionIDs  []int
}

// IsZero reports whether the filter imposes no constraint.
func (f DeliveryFilter) IsZero() bool {
	return f.From == nil && f.To == nil &&
		len(f.Statuses) == 0 && len(f.Priorities) == 0 && len(f.RegionIDs) == 0
}

// whereClause renders the filter as a SQL WHERE fragment over the aliased
// deliveries table and the matching bind arguments. The returned string is
// empty when the filter matches all rows, otherwise it starts with " WHERE".
// Column references use the given table alias.
func (f DeliveryFilter) whereClause(alias string) (string, []interface{}) {
	var conds []string
	var args []interface{}

	col := func(name string) string {
		if alias == "" {
			return name
		}
		return alias + "." + name
	}

	if f.From != nil {
		conds = append(conds, col("created_at")+" >= ?")
		args = append(args, *f.From)
	}
	if f.To != nil {
		conds = append(conds, col("created_at")+" <= ?")
		args = append(args, *f.To)
	}
	if len(f.Statuses) > 0 {
		cond, inArgs := inClause(col("status"), f.Statuses)
		conds = append(conds, cond)
		args = append(args, inArgs...)
	}
	if len(f.Priorities) > 0 {
		cond, inArgs := inClause(col("priority"), f.Priorities)
		conds = append(conds, cond)
		args = append(args, inArgs...)
	}
	if len(f.RegionIDs) > 0 {
		placeholders := make([]string, len(f.RegionIDs))
		for i, id := range f.RegionIDs {
			placeholders[i] = "?"
			args = append(args, id)
		}
		conds = append(conds, col("region_id")+" IN ("+strings.Join(placeholders, ", ")+")")
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// inClause builds "col IN (?, ...)" with tokens folded to storage case.
// Tokens that match no stored enum value simply match no rows.
func inClause(column string, tokens []string) (string, []interface{}) {
	placeholders := make([]string, len(tokens))
	args := make([]interface{}, len(tokens))
	for i, tok := range tokens {
		placeholders[i] = "?"
		args[i] = StorageToken(tok)
	}
	return column + " IN (" + strings.Join(placeholders, ", ") + ")", args
}
