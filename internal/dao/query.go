package dao

import (
	"fmt"
	"sort"
	"strings"

	"github.com/passdesk/passdesk/internal/model1"
)

// Dialect tells which SQL flavour a store speaks.
type Dialect int

const (
	// SQLite uses ? placeholders.
	SQLite Dialect = iota

	// Postgres uses $n placeholders.
	Postgres
)

func (d Dialect) String() string {
	if d == Postgres {
		return "postgres"
	}
	return "sqlite"
}

// Placeholder returns the bind marker for the n-th (1 based) argument.
func (d Dialect) Placeholder(n int) string {
	if d == Postgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// whereClause builds the filter predicate. Criteria without a backing column are ignored.
func whereClause(d Dialect, spec *tableSpec, criteria model1.FilterCriteria) (string, []any) {
	keys := make([]string, 0, len(criteria))
	for k := range criteria {
		if _, ok := spec.filters[k]; ok {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return "", nil
	}
	sort.Strings(keys)

	preds := make([]string, 0, len(keys))
	args := make([]any, 0, len(keys))
	for i, k := range keys {
		preds = append(preds, fmt.Sprintf("%s = %s", spec.filters[k], d.Placeholder(i+1)))
		args = append(args, criteria[k])
	}

	return " WHERE " + strings.Join(preds, " AND "), args
}

func countQuery(d Dialect, spec *tableSpec, criteria model1.FilterCriteria) (string, []any) {
	where, args := whereClause(d, spec, criteria)
	return "SELECT COUNT(*) FROM " + spec.table + where, args
}

func pageQuery(d Dialect, spec *tableSpec, criteria model1.FilterCriteria, offset, limit int) (string, []any) {
	where, args := whereClause(d, spec, criteria)
	n := len(args)
	q := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s, id LIMIT %s OFFSET %s",
		strings.Join(spec.columns, ", "),
		spec.table,
		where,
		spec.order,
		d.Placeholder(n+1),
		d.Placeholder(n+2),
	)
	return q, append(args, limit, offset)
}

func optionsQuery(spec *tableSpec, col string) string {
	return fmt.Sprintf("SELECT DISTINCT %s FROM %s WHERE %s IS NOT NULL", col, spec.table, col)
}

// cacheKey identifies a count by table and criteria.
func cacheKey(table string, criteria model1.FilterCriteria) string {
	keys := make([]string, 0, len(criteria))
	for k := range criteria {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(table)
	for _, k := range keys {
		sb.WriteString("|")
		sb.WriteString(k)
		sb.WriteString("=")
		sb.WriteString(criteria[k])
	}
	return sb.String()
}
