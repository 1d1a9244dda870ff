package dto

import (
	"fmt"
	"maps"
	"strings"
)

// Filter is an equality condition on Table.Field, bound as :Field.
type Filter struct {
	Field string
	Value any
	Table string
}

func (f *Filter) GetWhereClause() (string, map[string]any) {
	column := f.Field
	if f.Table != "" {
		column = fmt.Sprintf("%s.%s", f.Table, f.Field)
	}

	return fmt.Sprintf("%s = :%s", column, f.Field), map[string]any{f.Field: f.Value}
}

// FilterGroup joins its filters with AND.
type FilterGroup struct {
	Filters []Filter
}

func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	whereClause := make([]string, 0, len(f.Filters))

	for _, filter := range f.Filters {
		where, arg := filter.GetWhereClause()

		whereClause = append(whereClause, where)
		maps.Copy(args, arg)
	}

	if len(whereClause) == 0 {
		return "", args
	}

	return fmt.Sprintf("(%s)", strings.Join(whereClause, " AND ")), args
}
