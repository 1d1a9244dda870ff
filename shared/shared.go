package shared

import (
	"tourbook/shared/dto"
)

// FilterByField builds a single equality filter on table.field.
func FilterByField(field string, value any, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []dto.Filter{
			{
				Field: field,
				Value: value,
				Table: table,
			},
		},
	}
}

// Deref returns the pointed-to value or the zero value for nil.
func Deref[T any](ptr *T) T {
	var zero T
	if ptr == nil {
		return zero
	}

	return *ptr
}
