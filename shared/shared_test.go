package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tourbook/shared"
)

func TestFilterByField(t *testing.T) {
	filter := shared.FilterByField("user_id", "U1", "bookings")

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(bookings.user_id = :user_id)", where)
	assert.Equal(t, map[string]any{"user_id": "U1"}, args)
}

func TestDeref(t *testing.T) {
	size := 2
	name := "Ada"

	assert.Equal(t, 2, shared.Deref(&size))
	assert.Equal(t, 0, shared.Deref[int](nil))
	assert.Equal(t, "Ada", shared.Deref(&name))
	assert.Equal(t, "", shared.Deref[string](nil))
}
