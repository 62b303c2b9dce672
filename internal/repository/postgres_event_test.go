package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListEventsQuery_StableOrder(t *testing.T) {
	// the seed migration inserts every event with the same created_at
	assert.Contains(t, listEventsQuery, "FROM events")
	assert.Regexp(t, `ORDER BY created_at DESC, id$`, listEventsQuery)
}
