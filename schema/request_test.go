package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	// forward moves, including skipping a state
	assert.True(t, CanTransition(STATUS_SUBMITTED, STATUS_IN_PROGRESS))
	assert.True(t, CanTransition(STATUS_IN_PROGRESS, STATUS_RESOLVED))
	assert.True(t, CanTransition(STATUS_SUBMITTED, STATUS_RESOLVED))

	// never backward, never self
	assert.False(t, CanTransition(STATUS_RESOLVED, STATUS_SUBMITTED))
	assert.False(t, CanTransition(STATUS_RESOLVED, STATUS_IN_PROGRESS))
	assert.False(t, CanTransition(STATUS_IN_PROGRESS, STATUS_SUBMITTED))
	assert.False(t, CanTransition(STATUS_SUBMITTED, STATUS_SUBMITTED))

	// unknown states never transition
	assert.False(t, CanTransition("LOST", STATUS_RESOLVED))
	assert.False(t, CanTransition(STATUS_SUBMITTED, "DONE"))
}

func TestStatusesBelow(t *testing.T) {
	assert.Equal(t, []string{}, StatusesBelow(STATUS_SUBMITTED))
	assert.Equal(t, []string{STATUS_SUBMITTED}, StatusesBelow(STATUS_IN_PROGRESS))
	assert.Equal(t, []string{STATUS_SUBMITTED, STATUS_IN_PROGRESS}, StatusesBelow(STATUS_RESOLVED))
	assert.Nil(t, StatusesBelow("DONE"))
}

func TestValidEnums(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, ValidCategory(c))
	}
	assert.False(t, ValidCategory("HELICOPTER"))
	assert.False(t, ValidCategory("medical"), "values are case sensitive")

	for _, u := range Urgencies {
		assert.True(t, ValidUrgency(u))
	}
	assert.False(t, ValidUrgency("URGENT"))

	for s := range StatusRank {
		assert.True(t, ValidStatus(s))
	}
	assert.False(t, ValidStatus("PENDING"))
}
