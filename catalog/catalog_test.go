package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	require.NoError(t, Validate())
}

func TestLookupNesting(t *testing.T) {
	// Every operation is doubly nested except the schedule-pickup mutation,
	// which the backend returns flat.
	for _, op := range Operations() {
		doc := Lookup(op)
		require.False(t, doc.IsZero(), "no document for %s", op)

		want := NestingNested
		if op == SchedulePickup {
			want = NestingFlat
		}
		assert.Equal(t, want, doc.Nesting, "nesting for %s", op)
	}
}

func TestLookupNames(t *testing.T) {
	for _, op := range Operations() {
		assert.Equal(t, string(op), Lookup(op).Name)
	}
}

func TestLookupUnknown(t *testing.T) {
	assert.True(t, Lookup(Operation("Teleport")).IsZero())
}
