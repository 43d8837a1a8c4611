package taxdata

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/yieldvisor/src/models"
)

func TestFederalBrackets_ContiguousAndUnbounded(t *testing.T) {
	for status, table := range FederalBrackets {
		require.NotEmpty(t, table, "table for %s", status)
		assert.Zero(t, table[0].Lower, "first bracket starts at 0 for %s", status)
		for i := 1; i < len(table); i++ {
			assert.Equal(t, table[i-1].Upper, table[i].Lower,
				"brackets must be contiguous for %s at index %d", status, i)
			assert.Greater(t, table[i].Lower, table[i-1].Lower,
				"lower bounds must strictly increase for %s", status)
		}
		assert.True(t, math.IsInf(table[len(table)-1].Upper, 1),
			"last bracket is unbounded for %s", status)
	}
}

func TestBracketsFor_UnknownStatusFallsBackToSingle(t *testing.T) {
	assert.Equal(t, FederalBrackets[models.FilingSingle], BracketsFor("somethingElse"))
	assert.Equal(t, FederalBrackets[models.FilingMarriedJoint], BracketsFor(models.FilingMarriedJoint))
}

func TestStateRate(t *testing.T) {
	assert.InDelta(t, 0.047, StateRate("MO"), 1e-9)
	assert.InDelta(t, 0.133, StateRate("ca"), 1e-9, "lookup is case-insensitive")
	assert.Zero(t, StateRate("TX"), "no-income-tax state resolves to 0")
	assert.Zero(t, StateRate("ZZ"), "unknown code resolves to 0, not an error")
	assert.Zero(t, StateRate(""))
}
