package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTally(t *testing.T) {
	tally := NewTally()
	tally.Add("invoice", 1)
	tally.Add("invoice", 0)
	tally.Add("invoice", 1)
	tally.Add("receipt", 0)

	assert.Equal(t, 2, tally.Correct("invoice"))
	assert.Equal(t, 3, tally.Total("invoice"))
	assert.InDelta(t, 66.666666, tally.Percent("invoice"), 1e-4)

	assert.Equal(t, 0, tally.Correct("receipt"))
	assert.InDelta(t, 0.0, tally.Percent("receipt"), 1e-9)

	assert.Equal(t, []string{"invoice", "receipt"}, tally.Categories(), "first-seen order")
}

func TestTally_UnknownCategory(t *testing.T) {
	tally := NewTally()
	assert.Equal(t, 0, tally.Correct("nope"))
	assert.Equal(t, 0, tally.Total("nope"))
	assert.InDelta(t, 0.0, tally.Percent("nope"), 1e-9)
	assert.Empty(t, tally.Categories())
}

// TestPercentage_ZeroTotal verifies the zero-division guard: an empty
// denominator reports 0%, never NaN.
func TestPercentage_ZeroTotal(t *testing.T) {
	assert.InDelta(t, 0.0, Percentage(0, 0), 1e-9)
	assert.InDelta(t, 0.0, Percentage(5, 0), 1e-9)
	assert.InDelta(t, 50.0, Percentage(1, 2), 1e-9)
	assert.InDelta(t, 100.0, Percentage(3, 3), 1e-9)
}

func TestMeanPercent(t *testing.T) {
	assert.InDelta(t, 0.0, MeanPercent(nil), 1e-9)
	assert.InDelta(t, 100.0, MeanPercent([]float64{1, 1, 1}), 1e-9)
	assert.InDelta(t, 50.0, MeanPercent([]float64{1, 0}), 1e-9)
	assert.InDelta(t, 62.5, MeanPercent([]float64{1, 0.5, 0.5, 0.5}), 1e-9)
}
