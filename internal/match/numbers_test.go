package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumbers_ToleranceBoundary(t *testing.T) {
	// relative diff 0.05/100.05 ~ 0.0005 <= 0.001
	assert.Equal(t, 1, Numbers(100.0, 100.05, 0.001))
	// relative diff 1/101 ~ 0.0099 > 0.001
	assert.Equal(t, 0, Numbers(100.0, 101.0, 0.001))
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		name      string
		gt        any
		pred      any
		tolerance float64
		want      int
	}{
		{"exact equality", 42.5, 42.5, 0.001, 1},
		{"both absent", nil, nil, 0.001, 1},
		{"both zero", 0.0, 0.0, 0.001, 1},
		{"string zero vs zero", "0", 0.0, 0.001, 1},
		{"numeric strings", "100", 100.0, 0.001, 1},
		{"string with whitespace", " 100 ", 100.0, 0.001, 1},
		{"absent coerces to zero", nil, 5.0, 0.001, 0},
		{"absent vs zero", nil, 0.0, 0.001, 1},
		{"coercion failure", "n/a", 100.0, 0.001, 0},
		{"equal garbage strings", "n/a", "n/a", 0.001, 1},
		{"negative values", -100.0, -100.05, 0.001, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Numbers(tt.gt, tt.pred, tt.tolerance))
		})
	}
}

// TestNumbers_UncomparableInput verifies that list/map values never panic the
// comparator; they fail coercion and score zero.
func TestNumbers_UncomparableInput(t *testing.T) {
	assert.Equal(t, 0, Numbers([]any{1.0}, []any{1.0}, 0.001))
	assert.Equal(t, 0, Numbers(map[string]any{}, 1.0, 0.001))
}
