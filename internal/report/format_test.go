package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "0.00 %", FormatPercent(0))
	assert.Equal(t, "50.00 %", FormatPercent(50))
	assert.Equal(t, "66.67 %", FormatPercent(66.666666))
	assert.Equal(t, "100.00 %", FormatPercent(100))
}

func TestFormatElapsed(t *testing.T) {
	d := 1250 * time.Millisecond
	assert.Equal(t, "1.25 sec", FormatSec(d))
	assert.Equal(t, "1.25 seconds", FormatSeconds(d))
	assert.Equal(t, "0.00 sec", FormatSec(0))
}
