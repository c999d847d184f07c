// Package report serializes evaluation results. Field names and value
// formats are a compatibility contract with the existing report consumers;
// the evaluators never format anything themselves.
package report

import (
	"fmt"
	"time"
)

// FormatPercent renders a percentage as "NN.NN %".
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.2f %%", pct)
}

// FormatSec renders elapsed wall-clock time as "X.XX sec".
func FormatSec(d time.Duration) string {
	return fmt.Sprintf("%.2f sec", d.Seconds())
}

// FormatSeconds renders elapsed wall-clock time in the invoice report's
// long form, "X.XX seconds".
func FormatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.2f seconds", d.Seconds())
}
