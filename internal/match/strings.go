package match

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Strings compares a ground-truth text value against a predicted one and
// returns 1 for a match, 0 otherwise. Values are normalized first (surrounding
// whitespace trimmed, non-text scalars stringified). The exact-equality check
// runs before the absence check, so two absent values match while a single
// absent side never does.
func Strings(gt, pred any, threshold float64) int {
	gtText, gtPresent := normText(gt)
	predText, predPresent := normText(pred)

	if gtPresent == predPresent && gtText == predText {
		return 1
	}
	if !gtPresent || !predPresent {
		return 0
	}
	if Ratio(gtText, predText) >= threshold {
		return 1
	}
	return 0
}

// Ratio returns the gestalt sequence similarity of two strings in [0,1]:
// twice the length covered by all matching contiguous blocks divided by the
// combined length of both strings.
func Ratio(a, b string) float64 {
	return difflib.NewMatcher(splitChars(a), splitChars(b)).Ratio()
}

func splitChars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

func normText(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t), true
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", t)), true
	}
}
