package match

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// epsilon keeps the relative-difference denominator away from zero.
const epsilon = 1e-9

// Numbers compares two numeric values with a relative-error tolerance and
// returns 1 for a match, 0 otherwise. Exact equality (including two absent
// values) matches immediately. An absent value coerces to 0.0; a value that
// cannot be coerced is a miss, never an error.
func Numbers(gt, pred any, tolerance float64) int {
	if looseEqual(gt, pred) {
		return 1
	}

	gtF, ok := toFloat(gt)
	if !ok {
		return 0
	}
	predF, ok := toFloat(pred)
	if !ok {
		return 0
	}

	if gtF == 0 && predF == 0 {
		return 1
	}

	denom := math.Max(math.Abs(gtF), math.Max(math.Abs(predF), epsilon))
	if math.Abs(gtF-predF)/denom <= tolerance {
		return 1
	}
	return 0
}

// looseEqual is interface equality that tolerates uncomparable dynamic types.
func looseEqual(a, b any) bool {
	if t := reflect.TypeOf(a); t != nil && !t.Comparable() {
		return false
	}
	if t := reflect.TypeOf(b); t != nil && !t.Comparable() {
		return false
	}
	return a == b
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case nil:
		return 0.0, true
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
