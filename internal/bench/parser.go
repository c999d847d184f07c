package bench

import (
	"github.com/joseph-ayodele/extraction-bench/constants"
	"github.com/joseph-ayodele/extraction-bench/internal/match"
	"github.com/joseph-ayodele/extraction-bench/internal/score"
)

// parserFieldPaths is the fixed checklist of dot-paths the generic-field
// evaluator scores. Paths that resolve on neither side still count as a match
// (both absent); a path present on only one side is a miss.
var parserFieldPaths = []string{
	"seller_name",
	"fields.field_6",
	"fields.field_10.subfield_a",
	"fields.field_10.subfield_b",
	"fields.field_15",
	"fields.field_15a.subfield_a",
	"fields.field_15a.subfield_b",
	"fields.field_17",
	"fields.field_17a.subfield_a",
	"fields.field_17a.subfield_b",
	"fields.field_18.subfield_left",
	"fields.field_18.subfield_right",
	"fields.field_19",
	"fields.field_21.subfield_left",
	"fields.field_21.subfield_right",
	"fields.field_31.subfield_1_left",
	"fields.field_31.subfield_1_right",
	"fields.field_31.subfield_2",
}

// ParserConfig tunes the generic-field evaluator. FieldPaths defaults to the
// standard checklist above.
type ParserConfig struct {
	MinSimilarity float64
	FieldPaths    []string
}

// ParserResult scores a fixed list of dot-path fields. No item lists are
// involved; the denominator is the checklist length.
type ParserResult struct {
	FieldPaths      []string
	Fields          map[string]int // path -> outcome
	TotalFields     int
	Correct         int
	OverallAccuracy float64
}

// EvaluateParser compares two nested documents field-by-field.
func EvaluateParser(gt, pred Document, cfg ParserConfig) *ParserResult {
	if cfg.MinSimilarity == 0 {
		cfg.MinSimilarity = constants.DefaultMinSimilarity
	}
	paths := cfg.FieldPaths
	if len(paths) == 0 {
		paths = parserFieldPaths
	}

	fields := make(map[string]int, len(paths))
	correct := 0
	for _, path := range paths {
		gtVal, _ := match.Resolve(gt, path)
		predVal, _ := match.Resolve(pred, path)

		outcome := match.Strings(gtVal, predVal, cfg.MinSimilarity)
		fields[path] = outcome
		correct += outcome
	}

	ordered := make([]string, len(paths))
	copy(ordered, paths)

	return &ParserResult{
		FieldPaths:      ordered,
		Fields:          fields,
		TotalFields:     len(paths),
		Correct:         correct,
		OverallAccuracy: score.Percentage(correct, len(paths)),
	}
}
