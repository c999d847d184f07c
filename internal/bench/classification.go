package bench

import (
	"fmt"
	"strings"

	"github.com/joseph-ayodele/extraction-bench/constants"
	"github.com/joseph-ayodele/extraction-bench/internal/match"
	"github.com/joseph-ayodele/extraction-bench/internal/score"
)

// ClassificationConfig tunes the file-type classification evaluator.
type ClassificationConfig struct {
	MinSimilarity float64
}

// ClassificationResult scores a predicted file-type listing against ground
// truth. Files are aligned by path (key-based policy); only paths present on
// both sides are compared, but accuracy always divides by the ground-truth
// file count.
type ClassificationResult struct {
	NItems       int
	Correct      int
	Accuracy     float64
	MissingItems int
	ExtraItems   int
	PerType      map[string]float64 // ground-truth type -> accuracy over that type
}

// EvaluateClassification compares two file-type listings.
func EvaluateClassification(gt, pred Document, cfg ClassificationConfig) *ClassificationResult {
	if cfg.MinSimilarity == 0 {
		cfg.MinSimilarity = constants.DefaultMinSimilarity
	}

	gtMap := buildPathMap(gt)
	predMap := buildPathMap(pred)
	keys := match.AlignByKey(mapKeys(gtMap), mapKeys(predMap))

	correct := 0
	perType := score.NewTally()
	for _, path := range keys.Common {
		outcome := match.Strings(gtMap[path], predMap[path], cfg.MinSimilarity)
		correct += outcome
		perType.Add(gtMap[path], outcome)
	}

	res := &ClassificationResult{
		NItems:       len(gtMap),
		Correct:      correct,
		Accuracy:     score.Percentage(correct, len(gtMap)),
		MissingItems: len(keys.Missing),
		ExtraItems:   len(keys.Extra),
		PerType:      make(map[string]float64, len(perType.Categories())),
	}
	for _, t := range perType.Categories() {
		res.PerType[t] = perType.Percent(t)
	}
	return res
}

// buildPathMap flattens the files section into path -> type. Entries without
// a path are skipped; duplicate paths collapse to the last entry.
func buildPathMap(doc Document) map[string]string {
	result := make(map[string]string)
	for _, entry := range doc.items("files") {
		f := asMap(entry)
		path := strings.TrimSpace(stringify(f["path"]))
		ftype := strings.TrimSpace(stringify(f["type"]))
		if path != "" {
			result[path] = ftype
		}
	}
	return result
}

func mapKeys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
