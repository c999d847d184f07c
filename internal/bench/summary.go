package bench

import (
	"fmt"
	"sort"

	"github.com/joseph-ayodele/extraction-bench/constants"
	"github.com/joseph-ayodele/extraction-bench/internal/match"
	"github.com/joseph-ayodele/extraction-bench/internal/score"
)

// SummaryConfig tunes the per-code summary evaluator.
type SummaryConfig struct {
	MinSimilarity float64
}

// SummaryResult scores predicted per-code summaries against ground truth.
// Items are (code, text) pairs extracted from single-key maps and aligned
// positionally; percentages divide by the ground-truth pair count.
type SummaryResult struct {
	NItems       int
	SellerName   float64
	HSCode       float64
	Summary      float64
	ItemCount    float64
	MissingItems int
	ExtraItems   int
	PredValid10  float64
}

// codeSummary is one (digit code, summary text) pair extracted from an item.
type codeSummary struct {
	code string
	text string
}

// EvaluateSummary compares two summary documents. The HS-code component is an
// exact match on non-empty normalized digits; the text component is fuzzy.
func EvaluateSummary(gt, pred Document, cfg SummaryConfig) *SummaryResult {
	if cfg.MinSimilarity == 0 {
		cfg.MinSimilarity = constants.DefaultMinSimilarity
	}

	seller := match.Strings(gt.get("seller_name"), pred.get("seller_name"), cfg.MinSimilarity)

	gtPairs := extractPairs(gt)
	predPairs := extractPairs(pred)
	align := match.AlignByIndex(len(gtPairs), len(predPairs))

	predValid10 := 0
	for _, p := range predPairs {
		if match.IsValidFixed(p.code, constants.HSFullLength) {
			predValid10++
		}
	}

	hsExact, summaryMatches := 0, 0
	for i := 0; i < align.Compared; i++ {
		g, p := gtPairs[i], predPairs[i]
		if g.code != "" && g.code == p.code {
			hsExact++
		}
		summaryMatches += match.Strings(g.text, p.text, cfg.MinSimilarity)
	}

	nGT := len(gtPairs)
	return &SummaryResult{
		NItems:       nGT,
		SellerName:   float64(seller) * 100.0,
		HSCode:       score.Percentage(hsExact, nGT),
		Summary:      score.Percentage(summaryMatches, nGT),
		ItemCount:    float64(boolToOutcome(align.CountMatch)) * 100.0,
		MissingItems: align.Missing,
		ExtraItems:   align.Extra,
		PredValid10:  score.Percentage(predValid10, nGT),
	}
}

// extractPairs flattens the items section into (code, text) pairs. The
// documented shape is one single-key map per item; a multi-key map
// contributes one pair per key (sorted for determinism, since JSON object
// order does not survive decoding), and a non-map item contributes an empty
// pair. Both shapes are accepted input variants.
func extractPairs(doc Document) []codeSummary {
	var pairs []codeSummary
	for _, item := range doc.items("items") {
		m, ok := item.(map[string]any)
		if !ok {
			pairs = append(pairs, codeSummary{})
			continue
		}
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			pairs = append(pairs, codeSummary{
				code: match.NormalizeCode(k),
				text: summaryText(m[k]),
			})
		}
	}
	return pairs
}

func summaryText(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
