package bench

import (
	"fmt"

	"github.com/joseph-ayodele/extraction-bench/constants"
	"github.com/joseph-ayodele/extraction-bench/internal/match"
	"github.com/joseph-ayodele/extraction-bench/internal/score"
)

// HSCodeConfig tunes the commodity-code evaluator.
type HSCodeConfig struct {
	MinSimilarity float64
}

// HSCodeResult scores predicted HS codes against ground truth, positionally
// aligned. Every percentage divides by the ground-truth item count: predicted
// excess never inflates a denominator, and ground-truth items without a
// predicted counterpart score zero.
type HSCodeResult struct {
	NItems          int
	SellerNameMatch float64
	ItemNameMatch   float64
	GTValid10       float64
	GTValid6        float64
	PredValid10     float64
	PredValid6      float64
	PrefixAccuracy  map[int]float64 // k -> accuracy at prefix length k, k = 1..10
}

// EvaluateHSCode compares two HS-coded item lists. The prefix-accuracy curve
// is non-increasing in k: a match at k implies a match at every shorter prefix.
func EvaluateHSCode(gt, pred Document, cfg HSCodeConfig) *HSCodeResult {
	if cfg.MinSimilarity == 0 {
		cfg.MinSimilarity = constants.DefaultMinSimilarity
	}

	gtItems := gt.items("items")
	predItems := pred.items("items")
	align := match.AlignByIndex(len(gtItems), len(predItems))

	seller := match.Strings(gt.get("seller_name"), pred.get("seller_name"), cfg.MinSimilarity)

	tally := score.NewTally()
	var gtValid10, gtValid6, predValid10, predValid6 int

	for i := range gtItems {
		g := asMap(gtItems[i])
		gHS := match.NormalizeCode(g["hs_code"])
		if match.IsValidFixed(gHS, constants.HSFullLength) {
			gtValid10++
		}
		if match.IsValidMinPrefix(gHS, constants.HSPrefixLength) {
			gtValid6++
		}

		aligned := i < align.Compared
		var p map[string]any
		var pHS string
		if aligned {
			p = asMap(predItems[i])
			pHS = match.NormalizeCode(p["hs_code"])
			if match.IsValidFixed(pHS, constants.HSFullLength) {
				predValid10++
			}
			if match.IsValidMinPrefix(pHS, constants.HSPrefixLength) {
				predValid6++
			}
		}

		nameOutcome := 0
		if aligned {
			nameOutcome = match.Strings(g["item_name"], p["item_name"], cfg.MinSimilarity)
		}
		tally.Add("item_name", nameOutcome)

		for k := 1; k <= constants.HSFullLength; k++ {
			outcome := 0
			if aligned {
				outcome = match.PrefixMatch(gHS, pHS, k)
			}
			tally.Add(prefixCategory(k), outcome)
		}
	}

	nGT := len(gtItems)
	prefix := make(map[int]float64, constants.HSFullLength)
	for k := 1; k <= constants.HSFullLength; k++ {
		prefix[k] = tally.Percent(prefixCategory(k))
	}

	return &HSCodeResult{
		NItems:          nGT,
		SellerNameMatch: float64(seller) * 100.0,
		ItemNameMatch:   tally.Percent("item_name"),
		GTValid10:       score.Percentage(gtValid10, nGT),
		GTValid6:        score.Percentage(gtValid6, nGT),
		PredValid10:     score.Percentage(predValid10, nGT),
		PredValid6:      score.Percentage(predValid6, nGT),
		PrefixAccuracy:  prefix,
	}
}

func prefixCategory(k int) string {
	return fmt.Sprintf("prefix_%d", k)
}
