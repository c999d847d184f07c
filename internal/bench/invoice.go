package bench

import (
	"github.com/joseph-ayodele/extraction-bench/constants"
	"github.com/joseph-ayodele/extraction-bench/internal/match"
	"github.com/joseph-ayodele/extraction-bench/internal/score"
)

// InvoiceConfig tunes the invoice evaluator. Invoice text fields use a looser
// similarity threshold than the code-oriented tasks.
type InvoiceConfig struct {
	MinSimilarity float64
	NumTolerance  float64
}

// InvoiceItemCounts holds per-item-field match counts. Only positionally
// aligned items can score; the denominator is always the ground-truth count.
type InvoiceItemCounts struct {
	ItemName   int
	Quantity   int
	UnitPrice  int
	TotalPrice int
}

// InvoiceResult scores one predicted invoice against ground truth. Header
// fields are 0/1 outcomes; the overall score is the unweighted mean of eight
// fixed components, scaled to a percentage.
type InvoiceResult struct {
	SellerName       int
	SumTotalQuantity int
	SumTotalPrice    int
	Currency         int
	NItems           int
	ItemCountMatch   int
	MissingItems     int
	ExtraItems       int
	Items            InvoiceItemCounts
	OverallScore     float64
}

// EvaluateInvoice compares two invoice documents.
func EvaluateInvoice(gt, pred Document, cfg InvoiceConfig) *InvoiceResult {
	if cfg.MinSimilarity == 0 {
		cfg.MinSimilarity = constants.InvoiceMinSimilarity
	}
	if cfg.NumTolerance == 0 {
		cfg.NumTolerance = constants.DefaultNumTolerance
	}

	gtItems := gt.items("items")
	predItems := pred.items("items")
	align := match.AlignByIndex(len(gtItems), len(predItems))

	tally := score.NewTally()
	for i := range gtItems {
		g := asMap(gtItems[i])
		aligned := i < align.Compared
		var p map[string]any
		if aligned {
			p = asMap(predItems[i])
		}

		name, qty, unit, total := 0, 0, 0, 0
		if aligned {
			name = match.Strings(g["item_name"], p["item_name"], cfg.MinSimilarity)
			qty = match.Numbers(g["quantity"], p["quantity"], cfg.NumTolerance)
			unit = match.Numbers(g["unit_price"], p["unit_price"], cfg.NumTolerance)
			total = match.Numbers(g["total_price"], p["total_price"], cfg.NumTolerance)
		}
		tally.Add("item_name", name)
		tally.Add("quantity", qty)
		tally.Add("unit_price", unit)
		tally.Add("total_price", total)
	}

	res := &InvoiceResult{
		SellerName:       match.Strings(gt.get("seller_name"), pred.get("seller_name"), cfg.MinSimilarity),
		SumTotalQuantity: match.Numbers(gt.get("sum_total_quantity"), pred.get("sum_total_quantity"), cfg.NumTolerance),
		SumTotalPrice:    match.Numbers(gt.get("sum_total_price"), pred.get("sum_total_price"), cfg.NumTolerance),
		Currency:         match.Strings(gt.get("currency"), pred.get("currency"), cfg.MinSimilarity),
		NItems:           len(gtItems),
		ItemCountMatch:   boolToOutcome(align.CountMatch),
		MissingItems:     align.Missing,
		ExtraItems:       align.Extra,
		Items: InvoiceItemCounts{
			ItemName:   tally.Correct("item_name"),
			Quantity:   tally.Correct("quantity"),
			UnitPrice:  tally.Correct("unit_price"),
			TotalPrice: tally.Correct("total_price"),
		},
	}

	// Eight fixed components: header matches, item-count match, and the four
	// per-item field fractions. sum_total_quantity is reported but not scored.
	n := max(res.NItems, 1)
	res.OverallScore = score.MeanPercent([]float64{
		float64(res.SellerName),
		float64(res.SumTotalPrice),
		float64(res.Currency),
		float64(res.ItemCountMatch),
		float64(res.Items.ItemName) / float64(n),
		float64(res.Items.Quantity) / float64(n),
		float64(res.Items.UnitPrice) / float64(n),
		float64(res.Items.TotalPrice) / float64(n),
	})
	return res
}

func boolToOutcome(b bool) int {
	if b {
		return 1
	}
	return 0
}
