package report

import (
	"fmt"
	"time"

	"github.com/joseph-ayodele/extraction-bench/internal/bench"
)

// ClassificationReport mirrors the classification result record; it carries
// no time or price fields.
type ClassificationReport struct {
	NItems       int               `json:"n_items"`
	Accuracy     string            `json:"accuracy"`
	Correct      int               `json:"correct"`
	MissingItems int               `json:"missing_items"`
	ExtraItems   int               `json:"extra_items"`
	PerType      map[string]string `json:"per_type"`
}

func NewClassificationReport(res *bench.ClassificationResult) *ClassificationReport {
	perType := make(map[string]string, len(res.PerType))
	for t, pct := range res.PerType {
		perType[t] = FormatPercent(pct)
	}
	return &ClassificationReport{
		NItems:       res.NItems,
		Accuracy:     FormatPercent(res.Accuracy),
		Correct:      res.Correct,
		MissingItems: res.MissingItems,
		ExtraItems:   res.ExtraItems,
		PerType:      perType,
	}
}

// HSCodeReport carries the prefix-accuracy curve: headline accuracies at
// k=10 and k=6, the full k=1..10 curve under metadata.
type HSCodeReport struct {
	NItems          int               `json:"n_items"`
	SellerNameMatch string            `json:"seller_name_match_table"`
	ItemNameMatch   string            `json:"item_name_match_table"`
	Y10Match        string            `json:"y_10_match_table"`
	Y6Match         string            `json:"y_6_match_table"`
	Pred10Match     string            `json:"pred_10_match_table"`
	Pred6Match      string            `json:"pred_6_match_table"`
	Accuracy10      string            `json:"accuracy_10"`
	Accuracy6       string            `json:"accuracy_6"`
	Metadata        map[string]string `json:"metadata"`
	TimeSeconds     string            `json:"time_seconds"`
	Price           string            `json:"price"`
}

func NewHSCodeReport(res *bench.HSCodeResult, elapsed time.Duration, price string) *HSCodeReport {
	metadata := make(map[string]string, len(res.PrefixAccuracy))
	for k, pct := range res.PrefixAccuracy {
		metadata[fmt.Sprintf("accuracy_%d", k)] = FormatPercent(pct)
	}
	return &HSCodeReport{
		NItems:          res.NItems,
		SellerNameMatch: FormatPercent(res.SellerNameMatch),
		ItemNameMatch:   FormatPercent(res.ItemNameMatch),
		Y10Match:        FormatPercent(res.GTValid10),
		Y6Match:         FormatPercent(res.GTValid6),
		Pred10Match:     FormatPercent(res.PredValid10),
		Pred6Match:      FormatPercent(res.PredValid6),
		Accuracy10:      FormatPercent(res.PrefixAccuracy[10]),
		Accuracy6:       FormatPercent(res.PrefixAccuracy[6]),
		Metadata:        metadata,
		TimeSeconds:     FormatSec(elapsed),
		Price:           price,
	}
}

// InvoiceReport renders every header outcome and per-item count as a
// percentage of the ground-truth item count.
type InvoiceReport struct {
	SellerName       string             `json:"seller_name"`
	SumTotalQuantity string             `json:"sum_total_quantity"`
	SumTotalPrice    string             `json:"sum_total_price"`
	Currency         string             `json:"currency"`
	NItems           float64            `json:"n_items"`
	ItemCountMatch   string             `json:"item_count_match"`
	MissingItems     string             `json:"missing_items"`
	ExtraItems       string             `json:"extra_items"`
	Items            InvoiceItemsReport `json:"items"`
	TimeSeconds      string             `json:"time_seconds"`
	Price            string             `json:"price"`
}

type InvoiceItemsReport struct {
	ItemName   string `json:"item_name"`
	Quantity   string `json:"quantity"`
	UnitPrice  string `json:"unit_price"`
	TotalPrice string `json:"total_price"`
}

func NewInvoiceReport(res *bench.InvoiceResult, elapsed time.Duration, price string) *InvoiceReport {
	n := res.NItems
	if n < 1 {
		n = 1
	}
	itemPct := func(count int) string {
		return FormatPercent(float64(count) / float64(n) * 100.0)
	}
	return &InvoiceReport{
		SellerName:       FormatPercent(float64(res.SellerName) * 100.0),
		SumTotalQuantity: FormatPercent(float64(res.SumTotalQuantity) * 100.0),
		SumTotalPrice:    FormatPercent(float64(res.SumTotalPrice) * 100.0),
		Currency:         FormatPercent(float64(res.Currency) * 100.0),
		NItems:           float64(res.NItems),
		ItemCountMatch:   FormatPercent(float64(res.ItemCountMatch) * 100.0),
		MissingItems:     itemPct(res.MissingItems),
		ExtraItems:       itemPct(res.ExtraItems),
		Items: InvoiceItemsReport{
			ItemName:   itemPct(res.Items.ItemName),
			Quantity:   itemPct(res.Items.Quantity),
			UnitPrice:  itemPct(res.Items.UnitPrice),
			TotalPrice: itemPct(res.Items.TotalPrice),
		},
		TimeSeconds: FormatSeconds(elapsed),
		Price:       price,
	}
}

// ParserReport maps each checked dot-path to its outcome percentage.
type ParserReport struct {
	TotalFields     int               `json:"total_fields"`
	OverallAccuracy string            `json:"overall_accuracy"`
	Fields          map[string]string `json:"fields"`
	TimeSeconds     string            `json:"time_seconds"`
	Price           string            `json:"price"`
}

func NewParserReport(res *bench.ParserResult, elapsed time.Duration, price string) *ParserReport {
	fields := make(map[string]string, len(res.Fields))
	for path, outcome := range res.Fields {
		fields[path] = FormatPercent(float64(outcome) * 100.0)
	}
	return &ParserReport{
		TotalFields:     res.TotalFields,
		OverallAccuracy: FormatPercent(res.OverallAccuracy),
		Fields:          fields,
		TimeSeconds:     FormatSec(elapsed),
		Price:           price,
	}
}

// SummaryReport keeps missing/extra as raw counts, unlike the invoice report.
type SummaryReport struct {
	NItems       int    `json:"n_items"`
	SellerName   string `json:"seller_name"`
	HSCode       string `json:"hs_code"`
	Summary      string `json:"summary"`
	ItemCount    string `json:"item_count"`
	MissingItems int    `json:"missing_items"`
	ExtraItems   int    `json:"extra_items"`
	TimeSeconds  string `json:"time_seconds"`
	Price        string `json:"price"`
}

func NewSummaryReport(res *bench.SummaryResult, elapsed time.Duration, price string) *SummaryReport {
	return &SummaryReport{
		NItems:       res.NItems,
		SellerName:   FormatPercent(res.SellerName),
		HSCode:       FormatPercent(res.HSCode),
		Summary:      FormatPercent(res.Summary),
		ItemCount:    FormatPercent(res.ItemCount),
		MissingItems: res.MissingItems,
		ExtraItems:   res.ExtraItems,
		TimeSeconds:  FormatSec(elapsed),
		Price:        price,
	}
}
