package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/extraction-bench/constants"
	"github.com/joseph-ayodele/extraction-bench/internal/bench"
)

func TestNewClassificationReport(t *testing.T) {
	rep := NewClassificationReport(&bench.ClassificationResult{
		NItems:       2,
		Correct:      1,
		Accuracy:     50.0,
		MissingItems: 1,
		ExtraItems:   1,
		PerType:      map[string]float64{"invoice": 100.0},
	})

	assert.Equal(t, 2, rep.NItems)
	assert.Equal(t, "50.00 %", rep.Accuracy)
	assert.Equal(t, map[string]string{"invoice": "100.00 %"}, rep.PerType)

	raw, err := json.Marshal(rep)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	for _, key := range []string{"n_items", "accuracy", "correct", "missing_items", "extra_items", "per_type"} {
		assert.Contains(t, decoded, key)
	}
	assert.NotContains(t, decoded, "time_seconds", "classification reports carry no timing")
	assert.NotContains(t, decoded, "price")
}

func TestNewHSCodeReport(t *testing.T) {
	prefix := make(map[int]float64, 10)
	for k := 1; k <= 10; k++ {
		prefix[k] = 100.0
	}
	prefix[10] = 50.0

	rep := NewHSCodeReport(&bench.HSCodeResult{
		NItems:          2,
		SellerNameMatch: 100.0,
		ItemNameMatch:   50.0,
		GTValid10:       100.0,
		GTValid6:        100.0,
		PredValid10:     50.0,
		PredValid6:      50.0,
		PrefixAccuracy:  prefix,
	}, 1500*time.Millisecond, constants.PriceFree)

	assert.Equal(t, "50.00 %", rep.Accuracy10)
	assert.Equal(t, "100.00 %", rep.Accuracy6)
	assert.Equal(t, "1.50 sec", rep.TimeSeconds)
	assert.Equal(t, "$0.00", rep.Price)
	assert.Len(t, rep.Metadata, 10)
	assert.Equal(t, "50.00 %", rep.Metadata["accuracy_10"])
	assert.Equal(t, "100.00 %", rep.Metadata["accuracy_1"])
}

// TestNewInvoiceReport verifies the invoice rendering rules: counts become
// percentages of the ground-truth item count, and the time field uses the
// long "seconds" form.
func TestNewInvoiceReport(t *testing.T) {
	rep := NewInvoiceReport(&bench.InvoiceResult{
		SellerName:       1,
		SumTotalQuantity: 0,
		SumTotalPrice:    1,
		Currency:         1,
		NItems:           2,
		ItemCountMatch:   0,
		MissingItems:     0,
		ExtraItems:       1,
		Items:            bench.InvoiceItemCounts{ItemName: 2, Quantity: 1, UnitPrice: 2, TotalPrice: 2},
	}, 2*time.Second, constants.PriceInvoice)

	assert.Equal(t, "100.00 %", rep.SellerName)
	assert.Equal(t, "0.00 %", rep.SumTotalQuantity)
	assert.Equal(t, 2.0, rep.NItems)
	assert.Equal(t, "50.00 %", rep.ExtraItems, "one extra over two ground-truth items")
	assert.Equal(t, "100.00 %", rep.Items.ItemName)
	assert.Equal(t, "50.00 %", rep.Items.Quantity)
	assert.Equal(t, "2.00 seconds", rep.TimeSeconds)
	assert.Equal(t, "$0.02", rep.Price)
}

// TestNewInvoiceReport_NoItems verifies that an empty invoice still renders:
// item percentages divide by max(n, 1).
func TestNewInvoiceReport_NoItems(t *testing.T) {
	rep := NewInvoiceReport(&bench.InvoiceResult{NItems: 0}, 0, constants.PriceFree)

	assert.Equal(t, 0.0, rep.NItems)
	assert.Equal(t, "0.00 %", rep.Items.ItemName)
	assert.Equal(t, "0.00 %", rep.MissingItems)
}

func TestNewParserReport(t *testing.T) {
	rep := NewParserReport(&bench.ParserResult{
		Fields:          map[string]int{"seller_name": 1, "fields.field_6": 0},
		TotalFields:     2,
		Correct:         1,
		OverallAccuracy: 50.0,
	}, 500*time.Millisecond, constants.PriceFree)

	assert.Equal(t, 2, rep.TotalFields)
	assert.Equal(t, "50.00 %", rep.OverallAccuracy)
	assert.Equal(t, "100.00 %", rep.Fields["seller_name"])
	assert.Equal(t, "0.00 %", rep.Fields["fields.field_6"])
	assert.Equal(t, "0.50 sec", rep.TimeSeconds)
}

func TestNewSummaryReport(t *testing.T) {
	rep := NewSummaryReport(&bench.SummaryResult{
		NItems:       2,
		SellerName:   100.0,
		HSCode:       50.0,
		Summary:      50.0,
		ItemCount:    0.0,
		MissingItems: 1,
		ExtraItems:   0,
	}, time.Second, constants.PriceFree)

	assert.Equal(t, "50.00 %", rep.HSCode)
	assert.Equal(t, 1, rep.MissingItems, "summary reports keep raw counts")
	assert.Equal(t, 0, rep.ExtraItems)
	assert.Equal(t, "1.00 sec", rep.TimeSeconds)
}
