package constants

// Matching defaults shared by the evaluators. Each evaluator fixes its own
// similarity threshold; the comparators always take it as a parameter.
const (
	// DefaultMinSimilarity is the sequence-similarity threshold for
	// classification, HS-code, parser and summary text fields.
	DefaultMinSimilarity = 0.85

	// InvoiceMinSimilarity is the looser threshold for free-text invoice fields.
	InvoiceMinSimilarity = 0.70

	// DefaultNumTolerance is the relative-error tolerance for numeric fields.
	DefaultNumTolerance = 0.001
)

// HS code validity lengths: a full code is exactly 10 digits, a valid
// prefix form is at least 6 digits.
const (
	HSFullLength   = 10
	HSPrefixLength = 6
)

// Report price tags carried through from the pipeline cost accounting.
const (
	PriceFree    = "$0.00"
	PriceInvoice = "$0.02"
)
