// Package score accumulates match outcomes into percentages.
package score

// Tally accumulates {total, correct} counts keyed by a category label
// (a classification type, a field name, a prefix length). correct <= total
// always holds; both counters only ever grow through Add.
type Tally struct {
	counts map[string]*counter
	order  []string
}

type counter struct {
	total   int
	correct int
}

// NewTally returns an empty accumulator. A Tally is local to one evaluation
// call and never shared across runs.
func NewTally() *Tally {
	return &Tally{counts: make(map[string]*counter)}
}

// Add records one outcome for category: total always grows by one, correct
// grows when the outcome is a match.
func (t *Tally) Add(category string, outcome int) {
	c, ok := t.counts[category]
	if !ok {
		c = &counter{}
		t.counts[category] = c
		t.order = append(t.order, category)
	}
	c.total++
	if outcome > 0 {
		c.correct++
	}
}

// Correct returns the number of matches recorded for category.
func (t *Tally) Correct(category string) int {
	if c, ok := t.counts[category]; ok {
		return c.correct
	}
	return 0
}

// Total returns the number of outcomes recorded for category.
func (t *Tally) Total(category string) int {
	if c, ok := t.counts[category]; ok {
		return c.total
	}
	return 0
}

// Percent returns correct/total*100 for category, 0 when nothing was recorded.
func (t *Tally) Percent(category string) float64 {
	c, ok := t.counts[category]
	if !ok {
		return 0
	}
	return Percentage(c.correct, c.total)
}

// Categories returns the category labels in first-seen order.
func (t *Tally) Categories() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Percentage is correct/total*100 with an explicit zero-total guard.
func Percentage(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100.0
}

// MeanPercent scales the unweighted arithmetic mean of 0..1 component scores
// to a percentage. An empty component list yields 0.
func MeanPercent(components []float64) float64 {
	if len(components) == 0 {
		return 0
	}
	var sum float64
	for _, c := range components {
		sum += c
	}
	return sum / float64(len(components)) * 100.0
}
