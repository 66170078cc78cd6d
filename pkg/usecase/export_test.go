package usecase

import "time"

// Export for testing
var (
	FilterByWindow = filterByWindow
	Aggregate      = aggregate
	Classify       = classify
)

// SetNow fixes the analyzer clock for window tests.
func (a *Analyzer) SetNow(now func() time.Time) {
	a.now = now
}
