package risk

import (
	"slices"
	"time"

	"github.com/isteps/burnout-risk/pkg/models/domain"
)

// Aggregate groups records by calendar day in the engine's location and sums
// their counts. Days without records are absent; a day whose only records
// carry zero steps is present with a zero total.
func (e *Engine) Aggregate(records []domain.StepRecord) map[time.Time]domain.DailyTotal {
	totals := make(map[time.Time]domain.DailyTotal)
	for _, r := range records {
		day := e.StartOfDay(r.Date)
		total := totals[day]
		total.Day = day
		total.TotalSteps += r.Count
		totals[day] = total
	}
	return totals
}

// DailyTotals returns the aggregated totals in ascending day order.
func (e *Engine) DailyTotals(records []domain.StepRecord) []domain.DailyTotal {
	totals := e.Aggregate(records)

	result := make([]domain.DailyTotal, 0, len(totals))
	for _, t := range totals {
		result = append(result, t)
	}
	slices.SortFunc(result, func(a, b domain.DailyTotal) int {
		return a.Day.Compare(b.Day)
	})
	return result
}

// StartOfDay truncates t to midnight of its calendar day in the engine's location.
func (e *Engine) StartOfDay(t time.Time) time.Time {
	local := t.In(e.location)
	year, month, day := local.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, e.location)
}
