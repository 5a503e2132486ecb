package risk

import (
	"github.com/isteps/burnout-risk/pkg/models/domain"
)

// BuildSeries returns one RiskPoint per recorded day, ascending by day.
// Days with zero steps are kept as unscored points.
func (e *Engine) BuildSeries(records []domain.StepRecord) []domain.RiskPoint {
	totals := e.DailyTotals(records)

	series := make([]domain.RiskPoint, 0, len(totals))
	for _, t := range totals {
		point := domain.RiskPoint{
			Day:          t.Day,
			StepsThatDay: t.TotalSteps,
		}
		if t.TotalSteps > 0 {
			score, label := e.scorer.Score(t.TotalSteps)
			point.Score = &score
			point.Label = &label
		}
		series = append(series, point)
	}
	return series
}

// LastDays returns the trailing n points of a series.
func LastDays(series []domain.RiskPoint, n int) []domain.RiskPoint {
	if n <= 0 {
		return []domain.RiskPoint{}
	}
	return series[max(0, len(series)-n):]
}

// ScoredPoints filters out points without a score, as plotted on the chart.
func ScoredPoints(series []domain.RiskPoint) []domain.RiskPoint {
	scored := make([]domain.RiskPoint, 0, len(series))
	for _, p := range series {
		if p.Scored() {
			scored = append(scored, p)
		}
	}
	return scored
}

// LatestScored returns the most recent scored point, or nil.
func LatestScored(series []domain.RiskPoint) *domain.RiskPoint {
	for i := len(series) - 1; i >= 0; i-- {
		if series[i].Scored() {
			p := series[i]
			return &p
		}
	}
	return nil
}

// BuildTrend assembles the trend view: the latest scored day of the whole
// series, plus statistics over the last WindowDays points.
func (e *Engine) BuildTrend(records []domain.StepRecord) domain.Trend {
	series := e.BuildSeries(records)
	recent := LastDays(series, WindowDays)
	chart := ScoredPoints(recent)

	scores := make([]int, 0, len(chart))
	for _, p := range chart {
		scores = append(scores, *p.Score)
	}
	avg, delta := averageAndDelta(scores)

	return domain.Trend{
		Latest:       LatestScored(series),
		Recent:       recent,
		ChartPoints:  chart,
		AverageScore: avg,
		Delta:        delta,
	}
}
