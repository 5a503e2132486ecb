package risk

import (
	"math"

	"github.com/isteps/burnout-risk/pkg/models/domain"
)

// SummarizeWholeHistory scores the sum of all records as one window.
// It returns nil when the records carry no steps at all.
func (e *Engine) SummarizeWholeHistory(records []domain.StepRecord) *domain.BurnoutRiskResult {
	totalSteps := 0
	for _, r := range records {
		totalSteps += r.Count
	}
	if totalSteps <= 0 {
		return nil
	}

	score, label := e.scorer.Score(totalSteps)
	return &domain.BurnoutRiskResult{
		TotalSteps: totalSteps,
		Score:      score,
		Label:      label,
		Confidence: Confidence(len(records)),
	}
}

// Confidence grows with the number of records backing a result. The record
// count stands in for days of signal; it is not a distinct-day count.
func Confidence(records int) int {
	return min(confidenceCeiling, max(confidenceBase, confidenceBase+records*confidencePerDay))
}

// WeeklySummary summarizes the last WindowDays entries of chronologically
// ordered daily totals. Days with no steps are left out of every statistic.
func (e *Engine) WeeklySummary(totals []domain.DailyTotal) domain.WeeklySummary {
	recent := totals[max(0, len(totals)-WindowDays):]

	scores := make([]int, 0, len(recent))
	for _, t := range recent {
		if t.TotalSteps <= 0 {
			continue
		}
		score, _ := e.scorer.Score(t.TotalSteps)
		scores = append(scores, score)
	}

	if len(scores) == 0 {
		return domain.WeeklySummary{Narrative: domain.NarrativeNoData}
	}

	avg, delta := averageAndDelta(scores)
	return domain.WeeklySummary{
		ScoredDays:   len(scores),
		AverageScore: avg,
		TrendDelta:   delta,
		Narrative:    Narrative(delta),
	}
}

// WeeklySummaryFromRecords aggregates records into days before summarizing.
func (e *Engine) WeeklySummaryFromRecords(records []domain.StepRecord) domain.WeeklySummary {
	return e.WeeklySummary(e.DailyTotals(records))
}

func Narrative(delta int) domain.TrendNarrative {
	switch {
	case delta >= NarrativeThreshold:
		return domain.NarrativeIncreasing
	case delta <= -NarrativeThreshold:
		return domain.NarrativeDecreasing
	default:
		return domain.NarrativeStable
	}
}

// averageAndDelta returns the rounded mean of scores and the difference
// between the last and first score. Delta is 0 for fewer than two scores.
func averageAndDelta(scores []int) (int, int) {
	if len(scores) == 0 {
		return 0, 0
	}

	sum := 0
	for _, s := range scores {
		sum += s
	}
	avg := int(math.Round(float64(sum) / float64(len(scores))))

	if len(scores) < 2 {
		return avg, 0
	}
	return avg, scores[len(scores)-1] - scores[0]
}
