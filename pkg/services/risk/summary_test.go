package risk

import (
	"testing"
	"time"

	"github.com/isteps/burnout-risk/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func totals(counts ...int) []domain.DailyTotal {
	result := make([]domain.DailyTotal, 0, len(counts))
	for i, c := range counts {
		result = append(result, domain.DailyTotal{Day: day(i + 1), TotalSteps: c})
	}
	return result
}

func TestEngine_SummarizeWholeHistory(t *testing.T) {
	e := NewEngine(WithLocation(time.UTC))

	t.Run("no records", func(t *testing.T) {
		assert.Nil(t, e.SummarizeWholeHistory(nil))
	})

	t.Run("only zero-step records", func(t *testing.T) {
		assert.Nil(t, e.SummarizeWholeHistory([]domain.StepRecord{
			record(1, 0, 0),
			record(2, 0, 0),
		}))
	})

	t.Run("single day with 14000 steps", func(t *testing.T) {
		result := e.SummarizeWholeHistory([]domain.StepRecord{record(1, 10, 14000)})
		require.NotNil(t, result)
		assert.Equal(t, domain.BurnoutRiskResult{
			TotalSteps: 14000,
			Score:      0,
			Label:      domain.RiskLabelLow,
			Confidence: 61,
		}, *result)
	})

	t.Run("scores the sum of all records", func(t *testing.T) {
		result := e.SummarizeWholeHistory([]domain.StepRecord{
			record(1, 10, 1000),
			record(1, 14, 1000),
			record(2, 10, 3000),
		})
		require.NotNil(t, result)
		assert.Equal(t, 5000, result.TotalSteps)
		assert.Equal(t, 75, result.Score)
		assert.Equal(t, domain.RiskLabelHigh, result.Label)
		// three records, two days: confidence follows the record count
		assert.Equal(t, 73, result.Confidence)
	})
}

func TestConfidence(t *testing.T) {
	assert.Equal(t, 55, Confidence(0))
	assert.Equal(t, 61, Confidence(1))
	assert.Equal(t, 91, Confidence(6))
	assert.Equal(t, 95, Confidence(7))
	assert.Equal(t, 95, Confidence(1000))
	assert.Equal(t, 55, Confidence(-3))
}

func TestEngine_WeeklySummary(t *testing.T) {
	e := NewEngine(WithLocation(time.UTC))

	tests := []struct {
		name     string
		totals   []domain.DailyTotal
		expected domain.WeeklySummary
	}{
		{
			name:     "no history",
			totals:   nil,
			expected: domain.WeeklySummary{Narrative: domain.NarrativeNoData},
		},
		{
			name:     "all zero days",
			totals:   totals(0, 0, 0, 0, 0, 0, 0),
			expected: domain.WeeklySummary{Narrative: domain.NarrativeNoData},
		},
		{
			name:   "decreasing strain",
			totals: totals(5000, 3000, 9000),
			expected: domain.WeeklySummary{
				ScoredDays:   3,
				AverageScore: 70,
				TrendDelta:   -33,
				Narrative:    domain.NarrativeDecreasing,
			},
		},
		{
			name:   "increasing strain",
			totals: totals(12000, 0, 4000),
			expected: domain.WeeklySummary{
				ScoredDays:   2,
				AverageScore: 50,
				TrendDelta:   66,
				Narrative:    domain.NarrativeIncreasing,
			},
		},
		{
			name:   "single scored day",
			totals: totals(0, 8000, 0),
			expected: domain.WeeklySummary{
				ScoredDays:   1,
				AverageScore: 50,
				TrendDelta:   0,
				Narrative:    domain.NarrativeStable,
			},
		},
		{
			name:   "only the last seven days count",
			totals: totals(2000, 2000, 2000, 14000, 14000, 14000, 14000, 14000, 14000, 14000),
			expected: domain.WeeklySummary{
				ScoredDays:   7,
				AverageScore: 0,
				TrendDelta:   0,
				Narrative:    domain.NarrativeStable,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, e.WeeklySummary(tt.totals))
		})
	}
}

func TestEngine_WeeklySummary_NarrativeThresholds(t *testing.T) {
	assert.Equal(t, domain.NarrativeIncreasing, Narrative(12))
	assert.Equal(t, domain.NarrativeStable, Narrative(11))
	assert.Equal(t, domain.NarrativeStable, Narrative(0))
	assert.Equal(t, domain.NarrativeStable, Narrative(-11))
	assert.Equal(t, domain.NarrativeDecreasing, Narrative(-12))
}

func TestEngine_WeeklySummaryFromRecords(t *testing.T) {
	e := NewEngine(WithLocation(time.UTC))

	summary := e.WeeklySummaryFromRecords([]domain.StepRecord{
		record(3, 20, 9000),
		record(1, 8, 2500),
		record(1, 9, 2500),
		record(2, 8, 3000),
	})

	assert.Equal(t, 3, summary.ScoredDays)
	assert.Equal(t, 70, summary.AverageScore)
	assert.Equal(t, -33, summary.TrendDelta)
}
