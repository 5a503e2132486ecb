package domain

import (
	"fmt"
	"time"
)

type RiskLabel string

const (
	RiskLabelLow      RiskLabel = "Low"
	RiskLabelModerate RiskLabel = "Moderate"
	RiskLabelHigh     RiskLabel = "High"
)

// RiskPoint is one day of the risk series. Score and Label are nil when the
// day carries no steps.
type RiskPoint struct {
	Day          time.Time
	StepsThatDay int
	Score        *int
	Label        *RiskLabel
}

func (p RiskPoint) Scored() bool {
	return p.Score != nil
}

// BurnoutRiskResult is the risk estimate over the whole supplied history.
type BurnoutRiskResult struct {
	TotalSteps int
	Score      int
	Label      RiskLabel
	Confidence int // 55..95
}

type TrendNarrative string

const (
	NarrativeNoData     TrendNarrative = "No data available."
	NarrativeIncreasing TrendNarrative = "Strain appears to be increasing this week. Consider prioritizing recovery and sleep."
	NarrativeDecreasing TrendNarrative = "Strain is trending down this week. Nice, keep your recovery habits consistent."
	NarrativeStable     TrendNarrative = "Strain is relatively stable this week. Keep an eye on rest and workload balance."
)

// WeeklySummary describes the last seven days of the daily totals.
type WeeklySummary struct {
	ScoredDays   int
	AverageScore int
	TrendDelta   int
	Narrative    TrendNarrative
}

// Trend is the chart-oriented view over the most recent days of a series.
type Trend struct {
	Latest       *RiskPoint
	Recent       []RiskPoint // last days, missing days included
	ChartPoints  []RiskPoint // last days, scored only
	AverageScore int
	Delta        int
}

func (t Trend) HasData() bool {
	return t.Latest != nil
}

// MinScoredDays is the number of scored days below which a weekly summary
// is shown as a prompt instead of numbers.
const MinScoredDays = 3

func (s WeeklySummary) Insufficient() bool {
	return s.ScoredDays < MinScoredDays
}

func (s WeeklySummary) DeltaText() string {
	if s.ScoredDays == 0 {
		return "—"
	}
	return FormatDelta(s.TrendDelta)
}

func FormatDelta(delta int) string {
	if delta > 0 {
		return fmt.Sprintf("+%d", delta)
	}
	return fmt.Sprintf("%d", delta)
}
