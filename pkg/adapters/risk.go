package adapters

import (
	"github.com/isteps/burnout-risk/pkg/models/api"
	"github.com/isteps/burnout-risk/pkg/models/domain"
)

const (
	dayLayout = "2006-01-02"

	StatusReady  = "ready"
	StatusNoData = "no_data"
)

func MapRiskResultDomainToApi(result *domain.BurnoutRiskResult) api.RiskResult {
	if result == nil {
		return api.RiskResult{Status: StatusNoData}
	}

	score := result.Score
	return api.RiskResult{
		Status:     StatusReady,
		TotalSteps: result.TotalSteps,
		Score:      &score,
		Label:      string(result.Label),
		Confidence: result.Confidence,
	}
}

func MapWeeklySummaryDomainToApi(s domain.WeeklySummary) api.WeeklySummary {
	return api.WeeklySummary{
		ScoredDays:   s.ScoredDays,
		AverageScore: s.AverageScore,
		TrendDelta:   s.TrendDelta,
		DeltaText:    s.DeltaText(),
		Narrative:    string(s.Narrative),
		Insufficient: s.Insufficient(),
	}
}

func MapRiskPointDomainToApi(p domain.RiskPoint) api.RiskPoint {
	point := api.RiskPoint{
		Day:   p.Day.Format(dayLayout),
		Steps: p.StepsThatDay,
	}
	if p.Score != nil {
		score := *p.Score
		point.Score = &score
	}
	if p.Label != nil {
		label := string(*p.Label)
		point.Label = &label
	}
	return point
}

func MapRiskSeriesDomainToApi(series []domain.RiskPoint) []api.RiskPoint {
	result := make([]api.RiskPoint, 0, len(series))
	for _, p := range series {
		result = append(result, MapRiskPointDomainToApi(p))
	}
	return result
}

func MapTrendDomainToApi(t domain.Trend) api.Trend {
	trend := api.Trend{
		HasData:      t.HasData(),
		Recent:       MapRiskSeriesDomainToApi(t.Recent),
		ChartPoints:  MapRiskSeriesDomainToApi(t.ChartPoints),
		AverageScore: t.AverageScore,
		Delta:        t.Delta,
		DeltaText:    domain.FormatDelta(t.Delta),
	}
	if t.Latest != nil {
		latest := MapRiskPointDomainToApi(*t.Latest)
		trend.Latest = &latest
	}
	return trend
}

func MapActivitySummaryDomainToApi(s domain.ActivitySummary, shareText string) api.ActivitySummary {
	return api.ActivitySummary{
		TotalSteps: s.TotalSteps,
		Calories:   s.Calories,
		DistanceKm: s.DistanceKm,
		HasData:    s.HasData,
		ShareText:  shareText,
	}
}
