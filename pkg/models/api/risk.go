package api

import "time"

type IngestResponse struct {
	Accepted int    `json:"accepted"`
	Status   string `json:"status"`
}

type RiskResult struct {
	Status     string `json:"status"`
	TotalSteps int    `json:"total_steps,omitempty"`
	Score      *int   `json:"score,omitempty"`
	Label      string `json:"label,omitempty"`
	Confidence int    `json:"confidence,omitempty"`
}

type WeeklySummary struct {
	ScoredDays   int    `json:"scored_days"`
	AverageScore int    `json:"average_score"`
	TrendDelta   int    `json:"trend_delta"`
	DeltaText    string `json:"delta_text"`
	Narrative    string `json:"narrative"`
	Insufficient bool   `json:"insufficient"`
}

type RiskPoint struct {
	Day   string  `json:"day"` // YYYY-MM-DD
	Steps int     `json:"steps"`
	Score *int    `json:"score"`
	Label *string `json:"label"`
}

type Trend struct {
	HasData      bool        `json:"has_data"`
	Latest       *RiskPoint  `json:"latest"`
	Recent       []RiskPoint `json:"recent"`
	ChartPoints  []RiskPoint `json:"chart_points"`
	AverageScore int         `json:"average_score"`
	Delta        int         `json:"delta"`
	DeltaText    string      `json:"delta_text"`
}

type ActivitySummary struct {
	TotalSteps int     `json:"total_steps"`
	Calories   int     `json:"calories"`
	DistanceKm float64 `json:"distance_km"`
	HasData    bool    `json:"has_data"`
	ShareText  string  `json:"share_text"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type RecordStats struct {
	RecordsCount    int64      `json:"records_count"`
	FirstRecordTime *time.Time `json:"first_record_time"`
	LastRecordTime  *time.Time `json:"last_record_time"`
}

type DeleteResponse struct {
	Deleted int64 `json:"deleted"`
}
