package domain

import "time"

// StepRecord is a single step count observation supplied by a data source.
type StepRecord struct {
	ID     string
	Date   time.Time
	Count  int
	Source string
}

// DailyTotal holds the summed step count for one calendar day.
type DailyTotal struct {
	Day        time.Time
	TotalSteps int
}

type RecordStats struct {
	RecordsCount    int64
	FirstRecordTime *time.Time
	LastRecordTime  *time.Time
}
