package store

import "time"

type StepRecord struct {
	ID         string
	UserID     string
	RecordedAt time.Time
	Count      int64
	Source     string
	CreatedAt  time.Time
}

type RecordStats struct {
	RecordsCount    int64
	FirstRecordTime *time.Time
	LastRecordTime  *time.Time
}
