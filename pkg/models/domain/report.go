package domain

import "time"

// TimePeriod represents the span of calendar days covered by a set of records
type TimePeriod struct {
	Start    time.Time
	End      time.Time
	Duration int // in days, inclusive
}

func NewTimePeriod(start, end time.Time) TimePeriod {
	// Count calendar days so DST transitions in start's zone don't shift the result.
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return TimePeriod{
		Start:    start,
		End:      end,
		Duration: int(e.Sub(s).Hours()/24) + 1,
	}
}
