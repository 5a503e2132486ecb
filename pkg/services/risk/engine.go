package risk

import (
	"time"
)

const (
	// WindowDays is the size of the rolling window used by the weekly
	// summary and the trend view.
	WindowDays = 7

	// NarrativeThreshold is the score delta at which the weekly trend is
	// reported as increasing or decreasing.
	NarrativeThreshold = 12

	confidenceBase    = 55
	confidencePerDay  = 6
	confidenceCeiling = 95
)

// Engine turns step records into risk results. It holds no state between
// calls: every result is recomputed from the records passed in.
type Engine struct {
	scorer   Scorer
	location *time.Location
}

type Option func(*Engine)

// WithScorer replaces the default heuristic.
func WithScorer(s Scorer) Option {
	return func(e *Engine) {
		if s != nil {
			e.scorer = s
		}
	}
}

// WithLocation sets the calendar used to truncate record dates to days.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.location = loc
		}
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		scorer:   DefaultScorer(),
		location: time.Local,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Location() *time.Location {
	return e.location
}

func (e *Engine) Scorer() Scorer {
	return e.scorer
}
