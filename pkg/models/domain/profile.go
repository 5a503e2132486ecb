package domain

import "fmt"

// ScorerProfile parameterises the heuristic scorer.
type ScorerProfile struct {
	Name         string
	MinSteps     int
	MaxSteps     int
	ModerateFrom int
	HighFrom     int
}

func (p ScorerProfile) String() string {
	return fmt.Sprintf("%s:%d-%d", p.Name, p.MinSteps, p.MaxSteps)
}
