package risk

import (
	"fmt"
	"math"

	"github.com/isteps/burnout-risk/pkg/models/domain"
)

const (
	DefaultMinSteps     = 2000
	DefaultMaxSteps     = 14000
	DefaultModerateFrom = 35
	DefaultHighFrom     = 70
)

// Scorer maps a step total to a 0-100 risk score and its label.
// Callers must not pass totals <= 0: those represent missing data and are
// filtered before scoring.
type Scorer interface {
	Score(totalSteps int) (int, domain.RiskLabel)
}

// ScorerFunc adapts a plain function to the Scorer interface.
type ScorerFunc func(totalSteps int) (int, domain.RiskLabel)

func (f ScorerFunc) Score(totalSteps int) (int, domain.RiskLabel) {
	return f(totalSteps)
}

// HeuristicScorer is the placeholder rule: fewer steps, higher risk.
// The step total is clamped into [MinSteps, MaxSteps] and mapped linearly
// onto 100..0. Scores are rounded half away from zero (math.Round).
type HeuristicScorer struct {
	profile domain.ScorerProfile
}

func DefaultProfile() domain.ScorerProfile {
	return domain.ScorerProfile{
		Name:         DefaultScorerName,
		MinSteps:     DefaultMinSteps,
		MaxSteps:     DefaultMaxSteps,
		ModerateFrom: DefaultModerateFrom,
		HighFrom:     DefaultHighFrom,
	}
}

func DefaultScorer() *HeuristicScorer {
	return &HeuristicScorer{profile: DefaultProfile()}
}

func NewHeuristicScorer(profile domain.ScorerProfile) (*HeuristicScorer, error) {
	if profile.MinSteps < 0 || profile.MaxSteps <= profile.MinSteps {
		return nil, fmt.Errorf("invalid step range [%d, %d] for profile %q",
			profile.MinSteps, profile.MaxSteps, profile.Name)
	}
	if profile.ModerateFrom < 0 || profile.HighFrom < profile.ModerateFrom || profile.HighFrom > 100 {
		return nil, fmt.Errorf("invalid label thresholds %d/%d for profile %q",
			profile.ModerateFrom, profile.HighFrom, profile.Name)
	}
	return &HeuristicScorer{profile: profile}, nil
}

func (s *HeuristicScorer) Profile() domain.ScorerProfile {
	return s.profile
}

func (s *HeuristicScorer) Score(totalSteps int) (int, domain.RiskLabel) {
	minSteps, maxSteps := s.profile.MinSteps, s.profile.MaxSteps

	clamped := max(minSteps, min(maxSteps, totalSteps))
	ratio := float64(maxSteps-clamped) / float64(maxSteps-minSteps)
	score := int(math.Round(ratio * 100))

	return score, s.Label(score)
}

func (s *HeuristicScorer) Label(score int) domain.RiskLabel {
	switch {
	case score < s.profile.ModerateFrom:
		return domain.RiskLabelLow
	case score < s.profile.HighFrom:
		return domain.RiskLabelModerate
	default:
		return domain.RiskLabelHigh
	}
}

// Score applies the default heuristic.
func Score(totalSteps int) (int, domain.RiskLabel) {
	return DefaultScorer().Score(totalSteps)
}
