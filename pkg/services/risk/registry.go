package risk

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/isteps/burnout-risk/pkg/models/domain"
)

const DefaultScorerName = "heuristic"

var ErrUnknownScorer = errors.New("unknown scorer")

// ScorerFactory builds a Scorer on demand
type ScorerFactory func() (Scorer, error)

// Registry manages named scorer factories, so a different scoring model can
// be plugged in without touching aggregation or summaries.
type Registry interface {
	// Register adds a new scorer factory
	Register(name string, factory ScorerFactory) error
	// Create instantiates the scorer registered under name
	Create(name string) (Scorer, error)
	// List returns the registered scorer names, sorted
	List() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]ScorerFactory
}

// NewRegistry creates a registry with the default heuristic registered.
func NewRegistry() Registry {
	r := &registry{
		factories: make(map[string]ScorerFactory),
	}
	r.factories[DefaultScorerName] = func() (Scorer, error) {
		return DefaultScorer(), nil
	}
	return r
}

// RegisterProfiles registers a heuristic scorer for each profile.
func RegisterProfiles(r Registry, profiles []domain.ScorerProfile) error {
	for _, profile := range profiles {
		err := r.Register(profile.Name, func() (Scorer, error) {
			return NewHeuristicScorer(profile)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *registry) Register(name string, factory ScorerFactory) error {
	if name == "" {
		return fmt.Errorf("scorer name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("scorer %q is already registered", name)
	}

	r.factories[name] = factory
	return nil
}

func (r *registry) Create(name string) (Scorer, error) {
	r.mu.RLock()
	factory, exists := r.factories[name]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScorer, name)
	}

	return factory()
}

func (r *registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
