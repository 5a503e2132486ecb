package config

import (
	"context"
	"fmt"

	"github.com/isteps/burnout-risk/pkg/models/domain"
	"gopkg.in/ini.v1"
)

// ProfileRegistry exposes the scorer profiles defined in an INI file:
//
//	[athlete]
//	min_steps = 5000
//	max_steps = 20000
//
// Missing keys fall back to the defaults passed to NewProfileRegistry.
type ProfileRegistry interface {
	GetProfiles(ctx context.Context) ([]domain.ScorerProfile, error)
	GetProfile(ctx context.Context, name string) (domain.ScorerProfile, error)
}

type iniProfileRegistry struct {
	cfg      *ini.File
	defaults domain.ScorerProfile
}

func NewProfileRegistry(path string, defaults domain.ScorerProfile) (ProfileRegistry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}
	return &iniProfileRegistry{cfg: cfg, defaults: defaults}, nil
}

func (r *iniProfileRegistry) GetProfiles(ctx context.Context) ([]domain.ScorerProfile, error) {
	var profiles []domain.ScorerProfile
	for _, section := range r.cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		profile, err := r.GetProfile(ctx, section.Name())
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func (r *iniProfileRegistry) GetProfile(_ context.Context, name string) (domain.ScorerProfile, error) {
	section, err := r.cfg.GetSection(name)
	if err != nil {
		return domain.ScorerProfile{}, fmt.Errorf("profile %s not found", name)
	}

	profile := domain.ScorerProfile{Name: name}
	fields := []struct {
		key    string
		target *int
		def    int
	}{
		{"min_steps", &profile.MinSteps, r.defaults.MinSteps},
		{"max_steps", &profile.MaxSteps, r.defaults.MaxSteps},
		{"moderate_from", &profile.ModerateFrom, r.defaults.ModerateFrom},
		{"high_from", &profile.HighFrom, r.defaults.HighFrom},
	}
	for _, f := range fields {
		if !section.HasKey(f.key) {
			*f.target = f.def
			continue
		}
		v, err := section.Key(f.key).Int()
		if err != nil {
			return domain.ScorerProfile{}, fmt.Errorf("profile %s: invalid %s: %w", name, f.key, err)
		}
		*f.target = v
	}

	return profile, nil
}
