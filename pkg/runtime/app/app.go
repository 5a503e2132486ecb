package app

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/isteps/burnout-risk/pkg/services/config"
	"github.com/isteps/burnout-risk/pkg/services/insights"
	"github.com/isteps/burnout-risk/pkg/services/risk"
	"github.com/isteps/burnout-risk/pkg/store/duckdb"
	"github.com/isteps/burnout-risk/pkg/store/duckdb/steps"
	"github.com/rs/zerolog"
)

func NewLogger(cfg config.LogConfig, out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stderr
	}
	return zerolog.New(out).
		Level(cfg.ZerologLevel()).
		With().
		Timestamp().
		Logger()
}

// NewEngine builds the risk engine described by cfg. Profiles from the INI
// file, when configured, are registered as additional scorers.
func NewEngine(ctx context.Context, cfg config.RiskConfig) (*risk.Engine, error) {
	logger := zerolog.Ctx(ctx)

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	registry := risk.NewRegistry()
	if cfg.ProfilesPath != "" {
		profiles, err := config.NewProfileRegistry(cfg.ProfilesPath, risk.DefaultProfile())
		if err != nil {
			return nil, fmt.Errorf("failed to load scorer profiles: %w", err)
		}

		list, err := profiles.GetProfiles(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to read scorer profiles: %w", err)
		}
		if err := risk.RegisterProfiles(registry, list); err != nil {
			return nil, err
		}

		for _, p := range list {
			logger.Debug().Str("profile", p.String()).Msg("scorer profile registered")
		}
	}

	scorerName := cfg.Scorer
	if scorerName == "" {
		scorerName = risk.DefaultScorerName
	}
	scorer, err := registry.Create(scorerName)
	if err != nil {
		return nil, fmt.Errorf("failed to create scorer (available: %v): %w", registry.List(), err)
	}

	logger.Debug().
		Str("scorer", scorerName).
		Str("timezone", loc.String()).
		Msg("risk engine configured")

	return risk.NewEngine(risk.WithScorer(scorer), risk.WithLocation(loc)), nil
}

// OpenInsights opens the step record database and wires the insights service
// on top of it. The caller owns the returned *sql.DB.
func OpenInsights(cfg config.StoreConfig, engine *risk.Engine) (insights.Service, *sql.DB, error) {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: cfg.DbPath})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create DuckDB instance: %w", err)
	}

	store, err := steps.NewStore(db)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to create step store: %w", err)
	}

	return insights.NewService(store, engine, insights.WithDB(db)), db, nil
}
