package insights

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/isteps/burnout-risk/pkg/adapters"
	"github.com/isteps/burnout-risk/pkg/models/domain"
	"github.com/isteps/burnout-risk/pkg/services/activity"
	"github.com/isteps/burnout-risk/pkg/services/risk"
	"github.com/isteps/burnout-risk/pkg/store/duckdb"
	"github.com/isteps/burnout-risk/pkg/store/duckdb/steps"
	"github.com/rs/zerolog"
)

// Service reads a user's step records and runs them through the risk engine.
// Nothing is cached: every call works on a fresh snapshot of the records.
type Service interface {
	Ingest(ctx context.Context, userID string, records []domain.StepRecord) (int, error)
	Records(ctx context.Context, userID string, start, end time.Time) ([]domain.StepRecord, error)
	Stats(ctx context.Context, userID string) (*domain.RecordStats, error)
	Users(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, userID string) (int64, error)

	Risk(ctx context.Context, userID string, start, end time.Time) (*domain.BurnoutRiskResult, error)
	Weekly(ctx context.Context, userID string, start, end time.Time) (domain.WeeklySummary, error)
	Series(ctx context.Context, userID string, start, end time.Time) ([]domain.RiskPoint, error)
	Trend(ctx context.Context, userID string, start, end time.Time) (domain.Trend, error)
	Activity(ctx context.Context, userID string, start, end time.Time) (domain.ActivitySummary, error)
}

type service struct {
	store  steps.Store
	engine *risk.Engine
	db     *sql.DB
}

type Option func(*service)

// WithDB makes Ingest write all records of a batch in one transaction.
func WithDB(db *sql.DB) Option {
	return func(s *service) {
		s.db = db
	}
}

func NewService(store steps.Store, engine *risk.Engine, opts ...Option) Service {
	if engine == nil {
		engine = risk.NewEngine()
	}
	s := &service{store: store, engine: engine}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Ingest(ctx context.Context, userID string, records []domain.StepRecord) (int, error) {
	logger := zerolog.Ctx(ctx)

	rows := adapters.MapDomainStepRecordsToStore(userID, records)
	add := func(ctx context.Context) error {
		return s.store.Add(ctx, userID, rows)
	}

	var err error
	if s.db != nil {
		err = duckdb.RunInTx(ctx, s.db, add)
	} else {
		err = add(ctx)
	}
	if err != nil {
		return 0, fmt.Errorf("store step records: %w", err)
	}

	logger.Debug().
		Str("user", userID).
		Int("records", len(records)).
		Msg("step records ingested")
	return len(records), nil
}

func (s *service) Records(ctx context.Context, userID string, start, end time.Time) ([]domain.StepRecord, error) {
	rows, err := s.store.List(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("list step records: %w", err)
	}
	return adapters.MapStoreStepRecordsToDomain(rows), nil
}

func (s *service) Stats(ctx context.Context, userID string) (*domain.RecordStats, error) {
	stats, err := s.store.Stats(ctx, userID)
	if err != nil {
		return nil, err
	}
	return adapters.MapRecordStatsStoreToDomain(stats), nil
}

func (s *service) Users(ctx context.Context) ([]string, error) {
	return s.store.ListUsers(ctx)
}

func (s *service) Delete(ctx context.Context, userID string) (int64, error) {
	deleted, err := s.store.Delete(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("delete step records: %w", err)
	}

	zerolog.Ctx(ctx).Info().
		Str("user", userID).
		Int64("records", deleted).
		Msg("step records deleted")
	return deleted, nil
}

func (s *service) Risk(ctx context.Context, userID string, start, end time.Time) (*domain.BurnoutRiskResult, error) {
	records, err := s.Records(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	return s.engine.SummarizeWholeHistory(records), nil
}

func (s *service) Weekly(ctx context.Context, userID string, start, end time.Time) (domain.WeeklySummary, error) {
	records, err := s.Records(ctx, userID, start, end)
	if err != nil {
		return domain.WeeklySummary{}, err
	}
	return s.engine.WeeklySummaryFromRecords(records), nil
}

func (s *service) Series(ctx context.Context, userID string, start, end time.Time) ([]domain.RiskPoint, error) {
	records, err := s.Records(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	return s.engine.BuildSeries(records), nil
}

func (s *service) Trend(ctx context.Context, userID string, start, end time.Time) (domain.Trend, error) {
	records, err := s.Records(ctx, userID, start, end)
	if err != nil {
		return domain.Trend{}, err
	}
	return s.engine.BuildTrend(records), nil
}

func (s *service) Activity(ctx context.Context, userID string, start, end time.Time) (domain.ActivitySummary, error) {
	records, err := s.Records(ctx, userID, start, end)
	if err != nil {
		return domain.ActivitySummary{}, err
	}
	return activity.Summarize(records), nil
}
