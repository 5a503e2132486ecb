package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/isteps/burnout-risk/pkg/models/domain"
	"github.com/isteps/burnout-risk/pkg/runtime/terminal/export"
	"github.com/isteps/burnout-risk/pkg/runtime/terminal/report"
	"github.com/isteps/burnout-risk/pkg/services/ingest"
	"github.com/isteps/burnout-risk/pkg/services/insights"
	"github.com/isteps/burnout-risk/pkg/services/risk"
	"github.com/spf13/cobra"
)

// InsightsProvider opens the step record database on first use, so commands
// reading from a file never touch it.
type InsightsProvider func() (insights.Service, error)

// Env holds what every command needs.
type Env struct {
	Engine   *risk.Engine
	Insights InsightsProvider
	Reporter *report.Reporter
	Table    *export.Reporter
}

func (e *Env) insights() (insights.Service, error) {
	if e.Insights == nil {
		return nil, fmt.Errorf("no step record store configured")
	}
	return e.Insights()
}

// recordSource loads step records either from a stored user or from a file.
type recordSource struct {
	env    *Env
	user   string
	file   string
	format string
}

func (s *recordSource) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.user, "user", "", "User whose stored step records are read")
	cmd.Flags().StringVar(&s.file, "file", "", "CSV or JSON file with step records")
	cmd.Flags().StringVar(&s.format, "format", "", "File format: csv or json (default: from extension)")
	cmd.MarkFlagsMutuallyExclusive("user", "file")
	cmd.MarkFlagsOneRequired("user", "file")
}

// load returns the records and a short description of where they came from.
func (s *recordSource) load(ctx context.Context) ([]domain.StepRecord, string, error) {
	if s.file != "" {
		records, err := readFile(s.file, s.format, s.env.Engine.Location())
		if err != nil {
			return nil, "", err
		}
		return records, s.file, nil
	}

	svc, err := s.env.insights()
	if err != nil {
		return nil, "", err
	}
	records, err := svc.Records(ctx, s.user, time.Time{}, time.Time{})
	if err != nil {
		return nil, "", fmt.Errorf("failed to read records for %s: %w", s.user, err)
	}
	return records, "user " + s.user, nil
}

func readFile(path, format string, loc *time.Location) ([]domain.StepRecord, error) {
	f := ingest.Format(format)
	if format == "" {
		var err error
		if f, err = ingest.FormatFromPath(path); err != nil {
			return nil, err
		}
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	records, err := ingest.Parse(file, f, loc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return records, nil
}

// periodOf returns the calendar days spanned by records, or nil when empty.
func periodOf(engine *risk.Engine, records []domain.StepRecord) *domain.TimePeriod {
	totals := engine.DailyTotals(records)
	if len(totals) == 0 {
		return nil
	}
	p := domain.NewTimePeriod(totals[0].Day, totals[len(totals)-1].Day)
	return &p
}
