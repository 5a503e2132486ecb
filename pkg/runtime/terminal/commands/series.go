package commands

import (
	"fmt"

	"github.com/isteps/burnout-risk/pkg/runtime/terminal/export"
	"github.com/isteps/burnout-risk/pkg/services/risk"
	"github.com/spf13/cobra"
)

type SeriesCmd struct {
	env    *Env
	source *recordSource
	days   int
}

func NewSeriesCmd(env *Env) *cobra.Command {
	sc := &SeriesCmd{env: env, source: &recordSource{env: env}}
	cmd := &cobra.Command{
		Use:   "series",
		Short: "Print the daily risk series as a table",
		RunE:  sc.run,
	}

	sc.source.bind(cmd)
	cmd.Flags().IntVar(&sc.days, "days", 0, "Only show the last N recorded days (0 shows all)")

	return cmd
}

func (sc *SeriesCmd) run(cmd *cobra.Command, _ []string) error {
	if sc.days < 0 {
		return fmt.Errorf("--days must not be negative")
	}

	records, name, err := sc.source.load(cmd.Context())
	if err != nil {
		return err
	}

	series := sc.env.Engine.BuildSeries(records)
	if sc.days > 0 {
		series = risk.LastDays(series, sc.days)
	}

	return sc.env.Table.Handle(export.SeriesReport{
		Source: name,
		Period: periodOf(sc.env.Engine, records),
		Points: series,
	})
}
