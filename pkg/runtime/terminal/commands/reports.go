package commands

import (
	"github.com/isteps/burnout-risk/pkg/runtime/terminal/report"
	"github.com/isteps/burnout-risk/pkg/services/activity"
	"github.com/spf13/cobra"
)

func NewScoreCmd(env *Env) *cobra.Command {
	src := &recordSource{env: env}
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Estimate burnout risk over the whole step history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, name, err := src.load(cmd.Context())
			if err != nil {
				return err
			}
			return env.Reporter.Risk(report.RiskReport{
				Source: name,
				Period: periodOf(env.Engine, records),
				Result: env.Engine.SummarizeWholeHistory(records),
			})
		},
	}
	src.bind(cmd)
	return cmd
}

func NewWeeklyCmd(env *Env) *cobra.Command {
	src := &recordSource{env: env}
	cmd := &cobra.Command{
		Use:   "weekly",
		Short: "Summarize the risk of the last seven recorded days",
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, name, err := src.load(cmd.Context())
			if err != nil {
				return err
			}
			return env.Reporter.Weekly(report.WeeklyReport{
				Source:  name,
				Summary: env.Engine.WeeklySummaryFromRecords(records),
			})
		},
	}
	src.bind(cmd)
	return cmd
}

func NewTrendCmd(env *Env) *cobra.Command {
	src := &recordSource{env: env}
	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Show the latest risk and the recent daily trend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, name, err := src.load(cmd.Context())
			if err != nil {
				return err
			}
			return env.Reporter.Trend(report.TrendReport{
				Source: name,
				Trend:  env.Engine.BuildTrend(records),
			})
		},
	}
	src.bind(cmd)
	return cmd
}

func NewActivityCmd(env *Env) *cobra.Command {
	src := &recordSource{env: env}
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show total steps, distance and calories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, name, err := src.load(cmd.Context())
			if err != nil {
				return err
			}
			summary := activity.Summarize(records)
			return env.Reporter.Activity(report.ActivityReport{
				Source:    name,
				Summary:   summary,
				ShareText: activity.ShareText(summary),
			})
		},
	}
	src.bind(cmd)
	return cmd
}
