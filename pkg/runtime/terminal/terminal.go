package terminal

import (
	"context"
	"io"
	"os"

	"github.com/isteps/burnout-risk/pkg/runtime/terminal/commands"
	"github.com/isteps/burnout-risk/pkg/runtime/terminal/export"
	"github.com/isteps/burnout-risk/pkg/runtime/terminal/report"
	"github.com/isteps/burnout-risk/pkg/services/risk"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	env     *commands.Env
	logger  zerolog.Logger
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Engine   *risk.Engine
	Insights commands.InsightsProvider
	Output   io.Writer
	Logger   zerolog.Logger
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Engine == nil {
		opts.Engine = risk.NewEngine()
	}

	cli := &CLI{
		env: &commands.Env{
			Engine:   opts.Engine,
			Insights: opts.Insights,
			Reporter: report.NewReporter(opts.Output),
			Table:    export.NewReporter(opts.Output),
		},
		logger: opts.Logger,
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	return cli
}

func (cli *CLI) Execute(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(cli.logger.WithContext(ctx))
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "burnout",
		Short:         "Burnout risk scoring from daily step counts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(commands.NewImportCmd(cli.env))
	cmd.AddCommand(commands.NewScoreCmd(cli.env))
	cmd.AddCommand(commands.NewWeeklyCmd(cli.env))
	cmd.AddCommand(commands.NewSeriesCmd(cli.env))
	cmd.AddCommand(commands.NewTrendCmd(cli.env))
	cmd.AddCommand(commands.NewActivityCmd(cli.env))
	cmd.AddCommand(commands.NewUsersCmd(cli.env))
	cmd.AddCommand(commands.NewStatsCmd(cli.env))
	cmd.AddCommand(commands.NewDeleteCmd(cli.env))

	return cmd
}
