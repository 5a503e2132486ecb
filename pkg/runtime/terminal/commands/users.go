package commands

import (
	"fmt"
	"strings"

	"github.com/isteps/burnout-risk/pkg/runtime/terminal/report"
	"github.com/spf13/cobra"
)

func NewUsersCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List users with stored step records",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := env.insights()
			if err != nil {
				return err
			}

			users, err := svc.Users(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}
			if len(users) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No users found")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Users:\n%s\n", strings.Join(users, "\n"))
			return nil
		},
	}
}

type UserCmd struct {
	env  *Env
	user string
}

func NewStatsCmd(env *Env) *cobra.Command {
	uc := &UserCmd{env: env}
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show how many step records are stored for a user",
		RunE:  uc.stats,
	}

	cmd.Flags().StringVar(&uc.user, "user", "", "User to inspect")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func NewDeleteCmd(env *Env) *cobra.Command {
	uc := &UserCmd{env: env}
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete every stored step record of a user",
		RunE:  uc.delete,
	}

	cmd.Flags().StringVar(&uc.user, "user", "", "User whose records are deleted")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func (uc *UserCmd) stats(cmd *cobra.Command, _ []string) error {
	svc, err := uc.env.insights()
	if err != nil {
		return err
	}

	stats, err := svc.Stats(cmd.Context(), uc.user)
	if err != nil {
		return fmt.Errorf("failed to read stats for %s: %w", uc.user, err)
	}

	return uc.env.Reporter.Stats(report.StatsReport{User: uc.user, Stats: stats})
}

func (uc *UserCmd) delete(cmd *cobra.Command, _ []string) error {
	svc, err := uc.env.insights()
	if err != nil {
		return err
	}

	n, err := svc.Delete(cmd.Context(), uc.user)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d records for %s\n", n, uc.user)
	return nil
}
