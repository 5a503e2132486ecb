package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

type ImportCmd struct {
	env    *Env
	user   string
	file   string
	format string
}

func NewImportCmd(env *Env) *cobra.Command {
	ic := &ImportCmd{env: env}
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import step records from a CSV or JSON file",
		RunE:  ic.run,
	}

	cmd.Flags().StringVar(&ic.user, "user", "", "User the records belong to")
	cmd.Flags().StringVar(&ic.file, "file", "", "CSV or JSON file with step records")
	cmd.Flags().StringVar(&ic.format, "format", "", "File format: csv or json (default: from extension)")

	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (ic *ImportCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	records, err := readFile(ic.file, ic.format, ic.env.Engine.Location())
	if err != nil {
		return err
	}

	svc, err := ic.env.insights()
	if err != nil {
		return err
	}

	n, err := svc.Ingest(ctx, ic.user, records)
	if err != nil {
		return fmt.Errorf("failed to import records: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d records for %s\n", n, ic.user)
	return nil
}
