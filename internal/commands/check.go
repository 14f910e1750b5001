package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/janakalyan/loanwatch/internal/dataset"
	"github.com/janakalyan/loanwatch/internal/report"
	"github.com/janakalyan/loanwatch/internal/runlog"
)

func newCheckCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the dataset: required fields, enums, duplicates and dangling references",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := opts.open(cmd)
			if err != nil {
				return err
			}

			issues := dataset.Validate(ws.data.Customers(), ws.data.Transactions())
			for _, issue := range issues {
				ws.log.WithField("rule", issue.Rule).Warn(issue.Error())
			}
			if err := opts.emit(cmd, ws, "check", "", []report.Table{report.Validation(issues)}); err != nil {
				return err
			}
			if len(issues) > 0 {
				return fmt.Errorf("dataset has %d problem(s)", len(issues))
			}
			return nil
		},
	}
}

func newLogCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "Show the report run log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := opts.openConfig(cmd)
			if err != nil {
				return err
			}
			entries, err := runlog.Read(ws.root)
			if err != nil {
				return err
			}

			format := opts.resolveFormat(ws)
			exporter := report.DefaultRegistry().Get(format)
			if exporter == nil || format == "xlsx" {
				return fmt.Errorf("log cannot be printed as %q", format)
			}
			return exporter.Export(cmd.OutOrStdout(), []report.Table{report.RunLog(entries)})
		},
	}
}
