package commands

import (
	"github.com/spf13/cobra"

	"github.com/janakalyan/loanwatch/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "loanwatch",
		Short:   "Loan end-use monitoring for a bank's business loan portfolio",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&opts.workspace, "workspace", "w", ".", "workspace directory")
	pf.StringVar(&opts.format, "format", "", "output format: text, csv or xlsx (default from config)")
	pf.StringVarP(&opts.out, "out", "o", "", "write the report to this file instead of stdout")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error (default from config)")

	rootCmd.AddCommand(
		newInitCommand(),
		newSummaryCommand(opts),
		newCustomersCommand(opts),
		newTransactionsCommand(opts),
		newModesCommand(opts),
		newDeviationCommand(opts),
		newMonthlyCommand(opts),
		newComplianceCommand(opts),
		newAlertsCommand(opts),
		newCashCommand(opts),
		newCheckCommand(opts),
		newExportCommand(opts),
		newLogCommand(opts),
	)

	return rootCmd
}
