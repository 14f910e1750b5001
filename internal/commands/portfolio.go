package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/janakalyan/loanwatch/internal/analytics"
	"github.com/janakalyan/loanwatch/internal/period"
	"github.com/janakalyan/loanwatch/internal/report"
)

func newMonthlyCommand(opts *globalOptions) *cobra.Command {
	var year int
	var from, to string

	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Show monthly disbursement and utilization",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (from == "") != (to == "") {
				return errors.New("--from and --to must be given together")
			}
			if from != "" && cmd.Flags().Changed("year") {
				return errors.New("--year cannot be combined with --from/--to")
			}

			var periods []period.Period
			if from != "" {
				start, err := period.ParsePeriod(from)
				if err != nil {
					return err
				}
				end, err := period.ParsePeriod(to)
				if err != nil {
					return err
				}
				if periods, err = period.Range(start, end); err != nil {
					return err
				}
			}

			ws, err := opts.open(cmd)
			if err != nil {
				return err
			}

			var points []analytics.MonthPoint
			if periods != nil {
				points = analytics.SeriesFor(ws.data.Transactions(), periods)
			} else {
				if year == 0 {
					year = ws.cfg.Report.Year
				}
				points = analytics.MonthlySeries(ws.data.Transactions(), year)
			}
			return opts.emit(cmd, ws, "monthly", "", []report.Table{report.Monthly(points)})
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "calendar year (default from config)")
	cmd.Flags().StringVar(&from, "from", "", "first month, YYYY-MM")
	cmd.Flags().StringVar(&to, "to", "", "last month, YYYY-MM")
	return cmd
}

func newComplianceCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "compliance",
		Short: "Rate every customer's compliance and risk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := opts.open(cmd)
			if err != nil {
				return err
			}
			rows := analytics.Compliance(ws.data.Customers(), ws.data.Transactions(), ws.thresholds)
			return opts.emit(cmd, ws, "compliance", "", []report.Table{report.Compliance(rows)})
		},
	}
}

func newAlertsCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "alerts",
		Short: "Show behavioral monitoring counters and alerting customers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := opts.open(cmd)
			if err != nil {
				return err
			}
			customers, txns := ws.data.Customers(), ws.data.Transactions()
			metrics := analytics.Behavior(customers, txns, ws.thresholds)
			rows := analytics.Compliance(customers, txns, ws.thresholds)
			return opts.emit(cmd, ws, "alerts", "", report.Alerts(metrics, rows, ws.thresholds))
		},
	}
}

func newCashCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cash",
		Short: "List customers with cash withdrawals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := opts.open(cmd)
			if err != nil {
				return err
			}
			rows := analytics.CashDebits(ws.data.Customers(), ws.data.Transactions())
			return opts.emit(cmd, ws, "cash", "", []report.Table{report.CashDebits(rows)})
		},
	}
}

func newExportCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write every report view into one file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.out == "" {
				return errors.New("export needs --out")
			}
			ws, err := opts.open(cmd)
			if err != nil {
				return err
			}
			return opts.emit(cmd, ws, "export", "", allViews(ws))
		},
	}
}

func allViews(ws *workspace) []report.Table {
	customers, txns := ws.data.Customers(), ws.data.Transactions()
	rows := analytics.Compliance(customers, txns, ws.thresholds)

	tables := []report.Table{
		report.Summary(ws.cfg.Bank.Name, customers, txns),
		report.Modes("Mode-wise totals", txns),
		report.Customers(customers),
		report.Transactions(fmt.Sprintf("Transactions (%d)", len(txns)), txns),
		report.Monthly(analytics.MonthlySeries(txns, ws.cfg.Report.Year)),
		report.Compliance(rows),
	}
	tables = append(tables, report.Alerts(analytics.Behavior(customers, txns, ws.thresholds), rows, ws.thresholds)...)
	return append(tables, report.CashDebits(analytics.CashDebits(customers, txns)))
}
