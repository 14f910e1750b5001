package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/janakalyan/loanwatch/internal/analytics"
	"github.com/janakalyan/loanwatch/internal/model"
	"github.com/janakalyan/loanwatch/internal/money"
	"github.com/janakalyan/loanwatch/internal/report"
)

func newSummaryCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the portfolio headline and mode-wise totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := opts.open(cmd)
			if err != nil {
				return err
			}
			customers, txns := ws.data.Customers(), ws.data.Transactions()
			tables := []report.Table{
				report.Summary(ws.cfg.Bank.Name, customers, txns),
				report.Modes("Mode-wise totals", txns),
			}
			return opts.emit(cmd, ws, "summary", "", tables)
		},
	}
}

func newCustomersCommand(opts *globalOptions) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "customers",
		Short: "List customers, optionally filtered by name, account or business",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := opts.open(cmd)
			if err != nil {
				return err
			}
			tbl := report.Customers(ws.data.Search(search))
			if search != "" {
				tbl.Title = fmt.Sprintf("Customers matching %q", search)
			}
			return opts.emit(cmd, ws, "customers", "", []report.Table{tbl})
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "case-insensitive search term")
	return cmd
}

func newTransactionsCommand(opts *globalOptions) *cobra.Command {
	var customerID string
	var modeName string

	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "List transactions, optionally for one customer and payment mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var mode model.Mode
			if modeName != "" {
				m, err := model.ParseMode(modeName)
				if err != nil {
					return err
				}
				mode = m
			}

			ws, err := opts.open(cmd)
			if err != nil {
				return err
			}

			txns := ws.data.Transactions()
			title := []string{"Transactions"}
			if customerID != "" {
				warnUnknownCustomer(ws, customerID)
				txns = ws.data.TransactionsFor(customerID)
				title = append(title, "of customer "+customerID)
			}
			if mode != "" {
				title = append(title, "paid by "+string(mode))
			}

			summary := analytics.SummarizeMode(txns, mode)
			heading := fmt.Sprintf("%s (%d, %s)", strings.Join(title, " "), summary.Count, money.FormatINR(summary.Amount))
			tbl := report.Transactions(heading, analytics.FilterByMode(txns, mode))
			return opts.emit(cmd, ws, "transactions", customerID, []report.Table{tbl})
		},
	}

	cmd.Flags().StringVar(&customerID, "customer", "", "customer ID")
	cmd.Flags().StringVar(&modeName, "mode", "", "payment mode: CASH, RTGS, NEFT or CHEQUE")
	return cmd
}

func newModesCommand(opts *globalOptions) *cobra.Command {
	var customerID string

	cmd := &cobra.Command{
		Use:   "modes",
		Short: "Break credits and debits down by payment mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := opts.open(cmd)
			if err != nil {
				return err
			}

			txns := ws.data.Transactions()
			title := "Mode-wise totals"
			if customerID != "" {
				warnUnknownCustomer(ws, customerID)
				txns = ws.data.TransactionsFor(customerID)
				title += " for customer " + customerID
			}
			return opts.emit(cmd, ws, "modes", customerID, []report.Table{report.Modes(title, txns)})
		},
	}

	cmd.Flags().StringVar(&customerID, "customer", "", "customer ID")
	return cmd
}

func newDeviationCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "deviation <customer-id>",
		Short: "Show how much of a customer's loan was used off-purpose",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := opts.open(cmd)
			if err != nil {
				return err
			}

			id := args[0]
			customer, ok := ws.data.Customer(id)
			if !ok {
				warnUnknownCustomer(ws, id)
				customer = model.Customer{ID: id, Name: "unknown customer"}
			}
			d := analytics.PurposeDeviation(id, ws.data.Transactions())
			return opts.emit(cmd, ws, "deviation", id, report.Deviation(customer, d, ws.thresholds))
		},
	}
}

func warnUnknownCustomer(ws *workspace, id string) {
	if _, ok := ws.data.Customer(id); !ok {
		ws.log.WithField("customer", id).Warn("customer not found")
	}
}
