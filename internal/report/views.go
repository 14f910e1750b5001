package report

import (
	"fmt"

	"github.com/janakalyan/loanwatch/internal/analytics"
	"github.com/janakalyan/loanwatch/internal/dataset"
	"github.com/janakalyan/loanwatch/internal/model"
	"github.com/janakalyan/loanwatch/internal/runlog"
)

// Summary is the one-row portfolio headline.
func Summary(bank string, customers []model.Customer, txns []model.Transaction) Table {
	p := analytics.BankSummary(customers)
	totals := analytics.Totals(txns)

	t := Table{
		Name:  "summary",
		Title: bank + " loan portfolio",
		Columns: []Column{
			{"Customers", KindCount},
			{"Total Loan Amount", KindAmount},
			{"Disbursed", KindAmount},
			{"Utilized", KindAmount},
			{"Transaction Volume", KindAmount},
		},
	}
	t.AddRow(p.CustomerCount, p.TotalLoanAmount, totals.Credit, totals.Debit, totals.Total())
	return t
}

// Customers lists borrowers.
func Customers(customers []model.Customer) Table {
	t := Table{
		Name:  "customers",
		Title: "Customers",
		Columns: []Column{
			{"ID", KindText},
			{"Name", KindText},
			{"Business", KindText},
			{"Sector", KindText},
			{"Loan Account", KindText},
			{"Loan Amount", KindAmount},
			{"Disbursed On", KindText},
			{"Intended Purpose", KindText},
		},
	}
	for _, c := range customers {
		t.AddRow(c.ID, c.Name, c.BusinessName, c.Sector, c.LoanAccountNumber, c.LoanAmount,
			c.DisbursementDate.Format(dataset.DateFormat), c.IntendedPurpose)
	}
	return t
}

// Transactions lists transactions under the given title.
func Transactions(title string, txns []model.Transaction) Table {
	t := Table{
		Name:  "transactions",
		Title: title,
		Columns: []Column{
			{"ID", KindText},
			{"Customer", KindText},
			{"Date", KindText},
			{"Type", KindText},
			{"Mode", KindText},
			{"Amount", KindAmount},
			{"Description", KindText},
			{"Reference", KindText},
			{"Category", KindText},
			{"Alignment", KindText},
		},
	}
	for _, x := range txns {
		t.AddRow(x.ID, x.CustomerID, x.Date.Format(dataset.DateFormat), string(x.Type), string(x.Mode),
			x.Amount, x.Description, x.Reference, x.Category, string(x.PurposeAlignment))
	}
	return t
}

// Modes breaks txns down by payment mode with a closing total row.
func Modes(title string, txns []model.Transaction) Table {
	t := Table{
		Name:  "modes",
		Title: title,
		Columns: []Column{
			{"Mode", KindText},
			{"Transactions", KindCount},
			{"Credit", KindAmount},
			{"Debit", KindAmount},
			{"Total", KindAmount},
		},
	}
	breakdown := analytics.TotalsByMode(txns)
	count := 0
	for _, mt := range breakdown {
		n := analytics.SummarizeMode(txns, mt.Mode).Count
		count += n
		t.AddRow(string(mt.Mode), n, mt.Credit, mt.Debit, mt.Total())
	}
	all := analytics.Totals(txns)
	t.AddRow("TOTAL", count, all.Credit, all.Debit, breakdown.Total())
	return t
}

// Deviation reports one customer's purpose deviation: a headline row followed
// by the customer's transactions.
func Deviation(customer model.Customer, d analytics.Deviation, th analytics.Thresholds) []Table {
	head := Table{
		Name:  "deviation",
		Title: fmt.Sprintf("Purpose deviation: %s (%s)", customer.Name, d.CustomerID),
		Columns: []Column{
			{"Customer", KindText},
			{"Total", KindAmount},
			{"Deviated", KindAmount},
			{"Deviation", KindPercent},
			{"Compliance", KindText},
			{"Risk", KindText},
		},
	}
	head.AddRow(d.CustomerID, d.Total, d.TotalDeviated, d.Percentage,
		string(th.Compliance(d.Percentage)), string(th.Risk(d.Percentage)))

	txns := Transactions("Transactions of "+d.CustomerID, d.Transactions)
	txns.Name = "deviation-transactions"
	return []Table{head, txns}
}

// Monthly renders a disbursement/utilization series.
func Monthly(points []analytics.MonthPoint) Table {
	t := Table{
		Name:  "monthly",
		Title: "Monthly disbursement and utilization",
		Columns: []Column{
			{"Period", KindText},
			{"Month", KindText},
			{"Disbursement", KindAmount},
			{"Utilization", KindAmount},
		},
	}
	for _, p := range points {
		t.AddRow(p.Period.String(), p.Period.Label(), p.Disbursement, p.Utilization)
	}
	return t
}

// Compliance renders the per-customer compliance overview.
func Compliance(rows []analytics.ComplianceRow) Table {
	t := Table{
		Name:  "compliance",
		Title: "Compliance overview",
		Columns: []Column{
			{"ID", KindText},
			{"Name", KindText},
			{"Deviation", KindPercent},
			{"Compliance", KindText},
			{"Risk", KindText},
			{"Utilization", KindPercent},
			{"Non-compliant", KindCount},
		},
	}
	for _, r := range rows {
		t.AddRow(r.Customer.ID, r.Customer.Name, r.Deviation, string(r.Compliance), string(r.Risk),
			r.UtilizationRate, len(r.NonCompliant))
	}
	return t
}

// Alerts renders the behavioral counters and the customers raising an alert.
func Alerts(m analytics.BehaviorMetrics, rows []analytics.ComplianceRow, th analytics.Thresholds) []Table {
	counters := Table{
		Name:  "alerts",
		Title: "Behavioral monitoring",
		Columns: []Column{
			{"Loan Misuse", KindCount},
			{"Fraud Risk", KindCount},
			{"Fund Diversion", KindCount},
			{"Active Alerts", KindCount},
		},
	}
	counters.AddRow(m.LoanMisuse, m.FraudRisk, m.FundDiversion, m.ActiveAlerts)

	flagged := Table{
		Name:  "alert-customers",
		Title: "Customers above the alert threshold",
		Columns: []Column{
			{"ID", KindText},
			{"Name", KindText},
			{"Deviation", KindPercent},
			{"Risk", KindText},
		},
	}
	for _, r := range rows {
		if r.Deviation.GreaterThan(th.AlertAbove) {
			flagged.AddRow(r.Customer.ID, r.Customer.Name, r.Deviation, string(r.Risk))
		}
	}
	return []Table{counters, flagged}
}

// CashDebits renders the cash withdrawal watchlist.
func CashDebits(rows []analytics.CashDebitRow) Table {
	t := Table{
		Name:  "cash",
		Title: "Cash debits",
		Columns: []Column{
			{"ID", KindText},
			{"Name", KindText},
			{"Withdrawals", KindCount},
			{"Total", KindAmount},
		},
	}
	for _, r := range rows {
		t.AddRow(r.Customer.ID, r.Customer.Name, r.Count, r.Total)
	}
	return t
}

// Validation lists dataset problems.
func Validation(issues []dataset.ValidationError) Table {
	t := Table{
		Name:  "check",
		Title: "Dataset validation",
		Columns: []Column{
			{"Rule", KindText},
			{"Record", KindText},
			{"Problem", KindText},
		},
	}
	for _, e := range issues {
		t.AddRow(e.Rule, e.Record, e.Description)
	}
	return t
}

// RunLog lists past report runs.
func RunLog(entries []runlog.Entry) Table {
	t := Table{
		Name:  "log",
		Title: "Report runs",
		Columns: []Column{
			{"Timestamp", KindText},
			{"Command", KindText},
			{"Customer", KindText},
			{"Format", KindText},
			{"Rows", KindCount},
			{"Output", KindText},
		},
	}
	for _, e := range entries {
		t.AddRow(e.Timestamp.Format("2006-01-02 15:04:05"), e.Command, e.Customer, e.Format, e.Rows, e.Output)
	}
	return t
}
