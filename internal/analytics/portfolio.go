package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/janakalyan/loanwatch/internal/model"
)

// Portfolio is the bank-level headline.
type Portfolio struct {
	CustomerCount   int
	TotalLoanAmount decimal.Decimal
}

// BankSummary counts customers and sums their sanctioned loan amounts.
func BankSummary(customers []model.Customer) Portfolio {
	total := decimal.Zero
	for _, c := range customers {
		total = total.Add(c.LoanAmount)
	}
	return Portfolio{CustomerCount: len(customers), TotalLoanAmount: total}
}

// UtilizationRate is the customer's DEBIT total as a percentage of the loan
// amount. A zero loan amount yields 0.
func UtilizationRate(customer model.Customer, txns []model.Transaction) decimal.Decimal {
	debits := decimal.Zero
	for _, t := range txns {
		if t.CustomerID == customer.ID && t.Type == model.TypeDebit {
			debits = debits.Add(t.Amount)
		}
	}
	return Percent(debits, customer.LoanAmount)
}

// CashDebitRow summarizes one customer's cash withdrawals.
type CashDebitRow struct {
	Customer model.Customer
	Count    int
	Total    decimal.Decimal
}

// CashDebits lists, in customer order, every customer with at least one
// DEBIT transaction paid in CASH.
func CashDebits(customers []model.Customer, txns []model.Transaction) []CashDebitRow {
	type acc struct {
		count int
		total decimal.Decimal
	}
	byCustomer := make(map[string]acc)
	for _, t := range txns {
		if t.Type != model.TypeDebit || t.Mode != model.ModeCash {
			continue
		}
		a := byCustomer[t.CustomerID]
		a.count++
		a.total = a.total.Add(t.Amount)
		byCustomer[t.CustomerID] = a
	}

	out := make([]CashDebitRow, 0)
	for _, c := range customers {
		a, ok := byCustomer[c.ID]
		if !ok {
			continue
		}
		out = append(out, CashDebitRow{Customer: c, Count: a.count, Total: a.total})
	}
	return out
}

// BehaviorMetrics are the portfolio-wide behavioral monitoring counters.
type BehaviorMetrics struct {
	LoanMisuse    int // customers with deviation above MisuseAbove
	FraudRisk     int // cash debits above HighValueCash
	FundDiversion int // DEVIATED transactions
	ActiveAlerts  int // customers with deviation above AlertAbove
}

// Behavior computes the behavioral monitoring counters.
func Behavior(customers []model.Customer, txns []model.Transaction, th Thresholds) BehaviorMetrics {
	var m BehaviorMetrics
	for _, c := range customers {
		pct := PurposeDeviation(c.ID, txns).Percentage
		if pct.GreaterThan(th.MisuseAbove) {
			m.LoanMisuse++
		}
		if pct.GreaterThan(th.AlertAbove) {
			m.ActiveAlerts++
		}
	}
	for _, t := range txns {
		if t.Type == model.TypeDebit && t.Mode == model.ModeCash && t.Amount.GreaterThan(th.HighValueCash) {
			m.FraudRisk++
		}
		if t.IsDeviated() {
			m.FundDiversion++
		}
	}
	return m
}

// ComplianceRow is one customer's line in the compliance overview.
type ComplianceRow struct {
	Customer        model.Customer
	Deviation       decimal.Decimal
	Compliance      Level
	Risk            Level
	UtilizationRate decimal.Decimal
	NonCompliant    []model.Transaction
}

// Compliance rates every customer, in input order.
func Compliance(customers []model.Customer, txns []model.Transaction, th Thresholds) []ComplianceRow {
	out := make([]ComplianceRow, 0, len(customers))
	for _, c := range customers {
		pct := PurposeDeviation(c.ID, txns).Percentage
		out = append(out, ComplianceRow{
			Customer:        c,
			Deviation:       pct,
			Compliance:      th.Compliance(pct),
			Risk:            th.Risk(pct),
			UtilizationRate: UtilizationRate(c, txns),
			NonCompliant:    NonCompliant(c.ID, txns),
		})
	}
	return out
}
