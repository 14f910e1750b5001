package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/janakalyan/loanwatch/internal/model"
)

// TypeTotals splits an amount into disbursed (credit) and utilized (debit) money.
type TypeTotals struct {
	Credit decimal.Decimal
	Debit  decimal.Decimal
}

// Total returns Credit + Debit.
func (t TypeTotals) Total() decimal.Decimal {
	return t.Credit.Add(t.Debit)
}

func (t TypeTotals) add(txn model.Transaction) TypeTotals {
	switch txn.Type {
	case model.TypeCredit:
		t.Credit = t.Credit.Add(txn.Amount)
	case model.TypeDebit:
		t.Debit = t.Debit.Add(txn.Amount)
	}
	return t
}

// ModeTotal is the credit/debit split for one payment mode.
type ModeTotal struct {
	Mode model.Mode
	TypeTotals
}

// ModeBreakdown holds one ModeTotal per mode, in model.Modes order.
type ModeBreakdown []ModeTotal

// Get returns the totals for mode, or zero totals if the mode is not present.
func (b ModeBreakdown) Get(mode model.Mode) TypeTotals {
	for _, mt := range b {
		if mt.Mode == mode {
			return mt.TypeTotals
		}
	}
	return TypeTotals{}
}

// Total sums every mode and both types.
func (b ModeBreakdown) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, mt := range b {
		sum = sum.Add(mt.Total())
	}
	return sum
}

// Sum adds up the amount of every transaction.
func Sum(txns []model.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range txns {
		sum = sum.Add(t.Amount)
	}
	return sum
}

// SumByTypeAndMode adds up transactions matching both typ and mode.
func SumByTypeAndMode(txns []model.Transaction, typ model.TransactionType, mode model.Mode) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range txns {
		if t.Type == typ && t.Mode == mode {
			sum = sum.Add(t.Amount)
		}
	}
	return sum
}

// Totals splits the sum of txns by type.
func Totals(txns []model.Transaction) TypeTotals {
	var out TypeTotals
	for _, t := range txns {
		out = out.add(t)
	}
	return out
}

// TotalsByMode computes credit and debit sums for every mode in a single pass.
// Transactions with a mode outside model.Modes are ignored.
func TotalsByMode(txns []model.Transaction) ModeBreakdown {
	index := make(map[model.Mode]int, len(model.Modes))
	out := make(ModeBreakdown, len(model.Modes))
	for i, m := range model.Modes {
		index[m] = i
		out[i] = ModeTotal{Mode: m}
	}

	for _, t := range txns {
		i, ok := index[t.Mode]
		if !ok {
			continue
		}
		out[i].TypeTotals = out[i].TypeTotals.add(t)
	}
	return out
}

// FilterByMode returns the transactions paid through mode. An empty mode matches everything.
// The result never aliases txns.
func FilterByMode(txns []model.Transaction, mode model.Mode) []model.Transaction {
	out := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		if mode == "" || t.Mode == mode {
			out = append(out, t)
		}
	}
	return out
}

// ModeSummary is the headline of a mode-filtered transaction view.
type ModeSummary struct {
	Mode   model.Mode // empty for all modes
	Count  int
	Amount decimal.Decimal
}

// SummarizeMode counts and totals the transactions for mode (empty for all).
func SummarizeMode(txns []model.Transaction, mode model.Mode) ModeSummary {
	filtered := FilterByMode(txns, mode)
	return ModeSummary{Mode: mode, Count: len(filtered), Amount: Sum(filtered)}
}

// ForCustomer returns the transactions belonging to customerID in input order.
func ForCustomer(customerID string, txns []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, 0)
	for _, t := range txns {
		if t.CustomerID == customerID {
			out = append(out, t)
		}
	}
	return out
}
