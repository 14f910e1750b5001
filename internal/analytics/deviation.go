package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/janakalyan/loanwatch/internal/model"
)

var hundred = decimal.NewFromInt(100)

// Deviation is the purpose-deviation analysis for one customer.
type Deviation struct {
	CustomerID    string
	TotalDeviated decimal.Decimal
	Total         decimal.Decimal
	Percentage    decimal.Decimal
	Transactions  []model.Transaction
}

// PurposeDeviation measures how much of a customer's transaction value was
// flagged DEVIATED, as a percentage of everything the customer moved.
//
// A customer with no transactions (or an unknown ID) has Total 0 and
// Percentage 0: no transactions means no deviation.
func PurposeDeviation(customerID string, txns []model.Transaction) Deviation {
	own := ForCustomer(customerID, txns)

	deviated := decimal.Zero
	total := decimal.Zero
	for _, t := range own {
		total = total.Add(t.Amount)
		if t.IsDeviated() {
			deviated = deviated.Add(t.Amount)
		}
	}

	return Deviation{
		CustomerID:    customerID,
		TotalDeviated: deviated,
		Total:         total,
		Percentage:    Percent(deviated, total),
		Transactions:  own,
	}
}

// NonCompliant returns the customer's DEVIATED transactions.
func NonCompliant(customerID string, txns []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, 0)
	for _, t := range txns {
		if t.CustomerID == customerID && t.IsDeviated() {
			out = append(out, t)
		}
	}
	return out
}

// Percent returns part/whole*100, or 0 when whole is zero.
func Percent(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Mul(hundred).Div(whole)
}
