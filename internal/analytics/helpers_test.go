package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/janakalyan/loanwatch/internal/dataset"
	"github.com/janakalyan/loanwatch/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seed() ([]model.Customer, []model.Transaction) {
	return dataset.SeedCustomers(), dataset.SeedTransactions()
}

func txn(id, customerID string, typ model.TransactionType, mode model.Mode, amount string) model.Transaction {
	return model.Transaction{
		ID:         id,
		CustomerID: customerID,
		Date:       time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Type:       typ,
		Mode:       mode,
		Amount:     dec(amount),
	}
}
