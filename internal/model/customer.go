package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a borrower holding one business loan.
type Customer struct {
	ID                string          `validate:"required"`
	Name              string          `validate:"required"`
	BusinessName      string          `validate:"required"`
	Sector            string
	LoanAccountNumber string          `validate:"required"`
	LoanAmount        decimal.Decimal `validate:"gt=0"`
	DisbursementDate  time.Time       `validate:"required"`
	IntendedPurpose   string          // display only
}
