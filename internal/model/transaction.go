package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrUnknownValue is returned when a string does not name a known enum value.
var ErrUnknownValue = errors.New("unknown value")

// TransactionType is the direction of money on the loan account.
type TransactionType string

const (
	TypeCredit TransactionType = "CREDIT" // disbursement
	TypeDebit  TransactionType = "DEBIT"  // utilization
)

// Mode is the payment channel of a transaction.
type Mode string

const (
	ModeCash   Mode = "CASH"
	ModeRTGS   Mode = "RTGS"
	ModeNEFT   Mode = "NEFT"
	ModeCheque Mode = "CHEQUE"
)

// Modes lists every mode in display order.
var Modes = []Mode{ModeCash, ModeRTGS, ModeNEFT, ModeCheque}

// Alignment records whether a transaction matches the loan's intended purpose.
type Alignment string

const (
	AlignmentNone     Alignment = "" // not assessed
	AlignmentAligned  Alignment = "ALIGNED"
	AlignmentDeviated Alignment = "DEVIATED"
	AlignmentUnknown  Alignment = "UNKNOWN"
)

// Categories are the spending categories used by the seed data.
var Categories = []string{
	"LOAN_DISBURSEMENT",
	"MACHINERY",
	"RAW_MATERIALS",
	"INVENTORY",
	"MISC_EXPENSES",
	"PERSONAL",
}

// Transaction is one movement on a customer's loan account.
type Transaction struct {
	ID               string          `validate:"required"`
	CustomerID       string          `validate:"required"`
	Date             time.Time       `validate:"required"`
	Type             TransactionType `validate:"oneof=CREDIT DEBIT"`
	Mode             Mode            `validate:"oneof=CASH RTGS NEFT CHEQUE"`
	Amount           decimal.Decimal `validate:"gt=0"`
	Description      string
	Reference        string
	Category         string          // optional
	PurposeAlignment Alignment       `validate:"omitempty,oneof=ALIGNED DEVIATED UNKNOWN"`
}

// IsDeviated reports whether the transaction was flagged as off-purpose.
func (t Transaction) IsDeviated() bool {
	return t.PurposeAlignment == AlignmentDeviated
}

// ParseType converts "credit"/"DEBIT" etc. to a TransactionType.
func ParseType(s string) (TransactionType, error) {
	switch t := TransactionType(strings.ToUpper(strings.TrimSpace(s))); t {
	case TypeCredit, TypeDebit:
		return t, nil
	}
	return "", fmt.Errorf("transaction type %q: %w", s, ErrUnknownValue)
}

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Modes {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("mode %q: %w", s, ErrUnknownValue)
}

// ParseAlignment converts an alignment name to an Alignment. Empty input is AlignmentNone.
func ParseAlignment(s string) (Alignment, error) {
	switch a := Alignment(strings.ToUpper(strings.TrimSpace(s))); a {
	case AlignmentNone, AlignmentAligned, AlignmentDeviated, AlignmentUnknown:
		return a, nil
	}
	return "", fmt.Errorf("purpose alignment %q: %w", s, ErrUnknownValue)
}
