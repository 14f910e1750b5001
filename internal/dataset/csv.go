package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/janakalyan/loanwatch/internal/model"
)

// DateFormat is the layout of every date column.
const DateFormat = "2006-01-02"

// CustomerHeader is the CSV header for customers.csv.
const CustomerHeader = "customer_id,name,business_name,sector,loan_account_number,loan_amount,disbursement_date,intended_purpose"

// TransactionHeader is the CSV header for transactions.csv.
const TransactionHeader = "transaction_id,customer_id,date,type,mode,amount,description,reference,category,purpose_alignment"

const (
	customerFields  = 8
	custColID       = 0
	custColName     = 1
	custColBusiness = 2
	custColSector   = 3
	custColAccount  = 4
	custColAmount   = 5
	custColDisbDate = 6
	custColPurpose  = 7
)

const (
	transactionFields = 10
	txnColID          = 0
	txnColCustomer    = 1
	txnColDate        = 2
	txnColType        = 3
	txnColMode        = 4
	txnColAmount      = 5
	txnColDesc        = 6
	txnColRef         = 7
	txnColCategory    = 8
	txnColAlignment   = 9
)

// ReadCustomers reads customers.csv.
func ReadCustomers(r io.Reader) ([]model.Customer, error) {
	records, err := readRecords(r, customerFields)
	if err != nil {
		return nil, fmt.Errorf("reading customers CSV: %w", err)
	}

	var customers []model.Customer
	for i, rec := range records {
		c, err := UnmarshalCustomer(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		customers = append(customers, c)
	}
	return customers, nil
}

// WriteCustomers writes customers.csv including the header.
func WriteCustomers(w io.Writer, customers []model.Customer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(CustomerHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, c := range customers {
		if err := cw.Write(MarshalCustomer(c)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalCustomer converts a Customer to a CSV row.
func MarshalCustomer(c model.Customer) []string {
	row := make([]string, customerFields)
	row[custColID] = c.ID
	row[custColName] = c.Name
	row[custColBusiness] = c.BusinessName
	row[custColSector] = c.Sector
	row[custColAccount] = c.LoanAccountNumber
	row[custColAmount] = c.LoanAmount.String()
	row[custColDisbDate] = formatDate(c.DisbursementDate)
	row[custColPurpose] = c.IntendedPurpose
	return row
}

// UnmarshalCustomer converts a CSV row to a Customer.
func UnmarshalCustomer(record []string) (model.Customer, error) {
	if len(record) != customerFields {
		return model.Customer{}, fmt.Errorf("expected %d fields, got %d", customerFields, len(record))
	}

	amount, err := decimal.NewFromString(record[custColAmount])
	if err != nil {
		return model.Customer{}, fmt.Errorf("parsing loan_amount %q: %w", record[custColAmount], err)
	}

	disbursed, err := parseDate(record[custColDisbDate])
	if err != nil {
		return model.Customer{}, fmt.Errorf("parsing disbursement_date %q: %w", record[custColDisbDate], err)
	}

	return model.Customer{
		ID:                record[custColID],
		Name:              record[custColName],
		BusinessName:      record[custColBusiness],
		Sector:            record[custColSector],
		LoanAccountNumber: record[custColAccount],
		LoanAmount:        amount,
		DisbursementDate:  disbursed,
		IntendedPurpose:   record[custColPurpose],
	}, nil
}

// ReadTransactions reads transactions.csv.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	records, err := readRecords(r, transactionFields)
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	var txns []model.Transaction
	for i, rec := range records {
		t, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, t)
	}
	return txns, nil
}

// WriteTransactions writes transactions.csv including the header.
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(TransactionHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, t := range txns {
		if err := cw.Write(MarshalTransaction(t)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(t model.Transaction) []string {
	row := make([]string, transactionFields)
	row[txnColID] = t.ID
	row[txnColCustomer] = t.CustomerID
	row[txnColDate] = formatDate(t.Date)
	row[txnColType] = string(t.Type)
	row[txnColMode] = string(t.Mode)
	row[txnColAmount] = t.Amount.String()
	row[txnColDesc] = t.Description
	row[txnColRef] = t.Reference
	row[txnColCategory] = t.Category
	row[txnColAlignment] = string(t.PurposeAlignment)
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != transactionFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", transactionFields, len(record))
	}

	date, err := parseDate(record[txnColDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", record[txnColDate], err)
	}

	typ, err := model.ParseType(record[txnColType])
	if err != nil {
		return model.Transaction{}, err
	}

	mode, err := model.ParseMode(record[txnColMode])
	if err != nil {
		return model.Transaction{}, err
	}

	amount, err := decimal.NewFromString(record[txnColAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[txnColAmount], err)
	}

	alignment, err := model.ParseAlignment(record[txnColAlignment])
	if err != nil {
		return model.Transaction{}, err
	}

	return model.Transaction{
		ID:               record[txnColID],
		CustomerID:       record[txnColCustomer],
		Date:             date,
		Type:             typ,
		Mode:             mode,
		Amount:           amount,
		Description:      record[txnColDesc],
		Reference:        record[txnColRef],
		Category:         record[txnColCategory],
		PurposeAlignment: alignment,
	}, nil
}

// readRecords returns the data rows, header excluded.
func readRecords(r io.Reader, fields int) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = fields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) <= 1 {
		return nil, nil
	}
	return records[1:], nil
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, strings.TrimSpace(s))
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateFormat)
}
