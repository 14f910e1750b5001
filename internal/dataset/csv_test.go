package dataset

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janakalyan/loanwatch/internal/model"
)

func TestCustomersRoundTrip(t *testing.T) {
	seed := SeedCustomers()

	var buf bytes.Buffer
	require.NoError(t, WriteCustomers(&buf, seed))

	got, err := ReadCustomers(&buf)
	require.NoError(t, err)
	require.Len(t, got, len(seed))

	for i := range seed {
		assert.Equal(t, seed[i].ID, got[i].ID)
		assert.Equal(t, seed[i].Name, got[i].Name)
		assert.Equal(t, seed[i].BusinessName, got[i].BusinessName)
		assert.Equal(t, seed[i].Sector, got[i].Sector)
		assert.Equal(t, seed[i].LoanAccountNumber, got[i].LoanAccountNumber)
		assert.True(t, seed[i].LoanAmount.Equal(got[i].LoanAmount), "loan amount of customer %s", seed[i].ID)
		assert.True(t, seed[i].DisbursementDate.Equal(got[i].DisbursementDate))
		assert.Equal(t, seed[i].IntendedPurpose, got[i].IntendedPurpose)
	}
}

func TestTransactionsRoundTrip(t *testing.T) {
	seed := SeedTransactions()

	var buf bytes.Buffer
	require.NoError(t, WriteTransactions(&buf, seed))

	got, err := ReadTransactions(&buf)
	require.NoError(t, err)
	require.Len(t, got, len(seed))

	for i := range seed {
		assert.Equal(t, seed[i].ID, got[i].ID)
		assert.Equal(t, seed[i].CustomerID, got[i].CustomerID)
		assert.True(t, seed[i].Date.Equal(got[i].Date))
		assert.Equal(t, seed[i].Type, got[i].Type)
		assert.Equal(t, seed[i].Mode, got[i].Mode)
		assert.True(t, seed[i].Amount.Equal(got[i].Amount))
		assert.Equal(t, seed[i].Reference, got[i].Reference)
		assert.Equal(t, seed[i].Category, got[i].Category)
		assert.Equal(t, seed[i].PurposeAlignment, got[i].PurposeAlignment)
	}
}

func TestOptionalTransactionColumns(t *testing.T) {
	txn := model.Transaction{
		ID:         "99",
		CustomerID: "1",
		Date:       day(2024, 4, 1),
		Type:       model.TypeDebit,
		Mode:       model.ModeCash,
		Amount:     decimal.RequireFromString("1250.50"),
	}

	row := MarshalTransaction(txn)
	assert.Equal(t, "", row[txnColCategory])
	assert.Equal(t, "", row[txnColAlignment])
	assert.Equal(t, "1250.5", row[txnColAmount])

	got, err := UnmarshalTransaction(row)
	require.NoError(t, err)
	assert.Equal(t, model.AlignmentNone, got.PurposeAlignment)
	assert.Empty(t, got.Category)
	assert.True(t, got.Amount.Equal(txn.Amount))
}

func TestReadTransactions_HeaderOnly(t *testing.T) {
	got, err := ReadTransactions(strings.NewReader(TransactionHeader + "\n"))
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ReadTransactions(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestReadTransactions_Errors(t *testing.T) {
	tests := []struct {
		name string
		row  string
		want string
	}{
		{"bad date", "1,1,16/01/2024,CREDIT,RTGS,100,d,r,,", "parsing date"},
		{"bad amount", "1,1,2024-01-16,CREDIT,RTGS,lots,d,r,,", "parsing amount"},
		{"bad type", "1,1,2024-01-16,REFUND,RTGS,100,d,r,,", "transaction type"},
		{"bad mode", "1,1,2024-01-16,CREDIT,UPI,100,d,r,,", "mode"},
		{"bad alignment", "1,1,2024-01-16,CREDIT,RTGS,100,d,r,,MAYBE", "purpose alignment"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadTransactions(strings.NewReader(TransactionHeader + "\n" + tt.row + "\n"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Contains(t, err.Error(), "row 2")
		})
	}
}

func TestReadTransactions_WrongFieldCount(t *testing.T) {
	_, err := ReadTransactions(strings.NewReader(TransactionHeader + "\n1,1,2024-01-16\n"))
	assert.Error(t, err)
}

func TestUnmarshalCustomer_Errors(t *testing.T) {
	_, err := UnmarshalCustomer([]string{"1", "two"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 8 fields")

	row := MarshalCustomer(SeedCustomers()[0])
	row[custColAmount] = "five million"
	_, err = UnmarshalCustomer(row)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing loan_amount")

	row = MarshalCustomer(SeedCustomers()[0])
	row[custColDisbDate] = "Jan 15"
	_, err = UnmarshalCustomer(row)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing disbursement_date")
}

func TestReadTestdata(t *testing.T) {
	cf, err := os.Open("../../testdata/customers.csv")
	require.NoError(t, err)
	defer cf.Close()

	customers, err := ReadCustomers(cf)
	require.NoError(t, err)
	require.Len(t, customers, 10)
	assert.Equal(t, "Rajesh Kumar", customers[0].Name)
	assert.Equal(t, "Food & Beverage", customers[7].Sector)

	tf, err := os.Open("../../testdata/transactions.csv")
	require.NoError(t, err)
	defer tf.Close()

	txns, err := ReadTransactions(tf)
	require.NoError(t, err)
	require.Len(t, txns, 14)
	assert.Equal(t, "Equipment Purchase - Textile Machinery", txns[1].Description)
	assert.Equal(t, model.AlignmentDeviated, txns[13].PurposeAlignment)

	assert.Empty(t, Validate(customers, txns))
}
