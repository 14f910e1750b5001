package dataset

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janakalyan/loanwatch/internal/model"
)

func rulesOf(errs []ValidationError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Rule
	}
	return out
}

func TestValidate_UnknownCustomer(t *testing.T) {
	txns := SeedTransactions()
	txns[0].CustomerID = "404"

	errs := Validate(SeedCustomers(), txns)
	require.Len(t, errs, 1)
	assert.Equal(t, RuleUnknownCustomer, errs[0].Rule)
	assert.Equal(t, "transaction 1", errs[0].Record)
	assert.Contains(t, errs[0].Error(), `unknown customer "404"`)
}

func TestValidate_DuplicateIDs(t *testing.T) {
	customers := append(SeedCustomers(), SeedCustomers()[0])
	txns := append(SeedTransactions(), SeedTransactions()[3])

	errs := Validate(customers, txns)
	require.Len(t, errs, 2)
	assert.Equal(t, []string{RuleDuplicateID, RuleDuplicateID}, rulesOf(errs))
	assert.Equal(t, "customer 1", errs[0].Record)
	assert.Equal(t, "transaction 4", errs[1].Record)
}

func TestValidate_FieldRules(t *testing.T) {
	txn := SeedTransactions()[0]
	txn.Amount = decimal.Zero
	txn.Mode = "UPI"

	errs := Validate(SeedCustomers(), []model.Transaction{txn})
	require.Len(t, errs, 2)
	for _, e := range errs {
		assert.Equal(t, RuleField, e.Rule)
	}
	assert.Contains(t, errs[0].Description+errs[1].Description, "Mode fails oneof")
	assert.Contains(t, errs[0].Description+errs[1].Description, "Amount fails gt=0")
}

func TestValidate_CustomerFieldRules(t *testing.T) {
	c := SeedCustomers()[0]
	c.Name = ""
	c.LoanAmount = decimal.NewFromInt(-1)

	errs := Validate([]model.Customer{c}, nil)
	require.Len(t, errs, 2)
	assert.Equal(t, "customer 1", errs[0].Record)
}

func TestValidate_OptionalAlignment(t *testing.T) {
	txn := SeedTransactions()[0]
	txn.PurposeAlignment = model.AlignmentNone
	assert.Empty(t, Validate(SeedCustomers(), []model.Transaction{txn}))

	txn.PurposeAlignment = "MAYBE"
	errs := Validate(SeedCustomers(), []model.Transaction{txn})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Description, "PurposeAlignment")
}

func TestValidate_Empty(t *testing.T) {
	assert.Empty(t, Validate(nil, nil))
}
