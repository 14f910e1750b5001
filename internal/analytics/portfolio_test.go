package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janakalyan/loanwatch/internal/model"
)

func TestBankSummary(t *testing.T) {
	customers, _ := seed()
	got := BankSummary(customers)
	assert.Equal(t, 10, got.CustomerCount)
	assert.True(t, dec("49500000").Equal(got.TotalLoanAmount))

	empty := BankSummary(nil)
	assert.Equal(t, 0, empty.CustomerCount)
	assert.True(t, empty.TotalLoanAmount.IsZero())
}

func TestUtilizationRate(t *testing.T) {
	customers, txns := seed()

	tests := []struct {
		idx  int
		want float64
	}{
		{0, 70},    // 35L of 50L
		{1, 50},    // 15L of 30L
		{2, 40},    // 30L of 75L
		{3, 0},     // disbursed, nothing spent
		{9, 71.43}, // 25L of 35L
	}
	for _, tt := range tests {
		got := UtilizationRate(customers[tt.idx], txns)
		assert.InDelta(t, tt.want, got.InexactFloat64(), 0.01, "customer %s", customers[tt.idx].ID)
	}

	zeroLoan := model.Customer{ID: "1"}
	assert.True(t, UtilizationRate(zeroLoan, txns).IsZero())
}

func TestCashDebits(t *testing.T) {
	customers, txns := seed()
	got := CashDebits(customers, txns)
	require.Len(t, got, 3)

	assert.Equal(t, "1", got[0].Customer.ID)
	assert.Equal(t, 1, got[0].Count)
	assert.True(t, dec("500000").Equal(got[0].Total))

	assert.Equal(t, "5", got[1].Customer.ID)
	assert.True(t, dec("1000000").Equal(got[1].Total))

	assert.Equal(t, "10", got[2].Customer.ID)
	assert.True(t, dec("1000000").Equal(got[2].Total))
}

func TestCashDebits_None(t *testing.T) {
	customers, _ := seed()
	got := CashDebits(customers, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBehavior(t *testing.T) {
	customers, txns := seed()

	got := Behavior(customers, txns, DefaultThresholds())
	assert.Equal(t, BehaviorMetrics{LoanMisuse: 1, FraudRisk: 0, FundDiversion: 4, ActiveAlerts: 2}, got)

	th := DefaultThresholds()
	th.HighValueCash = dec("999999")
	assert.Equal(t, 2, Behavior(customers, txns, th).FraudRisk)
}

func TestBehavior_Empty(t *testing.T) {
	assert.Equal(t, BehaviorMetrics{}, Behavior(nil, nil, DefaultThresholds()))
}

func TestCompliance(t *testing.T) {
	customers, txns := seed()
	rows := Compliance(customers, txns, DefaultThresholds())
	require.Len(t, rows, len(customers))

	byID := make(map[string]ComplianceRow, len(rows))
	for _, r := range rows {
		byID[r.Customer.ID] = r
	}

	assert.Equal(t, LevelHigh, byID["1"].Compliance)
	assert.Equal(t, LevelLow, byID["1"].Risk)
	assert.Len(t, byID["1"].NonCompliant, 1)
	assert.InDelta(t, 70, byID["1"].UtilizationRate.InexactFloat64(), 0.001)

	assert.Equal(t, LevelMedium, byID["5"].Compliance)

	assert.Equal(t, LevelLow, byID["10"].Compliance)
	assert.Equal(t, LevelHigh, byID["10"].Risk)
	assert.Len(t, byID["10"].NonCompliant, 2)

	// No transactions: no deviation.
	assert.Equal(t, LevelHigh, byID["6"].Compliance)
	assert.True(t, byID["6"].Deviation.IsZero())
	assert.Empty(t, byID["6"].NonCompliant)

	assert.Equal(t, "1", rows[0].Customer.ID, "rows keep customer order")
}
