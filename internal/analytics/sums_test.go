package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janakalyan/loanwatch/internal/model"
)

func TestSumByTypeAndMode(t *testing.T) {
	_, txns := seed()

	tests := []struct {
		typ  model.TransactionType
		mode model.Mode
		want string
	}{
		{model.TypeCredit, model.ModeRTGS, "29500000"},
		{model.TypeDebit, model.ModeCash, "2500000"},
		{model.TypeDebit, model.ModeNEFT, "4000000"},
		{model.TypeDebit, model.ModeCheque, "5000000"},
		{model.TypeCredit, model.ModeCash, "0"},
		{model.TypeDebit, model.ModeRTGS, "0"},
	}
	for _, tt := range tests {
		got := SumByTypeAndMode(txns, tt.typ, tt.mode)
		assert.True(t, dec(tt.want).Equal(got), "%s/%s: got %s want %s", tt.typ, tt.mode, got, tt.want)
	}
}

func TestSumByTypeAndMode_Empty(t *testing.T) {
	assert.True(t, SumByTypeAndMode(nil, model.TypeCredit, model.ModeCash).IsZero())
}

func TestSumByTypeAndMode_Additive(t *testing.T) {
	_, txns := seed()
	for _, m := range model.Modes {
		modeTotal := decimal.Zero
		for _, t := range txns {
			if t.Mode == m {
				modeTotal = modeTotal.Add(t.Amount)
			}
		}
		got := SumByTypeAndMode(txns, model.TypeCredit, m).Add(SumByTypeAndMode(txns, model.TypeDebit, m))
		assert.True(t, modeTotal.Equal(got), "mode %s", m)
	}
}

func TestTotalsByMode(t *testing.T) {
	_, txns := seed()
	got := TotalsByMode(txns)

	require.Len(t, got, len(model.Modes))
	for i, m := range model.Modes {
		assert.Equal(t, m, got[i].Mode, "modes keep display order")
	}

	assert.True(t, dec("2500000").Equal(got.Get(model.ModeCash).Debit))
	assert.True(t, got.Get(model.ModeCash).Credit.IsZero())
	assert.True(t, dec("29500000").Equal(got.Get(model.ModeRTGS).Credit))
	assert.True(t, dec("4000000").Equal(got.Get(model.ModeNEFT).Debit))
	assert.True(t, dec("5000000").Equal(got.Get(model.ModeCheque).Debit))

	assert.True(t, Sum(txns).Equal(got.Total()), "mode totals add up to the grand total")
	assert.True(t, dec("41000000").Equal(got.Total()))
}

func TestTotalsByMode_Empty(t *testing.T) {
	got := TotalsByMode(nil)
	require.Len(t, got, 4)
	assert.True(t, got.Total().IsZero())
	assert.True(t, got.Get("UPI").Total().IsZero())
}

func TestTotalsByMode_IgnoresUnknownMode(t *testing.T) {
	txns := []model.Transaction{
		txn("1", "1", model.TypeDebit, "UPI", "100"),
		txn("2", "1", model.TypeDebit, model.ModeCash, "50"),
	}
	got := TotalsByMode(txns)
	assert.True(t, dec("50").Equal(got.Total()))
}

func TestTotals(t *testing.T) {
	_, txns := seed()
	got := Totals(ForCustomer("1", txns))
	assert.True(t, dec("5000000").Equal(got.Credit))
	assert.True(t, dec("3500000").Equal(got.Debit))
	assert.True(t, dec("8500000").Equal(got.Total()))
}

func TestFilterByMode(t *testing.T) {
	_, txns := seed()

	all := FilterByMode(txns, "")
	assert.Len(t, all, len(txns))

	cash := FilterByMode(txns, model.ModeCash)
	require.Len(t, cash, 3)
	for _, c := range cash {
		assert.Equal(t, model.ModeCash, c.Mode)
	}

	all[0].Amount = dec("1")
	assert.True(t, dec("5000000").Equal(txns[0].Amount), "filter result must not alias input")
}

func TestSummarizeMode(t *testing.T) {
	_, txns := seed()

	s := SummarizeMode(txns, model.ModeNEFT)
	assert.Equal(t, 3, s.Count)
	assert.True(t, dec("4000000").Equal(s.Amount))

	s = SummarizeMode(txns, "")
	assert.Equal(t, 14, s.Count)
	assert.True(t, dec("41000000").Equal(s.Amount))
}

func TestForCustomer(t *testing.T) {
	_, txns := seed()
	assert.Len(t, ForCustomer("1", txns), 4)
	assert.Len(t, ForCustomer("10", txns), 3)

	none := ForCustomer("404", txns)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
