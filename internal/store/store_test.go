package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janakalyan/loanwatch/internal/dataset"
)

func seedStore() *Store {
	return New(dataset.SeedCustomers(), dataset.SeedTransactions())
}

func TestStoreCustomer(t *testing.T) {
	s := seedStore()

	c, ok := s.Customer("3")
	require.True(t, ok)
	assert.Equal(t, "Mohammed Ali", c.Name)

	_, ok = s.Customer("99")
	assert.False(t, ok)
}

func TestStoreTransactionsFor(t *testing.T) {
	s := seedStore()

	txns := s.TransactionsFor("10")
	require.Len(t, txns, 3)
	assert.Equal(t, "12", txns[0].ID)
	assert.Equal(t, "14", txns[2].ID)

	none := s.TransactionsFor("7")
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestStoreKeepsLoadOrder(t *testing.T) {
	s := seedStore()
	require.Len(t, s.Customers(), 10)
	require.Len(t, s.Transactions(), 14)
	assert.Equal(t, "1", s.Customers()[0].ID)
	assert.Equal(t, "10", s.Customers()[9].ID)
}

func TestStoreSearch(t *testing.T) {
	s := seedStore()

	tests := []struct {
		term string
		want []string
	}{
		{"", []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}},
		{"kumar", []string{"1"}},
		{"BL0001243", []string{"10"}},
		{"textiles", []string{"9"}},
		{"  SHARMA ", []string{"2"}},
		{"nobody", nil},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			var got []string
			for _, c := range s.Search(tt.term) {
				got = append(got, c.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
