package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDirTestdata(t *testing.T) {
	s, err := LoadDir(context.Background(), filepath.Join("..", "..", "testdata"))
	require.NoError(t, err)

	assert.Len(t, s.Customers(), 10)
	assert.Len(t, s.Transactions(), 14)
	assert.Len(t, s.TransactionsFor("1"), 4)
}

func TestLoadDirMissingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, CustomersFile),
		[]byte("customer_id,name,business_name,sector,loan_account_number,loan_amount,disbursement_date,intended_purpose\n"), 0o644))

	_, err := LoadDir(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), TransactionsFile)
}

func TestLoadDirCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := LoadDir(ctx, filepath.Join("..", "..", "testdata"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSaveDirRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	require.NoError(t, SaveDir(dir, seedStore()))

	s, err := LoadDir(context.Background(), dir)
	require.NoError(t, err)

	want := seedStore()
	require.Len(t, s.Customers(), len(want.Customers()))
	require.Len(t, s.Transactions(), len(want.Transactions()))
	for i, c := range want.Customers() {
		assert.Equal(t, c.ID, s.Customers()[i].ID)
		assert.True(t, c.LoanAmount.Equal(s.Customers()[i].LoanAmount))
	}
	for i, tx := range want.Transactions() {
		assert.Equal(t, tx.ID, s.Transactions()[i].ID)
		assert.Equal(t, tx.PurposeAlignment, s.Transactions()[i].PurposeAlignment)
	}
}
