package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/janakalyan/loanwatch/internal/dataset"
	"github.com/janakalyan/loanwatch/internal/model"
)

// File names inside a CSV data directory.
const (
	CustomersFile    = "customers.csv"
	TransactionsFile = "transactions.csv"
)

// LoadDir reads customers.csv and transactions.csv from dir concurrently.
func LoadDir(ctx context.Context, dir string) (*Store, error) {
	var (
		customers []model.Customer
		txns      []model.Transaction
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		customers, err = readFile(ctx, filepath.Join(dir, CustomersFile), dataset.ReadCustomers)
		return err
	})
	g.Go(func() error {
		var err error
		txns, err = readFile(ctx, filepath.Join(dir, TransactionsFile), dataset.ReadTransactions)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return New(customers, txns), nil
}

// SaveDir writes the store's data as CSV files in dir, creating it if needed.
func SaveDir(dir string, s *Store) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	if err := writeFile(filepath.Join(dir, CustomersFile), func(f *os.File) error {
		return dataset.WriteCustomers(f, s.Customers())
	}); err != nil {
		return err
	}
	return writeFile(filepath.Join(dir, TransactionsFile), func(f *os.File) error {
		return dataset.WriteTransactions(f, s.Transactions())
	})
}

func readFile[T any](ctx context.Context, path string, read func(io.Reader) ([]T, error)) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	out, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return out, nil
}

func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
