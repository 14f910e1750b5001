package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/janakalyan/loanwatch/internal/dataset"
	"github.com/janakalyan/loanwatch/internal/model"
)

// SQLiteRepository persists a dataset in a SQLite file.
type SQLiteRepository struct {
	db      *sql.DB
	version uint
}

// OpenSQLite opens (creating if needed) the database at dbPath and migrates it.
func OpenSQLite(ctx context.Context, dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	repo := &SQLiteRepository{db: db}
	if repo.version, err = repo.upgradeSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating %s: %w", dbPath, err)
	}
	return repo, nil
}

// SchemaVersion is the migration version the database is at.
func (r *SQLiteRepository) SchemaVersion() uint {
	return r.version
}

// Close closes the database.
func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Replace overwrites the stored dataset with customers and txns in one transaction.
func (r *SQLiteRepository) Replace(ctx context.Context, customers []model.Customer, txns []model.Transaction) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	for _, stmt := range []string{"DELETE FROM transactions", "DELETE FROM customers"} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("clearing tables: %w", err)
		}
	}

	for i, c := range customers {
		_, err := tx.ExecContext(ctx, `INSERT INTO customers
			(id, position, name, business_name, sector, loan_account_number, loan_amount, disbursement_date, intended_purpose)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.ID, i, c.Name, c.BusinessName, c.Sector, c.LoanAccountNumber,
			c.LoanAmount.String(), c.DisbursementDate.Format(dataset.DateFormat), c.IntendedPurpose)
		if err != nil {
			return fmt.Errorf("insert customer %s: %w", c.ID, err)
		}
	}

	for i, t := range txns {
		_, err := tx.ExecContext(ctx, `INSERT INTO transactions
			(id, position, customer_id, date, type, mode, amount, description, reference, category, purpose_alignment)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, i, t.CustomerID, t.Date.Format(dataset.DateFormat), string(t.Type), string(t.Mode),
			t.Amount.String(), t.Description, t.Reference, t.Category, string(t.PurposeAlignment))
		if err != nil {
			return fmt.Errorf("insert transaction %s: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Load reads the whole dataset in insertion order.
func (r *SQLiteRepository) Load(ctx context.Context) (*Store, error) {
	customers, err := r.loadCustomers(ctx)
	if err != nil {
		return nil, err
	}
	txns, err := r.loadTransactions(ctx)
	if err != nil {
		return nil, err
	}
	return New(customers, txns), nil
}

func (r *SQLiteRepository) loadCustomers(ctx context.Context) ([]model.Customer, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, business_name, sector, loan_account_number,
		loan_amount, disbursement_date, intended_purpose FROM customers ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}
	defer rows.Close()

	var out []model.Customer
	for rows.Next() {
		var (
			c         model.Customer
			amount    string
			disbursed string
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.BusinessName, &c.Sector, &c.LoanAccountNumber,
			&amount, &disbursed, &c.IntendedPurpose); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		if c.LoanAmount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("customer %s loan_amount %q: %w", c.ID, amount, err)
		}
		if c.DisbursementDate, err = time.Parse(dataset.DateFormat, disbursed); err != nil {
			return nil, fmt.Errorf("customer %s disbursement_date %q: %w", c.ID, disbursed, err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) loadTransactions(ctx context.Context) ([]model.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, customer_id, date, type, mode, amount,
		description, reference, category, purpose_alignment FROM transactions ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var out []model.Transaction
	for rows.Next() {
		var (
			t                                  model.Transaction
			date, typ, mode, amount, alignment string
		)
		if err := rows.Scan(&t.ID, &t.CustomerID, &date, &typ, &mode, &amount,
			&t.Description, &t.Reference, &t.Category, &alignment); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		if t.Date, err = time.Parse(dataset.DateFormat, date); err != nil {
			return nil, fmt.Errorf("transaction %s date %q: %w", t.ID, date, err)
		}
		if t.Type, err = model.ParseType(typ); err != nil {
			return nil, fmt.Errorf("transaction %s: %w", t.ID, err)
		}
		if t.Mode, err = model.ParseMode(mode); err != nil {
			return nil, fmt.Errorf("transaction %s: %w", t.ID, err)
		}
		if t.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("transaction %s amount %q: %w", t.ID, amount, err)
		}
		if t.PurposeAlignment, err = model.ParseAlignment(alignment); err != nil {
			return nil, fmt.Errorf("transaction %s: %w", t.ID, err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
