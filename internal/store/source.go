package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/janakalyan/loanwatch/internal/dataset"
)

// Data source names accepted by Open.
const (
	SourceCSV    = "csv"
	SourceSQLite = "sqlite"
	SourceSeed   = "seed"
)

// ErrUnknownSource is returned by Open for an unrecognized source name.
var ErrUnknownSource = errors.New("unknown data source")

// Options selects and locates a data source. Relative paths are resolved
// against the workspace root.
type Options struct {
	Source     string
	Dir        string
	SQLitePath string
}

// Open loads the dataset described by opts.
func Open(ctx context.Context, workspace string, opts Options) (*Store, error) {
	switch opts.Source {
	case SourceCSV:
		return LoadDir(ctx, resolve(workspace, opts.Dir))
	case SourceSQLite:
		path := resolve(workspace, opts.SQLitePath)
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("opening database %s: %w", path, err)
		}
		repo, err := OpenSQLite(ctx, path)
		if err != nil {
			return nil, err
		}
		defer repo.Close()
		return repo.Load(ctx)
	case SourceSeed:
		return New(dataset.SeedCustomers(), dataset.SeedTransactions()), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, opts.Source)
	}
}

func resolve(workspace, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(workspace, path)
}
