package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/janakalyan/loanwatch/internal/config"
	"github.com/janakalyan/loanwatch/internal/dataset"
	"github.com/janakalyan/loanwatch/internal/store"
)

func newInitCommand() *cobra.Command {
	var name string
	var source string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a loanwatch workspace with the built-in seed data",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			if err := runInit(cmd.Context(), absDir, name, source); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized loanwatch workspace at %s (source: %s)\n", absDir, source)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "Janakalyan Bank", "bank name")
	cmd.Flags().StringVar(&source, "source", store.SourceCSV, "data source: csv, sqlite or seed")

	return cmd
}

func runInit(ctx context.Context, dir, name, source string) error {
	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	cfg := config.Default(name)
	cfg.Data.Source = source
	if err := cfg.Validate(); err != nil {
		return err
	}

	for _, d := range []string{cfg.Data.Dir, "logs", "reports"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	seed := store.New(dataset.SeedCustomers(), dataset.SeedTransactions())
	switch source {
	case store.SourceCSV:
		if err := store.SaveDir(filepath.Join(dir, cfg.Data.Dir), seed); err != nil {
			return fmt.Errorf("writing seed data: %w", err)
		}
	case store.SourceSQLite:
		repo, err := store.OpenSQLite(ctx, filepath.Join(dir, cfg.Data.SQLitePath))
		if err != nil {
			return err
		}
		defer repo.Close()
		if err := repo.Replace(ctx, seed.Customers(), seed.Transactions()); err != nil {
			return fmt.Errorf("writing seed data: %w", err)
		}
	}

	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
