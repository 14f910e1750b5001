package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/janakalyan/loanwatch/internal/analytics"
	"github.com/janakalyan/loanwatch/internal/config"
	"github.com/janakalyan/loanwatch/internal/logging"
	"github.com/janakalyan/loanwatch/internal/report"
	"github.com/janakalyan/loanwatch/internal/runlog"
	"github.com/janakalyan/loanwatch/internal/store"
)

// globalOptions holds the persistent flags shared by every report command.
type globalOptions struct {
	workspace string
	format    string
	out       string
	logLevel  string
}

// workspace is an opened loanwatch workspace with its dataset loaded.
type workspace struct {
	root       string
	cfg        *config.Config
	log        *logrus.Logger
	data       *store.Store
	thresholds analytics.Thresholds
}

// open reads the workspace config, builds the logger and loads the dataset.
func (o *globalOptions) open(cmd *cobra.Command) (*workspace, error) {
	ws, err := o.openConfig(cmd)
	if err != nil {
		return nil, err
	}

	opts := store.Options{
		Source:     ws.cfg.Data.Source,
		Dir:        ws.cfg.Data.Dir,
		SQLitePath: ws.cfg.Data.SQLitePath,
	}
	data, err := store.Open(cmd.Context(), ws.root, opts)
	if err != nil {
		logging.LogError(ws.log, "commands", "open", "loading dataset", opts, err)
		return nil, fmt.Errorf("loading %s data: %w", opts.Source, err)
	}
	ws.data = data

	ws.log.WithFields(logrus.Fields{
		"source":       opts.Source,
		"customers":    len(data.Customers()),
		"transactions": len(data.Transactions()),
	}).Debug("dataset loaded")
	return ws, nil
}

// openConfig reads and validates the workspace config without loading data.
func (o *globalOptions) openConfig(cmd *cobra.Command) (*workspace, error) {
	root, err := filepath.Abs(o.workspace)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	// Variables already set, including those from the working directory's
	// .env, win over the workspace .env.
	if err := godotenv.Load(filepath.Join(root, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading %s: %w", filepath.Join(root, ".env"), err)
	}

	cfg, err := config.Load(filepath.Join(root, config.FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s is not a loanwatch workspace (run loanwatch init): %w", root, err)
		}
		return nil, err
	}
	cfg.ApplyEnv()
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	return &workspace{
		root:       root,
		cfg:        cfg,
		log:        logger,
		thresholds: cfg.Thresholds.Analytics(),
	}, nil
}

// resolveFormat picks the output format: --format, then the --out extension, then config.
func (o *globalOptions) resolveFormat(ws *workspace) string {
	if o.format != "" {
		return strings.ToLower(o.format)
	}
	switch strings.ToLower(filepath.Ext(o.out)) {
	case ".xlsx":
		return "xlsx"
	case ".csv":
		return "csv"
	case ".txt":
		return "text"
	}
	return ws.cfg.Report.Format
}

// emit renders tables to stdout or --out and records the run in the report log.
func (o *globalOptions) emit(cmd *cobra.Command, ws *workspace, command, customer string, tables []report.Table) error {
	registry := report.DefaultRegistry()
	format := o.resolveFormat(ws)
	exporter := registry.Get(format)
	if exporter == nil {
		return fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(registry.Formats(), ", "))
	}

	output := "-"
	if o.out == "" {
		if format == "xlsx" {
			return errors.New("xlsx output needs --out")
		}
		if err := exporter.Export(cmd.OutOrStdout(), tables); err != nil {
			return fmt.Errorf("writing %s report: %w", format, err)
		}
	} else {
		output = o.out
		if err := writeReport(o.out, func(w io.Writer) error { return exporter.Export(w, tables) }); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s report to %s\n", format, o.out)
	}

	rows := report.RowCount(tables)
	entry := runlog.Entry{
		Timestamp: time.Now().UTC(),
		Command:   command,
		Customer:  customer,
		Format:    format,
		Rows:      rows,
		Output:    output,
	}
	if err := runlog.Append(ws.root, []runlog.Entry{entry}); err != nil {
		ws.log.WithError(err).Warn("could not append to report log")
	}
	ws.log.WithFields(logrus.Fields{"command": command, "format": format, "rows": rows}).Info("report written")
	return nil
}

func writeReport(path string, export func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := export(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
