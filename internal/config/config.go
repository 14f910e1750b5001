package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/janakalyan/loanwatch/internal/analytics"
)

// FileName is the config file inside a workspace.
const FileName = "loanwatch.yaml"

// Environment variables consulted by ApplyEnv.
const (
	EnvDataSource = "LOANWATCH_DATA_SOURCE"
	EnvDataDir    = "LOANWATCH_DATA_DIR"
	EnvSQLitePath = "LOANWATCH_SQLITE_PATH"
	EnvLogLevel   = "LOANWATCH_LOG_LEVEL"
)

// Config represents the top-level loanwatch.yaml configuration.
type Config struct {
	Bank       BankConfig       `yaml:"bank"`
	Data       DataConfig       `yaml:"data"`
	Thresholds ThresholdsConfig `yaml:"thresholds"`
	Report     ReportConfig     `yaml:"report"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// BankConfig identifies the lending bank.
type BankConfig struct {
	Name string `yaml:"name" validate:"required"`
}

// DataConfig selects where customers and transactions are loaded from.
type DataConfig struct {
	Source     string `yaml:"source" validate:"oneof=csv sqlite seed"`
	Dir        string `yaml:"dir"`         // relative to the workspace
	SQLitePath string `yaml:"sqlite_path"` // relative to the workspace
}

// ThresholdsConfig holds the monitoring boundaries, in percent except HighValueCash (rupees).
type ThresholdsConfig struct {
	ComplianceHigh   float64 `yaml:"compliance_high" validate:"gte=0,lte=100"`
	ComplianceMedium float64 `yaml:"compliance_medium" validate:"gtefield=ComplianceHigh,lte=100"`
	MisuseAbove      float64 `yaml:"misuse_above" validate:"gte=0"`
	AlertAbove       float64 `yaml:"alert_above" validate:"gte=0"`
	HighValueCash    int64   `yaml:"high_value_cash" validate:"gte=0"`
}

// ReportConfig sets report defaults.
type ReportConfig struct {
	Year   int    `yaml:"year" validate:"gte=1900,lte=9999"`
	Format string `yaml:"format" validate:"oneof=text csv xlsx"`
}

// LoggingConfig controls the diagnostic log on stderr.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn warning error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Load reads a loanwatch.yaml file from disk. Keys missing from the file keep
// their Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default("")
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new workspace.
func Default(bankName string) *Config {
	return &Config{
		Bank: BankConfig{Name: bankName},
		Data: DataConfig{
			Source:     "csv",
			Dir:        "data",
			SQLitePath: "data/loanwatch.db",
		},
		Thresholds: ThresholdsConfig{
			ComplianceHigh:   10,
			ComplianceMedium: 20,
			MisuseAbove:      20,
			AlertAbove:       10,
			HighValueCash:    1000000,
		},
		Report: ReportConfig{
			Year:   2024,
			Format: "text",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// ApplyEnv overrides data and logging settings from LOANWATCH_* variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvDataSource); v != "" {
		c.Data.Source = strings.ToLower(v)
	}
	if v := os.Getenv(EnvDataDir); v != "" {
		c.Data.Dir = v
	}
	if v := os.Getenv(EnvSQLitePath); v != "" {
		c.Data.SQLitePath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
}

var validate = validator.New()

// Validate checks enum fields and threshold ordering.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s fails %s (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	switch c.Data.Source {
	case "csv":
		if c.Data.Dir == "" {
			return errors.New("invalid config: data.dir is required for the csv source")
		}
	case "sqlite":
		if c.Data.SQLitePath == "" {
			return errors.New("invalid config: data.sqlite_path is required for the sqlite source")
		}
	}
	return nil
}

// Analytics converts the configured thresholds for the aggregator.
func (t ThresholdsConfig) Analytics() analytics.Thresholds {
	return analytics.Thresholds{
		HighCompliance:   decimal.NewFromFloat(t.ComplianceHigh),
		MediumCompliance: decimal.NewFromFloat(t.ComplianceMedium),
		MisuseAbove:      decimal.NewFromFloat(t.MisuseAbove),
		AlertAbove:       decimal.NewFromFloat(t.AlertAbove),
		HighValueCash:    decimal.NewFromInt(t.HighValueCash),
	}
}
