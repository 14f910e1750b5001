package analytics

import "github.com/shopspring/decimal"

// Level is a three-step rating used for both compliance and risk.
type Level string

const (
	LevelHigh   Level = "High"
	LevelMedium Level = "Medium"
	LevelLow    Level = "Low"
)

// Thresholds configures classification and alerting. Percentages are 0-100.
type Thresholds struct {
	// Deviation at or below HighCompliance rates High compliance and Low risk.
	HighCompliance decimal.Decimal
	// Deviation at or below MediumCompliance (and above HighCompliance) rates Medium.
	MediumCompliance decimal.Decimal
	// Customers whose deviation is strictly above MisuseAbove count as loan misuse.
	MisuseAbove decimal.Decimal
	// Customers whose deviation is strictly above AlertAbove raise an active alert.
	AlertAbove decimal.Decimal
	// Cash debits strictly above HighValueCash count as fraud risk.
	HighValueCash decimal.Decimal
}

// DefaultThresholds returns the bank's standard monitoring thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		HighCompliance:   decimal.NewFromInt(10),
		MediumCompliance: decimal.NewFromInt(20),
		MisuseAbove:      decimal.NewFromInt(20),
		AlertAbove:       decimal.NewFromInt(10),
		HighValueCash:    decimal.NewFromInt(1000000),
	}
}

// Compliance rates a deviation percentage. Boundaries are inclusive.
func (th Thresholds) Compliance(pct decimal.Decimal) Level {
	switch {
	case pct.LessThanOrEqual(th.HighCompliance):
		return LevelHigh
	case pct.LessThanOrEqual(th.MediumCompliance):
		return LevelMedium
	default:
		return LevelLow
	}
}

// Risk is the inverse of Compliance on the same boundaries.
func (th Thresholds) Risk(pct decimal.Decimal) Level {
	switch th.Compliance(pct) {
	case LevelHigh:
		return LevelLow
	case LevelMedium:
		return LevelMedium
	default:
		return LevelHigh
	}
}

// ClassifyCompliance rates pct with DefaultThresholds: <=10 High, <=20 Medium, else Low.
func ClassifyCompliance(pct decimal.Decimal) Level {
	return DefaultThresholds().Compliance(pct)
}

// ClassifyRisk rates pct with DefaultThresholds: <=10 Low, <=20 Medium, else High.
func ClassifyRisk(pct decimal.Decimal) Level {
	return DefaultThresholds().Risk(pct)
}
