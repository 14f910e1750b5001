// Package report turns analytics results into tables and renders them as
// text, CSV or XLSX.
package report

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/janakalyan/loanwatch/internal/money"
)

// Kind tells exporters how to render a column.
type Kind int

const (
	KindText    Kind = iota // string
	KindAmount              // decimal.Decimal, rupees
	KindPercent             // decimal.Decimal, 0-100
	KindCount               // int
)

// Column is a table column.
type Column struct {
	Header string
	Kind   Kind
}

// Row holds one value per column: string for text, decimal.Decimal for
// amounts and percentages, int for counts.
type Row []any

// Table is a titled grid of typed values.
type Table struct {
	Name    string // short identifier, used as the XLSX sheet name
	Title   string
	Columns []Column
	Rows    []Row
}

// AddRow appends a row. It panics if the number of values does not match the
// columns.
func (t *Table) AddRow(values ...any) {
	if len(values) != len(t.Columns) {
		panic("report: row width does not match table " + t.Name)
	}
	t.Rows = append(t.Rows, Row(values))
}

// Formatted renders a cell for people: rupee amounts, one-decimal percentages.
func Formatted(kind Kind, v any) string {
	switch kind {
	case KindAmount:
		return money.FormatINR(asDecimal(v))
	case KindPercent:
		return money.FormatPercent(asDecimal(v))
	case KindCount:
		return strconv.Itoa(asInt(v))
	default:
		return asString(v)
	}
}

// Plain renders a cell for machines: unformatted amounts, two-decimal percentages.
func Plain(kind Kind, v any) string {
	switch kind {
	case KindAmount:
		return asDecimal(v).String()
	case KindPercent:
		return asDecimal(v).StringFixed(2)
	case KindCount:
		return strconv.Itoa(asInt(v))
	default:
		return asString(v)
	}
}

func asDecimal(v any) decimal.Decimal {
	if d, ok := v.(decimal.Decimal); ok {
		return d
	}
	return decimal.Zero
}

func asInt(v any) int {
	if n, ok := v.(int); ok {
		return n
	}
	return 0
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
