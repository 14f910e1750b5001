// Package money formats rupee amounts for display.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

const rupee = "₹"

// FormatINR renders whole rupees with Indian digit grouping: 8500000 -> "₹85,00,000".
// Paise are rounded half away from zero.
func FormatINR(d decimal.Decimal) string {
	rounded := d.Round(0)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}
	return sign + rupee + groupIndian(rounded.String())
}

// FormatPercent renders a percentage with one decimal place: "5.9%".
func FormatPercent(d decimal.Decimal) string {
	return d.StringFixed(1) + "%"
}

// groupIndian groups the last three digits, then every two: 12345678 -> 1,23,45,678.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	parts = append([]string{head}, parts...)
	return strings.Join(parts, ",") + "," + tail
}
