package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "₹0"},
		{"999", "₹999"},
		{"1000", "₹1,000"},
		{"500000", "₹5,00,000"},
		{"8500000", "₹85,00,000"},
		{"49500000", "₹4,95,00,000"},
		{"123456789", "₹12,34,56,789"},
		{"1250.50", "₹1,251"},
		{"1250.49", "₹1,250"},
		{"-2500", "-₹2,500"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatINR(decimal.RequireFromString(tt.in)), "FormatINR(%s)", tt.in)
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"5.8823529411764706", "5.9%"},
		{"41.6666666666666667", "41.7%"},
		{"0", "0.0%"},
		{"100", "100.0%"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPercent(decimal.RequireFromString(tt.in)))
	}
}
