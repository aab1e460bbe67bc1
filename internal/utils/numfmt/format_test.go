package numfmt

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		places int
		want   string
	}{
		{"zero", "0", 2, "0.00"},
		{"no grouping needed", "123.4", 2, "123.40"},
		{"single group", "5850", 2, "5,850.00"},
		{"two groups", "1234567.891", 2, "1,234,567.89"},
		{"rounds half away from zero", "0.49875", 2, "0.50"},
		{"negative grouped", "-1234.5", 2, "-1,234.50"},
		{"zero places", "1234.5", 0, "1,235"},
		{"four places", "0.847457", 4, "0.8475"},
		{"exactly three digits", "999", 2, "999.00"},
		{"four digits", "1000", 2, "1,000.00"},
		{"negative places treated as zero", "42.9", -1, "43"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(decimal.RequireFromString(tt.value), tt.places)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatFloatNonFinite(t *testing.T) {
	assert.Equal(t, "0.00", FormatFloat(math.NaN(), 2))
	assert.Equal(t, "0.00", FormatFloat(math.Inf(1), 2))
	assert.Equal(t, "0.000", FormatFloat(math.Inf(-1), 3))
	assert.Equal(t, "0", FormatFloat(math.NaN(), 0))
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "12.30", FormatFloat(12.3, 2))
	assert.Equal(t, "5,850.00", FormatFloat(5850, 2))
	assert.Equal(t, "-0.50", FormatFloat(-0.5, 2))
}
