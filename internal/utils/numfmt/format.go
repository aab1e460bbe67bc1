// Package numfmt renders amounts as fixed-precision, comma-grouped
// strings. Output is deterministic and independent of the host locale:
// "." is always the decimal separator and grouping is always by three
// digits.
package numfmt

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Format renders value with exactly places fractional digits (rounded
// half away from zero) and thousands grouping in the integer part.
// Example: Format(decimal.NewFromInt(5850), 2) == "5,850.00".
func Format(value decimal.Decimal, places int) string {
	if places < 0 {
		places = 0
	}
	fixed := value.StringFixed(int32(places))

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart := fixed
	fracPart := ""
	if i := strings.IndexByte(fixed, '.'); i >= 0 {
		intPart, fracPart = fixed[:i], fixed[i:]
	}

	return sign + group(intPart) + fracPart
}

// FormatFloat is the float64 entry point of Format. NaN and ±Inf render
// as a zero string with the requested number of decimals ("0.00" for 2),
// so a display never shows a non-numeric artifact.
func FormatFloat(value float64, places int) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Format(decimal.Zero, places)
	}
	return Format(decimal.NewFromFloat(value), places)
}

// group inserts a comma every three digits from the right of an unsigned
// integer string.
func group(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder
	b.Grow(n + (n-1)/3)
	lead := n % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
