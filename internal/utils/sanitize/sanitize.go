// Package sanitize normalizes free-form numeric text into safe decimal
// amounts. It never returns an error: malformed input degrades to the
// closest valid value so callers can keep recalculating live as the user
// types.
package sanitize

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/stablefx/coin_quote_app/internal/core/domain"
)

// maxFractionDigits is the most fractional digits kept by CleanNumericText.
const maxFractionDigits = 6

// CleanNumericText strips every rune that is not a digit or a decimal
// point, keeps only the first decimal point (digits around later points
// are preserved), and truncates fractional digits beyond six places.
// It is idempotent and returns "" for empty input.
func CleanNumericText(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	seenPoint := false
	fracDigits := 0
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			if seenPoint {
				if fracDigits >= maxFractionDigits {
					continue
				}
				fracDigits++
			}
			b.WriteRune(r)
		case r == '.':
			if !seenPoint {
				seenPoint = true
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// Amount parses free-form text into a decimal amount clamped into
// [limits.Min, limits.Max]. Empty, unparsable, or negative input yields
// zero. The result is always finite and inside the limits.
func Amount(raw string, limits domain.AmountLimits) decimal.Decimal {
	cleaned := strings.TrimSuffix(CleanNumericText(raw), ".")
	if cleaned == "" {
		return decimal.Zero
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return clamp(value, limits)
}

// AmountFromFloat is the numeric entry point of Amount. Non-finite and
// negative values yield zero; everything else goes through the same
// cleaning and clamping path as textual input.
func AmountFromFloat(f float64, limits domain.AmountLimits) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return decimal.Zero
	}
	return Amount(strconv.FormatFloat(f, 'f', -1, 64), limits)
}

func clamp(value decimal.Decimal, limits domain.AmountLimits) decimal.Decimal {
	if value.LessThan(limits.Min) {
		return limits.Min
	}
	if value.GreaterThan(limits.Max) {
		return limits.Max
	}
	return value
}
