package services

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/stablefx/coin_quote_app/internal/core/domain"
	"github.com/stablefx/coin_quote_app/internal/platform/config"
)

var (
	oneRate = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// RateService resolves rates, symbols, and derived fee values from the
// immutable configuration store. Unknown currency codes resolve to a rate
// of 1 and a "$" symbol, trading correctness for availability so a display
// widget keeps rendering. An implementation intended for financial
// settlement must treat an unknown code as a hard configuration error
// instead; LookupRate is provided for that.
type RateService struct {
	interbank map[string]decimal.Decimal
	customer  map[string]decimal.Decimal
	symbols   map[string]string
	fee       domain.FeeModel

	// legacyFeeCurrency, when set, reproduces the original network-fee
	// model: only this one non-reference currency converts the flat fee.
	legacyFeeCurrency string
}

// NewRateService creates a RateService over the loaded configuration.
func NewRateService(cfg *config.Config) *RateService {
	return &RateService{
		interbank:         cfg.InterbankRates,
		customer:          cfg.CustomerRates,
		symbols:           cfg.Symbols,
		fee:               cfg.FeeModel,
		legacyFeeCurrency: strings.ToUpper(cfg.LegacyNetworkFeeCurrency),
	}
}

// InterbankRate returns the reference wholesale rate for code, falling
// back to 1 for unknown codes.
func (s *RateService) InterbankRate(code string) decimal.Decimal {
	if rate, ok := s.interbank[normalizeCode(code)]; ok {
		return rate
	}
	return oneRate
}

// CustomerRate returns the rate applied to the user's funds, falling back
// to 1 for unknown codes.
func (s *RateService) CustomerRate(code string) decimal.Decimal {
	if rate, ok := s.customer[normalizeCode(code)]; ok {
		return rate
	}
	return oneRate
}

// Symbol returns the display glyph for code, falling back to "$".
func (s *RateService) Symbol(code string) string {
	if symbol, ok := s.symbols[normalizeCode(code)]; ok {
		return symbol
	}
	return "$"
}

// LookupRate returns the configured rate entry for code. The boolean is
// false when either rate is missing, letting callers fail loudly instead
// of silently pricing at 1.
func (s *RateService) LookupRate(code string) (domain.RateEntry, bool) {
	normalized := normalizeCode(code)
	interbank, okInterbank := s.interbank[normalized]
	customer, okCustomer := s.customer[normalized]
	if !okInterbank || !okCustomer {
		return domain.RateEntry{}, false
	}
	return domain.RateEntry{InterbankRate: interbank, CustomerRate: customer}, true
}

// NetworkFeeInFiat converts the flat reference-currency network fee into
// the target currency: flatFee * customerRate(target) / customerRate(reference).
// A zero or unknown reference rate is treated as 1 rather than dividing
// by zero.
//
// In legacy mode only the configured legacy currency converts; the
// reference currency and every other code receive the raw flat magnitude,
// exactly as the original mock model behaved.
func (s *RateService) NetworkFeeInFiat(code string) decimal.Decimal {
	normalized := normalizeCode(code)

	if s.legacyFeeCurrency != "" {
		if normalized == s.legacyFeeCurrency && normalized != s.fee.ReferenceCurrency {
			return s.fee.FlatNetworkFee.Mul(s.CustomerRate(normalized))
		}
		return s.fee.FlatNetworkFee
	}

	referenceRate := s.CustomerRate(s.fee.ReferenceCurrency)
	if referenceRate.IsZero() {
		referenceRate = oneRate
	}
	return s.fee.FlatNetworkFee.Mul(s.CustomerRate(normalized)).Div(referenceRate)
}

// SpreadPercent returns the signed percentage gap between interbank and
// customer rate relative to interbank, or 0 when the interbank rate is 0.
// The business expectation is customerRate <= interbankRate, but that is
// not assumed: a customer rate better than interbank yields a negative
// spread.
func (s *RateService) SpreadPercent(code string) decimal.Decimal {
	interbank := s.InterbankRate(code)
	if interbank.IsZero() {
		return decimal.Zero
	}
	return interbank.Sub(s.CustomerRate(code)).Div(interbank).Mul(hundred)
}

// FeeModel returns the active fee parameters.
func (s *RateService) FeeModel() domain.FeeModel {
	return s.fee
}

// Rates returns a copy of the full rate table for display purposes.
// Codes carrying only one of the two rates are skipped, matching
// LookupRate.
func (s *RateService) Rates() map[string]domain.RateEntry {
	table := make(map[string]domain.RateEntry, len(s.customer))
	for code := range s.customer {
		if entry, ok := s.LookupRate(code); ok {
			table[code] = entry
		}
	}
	return table
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
