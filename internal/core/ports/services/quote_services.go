package services

import (
	"github.com/shopspring/decimal"

	"github.com/stablefx/coin_quote_app/internal/core/domain"
)

// RateReaderSvc defines the lookup operations of the rate resolver.
// The single-code lookups are lenient: unknown currency codes fall back
// to a rate of 1 and a "$" symbol so a display widget keeps rendering.
// Callers that must fail loudly on configuration gaps use LookupRate.
type RateReaderSvc interface {
	// InterbankRate returns the reference wholesale rate for code, or 1
	// for unknown codes.
	InterbankRate(code string) decimal.Decimal

	// CustomerRate returns the rate actually applied to funds, or 1 for
	// unknown codes.
	CustomerRate(code string) decimal.Decimal

	// Symbol returns the display glyph for code, or "$" for unknown codes.
	Symbol(code string) string

	// LookupRate is the tagged alternative to the lenient lookups: the
	// boolean reports whether code has a configured rate entry.
	LookupRate(code string) (domain.RateEntry, bool)
}

// RateCalculatorSvc defines the derived-value operations of the rate
// resolver.
type RateCalculatorSvc interface {
	// NetworkFeeInFiat converts the flat reference-currency network fee
	// into the target currency.
	NetworkFeeInFiat(code string) decimal.Decimal

	// SpreadPercent returns the signed percentage gap between the
	// interbank and customer rates, relative to interbank. Positive means
	// the customer rate is worse than interbank.
	SpreadPercent(code string) decimal.Decimal
}

// RateDisplaySvc exposes the immutable configuration for display purposes
// (e.g. showing "0.5% fee" in a UI).
type RateDisplaySvc interface {
	// FeeModel returns the active fee parameters.
	FeeModel() domain.FeeModel

	// Rates returns a copy of the full rate table.
	Rates() map[string]domain.RateEntry
}

// RateSvcFacade combines all rate-resolver interfaces.
type RateSvcFacade interface {
	RateReaderSvc
	RateCalculatorSvc
	RateDisplaySvc
}

// QuoteSvcFacade defines the conversion calculators. Both operations are
// pure: they never fail, never block, and are safe for concurrent use.
type QuoteSvcFacade interface {
	// CalculateConversion produces the stablecoin-to-fiat fee breakdown
	// for a raw amount and a target fiat code.
	CalculateConversion(amount string, targetFiat string) domain.ConversionBreakdown

	// CalculateConversionFromFloat is the numeric entry point of
	// CalculateConversion, for amounts that arrive as JSON numbers.
	CalculateConversionFromFloat(amount float64, targetFiat string) domain.ConversionBreakdown

	// CalculateReverseConversion inverse-solves the fee model: how much
	// stablecoin must be supplied so the payer parts with fiatAmount.
	CalculateReverseConversion(fiatAmount string, sourceFiat string, targetCoin string) domain.ReverseBreakdown

	// CalculateReverseConversionFromFloat is the numeric entry point of
	// CalculateReverseConversion.
	CalculateReverseConversionFromFloat(fiatAmount float64, sourceFiat string, targetCoin string) domain.ReverseBreakdown
}
