package services

import (
	"github.com/shopspring/decimal"

	"github.com/stablefx/coin_quote_app/internal/core/domain"
	portssvc "github.com/stablefx/coin_quote_app/internal/core/ports/services"
	"github.com/stablefx/coin_quote_app/internal/utils/numfmt"
	"github.com/stablefx/coin_quote_app/internal/utils/sanitize"
)

// displayPlaces is the precision of the formatted breakdown view.
const displayPlaces = 2

// ConversionService computes itemized fee breakdowns for stablecoin/fiat
// conversions. Both directions are pure functions of their inputs and the
// immutable rate configuration: no state, no I/O, safe for concurrent use
// without coordination.
type ConversionService struct {
	rates  portssvc.RateSvcFacade
	limits domain.AmountLimits
}

// NewConversionService creates a ConversionService using the given rate
// resolver and amount limits.
func NewConversionService(rates portssvc.RateSvcFacade, limits domain.AmountLimits) *ConversionService {
	return &ConversionService{
		rates:  rates,
		limits: limits,
	}
}

// CalculateConversion produces the stablecoin-to-fiat breakdown for a raw
// amount (free-form text) and a target fiat code (case-insensitive).
//
// The provider fee is a percentage of the source amount converted at the
// customer rate; the net amount is floor-clamped at zero, and a clamp is
// a saturating output, not an error.
func (s *ConversionService) CalculateConversion(amount string, targetFiat string) domain.ConversionBreakdown {
	return s.convert(sanitize.Amount(amount, s.limits), targetFiat)
}

// CalculateConversionFromFloat is the numeric entry point of
// CalculateConversion. Non-finite and negative amounts degrade to zero
// through the sanitizer, same as malformed text.
func (s *ConversionService) CalculateConversionFromFloat(amount float64, targetFiat string) domain.ConversionBreakdown {
	return s.convert(sanitize.AmountFromFloat(amount, s.limits), targetFiat)
}

func (s *ConversionService) convert(sanitized decimal.Decimal, targetFiat string) domain.ConversionBreakdown {
	target := normalizeCode(targetFiat)

	interbank := s.rates.InterbankRate(target)
	customer := s.rates.CustomerRate(target)
	feeRatio := s.rates.FeeModel().ProviderFeeRatio

	grossFiat := sanitized.Mul(customer)
	providerFee := sanitized.Mul(feeRatio).Mul(customer)
	networkFee := s.rates.NetworkFeeInFiat(target)
	spread := s.rates.SpreadPercent(target)

	netFiat := grossFiat.Sub(providerFee).Sub(networkFee)
	if netFiat.IsNegative() {
		netFiat = decimal.Zero
	}

	return domain.ConversionBreakdown{
		Amount:         sanitized,
		TargetCurrency: target,
		InterbankRate:  interbank,
		CustomerRate:   customer,
		GrossFiat:      grossFiat,
		ProviderFee:    providerFee,
		NetworkFee:     networkFee,
		SpreadPercent:  spread,
		NetFiat:        netFiat,
		Display: domain.BreakdownDisplay{
			Amount:        numfmt.Format(sanitized, displayPlaces),
			GrossAmount:   numfmt.Format(grossFiat, displayPlaces),
			ProviderFee:   numfmt.Format(providerFee, displayPlaces),
			NetworkFee:    numfmt.Format(networkFee, displayPlaces),
			NetAmount:     numfmt.Format(netFiat, displayPlaces),
			SpreadPercent: numfmt.Format(spread, displayPlaces),
			Symbol:        s.rates.Symbol(target),
		},
	}
}

// CalculateReverseConversion determines how much stablecoin must be
// supplied so that, after the fee model, fiatAmount is what the payer
// parts with.
//
// This is an approximate inverse of the forward model, not an algebraic
// one: the forward path deducts the provider fee in fiat after the fact,
// while the reverse path bakes it into a pre-division effective rate.
// That asymmetry is the documented pricing model and is kept as-is.
func (s *ConversionService) CalculateReverseConversion(fiatAmount string, sourceFiat string, targetCoin string) domain.ReverseBreakdown {
	return s.reverse(sanitize.Amount(fiatAmount, s.limits), sourceFiat, targetCoin)
}

// CalculateReverseConversionFromFloat is the numeric entry point of
// CalculateReverseConversion.
func (s *ConversionService) CalculateReverseConversionFromFloat(fiatAmount float64, sourceFiat string, targetCoin string) domain.ReverseBreakdown {
	return s.reverse(sanitize.AmountFromFloat(fiatAmount, s.limits), sourceFiat, targetCoin)
}

func (s *ConversionService) reverse(sanitized decimal.Decimal, sourceFiat string, targetCoin string) domain.ReverseBreakdown {
	source := normalizeCode(sourceFiat)
	coin := normalizeCode(targetCoin)

	interbank := s.rates.InterbankRate(source)
	customer := s.rates.CustomerRate(source)
	feeRatio := s.rates.FeeModel().ProviderFeeRatio

	networkFee := s.rates.NetworkFeeInFiat(source)
	afterNetworkFee := sanitized.Sub(networkFee)
	if afterNetworkFee.IsNegative() {
		afterNetworkFee = decimal.Zero
	}

	// effectiveRate == 0 would make the division blow up; the contract is
	// a zero gross instead.
	effectiveRate := customer.Mul(decimal.NewFromInt(1).Sub(feeRatio))
	grossCoin := decimal.Zero
	if !effectiveRate.IsZero() {
		grossCoin = afterNetworkFee.Div(effectiveRate)
	}

	providerFeeCoin := grossCoin.Mul(feeRatio)
	providerFeeFiat := providerFeeCoin.Mul(customer)

	netCoin := grossCoin.Sub(providerFeeCoin)
	if netCoin.IsNegative() {
		netCoin = decimal.Zero
	}

	spread := s.rates.SpreadPercent(source)

	return domain.ReverseBreakdown{
		FiatAmount:      sanitized,
		SourceCurrency:  source,
		TargetCoin:      coin,
		InterbankRate:   interbank,
		CustomerRate:    customer,
		GrossStablecoin: grossCoin,
		ProviderFeeCoin: providerFeeCoin,
		ProviderFeeFiat: providerFeeFiat,
		NetworkFee:      networkFee,
		SpreadPercent:   spread,
		NetStablecoin:   netCoin,
		Display: domain.BreakdownDisplay{
			Amount:        numfmt.Format(sanitized, displayPlaces),
			GrossAmount:   numfmt.Format(grossCoin, displayPlaces),
			ProviderFee:   numfmt.Format(providerFeeCoin, displayPlaces),
			NetworkFee:    numfmt.Format(networkFee, displayPlaces),
			NetAmount:     numfmt.Format(netCoin, displayPlaces),
			SpreadPercent: numfmt.Format(spread, displayPlaces),
			Symbol:        s.rates.Symbol(source),
		},
	}
}
