package domain

import "github.com/shopspring/decimal"

// RateEntry holds the two quoted rates for a fiat currency against the
// stablecoin. The interbank rate is reference-only; money always moves at
// the customer rate.
type RateEntry struct {
	InterbankRate decimal.Decimal `json:"interbankRate"` // e.g. 59.0 for PHP
	CustomerRate  decimal.Decimal `json:"customerRate"`  // e.g. 58.5 for PHP
}

// FeeModel holds the process-wide fee parameters. It is loaded once at
// startup and never mutated.
type FeeModel struct {
	ProviderFeeRatio  decimal.Decimal `json:"providerFeeRatio"`  // fraction in [0,1), e.g. 0.005
	FlatNetworkFee    decimal.Decimal `json:"flatNetworkFee"`    // expressed in ReferenceCurrency
	ReferenceCurrency string          `json:"referenceCurrency"` // e.g. "USD"
}

// AmountLimits is the closed interval every monetary input is clamped into
// before any calculation.
type AmountLimits struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// BreakdownDisplay is the formatted-strings view of a breakdown: every
// monetary field rendered to 2 decimal places with thousands grouping,
// ready for a UI to bind without further numeric handling.
type BreakdownDisplay struct {
	Amount        string `json:"amount"`
	GrossAmount   string `json:"grossAmount"`
	ProviderFee   string `json:"providerFee"`
	NetworkFee    string `json:"networkFee"`
	NetAmount     string `json:"netAmount"`
	SpreadPercent string `json:"spreadPercent"`
	Symbol        string `json:"symbol"`
}

// ConversionBreakdown is the itemized result of a forward (stablecoin to
// fiat) conversion. It is a value created fresh on every calculation call
// and owned by the caller.
type ConversionBreakdown struct {
	Amount         decimal.Decimal `json:"amount"`         // sanitized stablecoin input
	TargetCurrency string          `json:"targetCurrency"` // upper-cased fiat code
	InterbankRate  decimal.Decimal `json:"interbankRate"`
	CustomerRate   decimal.Decimal `json:"customerRate"`
	GrossFiat      decimal.Decimal `json:"grossFiat"`
	ProviderFee    decimal.Decimal `json:"providerFee"` // in fiat
	NetworkFee     decimal.Decimal `json:"networkFee"`  // in fiat
	SpreadPercent  decimal.Decimal `json:"spreadPercent"`
	NetFiat        decimal.Decimal `json:"netFiat"` // floor-clamped at zero

	Display BreakdownDisplay `json:"display"`
}

// ReverseBreakdown is the itemized result of a reverse (fiat to stablecoin)
// conversion: how much stablecoin must be supplied so the payer parts with
// the given fiat amount under the same fee model.
type ReverseBreakdown struct {
	FiatAmount      decimal.Decimal `json:"fiatAmount"` // sanitized fiat input
	SourceCurrency  string          `json:"sourceCurrency"`
	TargetCoin      string          `json:"targetCoin"`
	InterbankRate   decimal.Decimal `json:"interbankRate"`
	CustomerRate    decimal.Decimal `json:"customerRate"`
	GrossStablecoin decimal.Decimal `json:"grossStablecoin"`
	ProviderFeeCoin decimal.Decimal `json:"providerFeeCoin"` // in stablecoin
	ProviderFeeFiat decimal.Decimal `json:"providerFeeFiat"` // fiat equivalent
	NetworkFee      decimal.Decimal `json:"networkFee"`      // in fiat
	SpreadPercent   decimal.Decimal `json:"spreadPercent"`
	NetStablecoin   decimal.Decimal `json:"netStablecoin"` // floor-clamped at zero

	Display BreakdownDisplay `json:"display"`
}
