package dto

import (
	"github.com/shopspring/decimal"

	"github.com/stablefx/coin_quote_app/internal/core/domain"
)

// ForwardQuoteRequest defines the data needed for a stablecoin-to-fiat
// quote. Amount is free-form on purpose: the engine sanitizes rather than
// rejects, so the UI can re-quote on every keystroke.
type ForwardQuoteRequest struct {
	Amount         FlexibleAmount `json:"amount"`
	TargetCurrency string         `json:"targetCurrency" binding:"required,currencycode"`
}

// ReverseQuoteRequest defines the data needed for a fiat-to-stablecoin
// quote. TargetCoin is optional; the configured stablecoin is used when
// it is empty.
type ReverseQuoteRequest struct {
	Amount         FlexibleAmount `json:"amount"`
	SourceCurrency string         `json:"sourceCurrency" binding:"required,currencycode"`
	TargetCoin     string         `json:"targetCoin" binding:"omitempty,currencycode"`
}

// ForwardQuoteResponse is the itemized stablecoin-to-fiat breakdown. Raw
// values are exact decimals; Display carries the 2-decimal, grouped
// strings a UI binds directly.
type ForwardQuoteResponse struct {
	QuoteID        string                  `json:"quoteID"`
	Amount         decimal.Decimal         `json:"amount"`
	TargetCurrency string                  `json:"targetCurrency"`
	InterbankRate  decimal.Decimal         `json:"interbankRate"`
	CustomerRate   decimal.Decimal         `json:"customerRate"`
	GrossFiat      decimal.Decimal         `json:"grossFiat"`
	ProviderFee    decimal.Decimal         `json:"providerFee"`
	NetworkFee     decimal.Decimal         `json:"networkFee"`
	SpreadPercent  decimal.Decimal         `json:"spreadPercent"`
	NetFiat        decimal.Decimal         `json:"netFiat"`
	Display        domain.BreakdownDisplay `json:"display"`
}

// ReverseQuoteResponse is the itemized fiat-to-stablecoin breakdown.
type ReverseQuoteResponse struct {
	QuoteID         string                  `json:"quoteID"`
	FiatAmount      decimal.Decimal         `json:"fiatAmount"`
	SourceCurrency  string                  `json:"sourceCurrency"`
	TargetCoin      string                  `json:"targetCoin"`
	InterbankRate   decimal.Decimal         `json:"interbankRate"`
	CustomerRate    decimal.Decimal         `json:"customerRate"`
	GrossStablecoin decimal.Decimal         `json:"grossStablecoin"`
	ProviderFeeCoin decimal.Decimal         `json:"providerFeeCoin"`
	ProviderFeeFiat decimal.Decimal         `json:"providerFeeFiat"`
	NetworkFee      decimal.Decimal         `json:"networkFee"`
	SpreadPercent   decimal.Decimal         `json:"spreadPercent"`
	NetStablecoin   decimal.Decimal         `json:"netStablecoin"`
	Display         domain.BreakdownDisplay `json:"display"`
}

// ToForwardQuoteResponse converts a domain.ConversionBreakdown to a
// ForwardQuoteResponse DTO.
func ToForwardQuoteResponse(b *domain.ConversionBreakdown, quoteID string) ForwardQuoteResponse {
	return ForwardQuoteResponse{
		QuoteID:        quoteID,
		Amount:         b.Amount,
		TargetCurrency: b.TargetCurrency,
		InterbankRate:  b.InterbankRate,
		CustomerRate:   b.CustomerRate,
		GrossFiat:      b.GrossFiat,
		ProviderFee:    b.ProviderFee,
		NetworkFee:     b.NetworkFee,
		SpreadPercent:  b.SpreadPercent,
		NetFiat:        b.NetFiat,
		Display:        b.Display,
	}
}

// ToReverseQuoteResponse converts a domain.ReverseBreakdown to a
// ReverseQuoteResponse DTO.
func ToReverseQuoteResponse(b *domain.ReverseBreakdown, quoteID string) ReverseQuoteResponse {
	return ReverseQuoteResponse{
		QuoteID:         quoteID,
		FiatAmount:      b.FiatAmount,
		SourceCurrency:  b.SourceCurrency,
		TargetCoin:      b.TargetCoin,
		InterbankRate:   b.InterbankRate,
		CustomerRate:    b.CustomerRate,
		GrossStablecoin: b.GrossStablecoin,
		ProviderFeeCoin: b.ProviderFeeCoin,
		ProviderFeeFiat: b.ProviderFeeFiat,
		NetworkFee:      b.NetworkFee,
		SpreadPercent:   b.SpreadPercent,
		NetStablecoin:   b.NetStablecoin,
		Display:         b.Display,
	}
}
