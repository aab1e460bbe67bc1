package dto

import (
	"github.com/shopspring/decimal"

	"github.com/stablefx/coin_quote_app/internal/core/domain"
)

// RateTableResponse is the display view of the active configuration: the
// full rate table plus the fee parameters, for UIs that show "0.5% fee"
// style labels.
type RateTableResponse struct {
	Rates              map[string]domain.RateEntry `json:"rates"`
	ProviderFeeRatio   decimal.Decimal             `json:"providerFeeRatio"`
	ProviderFeeDisplay string                      `json:"providerFeeDisplay"` // e.g. "0.50"
	FlatNetworkFee     decimal.Decimal             `json:"flatNetworkFee"`
	ReferenceCurrency  string                      `json:"referenceCurrency"`
}

// RateDetailResponse is the display view of a single currency: its rates,
// glyph, and the derived spread and network fee.
type RateDetailResponse struct {
	CurrencyCode  string          `json:"currencyCode"`
	InterbankRate decimal.Decimal `json:"interbankRate"`
	CustomerRate  decimal.Decimal `json:"customerRate"`
	Symbol        string          `json:"symbol"`
	SpreadPercent decimal.Decimal `json:"spreadPercent"`
	NetworkFee    decimal.Decimal `json:"networkFee"`
}
