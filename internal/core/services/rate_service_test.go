package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stablefx/coin_quote_app/internal/core/domain"
	"github.com/stablefx/coin_quote_app/internal/core/services"
	"github.com/stablefx/coin_quote_app/internal/platform/config"
)

// testConfig returns the demo fixture: USDC priced against USD and PHP,
// 0.5% provider fee, 2.0 USD flat network fee.
func testConfig() *config.Config {
	return &config.Config{
		InterbankRates: map[string]decimal.Decimal{
			"USD": decimal.RequireFromString("1.0"),
			"PHP": decimal.RequireFromString("59.0"),
		},
		CustomerRates: map[string]decimal.Decimal{
			"USD": decimal.RequireFromString("0.9975"),
			"PHP": decimal.RequireFromString("58.5"),
		},
		Symbols: map[string]string{
			"USD":  "$",
			"PHP":  "₱",
			"USDC": "$",
		},
		FeeModel:       domainFeeModel(),
		Limits:         domainLimits(),
		StablecoinCode: "USDC",
	}
}

func domainFeeModel() domain.FeeModel {
	return domain.FeeModel{
		ProviderFeeRatio:  decimal.RequireFromString("0.005"),
		FlatNetworkFee:    decimal.RequireFromString("2.0"),
		ReferenceCurrency: "USD",
	}
}

func domainLimits() domain.AmountLimits {
	return domain.AmountLimits{
		Min: decimal.Zero,
		Max: decimal.NewFromInt(100000),
	}
}

func TestRateService_Lookups(t *testing.T) {
	s := services.NewRateService(testConfig())

	assert.True(t, s.InterbankRate("PHP").Equal(decimal.RequireFromString("59.0")))
	assert.True(t, s.CustomerRate("PHP").Equal(decimal.RequireFromString("58.5")))
	assert.Equal(t, "₱", s.Symbol("PHP"))

	// Codes are case-insensitive.
	assert.True(t, s.CustomerRate("php").Equal(decimal.RequireFromString("58.5")))
	assert.Equal(t, "$", s.Symbol(" usd "))
}

func TestRateService_UnknownCodeFallsBackLeniently(t *testing.T) {
	s := services.NewRateService(testConfig())

	one := decimal.NewFromInt(1)
	assert.True(t, s.InterbankRate("EUR").Equal(one))
	assert.True(t, s.CustomerRate("EUR").Equal(one))
	assert.Equal(t, "$", s.Symbol("EUR"))
}

func TestRateService_LookupRateIsTagged(t *testing.T) {
	s := services.NewRateService(testConfig())

	entry, ok := s.LookupRate("usd")
	require.True(t, ok)
	assert.True(t, entry.InterbankRate.Equal(decimal.RequireFromString("1.0")))
	assert.True(t, entry.CustomerRate.Equal(decimal.RequireFromString("0.9975")))

	_, ok = s.LookupRate("EUR")
	assert.False(t, ok, "unknown code must not resolve via LookupRate")
}

func TestRateService_LookupRateRequiresBothRates(t *testing.T) {
	cfg := testConfig()
	cfg.CustomerRates["GBP"] = decimal.RequireFromString("0.78")
	s := services.NewRateService(cfg)

	_, ok := s.LookupRate("GBP")
	assert.False(t, ok, "a code missing its interbank rate is a configuration gap")

	_, listed := s.Rates()["GBP"]
	assert.False(t, listed)
}

func TestRateService_SpreadPercent(t *testing.T) {
	s := services.NewRateService(testConfig())

	// (59 - 58.5) / 59 * 100
	assert.Equal(t, "0.8475", s.SpreadPercent("PHP").StringFixed(4))
	assert.Equal(t, "0.2500", s.SpreadPercent("USD").StringFixed(4))

	// Unknown codes price both rates at 1, so the spread reads zero.
	assert.True(t, s.SpreadPercent("EUR").IsZero())
}

func TestRateService_SpreadPercentSigned(t *testing.T) {
	cfg := testConfig()
	// Customer rate better than interbank: spread must come out negative,
	// not be clamped or assumed away.
	cfg.InterbankRates["PHP"] = decimal.RequireFromString("58.0")
	s := services.NewRateService(cfg)

	assert.True(t, s.SpreadPercent("PHP").IsNegative())
}

func TestRateService_NetworkFeeInFiat_Generalized(t *testing.T) {
	s := services.NewRateService(testConfig())

	// Reference currency: 2.0 * 0.9975 / 0.9975 = 2.0 exactly.
	assert.Equal(t, "2.00", s.NetworkFeeInFiat("USD").StringFixed(2))

	// PHP: 2.0 * 58.5 / 0.9975, the generalized formula, not the
	// original's raw 117.00.
	assert.Equal(t, "117.29", s.NetworkFeeInFiat("PHP").StringFixed(2))

	// Unknown code: customer rate 1, so 2.0 / 0.9975.
	assert.Equal(t, "2.01", s.NetworkFeeInFiat("EUR").StringFixed(2))
}

func TestRateService_NetworkFeeInFiat_LegacyMode(t *testing.T) {
	cfg := testConfig()
	cfg.LegacyNetworkFeeCurrency = "PHP"
	s := services.NewRateService(cfg)

	// The original model converted exactly one non-reference currency and
	// returned the raw reference-currency magnitude for everything else.
	assert.Equal(t, "117.00", s.NetworkFeeInFiat("PHP").StringFixed(2))
	assert.Equal(t, "2.00", s.NetworkFeeInFiat("USD").StringFixed(2))
	assert.Equal(t, "2.00", s.NetworkFeeInFiat("EUR").StringFixed(2))
}

func TestRateService_FeeModelAndRates(t *testing.T) {
	s := services.NewRateService(testConfig())

	fee := s.FeeModel()
	assert.True(t, fee.ProviderFeeRatio.Equal(decimal.RequireFromString("0.005")))
	assert.Equal(t, "USD", fee.ReferenceCurrency)

	table := s.Rates()
	require.Len(t, table, 2)
	assert.True(t, table["PHP"].InterbankRate.Equal(decimal.RequireFromString("59.0")))
}
