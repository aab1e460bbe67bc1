package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "USDC", cfg.StablecoinCode)
	assert.Equal(t, "USD", cfg.FeeModel.ReferenceCurrency)
	assert.True(t, cfg.FeeModel.ProviderFeeRatio.Equal(decimal.RequireFromString("0.005")))
	assert.True(t, cfg.FeeModel.FlatNetworkFee.Equal(decimal.RequireFromString("2.0")))
	assert.True(t, cfg.Limits.Max.Equal(decimal.NewFromInt(100000)))
	assert.True(t, cfg.Limits.Min.IsZero())
	assert.Empty(t, cfg.LegacyNetworkFeeCurrency)

	// The demo table carries both rates for every fiat code.
	require.Contains(t, cfg.InterbankRates, "PHP")
	require.Contains(t, cfg.CustomerRates, "PHP")
	assert.True(t, cfg.CustomerRates["PHP"].Equal(decimal.RequireFromString("58.5")))
	assert.Equal(t, "₱", cfg.Symbols["PHP"])
}

func TestLoadConfigRejectsBadFeeRatio(t *testing.T) {
	t.Setenv("PROVIDER_FEE_RATIO", "1.5")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	// Out-of-range ratios fall back rather than failing startup.
	assert.True(t, cfg.FeeModel.ProviderFeeRatio.Equal(decimal.RequireFromString("0.005")))
}

func TestLoadConfigRejectsNonPositiveMax(t *testing.T) {
	t.Setenv("MAX_AMOUNT", "-5")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.Limits.Max.Equal(decimal.NewFromInt(100000)))
}

func TestLoadConfigMinAmount(t *testing.T) {
	t.Setenv("MIN_AMOUNT", "10")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.Limits.Min.Equal(decimal.NewFromInt(10)))
}

func TestLoadConfigMinAboveMaxResetsMin(t *testing.T) {
	t.Setenv("MIN_AMOUNT", "200000")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.Limits.Min.IsZero())
	assert.True(t, cfg.Limits.Max.Equal(decimal.NewFromInt(100000)))
}

func TestLoadConfigLegacyFeeCurrencyUppercased(t *testing.T) {
	t.Setenv("LEGACY_NETWORK_FEE_CURRENCY", "php")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "PHP", cfg.LegacyNetworkFeeCurrency)
}
