package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stablefx/coin_quote_app/internal/core/domain"
	"github.com/stablefx/coin_quote_app/internal/core/services"
	"github.com/stablefx/coin_quote_app/internal/handlers"
	"github.com/stablefx/coin_quote_app/internal/platform/config"
)

func newRatesRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		StablecoinCode: "USDC",
		InterbankRates: map[string]decimal.Decimal{
			"USD": decimal.RequireFromString("1.0"),
			"PHP": decimal.RequireFromString("59.0"),
		},
		CustomerRates: map[string]decimal.Decimal{
			"USD": decimal.RequireFromString("0.9975"),
			"PHP": decimal.RequireFromString("58.5"),
		},
		Symbols: map[string]string{"USD": "$", "PHP": "₱"},
		FeeModel: domain.FeeModel{
			ProviderFeeRatio:  decimal.RequireFromString("0.005"),
			FlatNetworkFee:    decimal.RequireFromString("2.0"),
			ReferenceCurrency: "USD",
		},
		Limits: domain.AmountLimits{Min: decimal.Zero, Max: decimal.NewFromInt(100000)},
	}

	r := gin.New()
	handlers.RegisterRoutes(r, cfg, services.NewContainer(cfg))
	return r
}

func TestGetRateTable(t *testing.T) {
	router := newRatesRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rates", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "USD", resp["referenceCurrency"])
	assert.Equal(t, "0.50", resp["providerFeeDisplay"])
	rates := resp["rates"].(map[string]any)
	assert.Len(t, rates, 2)
}

func TestGetRateKnownCurrency(t *testing.T) {
	router := newRatesRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rates/php", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "PHP", resp["currencyCode"])
	assert.Equal(t, "₱", resp["symbol"])
}

func TestGetRateUnknownCurrencyFailsLoudly(t *testing.T) {
	// The quote path prices unknown codes at the lenient default; the
	// rates endpoint is the loud alternative.
	router := newRatesRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rates/EUR", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
