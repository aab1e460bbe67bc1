package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/stablefx/coin_quote_app/internal/apperrors"
	portssvc "github.com/stablefx/coin_quote_app/internal/core/ports/services"
	"github.com/stablefx/coin_quote_app/internal/dto"
	"github.com/stablefx/coin_quote_app/internal/middleware"
	"github.com/stablefx/coin_quote_app/internal/utils/numfmt"
)

// rateHandler handles HTTP requests for the rate table and fee display.
type rateHandler struct {
	rateService portssvc.RateSvcFacade
}

// newRateHandler creates a new rateHandler.
func newRateHandler(rs portssvc.RateSvcFacade) *rateHandler {
	return &rateHandler{
		rateService: rs,
	}
}

// registerRateRoutes registers routes related to rates.
func registerRateRoutes(rg *gin.RouterGroup, rs portssvc.RateSvcFacade) {
	h := newRateHandler(rs)

	rates := rg.Group("/rates")
	{
		rates.GET("", h.getRateTable)
		rates.GET("/:code", h.getRate)
	}
}

// getRateTable godoc
// @Summary Get the active rate table and fee model
// @Description Returns the full interbank/customer rate table plus the provider fee and flat network fee, for display purposes.
// @Tags rates
// @Produce  json
// @Success 200 {object} dto.RateTableResponse
// @Router /rates [get]
func (h *rateHandler) getRateTable(c *gin.Context) {
	fee := h.rateService.FeeModel()
	c.JSON(http.StatusOK, dto.RateTableResponse{
		Rates:              h.rateService.Rates(),
		ProviderFeeRatio:   fee.ProviderFeeRatio,
		ProviderFeeDisplay: numfmt.FormatFloat(fee.ProviderFeeRatio.InexactFloat64()*100, 2),
		FlatNetworkFee:     fee.FlatNetworkFee,
		ReferenceCurrency:  fee.ReferenceCurrency,
	})
}

// getRate godoc
// @Summary Get one currency's rates
// @Description Returns the rate entry, symbol, spread, and converted network fee for a currency code. Unlike the quote endpoints, an unknown code fails loudly here with 404 instead of being priced at the lenient default.
// @Tags rates
// @Produce  json
// @Param   code path string true "Currency code"
// @Success 200 {object} dto.RateDetailResponse
// @Failure 404 {object} map[string]string "Unknown currency code"
// @Router /rates/{code} [get]
func (h *rateHandler) getRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	entry, ok := h.rateService.LookupRate(code)
	if !ok {
		logger.Warn("Rate lookup for unknown currency code", slog.String("code", code))
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("%s: %s", apperrors.ErrUnknownCurrency, code)})
		return
	}

	c.JSON(http.StatusOK, dto.RateDetailResponse{
		CurrencyCode:  normalizedCode(code),
		InterbankRate: entry.InterbankRate,
		CustomerRate:  entry.CustomerRate,
		Symbol:        h.rateService.Symbol(code),
		SpreadPercent: h.rateService.SpreadPercent(code),
		NetworkFee:    h.rateService.NetworkFeeInFiat(code),
	})
}

func normalizedCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
