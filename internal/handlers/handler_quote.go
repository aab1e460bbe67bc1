package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/stablefx/coin_quote_app/internal/core/domain"
	portssvc "github.com/stablefx/coin_quote_app/internal/core/ports/services"
	"github.com/stablefx/coin_quote_app/internal/dto"
	"github.com/stablefx/coin_quote_app/internal/middleware"
)

// quoteHandler handles HTTP requests for conversion quotes.
type quoteHandler struct {
	quoteService portssvc.QuoteSvcFacade

	// defaultCoin is the stablecoin used when a reverse quote doesn't
	// name one.
	defaultCoin string
}

// newQuoteHandler creates a new quoteHandler.
func newQuoteHandler(qs portssvc.QuoteSvcFacade, defaultCoin string) *quoteHandler {
	return &quoteHandler{
		quoteService: qs,
		defaultCoin:  defaultCoin,
	}
}

// registerQuoteRoutes registers routes related to conversion quotes.
func registerQuoteRoutes(rg *gin.RouterGroup, qs portssvc.QuoteSvcFacade, defaultCoin string) {
	h := newQuoteHandler(qs, defaultCoin)

	quotes := rg.Group("/quotes")
	{
		quotes.POST("/forward", h.forwardQuote)
		quotes.POST("/reverse", h.reverseQuote)
	}
}

// forwardQuote godoc
// @Summary Quote a stablecoin-to-fiat conversion
// @Description Computes the itemized fee breakdown (gross, provider fee, network fee, spread, net) for converting a stablecoin amount into a target fiat currency. The amount field accepts a string or a number; malformed amounts are sanitized, never rejected.
// @Tags quotes
// @Accept  json
// @Produce  json
// @Param   quote body dto.ForwardQuoteRequest true "Amount and target currency"
// @Success 200 {object} dto.ForwardQuoteResponse
// @Failure 400 {object} map[string]string "Invalid request format or currency code"
// @Router /quotes/forward [post]
func (h *quoteHandler) forwardQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ForwardQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for forward quote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	var breakdown domain.ConversionBreakdown
	if f, ok := req.Amount.Float(); ok {
		breakdown = h.quoteService.CalculateConversionFromFloat(f, req.TargetCurrency)
	} else {
		breakdown = h.quoteService.CalculateConversion(req.Amount.String(), req.TargetCurrency)
	}

	quoteID := uuid.NewString()
	logger.Info("Forward quote computed",
		slog.String("quote_id", quoteID),
		slog.String("target_currency", breakdown.TargetCurrency),
		slog.String("amount", breakdown.Amount.String()),
		slog.String("net_fiat", breakdown.NetFiat.String()),
	)
	c.JSON(http.StatusOK, dto.ToForwardQuoteResponse(&breakdown, quoteID))
}

// reverseQuote godoc
// @Summary Quote a fiat-to-stablecoin conversion
// @Description Computes how much stablecoin must be supplied so that, after fees, the payer parts with the given fiat amount.
// @Tags quotes
// @Accept  json
// @Produce  json
// @Param   quote body dto.ReverseQuoteRequest true "Fiat amount, source currency, optional target coin"
// @Success 200 {object} dto.ReverseQuoteResponse
// @Failure 400 {object} map[string]string "Invalid request format or currency code"
// @Router /quotes/reverse [post]
func (h *quoteHandler) reverseQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ReverseQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for reverse quote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	targetCoin := req.TargetCoin
	if targetCoin == "" {
		targetCoin = h.defaultCoin
	}

	var breakdown domain.ReverseBreakdown
	if f, ok := req.Amount.Float(); ok {
		breakdown = h.quoteService.CalculateReverseConversionFromFloat(f, req.SourceCurrency, targetCoin)
	} else {
		breakdown = h.quoteService.CalculateReverseConversion(req.Amount.String(), req.SourceCurrency, targetCoin)
	}

	quoteID := uuid.NewString()
	logger.Info("Reverse quote computed",
		slog.String("quote_id", quoteID),
		slog.String("source_currency", breakdown.SourceCurrency),
		slog.String("fiat_amount", breakdown.FiatAmount.String()),
		slog.String("net_stablecoin", breakdown.NetStablecoin.String()),
	)
	c.JSON(http.StatusOK, dto.ToReverseQuoteResponse(&breakdown, quoteID))
}
