package services

import (
	portssvc "github.com/stablefx/coin_quote_app/internal/core/ports/services"
	"github.com/stablefx/coin_quote_app/internal/platform/config"
)

// Container holds all the services and manages their dependencies
type Container struct {
	Rate  portssvc.RateSvcFacade
	Quote portssvc.QuoteSvcFacade
}

// NewContainer creates a new service container with properly initialized dependencies
func NewContainer(cfg *config.Config) *Container {
	rateService := NewRateService(cfg)

	return &Container{
		Rate:  rateService,
		Quote: NewConversionService(rateService, cfg.Limits),
	}
}

// Compile-time interface implementation checks
var (
	_ portssvc.RateSvcFacade  = (*RateService)(nil)
	_ portssvc.QuoteSvcFacade = (*ConversionService)(nil)
)
