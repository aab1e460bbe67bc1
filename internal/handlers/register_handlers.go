package handlers

import (
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/stablefx/coin_quote_app/cmd/docs"
	"github.com/stablefx/coin_quote_app/internal/core/services"
	"github.com/stablefx/coin_quote_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	container *services.Container,
) {
	registerCurrencyCodeValidation()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	// Setup API v1 routes, passing service interfaces
	setupAPIV1Routes(r, cfg, container)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	container *services.Container,
) {
	// The quote API is a public display surface; no auth middleware here.
	v1 := r.Group("/api/v1")

	registerQuoteRoutes(v1, container.Quote, cfg.StablecoinCode)
	registerRateRoutes(v1, container.Rate)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// registerCurrencyCodeValidation adds the `currencycode` binding rule:
// 3 to 5 letters, any case (codes are normalized upstream of the table).
func registerCurrencyCodeValidation() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("currencycode", func(fl validator.FieldLevel) bool {
		code := fl.Field().String()
		if len(code) < 3 || len(code) > 5 {
			return false
		}
		for _, r := range code {
			if !unicode.IsLetter(r) {
				return false
			}
		}
		return true
	})
}
