package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/stablefx/coin_quote_app/internal/core/services"
	"github.com/stablefx/coin_quote_app/internal/handlers"
	"github.com/stablefx/coin_quote_app/internal/middleware"
	"github.com/stablefx/coin_quote_app/internal/platform/config"
)

// @title Coin Quote API
// @version 1.0
// @description Itemized stablecoin/fiat conversion fee breakdowns.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// The API is consumed by browser widgets; allow cross-origin reads.
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))

	// Per-IP rate limit; quote clients re-quote on every keystroke, so
	// the window is generous.
	rate := limiter.Rate{Period: time.Minute, Limit: 300}
	r.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))

	container := services.NewContainer(cfg)
	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
