package handler

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shubhxg/dex-amm/internal/service"
)

const metricsPath = "/metrics"

// RouterConfig holds the dependencies of the HTTP surface.
type RouterConfig struct {
	Logger     *slog.Logger
	Service    *service.TradeService
	AuthSecret []byte

	RateLimitMax    int
	RateLimitWindow time.Duration

	// Gatherer, when set, is served on /metrics.
	Gatherer prometheus.Gatherer
}

// NewApp builds the fiber app with every route of the pool API.
func NewApp(cfg RouterConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler,
	})

	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: cfg.RateLimitWindow,
		Next: func(c fiber.Ctx) bool {
			return c.Path() == metricsPath
		},
		LimitReached: func(c fiber.Ctx) error {
			return ErrRateLimited
		},
	}))

	auth := NewAuthMiddleware(cfg.Logger.With("component", "auth"), cfg.AuthSecret)
	trades := NewTradeHandler(cfg.Logger.With("component", "trade"), cfg.Service)
	liquidity := NewLiquidityHandler(cfg.Logger.With("component", "liquidity"), cfg.Service)
	pool := NewPoolHandler(cfg.Logger.With("component", "pool"), cfg.Service)

	app.Post("/add-liquidity", auth, liquidity.Add())
	app.Post("/buy-asset", auth, trades.Buy())
	app.Post("/sell-asset", auth, trades.Sell())
	app.Get("/pool", pool.Handle())

	if cfg.Gatherer != nil {
		app.Get(metricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	return app
}
