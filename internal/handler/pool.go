package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/shubhxg/dex-amm/internal/service"
)

type PoolHandler struct {
	BaseHandler
	service *service.TradeService
}

func NewPoolHandler(logger *slog.Logger, svc *service.TradeService) *PoolHandler {
	return &PoolHandler{
		BaseHandler: BaseHandler{
			logger: logger,
		},
		service: svc,
	}
}

// PoolResponse carries reserves as strings so no precision is lost in JSON.
type PoolResponse struct {
	BaseSymbol   string `json:"base_symbol"`
	QuoteSymbol  string `json:"quote_symbol"`
	BaseReserve  string `json:"base_reserve"`
	QuoteReserve string `json:"quote_reserve"`
	FeeRate      string `json:"fee_rate"`
	SpotPrice    string `json:"spot_price"`
}

// Handle serves GET /pool.
func (h *PoolHandler) Handle() fiber.Handler {
	return func(c fiber.Ctx) error {
		r := h.service.Reserves()
		base, quote := h.service.Symbols()
		return c.JSON(PoolResponse{
			BaseSymbol:   base,
			QuoteSymbol:  quote,
			BaseReserve:  r.Base.String(),
			QuoteReserve: r.Quote.String(),
			FeeRate:      r.FeeRate.String(),
			SpotPrice:    r.SpotPrice().String(),
		})
	}
}
