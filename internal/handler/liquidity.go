package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/shopspring/decimal"
	"github.com/shubhxg/dex-amm/internal/service"
)

type LiquidityHandler struct {
	BaseHandler
	service *service.TradeService
}

func NewLiquidityHandler(logger *slog.Logger, svc *service.TradeService) *LiquidityHandler {
	return &LiquidityHandler{
		BaseHandler: BaseHandler{
			logger: logger,
		},
		service: svc,
	}
}

type AddLiquidityRequest struct {
	Base  decimal.Decimal `json:"base"`
	Quote decimal.Decimal `json:"quote"`
}

// Add handles POST /add-liquidity.
func (h *LiquidityHandler) Add() fiber.Handler {
	return func(c fiber.Ctx) error {
		var req AddLiquidityRequest
		// The body is optional while deposits are unsupported.
		if len(c.Body()) > 0 {
			if err := c.Bind().JSON(&req); err != nil {
				h.logger.Debug("failed to bind add-liquidity body", "err", err)
			}
		}

		err := h.service.AddLiquidity(c.Context(), traderFrom(c), req.Base, req.Quote)
		if errors.Is(err, service.ErrNotImplemented) {
			return c.Status(fiber.StatusNotImplemented).JSON(fiber.Map{"message": "Not implemented yet"})
		}
		if err != nil {
			h.logger.Error("add liquidity failed", "err", err)
			return ErrTradeFailedInternal
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
