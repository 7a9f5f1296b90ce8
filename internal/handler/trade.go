package handler

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/shopspring/decimal"
	"github.com/shubhxg/dex-amm/internal/service"
	"github.com/shubhxg/dex-amm/pkg/amm"
)

type TradeHandler struct {
	BaseHandler
	service *service.TradeService
}

func NewTradeHandler(logger *slog.Logger, svc *service.TradeService) *TradeHandler {
	return &TradeHandler{
		BaseHandler: BaseHandler{
			logger: logger,
		},
		service: svc,
	}
}

type TradeRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
}

type TradeResponse struct {
	Message string `json:"message"`
	Fee     string `json:"fee"`
}

type tradeFunc func(ctx context.Context, trader string, quantity decimal.Decimal) (amm.TradeResult, error)

// Buy handles POST /buy-asset.
func (h *TradeHandler) Buy() fiber.Handler {
	return h.handle(h.service.Buy)
}

// Sell handles POST /sell-asset.
func (h *TradeHandler) Sell() fiber.Handler {
	return h.handle(h.service.Sell)
}

func (h *TradeHandler) handle(trade tradeFunc) fiber.Handler {
	return func(c fiber.Ctx) error {
		quantity, err := h.parseQuantity(c)
		if err != nil {
			return err
		}

		res, err := trade(c.Context(), traderFrom(c), quantity)
		if err != nil {
			return h.handleServiceError(err)
		}

		h.logger.Debug("trade settled", "direction", res.Direction, "quantity", quantity.String(), "counter", res.CounterAmount.String())
		return c.JSON(TradeResponse{
			Message: res.Message,
			Fee:     res.DisplayFee(),
		})
	}
}

func (h *TradeHandler) parseQuantity(c fiber.Ctx) (decimal.Decimal, error) {
	var req TradeRequest

	if err := c.Bind().JSON(&req); err != nil {
		h.logger.Debug("failed to bind trade body", "err", err)
		return decimal.Decimal{}, ErrInvalidQuantity
	}

	if err := amm.ValidateQuantity(req.Quantity); err != nil {
		h.logger.Debug("rejected trade quantity", "exponent", req.Quantity.Exponent())
		return decimal.Decimal{}, ErrInvalidQuantity
	}

	return req.Quantity, nil
}

func (h *TradeHandler) handleServiceError(err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidQuantity):
		return ErrInvalidQuantity
	case errors.Is(err, service.ErrInsufficientLiquidity):
		return ErrInsufficientLiquidityUnprocessable
	default:
		h.logger.Error("trade settlement failed", "err", err)
		return ErrTradeFailedInternal
	}
}
