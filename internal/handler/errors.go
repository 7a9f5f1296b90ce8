package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
)

// ErrInvalidQuantity is returned when the quantity is missing, not numeric,
// or not greater than zero.
var ErrInvalidQuantity = fiber.NewError(fiber.StatusBadRequest, "Invalid quantity")

// ErrInsufficientLiquidityUnprocessable maps a trade that would exhaust a
// reserve to a 422 error.
var ErrInsufficientLiquidityUnprocessable = fiber.NewError(fiber.StatusUnprocessableEntity, "Insufficient liquidity")

// ErrTradeFailedInternal signals a generic server-side settlement error.
var ErrTradeFailedInternal = fiber.NewError(fiber.StatusInternalServerError, "trade failed")

// ErrMissingToken is returned when the request carries no bearer token.
var ErrMissingToken = fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")

// ErrInvalidToken is returned when the bearer token fails verification.
var ErrInvalidToken = fiber.NewError(fiber.StatusForbidden, "Forbidden")

// ErrRateLimited is returned once a client exceeds its request budget.
var ErrRateLimited = fiber.NewError(fiber.StatusTooManyRequests, "Too many requests")

// ErrorHandler renders every error as {"error": "<message>"}.
func ErrorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "internal server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}

	return c.Status(code).JSON(fiber.Map{"error": msg})
}
