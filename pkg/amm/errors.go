package amm

import "errors"

var (
	ErrInvalidQuantity       = errors.New("invalid quantity")
	ErrInsufficientLiquidity = errors.New("insufficient liquidity")
	ErrNotImplemented        = errors.New("not implemented")
	ErrInvalidFeeRate        = errors.New("fee rate must be in [0, 1)")
	ErrInvalidReserve        = errors.New("reserves must be greater than zero")
)
