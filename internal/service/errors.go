package service

import "github.com/shubhxg/dex-amm/pkg/amm"

var (
	ErrInvalidQuantity       = amm.ErrInvalidQuantity
	ErrInsufficientLiquidity = amm.ErrInsufficientLiquidity
	ErrNotImplemented        = amm.ErrNotImplemented
)
