// Package amm implements a two-asset constant-product pool with a
// proportional trade fee. All amounts are decimal.Decimal; nothing in this
// package touches floating point.
package amm

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// Direction identifies which side of the pool a trade takes.
type Direction string

const (
	DirectionBuy  Direction = "buy"
	DirectionSell Direction = "sell"
)

// Config describes the initial state of a Pool.
type Config struct {
	BaseSymbol   string
	QuoteSymbol  string
	BaseReserve  decimal.Decimal
	QuoteReserve decimal.Decimal
	FeeRate      decimal.Decimal
}

// Reserves is a point-in-time snapshot of a pool.
type Reserves struct {
	Base    decimal.Decimal
	Quote   decimal.Decimal
	FeeRate decimal.Decimal
}

// SpotPrice is the marginal price of one base unit in quote units.
func (r Reserves) SpotPrice() decimal.Decimal {
	return r.Quote.DivRound(r.Base, DivisionScale)
}

// TradeResult is the outcome of a settled trade.
type TradeResult struct {
	Direction Direction
	Quantity  decimal.Decimal
	// CounterAmount is the quote cost of a buy, or the base proceeds of a sell.
	CounterAmount decimal.Decimal
	FeeAmount     decimal.Decimal
	Message       string
	// Reserves holds the pool state right after this trade committed.
	Reserves Reserves
}

// DisplayFee formats the fee the way it is reported to traders. Pool state
// keeps full precision.
func (r TradeResult) DisplayFee() string {
	return r.FeeAmount.StringFixed(2)
}

// Pool holds the reserves of a base/quote pair. It is safe for concurrent
// use; each trade runs validation, pricing and commit under one lock.
type Pool struct {
	mu sync.Mutex

	baseSymbol  string
	quoteSymbol string
	base        decimal.Decimal
	quote       decimal.Decimal
	feeRate     decimal.Decimal
}

// NewPool validates cfg and returns a pool seeded with its reserves.
func NewPool(cfg Config) (*Pool, error) {
	if cfg.FeeRate.IsNegative() || cfg.FeeRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return nil, ErrInvalidFeeRate
	}
	if !cfg.BaseReserve.IsPositive() || !cfg.QuoteReserve.IsPositive() {
		return nil, ErrInvalidReserve
	}

	return &Pool{
		baseSymbol:  cfg.BaseSymbol,
		quoteSymbol: cfg.QuoteSymbol,
		base:        cfg.BaseReserve,
		quote:       cfg.QuoteReserve,
		feeRate:     cfg.FeeRate,
	}, nil
}

// Symbols returns the base and quote asset symbols.
func (p *Pool) Symbols() (base, quote string) {
	return p.baseSymbol, p.quoteSymbol
}

// Reserves returns the current reserves.
func (p *Pool) Reserves() Reserves {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot()
}

func (p *Pool) snapshot() Reserves {
	return Reserves{Base: p.base, Quote: p.quote, FeeRate: p.feeRate}
}

// ValidateQuantity returns ErrInvalidQuantity unless quantity is positive,
// has at most DivisionScale fractional digits and at most MaxIntegerDigits
// integer digits. The reserve scale stays bounded only under this check.
func ValidateQuantity(quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return ErrInvalidQuantity
	}
	exp := quantity.Exponent()
	if exp < -DivisionScale || exp > MaxIntegerDigits {
		return ErrInvalidQuantity
	}
	if quantity.NumDigits()+int(exp) > MaxIntegerDigits {
		return ErrInvalidQuantity
	}
	return nil
}

// chargeable reports whether a quoted trade moves a non-zero amount and, on a
// fee-bearing pool, charges a non-zero fee. Quantities too small to register
// at DivisionScale fail this check.
func (p *Pool) chargeable(gross, fee decimal.Decimal) bool {
	if !gross.IsPositive() {
		return false
	}
	return p.feeRate.IsZero() || fee.IsPositive()
}

// Buy removes quantity units of base from the pool. The trader pays the
// repriced quote amount plus the fee; the fee is taken out of the quote
// reserve.
func (p *Pool) Buy(quantity decimal.Decimal) (TradeResult, error) {
	if err := ValidateQuantity(quantity); err != nil {
		return TradeResult{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if quantity.GreaterThanOrEqual(p.base) {
		return TradeResult{}, ErrInsufficientLiquidity
	}

	q := quoteBuy(p.base, p.quote, p.feeRate, quantity)
	if !p.chargeable(q.grossPaid, q.fee) {
		return TradeResult{}, ErrInvalidQuantity
	}
	newQuote := q.newQuoteRaw.Sub(q.fee)
	if !q.newBase.IsPositive() || !newQuote.IsPositive() {
		return TradeResult{}, ErrInsufficientLiquidity
	}

	p.base = q.newBase
	p.quote = newQuote

	cost := q.grossPaid.Add(q.fee)
	return TradeResult{
		Direction:     DirectionBuy,
		Quantity:      quantity,
		CounterAmount: cost,
		FeeAmount:     q.fee,
		Message:       fmt.Sprintf("You paid %s %s for %s %s!", cost, p.quoteSymbol, quantity, p.baseSymbol),
		Reserves:      p.snapshot(),
	}, nil
}

// Sell withdraws quantity units from the quote reserve and prices the base
// side against the product of base and the remaining quote reserve. The fee
// is taken out of the base reserve.
func (p *Pool) Sell(quantity decimal.Decimal) (TradeResult, error) {
	if err := ValidateQuantity(quantity); err != nil {
		return TradeResult{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if quantity.GreaterThanOrEqual(p.quote) {
		return TradeResult{}, ErrInsufficientLiquidity
	}

	q := quoteSell(p.base, p.quote, p.feeRate, quantity)
	if !p.chargeable(q.grossReceived, q.fee) {
		return TradeResult{}, ErrInvalidQuantity
	}
	newBase := q.newBaseRaw.Sub(q.fee)
	if !newBase.IsPositive() || !q.newQuote.IsPositive() {
		return TradeResult{}, ErrInsufficientLiquidity
	}

	p.base = newBase
	p.quote = q.newQuote

	proceeds := q.grossReceived.Sub(q.fee)
	return TradeResult{
		Direction:     DirectionSell,
		Quantity:      quantity,
		CounterAmount: proceeds,
		FeeAmount:     q.fee,
		Message:       fmt.Sprintf("You sold %s %s for %s %s!", quantity, p.quoteSymbol, proceeds, p.baseSymbol),
		Reserves:      p.snapshot(),
	}, nil
}

// AddLiquidity is reserved for proportional deposits. It always fails with
// ErrNotImplemented.
func (p *Pool) AddLiquidity(base, quote decimal.Decimal) error {
	return ErrNotImplemented
}
