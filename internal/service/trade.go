package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shubhxg/dex-amm/internal/audit"
	"github.com/shubhxg/dex-amm/internal/metrics"
	"github.com/shubhxg/dex-amm/pkg/amm"
)

// TradeService settles trades against a single pool and reports every
// settlement to the audit trail and metrics.
type TradeService struct {
	BaseService
	pool    *amm.Pool
	audit   audit.Sink
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewTradeService constructs a TradeService that owns pool.
func NewTradeService(logger *slog.Logger, pool *amm.Pool, sink audit.Sink, m *metrics.Metrics) *TradeService {
	m.SetReserves(pool.Reserves())
	return &TradeService{
		BaseService: BaseService{logger: logger},
		pool:        pool,
		audit:       sink,
		metrics:     m,
		now:         time.Now,
	}
}

// Buy removes quantity units of the base asset from the pool on behalf of
// trader.
func (s *TradeService) Buy(ctx context.Context, trader string, quantity decimal.Decimal) (amm.TradeResult, error) {
	return s.settle(ctx, amm.DirectionBuy, trader, quantity, s.pool.Buy)
}

// Sell trades quantity units of the quote asset for base on behalf of trader.
func (s *TradeService) Sell(ctx context.Context, trader string, quantity decimal.Decimal) (amm.TradeResult, error) {
	return s.settle(ctx, amm.DirectionSell, trader, quantity, s.pool.Sell)
}

func (s *TradeService) settle(ctx context.Context, dir amm.Direction, trader string, quantity decimal.Decimal, trade func(decimal.Decimal) (amm.TradeResult, error)) (amm.TradeResult, error) {
	s.logger.Debug("settling trade", "direction", dir, "trader", trader, "quantity", quantity.String())

	res, err := trade(quantity)
	if err != nil {
		s.metrics.ObserveRejection(dir, err)
		if errors.Is(err, amm.ErrInvalidQuantity) || errors.Is(err, amm.ErrInsufficientLiquidity) {
			return amm.TradeResult{}, err
		}
		return amm.TradeResult{}, fmt.Errorf("%s %s: %w", dir, quantity, err)
	}

	s.metrics.ObserveTrade(res)

	base, quote := s.pool.Symbols()
	s.audit.Record(ctx, audit.NewTradeEvent(trader, base, quote, res, s.now().UTC()))

	return res, nil
}

// AddLiquidity is not supported yet.
func (s *TradeService) AddLiquidity(ctx context.Context, trader string, base, quote decimal.Decimal) error {
	s.logger.Debug("add liquidity requested", "trader", trader)
	return s.pool.AddLiquidity(base, quote)
}

// Reserves returns the current pool snapshot.
func (s *TradeService) Reserves() amm.Reserves {
	return s.pool.Reserves()
}

// Symbols returns the base and quote asset symbols of the pool.
func (s *TradeService) Symbols() (base, quote string) {
	return s.pool.Symbols()
}
