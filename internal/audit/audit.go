// Package audit records settled trades to an append-only trail.
package audit

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shubhxg/dex-amm/pkg/amm"
)

// TradeEvent is the audit record of one settled trade.
type TradeEvent struct {
	ID            uuid.UUID
	Direction     amm.Direction
	Trader        string
	BaseSymbol    string
	QuoteSymbol   string
	Quantity      decimal.Decimal
	CounterAmount decimal.Decimal
	Fee           decimal.Decimal
	BaseReserve   decimal.Decimal
	QuoteReserve  decimal.Decimal
	SettledAt     time.Time
}

// NewTradeEvent builds the audit record for res.
func NewTradeEvent(trader, baseSymbol, quoteSymbol string, res amm.TradeResult, at time.Time) TradeEvent {
	return TradeEvent{
		ID:            uuid.New(),
		Direction:     res.Direction,
		Trader:        trader,
		BaseSymbol:    baseSymbol,
		QuoteSymbol:   quoteSymbol,
		Quantity:      res.Quantity,
		CounterAmount: res.CounterAmount,
		Fee:           res.FeeAmount,
		BaseReserve:   res.Reserves.Base,
		QuoteReserve:  res.Reserves.Quote,
		SettledAt:     at,
	}
}

// Summary is the human readable line for the event.
func (e TradeEvent) Summary() string {
	switch e.Direction {
	case amm.DirectionBuy:
		return fmt.Sprintf("User bought %s %s for %s %s", e.Quantity, e.BaseSymbol, e.CounterAmount, e.QuoteSymbol)
	case amm.DirectionSell:
		return fmt.Sprintf("User sold %s %s for %s %s", e.Quantity, e.QuoteSymbol, e.CounterAmount, e.BaseSymbol)
	default:
		return "trade settled"
	}
}

// Sink receives audit events.
type Sink interface {
	Record(ctx context.Context, e TradeEvent)
}

// LogSink writes events as structured records to a slog.Logger.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Record(ctx context.Context, e TradeEvent) {
	s.logger.LogAttrs(ctx, slog.LevelInfo, e.Summary(),
		slog.String("trade_id", e.ID.String()),
		slog.String("direction", string(e.Direction)),
		slog.String("trader", e.Trader),
		slog.String("quantity", e.Quantity.String()),
		slog.String("counter_amount", e.CounterAmount.String()),
		slog.String("fee", e.Fee.String()),
		slog.String("base_reserve", e.BaseReserve.String()),
		slog.String("quote_reserve", e.QuoteReserve.String()),
		slog.Time("settled_at", e.SettledAt),
	)
}

// OpenFile opens path for appending, creating it if needed.
func OpenFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open audit log %s: %w", path, err)
	}
	return f, nil
}
