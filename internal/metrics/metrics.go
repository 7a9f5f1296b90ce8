// Package metrics exposes Prometheus collectors for pool activity.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shubhxg/dex-amm/pkg/amm"
)

const namespace = "amm"

// Trade outcomes used as the "outcome" label.
const (
	OutcomeSettled               = "settled"
	OutcomeInvalidQuantity       = "invalid_quantity"
	OutcomeInsufficientLiquidity = "insufficient_liquidity"
	OutcomeError                 = "error"
)

type Metrics struct {
	trades   *prometheus.CounterVec
	fees     *prometheus.CounterVec
	reserves *prometheus.GaugeVec

	baseSymbol  string
	quoteSymbol string
}

// New creates the pool collectors and registers them with reg.
func New(reg prometheus.Registerer, baseSymbol, quoteSymbol string) (*Metrics, error) {
	if reg == nil {
		return nil, errors.New("metrics: registerer cannot be nil")
	}

	m := &Metrics{
		trades: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trades_total",
			Help:      "Trades handled by the pool, by direction and outcome.",
		}, []string{"direction", "outcome"}),
		fees: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fees_total",
			Help:      "Fees charged on settled trades, by asset.",
		}, []string{"asset"}),
		reserves: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "reserve",
			Help:      "Current pool reserve, by asset.",
		}, []string{"asset"}),
		baseSymbol:  baseSymbol,
		quoteSymbol: quoteSymbol,
	}

	for _, c := range []prometheus.Collector{m.trades, m.fees, m.reserves} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// ObserveTrade records a settled trade. Buy fees are charged in the quote
// asset, sell fees in the base asset.
func (m *Metrics) ObserveTrade(res amm.TradeResult) {
	m.trades.WithLabelValues(string(res.Direction), OutcomeSettled).Inc()

	fee, _ := res.FeeAmount.Float64()
	asset := m.quoteSymbol
	if res.Direction == amm.DirectionSell {
		asset = m.baseSymbol
	}
	m.fees.WithLabelValues(asset).Add(fee)

	m.SetReserves(res.Reserves)
}

// ObserveRejection records a trade that did not settle.
func (m *Metrics) ObserveRejection(dir amm.Direction, err error) {
	m.trades.WithLabelValues(string(dir), outcome(err)).Inc()
}

func (m *Metrics) SetReserves(r amm.Reserves) {
	base, _ := r.Base.Float64()
	quote, _ := r.Quote.Float64()
	m.reserves.WithLabelValues(m.baseSymbol).Set(base)
	m.reserves.WithLabelValues(m.quoteSymbol).Set(quote)
}

func outcome(err error) string {
	switch {
	case errors.Is(err, amm.ErrInvalidQuantity):
		return OutcomeInvalidQuantity
	case errors.Is(err, amm.ErrInsufficientLiquidity):
		return OutcomeInsufficientLiquidity
	default:
		return OutcomeError
	}
}
