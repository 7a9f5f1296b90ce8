package amm

import (
	"testing"

	"github.com/shopspring/decimal"
)

func BenchmarkQuoteBuy(b *testing.B) {
	base := decimal.NewFromInt(13_451_234)
	quote := decimal.NewFromInt(98_765_432_109)
	fee := decimal.RequireFromString("0.003")
	in := decimal.NewFromInt(1_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = quoteBuy(base, quote, fee, in)
	}
}

func BenchmarkQuoteSell(b *testing.B) {
	base := decimal.NewFromInt(13_451_234)
	quote := decimal.NewFromInt(98_765_432_109)
	fee := decimal.RequireFromString("0.003")
	in := decimal.NewFromInt(1_000_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = quoteSell(base, quote, fee, in)
	}
}
