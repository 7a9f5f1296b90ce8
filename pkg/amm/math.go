package amm

import "github.com/shopspring/decimal"

// DivisionScale is the number of fractional digits kept when dividing.
// Addition, subtraction and multiplication on decimal.Decimal are exact.
const DivisionScale int32 = 18

// MaxIntegerDigits bounds the integer part of a traded quantity.
const MaxIntegerDigits = 36

// buyQuote is the pricing step of a buy: quantity units of base leave the
// pool and the quote side is repriced so that base*quote stays at k.
type buyQuote struct {
	newBase     decimal.Decimal
	newQuoteRaw decimal.Decimal
	grossPaid   decimal.Decimal
	fee         decimal.Decimal
}

func quoteBuy(base, quote, feeRate, quantity decimal.Decimal) buyQuote {
	k := base.Mul(quote)
	newBase := base.Sub(quantity)
	newQuoteRaw := k.DivRound(newBase, DivisionScale)
	grossPaid := newQuoteRaw.Sub(quote)
	return buyQuote{
		newBase:     newBase,
		newQuoteRaw: newQuoteRaw,
		grossPaid:   grossPaid,
		fee:         grossPaid.Mul(feeRate),
	}
}

// sellQuote is the pricing step of a sell. The product is taken over the
// quote reserve after quantity is withdrawn and divided by the pre-trade
// quote reserve.
type sellQuote struct {
	newQuote      decimal.Decimal
	newBaseRaw    decimal.Decimal
	grossReceived decimal.Decimal
	fee           decimal.Decimal
}

func quoteSell(base, quote, feeRate, quantity decimal.Decimal) sellQuote {
	newQuote := quote.Sub(quantity)
	k := base.Mul(newQuote)
	newBaseRaw := k.DivRound(quote, DivisionScale)
	grossReceived := base.Sub(newBaseRaw)
	return sellQuote{
		newQuote:      newQuote,
		newBaseRaw:    newBaseRaw,
		grossReceived: grossReceived,
		fee:           grossReceived.Mul(feeRate),
	}
}
