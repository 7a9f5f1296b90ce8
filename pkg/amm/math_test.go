package amm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteBuy(t *testing.T) {
	q := quoteBuy(dec("200"), dec("1000000"), dec("0.003"), dec("1"))

	assert.True(t, dec("199").Equal(q.newBase))
	assert.True(t, dec("1005025.125628140703517588").Equal(q.newQuoteRaw))
	assert.True(t, dec("5025.125628140703517588").Equal(q.grossPaid))
	assert.True(t, dec("15.075376884422110552764").Equal(q.fee))
}

func TestQuoteSell(t *testing.T) {
	// The product is formed from the withdrawn quote reserve, so the base
	// side moves in proportion to quantity/quote.
	q := quoteSell(dec("200"), dec("1000000"), dec("0.003"), dec("250000"))

	assert.True(t, dec("750000").Equal(q.newQuote))
	assert.True(t, dec("150").Equal(q.newBaseRaw))
	assert.True(t, dec("50").Equal(q.grossReceived))
	assert.True(t, dec("0.15").Equal(q.fee))
}
