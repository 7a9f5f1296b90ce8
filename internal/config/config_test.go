package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("AUTH_SECRET", "s3cret")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "s3cret", cfg.AuthSecret)
	assert.Equal(t, "ETH", cfg.BaseSymbol)
	assert.Equal(t, "USDC", cfg.QuoteSymbol)
	assert.Equal(t, "0.003", cfg.FeeRate.String())
	assert.Equal(t, "200", cfg.InitialBaseReserve.String())
	assert.Equal(t, "1000000", cfg.InitialQuoteReserve.String())
	assert.Equal(t, "combined.log", cfg.AuditLogPath)
	assert.Equal(t, 10, cfg.RateLimitMax)
	assert.Equal(t, 15*time.Minute, cfg.RateLimitWindow)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("AUTH_SECRET", "s3cret")
	t.Setenv("ADDR", ":8080")
	t.Setenv("FEE_RATE", "0.01")
	t.Setenv("INITIAL_BASE_RESERVE", "10.5")
	t.Setenv("INITIAL_QUOTE_RESERVE", "42000")
	t.Setenv("BASE_SYMBOL", "WBTC")
	t.Setenv("RATE_LIMIT_MAX", "100")
	t.Setenv("RATE_LIMIT_WINDOW", "1m")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "0.01", cfg.FeeRate.String())
	assert.Equal(t, "10.5", cfg.InitialBaseReserve.String())
	assert.Equal(t, "42000", cfg.InitialQuoteReserve.String())
	assert.Equal(t, "WBTC", cfg.BaseSymbol)
	assert.Equal(t, 100, cfg.RateLimitMax)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
}

func TestFromEnv_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		env         map[string]string
		expectedErr error
	}{
		{"missing secret", map[string]string{}, ErrMissingAuthSecret},
		{"bad fee", map[string]string{"FEE_RATE": "abc"}, ErrInvalidDecimal},
		{"fee of one", map[string]string{"FEE_RATE": "1"}, ErrInvalidFeeRate},
		{"negative fee", map[string]string{"FEE_RATE": "-0.1"}, ErrInvalidFeeRate},
		{"zero reserve", map[string]string{"INITIAL_BASE_RESERVE": "0"}, ErrInvalidReserve},
		{"bad reserve", map[string]string{"INITIAL_QUOTE_RESERVE": "lots"}, ErrInvalidDecimal},
		{"bad limit", map[string]string{"RATE_LIMIT_MAX": "-3"}, ErrInvalidRateLimit},
		{"bad window", map[string]string{"RATE_LIMIT_WINDOW": "soon"}, ErrInvalidRateLimit},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("AUTH_SECRET", "")
			if tc.expectedErr != ErrMissingAuthSecret {
				t.Setenv("AUTH_SECRET", "s3cret")
			}
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := FromEnv()
			require.ErrorIs(t, err, tc.expectedErr)
		})
	}
}
