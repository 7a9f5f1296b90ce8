package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

type Config struct {
	Addr     string
	LogLevel string

	AuthSecret string

	BaseSymbol          string
	QuoteSymbol         string
	FeeRate             decimal.Decimal
	InitialBaseReserve  decimal.Decimal
	InitialQuoteReserve decimal.Decimal

	AuditLogPath string

	RateLimitMax    int
	RateLimitWindow time.Duration
}

func FromEnv() (*Config, error) {
	authSecret := os.Getenv("AUTH_SECRET")
	if authSecret == "" {
		return nil, ErrMissingAuthSecret
	}

	feeRate, err := decimalEnv("FEE_RATE", "0.003")
	if err != nil {
		return nil, err
	}
	if feeRate.IsNegative() || feeRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return nil, ErrInvalidFeeRate
	}

	baseReserve, err := decimalEnv("INITIAL_BASE_RESERVE", "200")
	if err != nil {
		return nil, err
	}
	quoteReserve, err := decimalEnv("INITIAL_QUOTE_RESERVE", "1000000")
	if err != nil {
		return nil, err
	}
	if !baseReserve.IsPositive() || !quoteReserve.IsPositive() {
		return nil, ErrInvalidReserve
	}

	rateLimitMax, err := strconv.Atoi(envOr("RATE_LIMIT_MAX", "10"))
	if err != nil || rateLimitMax <= 0 {
		return nil, fmt.Errorf("%w: RATE_LIMIT_MAX", ErrInvalidRateLimit)
	}
	rateLimitWindow, err := time.ParseDuration(envOr("RATE_LIMIT_WINDOW", "15m"))
	if err != nil || rateLimitWindow <= 0 {
		return nil, fmt.Errorf("%w: RATE_LIMIT_WINDOW", ErrInvalidRateLimit)
	}

	cfg := &Config{
		Addr:                envOr("ADDR", ":3000"),
		LogLevel:            envOr("LOG_LEVEL", "info"),
		AuthSecret:          authSecret,
		BaseSymbol:          envOr("BASE_SYMBOL", "ETH"),
		QuoteSymbol:         envOr("QUOTE_SYMBOL", "USDC"),
		FeeRate:             feeRate,
		InitialBaseReserve:  baseReserve,
		InitialQuoteReserve: quoteReserve,
		AuditLogPath:        envOr("AUDIT_LOG_PATH", "combined.log"),
		RateLimitMax:        rateLimitMax,
		RateLimitWindow:     rateLimitWindow,
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func decimalEnv(key, fallback string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(envOr(key, fallback))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s", ErrInvalidDecimal, key)
	}
	return d, nil
}
