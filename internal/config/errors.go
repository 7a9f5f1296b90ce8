package config

import "errors"

// ErrMissingAuthSecret indicates that the required AUTH_SECRET variable is
// not set in the environment.
var ErrMissingAuthSecret = errors.New("missing AUTH_SECRET environment variable")

// ErrInvalidDecimal is returned when a numeric pool setting cannot be parsed
// as a decimal.
var ErrInvalidDecimal = errors.New("invalid decimal value")

// ErrInvalidFeeRate is returned when FEE_RATE lies outside [0, 1).
var ErrInvalidFeeRate = errors.New("FEE_RATE must be in [0, 1)")

// ErrInvalidReserve is returned when an initial reserve is not positive.
var ErrInvalidReserve = errors.New("initial reserves must be greater than zero")

// ErrInvalidRateLimit is returned when the limiter settings are unusable.
var ErrInvalidRateLimit = errors.New("invalid rate limit settings")
