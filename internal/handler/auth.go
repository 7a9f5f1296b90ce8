package handler

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v5"
)

type localsKey int

const traderKey localsKey = iota

// NewAuthMiddleware verifies the bearer token in the Authorization header
// against secret and stores the token subject as the trader.
func NewAuthMiddleware(logger *slog.Logger, secret []byte) fiber.Handler {
	keyFunc := func(*jwt.Token) (any, error) {
		return secret, nil
	}
	methods := jwt.WithValidMethods([]string{
		jwt.SigningMethodHS256.Alg(),
		jwt.SigningMethodHS384.Alg(),
		jwt.SigningMethodHS512.Alg(),
	})

	return func(c fiber.Ctx) error {
		raw := bearerToken(c.Get(fiber.HeaderAuthorization))
		if raw == "" {
			return ErrMissingToken
		}

		token, err := jwt.Parse(raw, keyFunc, methods)
		if err != nil || !token.Valid {
			logger.Debug("rejected bearer token", "err", err, "ip", c.IP())
			return ErrInvalidToken
		}

		subject, _ := token.Claims.GetSubject()
		c.Locals(traderKey, subject)
		return c.Next()
	}
}

// bearerToken returns the credentials following the auth scheme.
func bearerToken(header string) string {
	_, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found {
		return ""
	}
	return strings.TrimSpace(token)
}

func traderFrom(c fiber.Ctx) string {
	trader, _ := c.Locals(traderKey).(string)
	return trader
}
