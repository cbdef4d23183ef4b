package template

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultJWTSecret signs {{jwt(...)}} tokens when no secret is
// configured. It is a development value for test environments only.
const DefaultJWTSecret = "seedctl-insecure-test-secret"

// DefaultJWTTTL is the default lifetime of minted test tokens.
const DefaultJWTTTL = 1 * time.Hour

// randomInt returns a random int in [lo, hi]. Reversed bounds are
// swapped rather than rejected.
func randomInt(lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo + rand.IntN(hi-lo+1)
}

// randomChoice returns one of the given literals, trimmed.
func randomChoice(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return strings.TrimSpace(options[rand.IntN(len(options))])
}

// mintJWT builds an HS256-signed test token with sub, iat and exp
// claims. An empty sub falls back to "seedctl"; a zero ttl falls back to
// the engine default.
func (e *Engine) mintJWT(sub string, ttl time.Duration) string {
	if sub == "" {
		sub = "seedctl"
	}
	if ttl <= 0 {
		ttl = e.jwtTTL
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": sub,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(e.jwtSecret)
	if err != nil {
		e.logger.Warn("jwt signing failed", "error", err)
		return ""
	}
	return signed
}
