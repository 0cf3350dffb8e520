package middlewares

import (
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/lumibond/corkboard/utils/flag"
)

// CallerHeader is the request header carrying the resolved caller id. It is
// always stripped from the inbound request and only ever set by Session, so
// handlers can trust it blindly.
const CallerHeader = "sub"

func sessionSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		// only reachable in development, signup/signin share the same fallback
		secret = "corkboard-insecure-dev-secret"
	}
	return []byte(secret)
}

// MintSessionToken issues a signed session token for the given user. The auth
// endpoints are the only caller.
func MintSessionToken(userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(sessionSecret())
}

// resolveToken validates a raw session token and returns the user id it was
// minted for, or empty string when the token is missing, expired or forged.
func resolveToken(raw string) string {
	if raw == "" {
		return ""
	}
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		return sessionSecret(), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return ""
	}
	sub, err := token.Claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}

// Session resolves the caller identity from the Authorization header and
// stores it in the CallerHeader field. It never rejects the request: several
// routes are readable anonymously, so each handler decides whether a missing
// identity is an error.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		if flag.ByPassAuth {
			// trust whatever the client claims, dev only
			c.Next()
			return
		}

		// Strip any client-supplied caller id before resolving the real one.
		c.Request.Header.Del(CallerHeader)

		raw := c.GetHeader("Authorization")
		raw = strings.TrimPrefix(raw, "Bearer ")
		if uid := resolveToken(raw); uid != "" {
			c.Request.Header.Set(CallerHeader, uid)
		}

		c.Next()
	}
}
