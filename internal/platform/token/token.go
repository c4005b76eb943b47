// Package token issues and validates the bearer tokens the HTTP layer
// exchanges with clients. The marketplace core itself never inspects tokens;
// it only sees the account ID the middleware resolves from them.
package token

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"autobox/internal/platform/middleware"
)

// Issuer signs and validates HMAC JWTs.
type Issuer struct {
	signingKey []byte
	ttl        time.Duration
}

// NewIssuer builds an Issuer with the given signing key and token lifetime.
func NewIssuer(signingKey string, ttl time.Duration) *Issuer {
	return &Issuer{signingKey: []byte(signingKey), ttl: ttl}
}

type claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Issue creates a signed token for the given account.
func (i *Issuer) Issue(accountID int64, email string, now time.Time) (string, error) {
	c := claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(accountID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(i.signingKey)
}

// ValidateToken parses and verifies a token, returning the claims the
// middleware needs. Implements middleware.JWTValidator.
func (i *Issuer) ValidateToken(tokenString string) (*middleware.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.signingKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	accountID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid subject: %w", err)
	}

	return &middleware.TokenClaims{AccountID: accountID, Email: c.Email}, nil
}
