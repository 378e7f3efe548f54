// Package token implements issuance and verification of the signed,
// time-bound claim sets used as bearer tokens.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shoplite/shoplite-api/internal/core/domain"
)

const defaultTTL = 24 * time.Hour

// Claims is the decoded token payload: identity plus validity window.
type Claims struct {
	UserID int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Codec signs and verifies HS256 tokens. The secret and TTL come from process
// configuration; the codec itself holds no other state.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token carrying the user's identity and role. Expiry is
// issuance time plus the configured TTL; tokens are never refreshed, expiry
// requires a fresh login.
func (c *Codec) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning its claims. Every failure
// mode (malformed, tampered signature, expired) collapses into
// domain.ErrInvalidToken so callers cannot distinguish them; the wrapped
// cause remains available for server logs.
func (c *Codec) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidToken, err)
	}
	if !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

// TTL reports the configured token lifetime.
func (c *Codec) TTL() time.Duration { return c.ttl }
