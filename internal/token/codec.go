package token

import (
	"errors"
	"fmt"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Codec serializes claim sets into signed compact JWTs and parses them back.
// It is a pure function of its input and the configured signing secret.
type Codec struct {
	secret []byte
}

// NewCodec builds a codec signing with the given HS256 secret.
func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Encode signs the claims and returns the compact token string.
func (c *Codec) Encode(claims *Claims) (string, error) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncodingFailed, err)
	}
	return signed, nil
}

// Decode parses and validates the compact token string, returning its claims.
// Failures map to ErrMalformedToken, ErrSignatureInvalid or ErrTokenExpired.
func (c *Codec) Decode(raw string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, mapParseError(err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrMalformedToken
	}
	if claims.ID == "" || claims.Subject == "" || claims.TokenType == "" {
		return nil, fmt.Errorf("%w: missing required claims", ErrMalformedToken)
	}
	return claims, nil
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", ErrTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrSignatureInvalid):
		return fmt.Errorf("%w: %v", ErrSignatureInvalid, err)
	default:
		return fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
}
