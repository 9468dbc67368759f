package token

import "fmt"

// TypeAny skips the token-type check during verification.
const TypeAny Type = ""

// Verifier performs stateless cryptographic and structural validation of
// presented tokens. Revocation is deliberately out of its view; the session
// guard layers that on top.
type Verifier struct {
	codec *Codec
}

// NewVerifier builds a verifier over the codec.
func NewVerifier(codec *Codec) *Verifier {
	return &Verifier{codec: codec}
}

// Verify decodes the token and, when expected is not TypeAny, enforces the
// token type.
func (v *Verifier) Verify(raw string, expected Type) (*Claims, error) {
	claims, err := v.codec.Decode(raw)
	if err != nil {
		return nil, err
	}
	if expected != TypeAny && claims.TokenType != expected {
		return nil, fmt.Errorf("%w: want %s, got %s", ErrTokenTypeMismatch, expected, claims.TokenType)
	}
	return claims, nil
}
