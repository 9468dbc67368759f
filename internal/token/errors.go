package token

import "errors"

// Sentinel errors returned by the codec and verifier. Callers match with
// errors.Is and translate to transport-level responses at the HTTP boundary.
var (
	ErrMalformedToken    = errors.New("token is malformed")
	ErrSignatureInvalid  = errors.New("token signature is invalid")
	ErrTokenExpired      = errors.New("token has expired")
	ErrTokenTypeMismatch = errors.New("token type mismatch")
	ErrEncodingFailed    = errors.New("token encoding failed")
)
