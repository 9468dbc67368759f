package token

import (
	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/flight-service/internal/domain"
)

// Type distinguishes short-lived access tokens from long-lived refresh tokens.
// The two are never interchangeable: a verifier asked for one type rejects the
// other.
type Type string

const (
	TypeAccess  Type = "ACCESS"
	TypeRefresh Type = "REFRESH"
)

// Claims describes the JWT payload carried by every issued token.
//
// The registered claim ID (jti) is unique per issuance and doubles as the
// revocation key; Subject carries the user id.
type Claims struct {
	Role      domain.Role `json:"role"`
	TokenType Type        `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenID returns the unique id of this token (the jti claim).
func (c *Claims) TokenID() string {
	return c.ID
}

// SubjectID returns the id of the user the token was issued to.
func (c *Claims) SubjectID() string {
	return c.Subject
}
