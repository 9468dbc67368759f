package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/flight-service/internal/token"
	apperrors "github.com/spec-kit/flight-service/pkg/util"
)

const claimsKey = "auth_claims"

// Middleware validates bearer tokens through the session guard and stores the
// resulting claims on the request for downstream role checks.
type Middleware struct {
	guard *Guard
}

// NewMiddleware constructs middleware over the guard.
func NewMiddleware(guard *Guard) *Middleware {
	return &Middleware{guard: guard}
}

// Handle enforces authentication for protected routes. Access tokens only;
// refresh tokens are rejected here by the type check.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	raw, err := BearerToken(c)
	if err != nil {
		return err
	}

	claims, err := m.guard.Authorize(c.UserContext(), raw, token.TypeAccess)
	if err != nil {
		return err
	}

	c.Locals(claimsKey, claims)
	return c.Next()
}

// BearerToken extracts the raw token from the Authorization header.
func BearerToken(c *fiber.Ctx) (string, error) {
	header := c.Get("Authorization")
	if header == "" {
		return "", apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", apperrors.NewUnauthorized("invalid authorization header")
	}
	return parts[1], nil
}

// ClaimsFromContext retrieves the validated claims set by Handle.
func ClaimsFromContext(c *fiber.Ctx) (*token.Claims, bool) {
	val := c.Locals(claimsKey)
	if val == nil {
		return nil, false
	}
	claims, ok := val.(*token.Claims)
	return claims, ok
}
