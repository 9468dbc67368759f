package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/spec-kit/flight-service/internal/revocation"
	"github.com/spec-kit/flight-service/internal/token"
)

// ErrTokenRevoked marks a structurally valid token that has been invalidated
// server-side before its natural expiry.
var ErrTokenRevoked = errors.New("token has been revoked")

// Guard is the single authorization predicate for protected requests. A token
// is usable only if the verifier accepts it AND its id is absent from the
// revocation store.
type Guard struct {
	verifier *token.Verifier
	revoked  revocation.Store
}

// NewGuard combines the stateless verifier with the revocation store.
func NewGuard(verifier *token.Verifier, revoked revocation.Store) *Guard {
	return &Guard{verifier: verifier, revoked: revoked}
}

// Authorize verifies the raw token against the required type and checks it
// has not been revoked. A store failure propagates as
// revocation.ErrUnavailable; authorization is denied, never guessed.
func (g *Guard) Authorize(ctx context.Context, raw string, required token.Type) (*token.Claims, error) {
	claims, err := g.verifier.Verify(raw, required)
	if err != nil {
		return nil, err
	}

	revoked, err := g.revoked.IsRevoked(ctx, claims.TokenID())
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, fmt.Errorf("%w: %s", ErrTokenRevoked, claims.TokenID())
	}
	return claims, nil
}
