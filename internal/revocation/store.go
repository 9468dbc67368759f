package revocation

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable wraps backing-store failures. Callers must treat it as
// "cannot answer", never as "not revoked": authorization fails closed.
var ErrUnavailable = errors.New("revocation store unavailable")

// Revocation identifies one token to invalidate. ExpiresAt is the token's own
// natural expiry; stores may use it to prune records that can no longer
// matter. It is a pruning hint only, not part of the revocation decision.
type Revocation struct {
	TokenID   string
	ExpiresAt time.Time
}

// Store records and queries revoked token ids. Presence of an id is
// monotonic: once revoked, always revoked.
type Store interface {
	// IsRevoked reports whether the token id has been invalidated.
	IsRevoked(ctx context.Context, tokenID string) (bool, error)

	// Revoke marks a single token id as invalid. Revoking an already-revoked
	// id is a no-op success.
	Revoke(ctx context.Context, rev Revocation) error

	// RevokeMany marks all given token ids as invalid. Once the call returns
	// successfully, every id is visible as revoked to all subsequent
	// IsRevoked calls; readers never observe a lasting partial state.
	RevokeMany(ctx context.Context, revs []Revocation) error
}
