package token

import (
	"time"

	"github.com/google/uuid"
	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/flight-service/internal/domain"
)

// Identity is the authenticated principal a token pair is minted for.
type Identity struct {
	SubjectID string
	Role      domain.Role
}

// Issued bundles a signed token with the metadata callers hand back to
// clients.
type Issued struct {
	Raw       string
	TokenID   string
	ExpiresAt time.Time
}

// Pair is the access/refresh couple produced by one login.
type Pair struct {
	Access  Issued
	Refresh Issued
}

// Issuer mints access/refresh token pairs. It is stateless: it never touches
// the revocation store.
type Issuer struct {
	codec      *Codec
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewIssuer builds an issuer with per-type lifetimes.
func NewIssuer(codec *Codec, accessTTL, refreshTTL time.Duration) *Issuer {
	return &Issuer{codec: codec, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// Issue mints an access/refresh pair for the identity. The two tokens carry
// distinct token ids.
func (i *Issuer) Issue(identity Identity) (*Pair, error) {
	now := time.Now()

	access, err := i.mint(identity, TypeAccess, now, now.Add(i.accessTTL))
	if err != nil {
		return nil, err
	}
	refresh, err := i.mint(identity, TypeRefresh, now, now.Add(i.refreshTTL))
	if err != nil {
		return nil, err
	}
	return &Pair{Access: access, Refresh: refresh}, nil
}

func (i *Issuer) mint(identity Identity, typ Type, issuedAt, expiresAt time.Time) (Issued, error) {
	claims := &Claims{
		Role:      identity.Role,
		TokenType: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   identity.SubjectID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	raw, err := i.codec.Encode(claims)
	if err != nil {
		return Issued{}, err
	}
	return Issued{Raw: raw, TokenID: claims.ID, ExpiresAt: expiresAt}, nil
}
