package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/flight-service/internal/auth"
	"github.com/spec-kit/flight-service/internal/config"
	"github.com/spec-kit/flight-service/internal/domain"
	"github.com/spec-kit/flight-service/internal/repository"
	"github.com/spec-kit/flight-service/internal/revocation"
	"github.com/spec-kit/flight-service/internal/token"
)

var (
	// ErrEmailAlreadyRegistered rejects duplicate registrations.
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	// ErrInvalidCredentials covers unknown email and wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserSuspended rejects suspended accounts at login and refresh.
	ErrUserSuspended = errors.New("user suspended")
	// ErrTokenAlreadyInvalid is returned by Logout when either presented
	// token was revoked before, surfacing double logout and replay attempts
	// instead of silently no-op-ing.
	ErrTokenAlreadyInvalid = errors.New("token already invalidated")
)

// AuthService coordinates registration, login, token refresh and logout.
type AuthService struct {
	users      repository.UserRepository
	issuer     *token.Issuer
	verifier   *token.Verifier
	guard      *auth.Guard
	revoked    revocation.Store
	bcryptCost int
}

// AuthDependencies encapsulates collaborator requirements for auth service.
type AuthDependencies struct {
	UserRepo        repository.UserRepository
	Issuer          *token.Issuer
	Verifier        *token.Verifier
	Guard           *auth.Guard
	RevocationStore revocation.Store
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		issuer:     deps.Issuer,
		verifier:   deps.Verifier,
		guard:      deps.Guard,
		revoked:    deps.RevocationStore,
		bcryptCost: cfg.BcryptCost,
	}
}

// Register creates a new USER account and issues its first token pair.
func (s *AuthService) Register(ctx context.Context, firstName, lastName, email, password string) (*domain.User, *token.Pair, error) {
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return nil, nil, ErrEmailAlreadyRegistered
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, nil, err
	}

	user := &domain.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		Status:       domain.UserStatusActive,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	pair, err := s.issuer.Issue(token.Identity{SubjectID: user.ID, Role: user.Role})
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Login authenticates by email/password and issues a token pair.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, *token.Pair, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, nil, ErrInvalidCredentials
	}
	if user.Status != domain.UserStatusActive {
		return nil, nil, ErrUserSuspended
	}

	pair, err := s.issuer.Issue(token.Identity{SubjectID: user.ID, Role: user.Role})
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Refresh exchanges a valid, unrevoked refresh token for a fresh pair. The
// presented refresh token id is revoked, so each refresh token is usable
// once.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*token.Pair, error) {
	claims, err := s.guard.Authorize(ctx, refreshToken, token.TypeRefresh)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, claims.SubjectID())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if user.Status != domain.UserStatusActive {
		return nil, ErrUserSuspended
	}

	pair, err := s.issuer.Issue(token.Identity{SubjectID: user.ID, Role: user.Role})
	if err != nil {
		return nil, err
	}

	if err := s.revoked.Revoke(ctx, revocation.Revocation{
		TokenID:   claims.TokenID(),
		ExpiresAt: claims.ExpiresAt.Time,
	}); err != nil {
		return nil, err
	}
	return pair, nil
}

// Logout invalidates a presented access/refresh pair as one logical
// operation. Both tokens must verify and neither may be revoked already;
// only then are both token ids recorded, atomically, as invalid. A failure
// at any step revokes nothing.
func (s *AuthService) Logout(ctx context.Context, accessToken, refreshToken string) error {
	accessClaims, err := s.verifier.Verify(accessToken, token.TypeAccess)
	if err != nil {
		return err
	}
	refreshClaims, err := s.verifier.Verify(refreshToken, token.TypeRefresh)
	if err != nil {
		return err
	}

	for _, claims := range []*token.Claims{accessClaims, refreshClaims} {
		revoked, err := s.revoked.IsRevoked(ctx, claims.TokenID())
		if err != nil {
			return err
		}
		if revoked {
			return ErrTokenAlreadyInvalid
		}
	}

	return s.revoked.RevokeMany(ctx, []revocation.Revocation{
		{TokenID: accessClaims.TokenID(), ExpiresAt: accessClaims.ExpiresAt.Time},
		{TokenID: refreshClaims.TokenID(), ExpiresAt: refreshClaims.ExpiresAt.Time},
	})
}
