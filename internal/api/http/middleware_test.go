package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/flight-service/internal/auth"
	"github.com/spec-kit/flight-service/internal/domain"
	"github.com/spec-kit/flight-service/internal/observability"
	"github.com/spec-kit/flight-service/internal/revocation"
	"github.com/spec-kit/flight-service/internal/token"
)

type memStore struct {
	mu      sync.Mutex
	revoked map[string]struct{}
	err     error
}

func (s *memStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return false, s.err
	}
	_, ok := s.revoked[tokenID]
	return ok, nil
}

func (s *memStore) Revoke(_ context.Context, rev revocation.Revocation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[rev.TokenID] = struct{}{}
	return nil
}

func (s *memStore) RevokeMany(_ context.Context, revs []revocation.Revocation) error {
	for _, rev := range revs {
		if err := s.Revoke(context.Background(), rev); err != nil {
			return err
		}
	}
	return nil
}

type boundaryFixture struct {
	app    *fiber.App
	issuer *token.Issuer
	store  *memStore
}

func newBoundaryFixture(t *testing.T, accessTTL time.Duration) *boundaryFixture {
	t.Helper()

	codec := token.NewCodec("http-test-secret")
	issuer := token.NewIssuer(codec, accessTTL, time.Hour)
	store := &memStore{revoked: make(map[string]struct{})}
	guard := auth.NewGuard(token.NewVerifier(codec), store)
	mw := auth.NewMiddleware(guard)

	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), time.Second)

	app.Get("/protected", mw.Handle, auth.RequireRole(domain.RoleAdmin, domain.RoleUser), func(c *fiber.Ctx) error {
		claims, _ := auth.ClaimsFromContext(c)
		return c.JSON(fiber.Map{"subject": claims.SubjectID()})
	})
	app.Get("/admin-only", mw.Handle, auth.RequireRole(domain.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	return &boundaryFixture{app: app, issuer: issuer, store: store}
}

func (f *boundaryFixture) request(t *testing.T, path, bearer string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	_ = json.Unmarshal(body, &envelope)
	return resp.StatusCode, envelope.Error.Code
}

func TestProtectedRouteAcceptsFreshToken(t *testing.T) {
	f := newBoundaryFixture(t, time.Minute)
	pair, err := f.issuer.Issue(token.Identity{SubjectID: "user-1", Role: domain.RoleUser})
	require.NoError(t, err)

	status, _ := f.request(t, "/protected", pair.Access.Raw)
	assert.Equal(t, 200, status)
}

func TestProtectedRouteRejectsMissingHeader(t *testing.T) {
	f := newBoundaryFixture(t, time.Minute)

	status, code := f.request(t, "/protected", "")
	assert.Equal(t, 401, status)
	assert.Equal(t, "UNAUTHORIZED", code)
}

func TestProtectedRouteRejectsMalformedToken(t *testing.T) {
	f := newBoundaryFixture(t, time.Minute)

	status, code := f.request(t, "/protected", "not-a-jwt")
	assert.Equal(t, 401, status)
	assert.Equal(t, "UNAUTHORIZED", code)
}

func TestProtectedRouteRejectsExpiredToken(t *testing.T) {
	f := newBoundaryFixture(t, 0)
	pair, err := f.issuer.Issue(token.Identity{SubjectID: "user-1", Role: domain.RoleUser})
	require.NoError(t, err)

	time.Sleep(time.Millisecond)

	status, code := f.request(t, "/protected", pair.Access.Raw)
	assert.Equal(t, 401, status)
	assert.Equal(t, "TOKEN_EXPIRED", code)
}

func TestProtectedRouteRejectsRefreshToken(t *testing.T) {
	f := newBoundaryFixture(t, time.Minute)
	pair, err := f.issuer.Issue(token.Identity{SubjectID: "user-1", Role: domain.RoleUser})
	require.NoError(t, err)

	status, code := f.request(t, "/protected", pair.Refresh.Raw)
	assert.Equal(t, 401, status)
	assert.Equal(t, "TOKEN_TYPE_MISMATCH", code)
}

func TestProtectedRouteRejectsRevokedToken(t *testing.T) {
	f := newBoundaryFixture(t, time.Minute)
	pair, err := f.issuer.Issue(token.Identity{SubjectID: "user-1", Role: domain.RoleUser})
	require.NoError(t, err)

	require.NoError(t, f.store.Revoke(context.Background(), revocation.Revocation{
		TokenID:   pair.Access.TokenID,
		ExpiresAt: pair.Access.ExpiresAt,
	}))

	status, code := f.request(t, "/protected", pair.Access.Raw)
	assert.Equal(t, 401, status)
	assert.Equal(t, "TOKEN_REVOKED", code)
}

func TestProtectedRouteFailsClosedOnStoreOutage(t *testing.T) {
	f := newBoundaryFixture(t, time.Minute)
	pair, err := f.issuer.Issue(token.Identity{SubjectID: "user-1", Role: domain.RoleUser})
	require.NoError(t, err)

	f.store.err = revocation.ErrUnavailable

	status, code := f.request(t, "/protected", pair.Access.Raw)
	assert.Equal(t, 503, status)
	assert.Equal(t, "SERVICE_UNAVAILABLE", code)
}

func TestRoleGate(t *testing.T) {
	f := newBoundaryFixture(t, time.Minute)

	userPair, err := f.issuer.Issue(token.Identity{SubjectID: "user-1", Role: domain.RoleUser})
	require.NoError(t, err)
	adminPair, err := f.issuer.Issue(token.Identity{SubjectID: "admin-1", Role: domain.RoleAdmin})
	require.NoError(t, err)

	status, code := f.request(t, "/admin-only", userPair.Access.Raw)
	assert.Equal(t, 403, status)
	assert.Equal(t, "REQUEST_FAILED", code)

	status, _ = f.request(t, "/admin-only", adminPair.Access.Raw)
	assert.Equal(t, 200, status)
}
