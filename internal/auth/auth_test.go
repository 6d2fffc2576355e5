package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractBearerToken(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := ExtractBearerToken(r)
	assert.ErrorIs(t, err, ErrMissingToken)

	r.Header.Set("Authorization", "Basic abc")
	_, err = ExtractBearerToken(r)
	assert.ErrorIs(t, err, ErrInvalidToken)

	r.Header.Set("Authorization", "Bearer tok-123")
	tok, err := ExtractBearerToken(r)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", tok)
}

func TestJWTAuthorizer(t *testing.T) {
	az, err := NewJWTAuthorizer("test-secret", "svc-key")
	require.NoError(t, err)

	tok, err := az.SignToken("alice", RoleAdmin)
	require.NoError(t, err)

	actor, err := az.Authorize(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, "alice", actor.UserID)
	assert.True(t, actor.IsAdmin())

	_, err = az.Authorize(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)

	actor, err = az.Authorize(context.Background(), "svc-key")
	require.NoError(t, err)
	assert.Equal(t, RoleService, actor.Role)
	assert.True(t, actor.IsAdmin())
}

func TestJWTAuthorizerRejectsExpired(t *testing.T) {
	az, err := NewJWTAuthorizer("test-secret", "")
	require.NoError(t, err)

	tok, err := az.SignToken("bob", RoleMember, func(c *jwt.RegisteredClaims) {
		c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	})
	require.NoError(t, err)

	_, err = az.Authorize(context.Background(), tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDevAuthorizer(t *testing.T) {
	az := NewDevAuthorizer()

	actor, err := az.Authorize(context.Background(), "dev:carol")
	require.NoError(t, err)
	assert.Equal(t, "carol", actor.UserID)
	assert.Equal(t, RoleMember, actor.Role)
	assert.False(t, actor.IsAdmin())
	assert.True(t, actor.CanAccess("carol"))
	assert.False(t, actor.CanAccess("dave"))

	actor, err = az.Authorize(context.Background(), "dev:carol:admin")
	require.NoError(t, err)
	assert.True(t, actor.IsAdmin())
	assert.True(t, actor.CanAccess("dave"))

	_, err = az.Authorize(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMiddleware(t *testing.T) {
	var got *Actor
	h := Middleware(NewDevAuthorizer())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = ActorFrom(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, got)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer dev:erin")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, "erin", got.UserID)
}
