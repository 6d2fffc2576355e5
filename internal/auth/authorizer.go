// Package auth authenticates bearer tokens and resolves them to actors.
package auth

import (
	"context"
	"net/http"
	"strings"
)

// Actor is an authenticated caller. Role mirrors the profiles table
// ("member" or "admin"); RoleService is granted only by the service key.
type Actor struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

const (
	RoleMember  = "member"
	RoleAdmin   = "admin"
	RoleService = "service"
)

// IsAdmin reports whether the actor may use the admin surface. The service
// key is treated as admin for machine-to-machine calls.
func (a *Actor) IsAdmin() bool {
	return a != nil && (a.Role == RoleAdmin || a.Role == RoleService)
}

// CanAccess reports whether the actor may read or write userID's data.
func (a *Actor) CanAccess(userID string) bool {
	if a == nil {
		return false
	}
	return a.UserID == userID || a.IsAdmin()
}

// Authorizer resolves a bearer token to an actor.
type Authorizer interface {
	Authorize(ctx context.Context, token string) (*Actor, error)
}

// ExtractBearerToken pulls the token out of the Authorization header.
func ExtractBearerToken(r *http.Request) (string, error) {
	h := r.Header.Get("Authorization")
	if h == "" {
		return "", ErrMissingToken
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", ErrInvalidToken
	}
	return parts[1], nil
}

type ctxKey struct{}

// WithActor returns a context carrying the actor.
func WithActor(ctx context.Context, a *Actor) context.Context {
	return context.WithValue(ctx, ctxKey{}, a)
}

// ActorFrom returns the actor stored in ctx, or nil.
func ActorFrom(ctx context.Context) *Actor {
	a, _ := ctx.Value(ctxKey{}).(*Actor)
	return a
}
