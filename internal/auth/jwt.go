package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// JWTAuthorizer validates HS256 bearer tokens. The subject claim is the user
// id; an optional "role" claim carries the profile role. A configured service
// key short-circuits verification for machine-to-machine callers.
type JWTAuthorizer struct {
	secret     []byte
	serviceKey string
}

type claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// NewJWTAuthorizer builds an authorizer over the shared HMAC secret.
// serviceKey may be empty to disable service-key access.
func NewJWTAuthorizer(secret, serviceKey string) (*JWTAuthorizer, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	return &JWTAuthorizer{secret: []byte(secret), serviceKey: serviceKey}, nil
}

func (j *JWTAuthorizer) Authorize(_ context.Context, token string) (*Actor, error) {
	if j.serviceKey != "" && token == j.serviceKey {
		return &Actor{UserID: "service", Role: RoleService}, nil
	}
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return j.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if c.Subject == "" {
		return nil, ErrInvalidToken
	}
	role := c.Role
	if role == "" {
		role = RoleMember
	}
	return &Actor{UserID: c.Subject, Role: role}, nil
}

// SignToken mints an HS256 token for userID with the given role and expiry
// claims. Used by betterctl and tests.
func (j *JWTAuthorizer) SignToken(userID, role string, opts ...func(*jwt.RegisteredClaims)) (string, error) {
	c := claims{Role: role}
	c.Subject = userID
	for _, o := range opts {
		o(&c.RegisteredClaims)
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, &c).SignedString(j.secret)
}
