package auth

import (
	"context"
	"strings"
)

// DevAuthorizer accepts unsigned development tokens of the form
// "dev:<userId>" or "dev:<userId>:admin". It must never be enabled outside
// local development.
type DevAuthorizer struct{}

func NewDevAuthorizer() *DevAuthorizer { return &DevAuthorizer{} }

func (d *DevAuthorizer) Authorize(_ context.Context, token string) (*Actor, error) {
	parts := strings.Split(token, ":")
	if len(parts) < 2 || parts[0] != "dev" || parts[1] == "" {
		return nil, ErrInvalidToken
	}
	role := RoleMember
	if len(parts) == 3 && parts[2] == RoleAdmin {
		role = RoleAdmin
	}
	return &Actor{UserID: parts[1], Role: role}, nil
}
