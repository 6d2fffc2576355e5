package client

import sdkerrors "github.com/SamratSK/better-bites/client/internal/errors"

// Sentinel errors returned by the direct (non-cached) SDK calls. Match with
// errors.Is.
var (
	ErrNotFound       = sdkerrors.ErrNotFound
	ErrUnauthorized   = sdkerrors.ErrUnauthorized
	ErrForbidden      = sdkerrors.ErrForbidden
	ErrInvalidRequest = sdkerrors.ErrInvalidRequest
)
