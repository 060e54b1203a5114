// Package identity models who is acting on a request. An Identity is either
// a guest or an authenticated customer, and an authenticated customer may
// carry the administrator flag. The session middleware constructs exactly one
// Identity per request; nothing downstream re-derives or trusts anything
// beyond what the Identity states.
package identity

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
)

// ErrUnauthorized is returned when an operation requires administrator
// privileges and the acting identity does not carry them. The request
// boundary maps it to an authentication redirect, never to a server error.
var ErrUnauthorized = errors.New("administrator privileges required")

// Identity is a tagged value describing the caller of an operation.
// The zero value is a guest: no user id, no privileges.
type Identity struct {
	userID  *kernel.UUID
	isAdmin bool
}

// Guest returns the anonymous identity. Guests can browse, fill a cart, and
// check out; their orders carry no customer reference.
func Guest() Identity {
	return Identity{}
}

// Authenticated creates an identity for a known customer. The admin flag
// grants access to order management operations.
func Authenticated(userID kernel.UUID, isAdmin bool) (Identity, error) {
	if err := userID.Validate(); err != nil {
		return Identity{}, err
	}
	return Identity{userID: &userID, isAdmin: isAdmin}, nil
}

// IsGuest reports whether the identity carries no authenticated user.
func (i Identity) IsGuest() bool {
	return i.userID == nil
}

// IsAdmin reports whether the identity may perform administrative operations.
// An admin is always authenticated.
func (i Identity) IsAdmin() bool {
	return i.userID != nil && i.isAdmin
}

// UserID returns the authenticated user's identifier, or nil for a guest.
func (i Identity) UserID() *kernel.UUID {
	if i.userID == nil {
		return nil
	}
	id := *i.userID
	return &id
}
