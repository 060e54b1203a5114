package ports

import (
	"context"

	"foodorder/internal/core/domain/model/identity"
)

// IdentityProvider resolves a request's session token into an Identity.
// An unknown or expired token resolves to the guest identity, not an error;
// errors are reserved for the provider's backend failing.
type IdentityProvider interface {
	Resolve(ctx context.Context, sessionToken string) (identity.Identity, error)
}
