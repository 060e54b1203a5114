package http

import (
	"net/http"

	"foodorder/internal/core/domain/model/identity"
	"foodorder/internal/core/ports"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// SessionCookieName is the cookie that keys the visitor's cart.
	SessionCookieName = "session_id"

	sessionContextKey  = "session_id"
	identityContextKey = "identity"
)

// SessionMiddleware assigns every visitor a session id and resolves their
// identity. A first-time visitor gets a fresh cookie; a returning one keeps
// their cart. The identity lookup is separate from the session id: the same
// cookie carries both the anonymous cart key and, after sign-in, the token
// the identity provider recognizes.
type SessionMiddleware struct {
	identities ports.IdentityProvider
}

// NewSessionMiddleware creates the middleware with the given identity provider.
func NewSessionMiddleware(identities ports.IdentityProvider) *SessionMiddleware {
	return &SessionMiddleware{identities: identities}
}

// Attach is the echo middleware function. It guarantees that every request
// downstream has a session id and an identity in its context.
func (m *SessionMiddleware) Attach(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		sessionID := m.ensureSessionCookie(ctx)

		actor, err := m.identities.Resolve(ctx.Request().Context(), sessionID)
		if err != nil {
			return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
				Code:    http.StatusInternalServerError,
				Message: "internal server error",
			})
		}

		ctx.Set(sessionContextKey, sessionID)
		ctx.Set(identityContextKey, actor)
		return next(ctx)
	}
}

func (m *SessionMiddleware) ensureSessionCookie(ctx echo.Context) string {
	cookie, err := ctx.Cookie(SessionCookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}

	sessionID := uuid.NewString()
	ctx.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sessionID
}

// RequireAdmin rejects requests whose identity lacks the admin flag.
// Guests get 401 so storefront clients can prompt for sign-in; authenticated
// non-admins get 403.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		actor := Actor(ctx)

		if actor.IsGuest() {
			return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "sign-in required",
			})
		}
		if !actor.IsAdmin() {
			return ctx.JSON(http.StatusForbidden, ErrorResponse{
				Code:    http.StatusForbidden,
				Message: identity.ErrUnauthorized.Error(),
			})
		}

		return next(ctx)
	}
}

// SessionID returns the request's session id set by the middleware.
func SessionID(ctx echo.Context) string {
	sessionID, _ := ctx.Get(sessionContextKey).(string)
	return sessionID
}

// Actor returns the request's resolved identity. Requests outside the
// session middleware resolve to the guest identity.
func Actor(ctx echo.Context) identity.Identity {
	actor, ok := ctx.Get(identityContextKey).(identity.Identity)
	if !ok {
		return identity.Guest()
	}
	return actor
}
