package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/smartinventory/pos-admin/internal/core/domain"
	"github.com/smartinventory/pos-admin/internal/infrastructure/backend"
)

// SessionHeader identifies the operator session on every console request.
const SessionHeader = "X-Session-ID"

// SessionGetter resolves a session ID to a live session. Satisfied by
// service.SessionManager.
type SessionGetter interface {
	Get(sessionID string) (domain.Session, bool)
}

// Session gates console routes behind a valid operator session. On success
// the session, its ID and role are stashed in the echo context, and the
// request context gains the session's bearer token so every backend call made
// while handling the request is authenticated.
func Session(sessions SessionGetter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(SessionHeader)
			if id == "" {
				return domain.ErrNotAuthenticated
			}

			sess, ok := sessions.Get(id)
			if !ok || !sess.Authenticated() {
				return domain.ErrNotAuthenticated
			}

			c.Set("session_id", sess.ID)
			c.Set("role", sess.Role)
			c.Set("session", sess)

			req := c.Request()
			c.SetRequest(req.WithContext(backend.WithToken(req.Context(), sess.Token)))

			return next(c)
		}
	}
}
