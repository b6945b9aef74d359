package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/smartinventory/pos-admin/internal/core/domain"
)

// ctxSession extracts the session injected by the Session middleware. A
// missing session means the middleware did not run on this route; treat the
// request as unauthenticated rather than panicking.
func ctxSession(c echo.Context) (domain.Session, error) {
	sess, ok := c.Get("session").(domain.Session)
	if !ok || !sess.Authenticated() {
		return domain.Session{}, domain.ErrNotAuthenticated
	}
	return sess, nil
}
