package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartinventory/pos-admin/internal/core/domain"
	"github.com/smartinventory/pos-admin/internal/core/ports"
)

// SessionDropper releases per-session state held outside the session manager.
type SessionDropper interface {
	Drop(sessionID string)
}

// AuthHandler owns login, logout and the session probe.
type AuthHandler struct {
	sessions ports.SessionService
	cart     SessionDropper
	catalog  interface{ Forget(sessionID string) }
}

func NewAuthHandler(sessions ports.SessionService, cart SessionDropper, catalog interface{ Forget(sessionID string) }) *AuthHandler {
	return &AuthHandler{sessions: sessions, cart: cart, catalog: catalog}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	SessionID   string      `json:"sessionId"`
	Role        domain.Role `json:"role"`
	LandingPath string      `json:"landingPath"`
}

// Login authenticates the operator against the backend and opens a session.
//
// @Summary      Operator login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Operator credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /console/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.sessions.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		SessionID:   result.SessionID,
		Role:        result.Role,
		LandingPath: result.LandingPath,
	})
}

// Logout destroys the session and every piece of state attached to it.
//
// @Summary      Operator logout
// @Tags         auth
// @Produce      json
// @Success      204
// @Failure      401  {object}  map[string]string
// @Router       /console/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	if err := h.sessions.Logout(c.Request().Context(), sess.ID); err != nil {
		return err
	}
	h.cart.Drop(sess.ID)
	h.catalog.Forget(sess.ID)

	return c.NoContent(http.StatusNoContent)
}

type sessionResponse struct {
	SessionID   string      `json:"sessionId"`
	Role        domain.Role `json:"role"`
	LandingPath string      `json:"landingPath"`
}

// Me reports the current session. Screens call this on load to decide
// between rendering and redirecting to login.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  map[string]string
// @Router       /console/session [get]
func (h *AuthHandler) Me(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{
		SessionID:   sess.ID,
		Role:        sess.Role,
		LandingPath: sess.Role.DashboardPath(),
	})
}
