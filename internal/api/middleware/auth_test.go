package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/smartinventory/pos-admin/internal/core/domain"
)

type stubSessions struct {
	sessions map[string]domain.Session
}

func (s *stubSessions) Get(id string) (domain.Session, bool) {
	sess, ok := s.sessions[id]
	return sess, ok
}

func TestSessionMiddleware_ValidSession(t *testing.T) {
	e := echo.New()
	sessions := &stubSessions{sessions: map[string]domain.Session{
		"s1": {ID: "s1", Token: "tok-1", Role: domain.RoleAdmin},
	}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(SessionHeader, "s1")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Session(sessions)(func(c echo.Context) error {
		called = true
		if c.Get("session_id") != "s1" {
			t.Fatalf("session_id not set")
		}
		if c.Get("role") != domain.RoleAdmin {
			t.Fatalf("role not set")
		}
		sess, ok := c.Get("session").(domain.Session)
		if !ok || sess.Token != "tok-1" {
			t.Fatalf("session not set: %+v", sess)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestSessionMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Session(&stubSessions{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != domain.ErrNotAuthenticated {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestSessionMiddleware_UnknownSession(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(SessionHeader, "nope")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Session(&stubSessions{sessions: map[string]domain.Session{}})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != domain.ErrNotAuthenticated {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestSessionMiddleware_TokenlessSessionRejected(t *testing.T) {
	e := echo.New()
	sessions := &stubSessions{sessions: map[string]domain.Session{
		"s1": {ID: "s1", Token: "", Role: domain.RoleAdmin},
	}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(SessionHeader, "s1")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Session(sessions)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != domain.ErrNotAuthenticated {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}
