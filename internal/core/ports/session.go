package ports

import (
	"context"

	"github.com/smartinventory/pos-admin/internal/core/domain"
)

// SessionStore persists sessions so a console restart does not force every
// operator to re-authenticate. The in-memory session manager is the source
// of truth while the process runs; the store is read only at startup.
type SessionStore interface {
	Save(ctx context.Context, s domain.Session) error
	Delete(ctx context.Context, id string) error
	LoadAll(ctx context.Context) ([]domain.Session, error)
}

// LoginResult is returned to the operator after a successful login.
type LoginResult struct {
	SessionID   string
	Role        domain.Role
	LandingPath string
}

// SessionService owns the operator session lifecycle.
type SessionService interface {
	// Login authenticates against the backend and creates a session holding
	// the issued token and role.
	Login(ctx context.Context, username, password string) (LoginResult, error)
	// Logout destroys the session and its persisted copy.
	Logout(ctx context.Context, sessionID string) error
	// Get returns the live session, if any.
	Get(sessionID string) (domain.Session, bool)
	// Hydrate restores persisted sessions into memory at startup.
	Hydrate(ctx context.Context) error
}
