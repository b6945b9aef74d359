package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartinventory/pos-admin/internal/api/metrics"
	"github.com/smartinventory/pos-admin/internal/core/domain"
	"github.com/smartinventory/pos-admin/internal/core/ports"
)

// SessionManager owns the operator session lifecycle. Live sessions are kept
// in memory; every mutation is mirrored to the store so a restart can restore
// them via Hydrate.
type SessionManager struct {
	auth   ports.AuthGateway
	store  ports.SessionStore
	logger zerolog.Logger

	mu       sync.RWMutex
	sessions map[string]domain.Session
}

func NewSessionManager(auth ports.AuthGateway, store ports.SessionStore, logger zerolog.Logger) *SessionManager {
	return &SessionManager{
		auth:     auth,
		store:    store,
		logger:   logger,
		sessions: make(map[string]domain.Session),
	}
}

// Login authenticates against the backend and creates a session. An unknown
// role string in the login response degrades to the empty role; the session
// is still created because the token is what authenticates.
func (s *SessionManager) Login(ctx context.Context, username, password string) (ports.LoginResult, error) {
	if username == "" || password == "" {
		return ports.LoginResult{}, domain.ErrInvalidInput
	}

	data, err := s.auth.Login(ctx, username, password)
	if err != nil {
		return ports.LoginResult{}, err
	}

	session := domain.Session{
		ID:    generateSessionID(),
		Token: data.Token,
		Role:  domain.ParseRole(data.Role),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	metrics.SessionsActive.Set(float64(len(s.sessions)))
	s.mu.Unlock()

	if err := s.store.Save(ctx, session); err != nil {
		// The in-memory session stands; only restart survival is lost.
		s.logger.Warn().Err(err).Str("session_id", session.ID).Msg("session persist failed")
	}

	s.logger.Info().Str("session_id", session.ID).Str("role", string(session.Role)).Msg("operator logged in")

	return ports.LoginResult{
		SessionID:   session.ID,
		Role:        session.Role,
		LandingPath: session.Role.DashboardPath(),
	}, nil
}

func (s *SessionManager) Logout(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	_, ok := s.sessions[sessionID]
	if ok {
		delete(s.sessions, sessionID)
		metrics.SessionsActive.Set(float64(len(s.sessions)))
	}
	s.mu.Unlock()

	if !ok {
		return domain.ErrSessionNotFound
	}

	if err := s.store.Delete(ctx, sessionID); err != nil {
		s.logger.Warn().Err(err).Str("session_id", sessionID).Msg("session store delete failed")
	}

	s.logger.Info().Str("session_id", sessionID).Msg("operator logged out")
	return nil
}

func (s *SessionManager) Get(sessionID string) (domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[sessionID]
	return sess, ok
}

// Hydrate restores persisted sessions into memory. Called once at startup,
// before the server accepts traffic.
func (s *SessionManager) Hydrate(ctx context.Context) error {
	stored, err := s.store.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("hydrate sessions: %w", err)
	}

	s.mu.Lock()
	for _, sess := range stored {
		s.sessions[sess.ID] = sess
	}
	metrics.SessionsActive.Set(float64(len(s.sessions)))
	s.mu.Unlock()

	s.logger.Info().Int("count", len(stored)).Msg("sessions hydrated")
	return nil
}

// generateSessionID returns a 32-hex-char random identifier.
func generateSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("%032X", time.Now().UnixNano())
	}
	return fmt.Sprintf("%X", b)
}
