package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/smartinventory/pos-admin/internal/core/domain"
	"github.com/smartinventory/pos-admin/internal/core/ports"
)

// UserPublisher receives newly registered users for fan-out to interested
// parties. Satisfied by notify.UserNotifier.
type UserPublisher interface {
	Publish(domain.User)
}

// UserManager backs the user management screen. It keeps the last fetched
// user collection so the activation toggle can update optimistically and
// roll back on failure.
type UserManager struct {
	gw        ports.UserGateway
	publisher UserPublisher
	logger    zerolog.Logger

	mu    sync.Mutex
	cache []domain.User
}

func NewUserManager(gw ports.UserGateway, publisher UserPublisher, logger zerolog.Logger) *UserManager {
	return &UserManager{gw: gw, publisher: publisher, logger: logger}
}

// List refetches the user collection and replaces the cached copy.
func (m *UserManager) List(ctx context.Context) ([]domain.User, error) {
	users, err := m.gw.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.cache = users
	snapshot := m.snapshotLocked()
	m.mu.Unlock()
	return snapshot, nil
}

func (m *UserManager) Register(ctx context.Context, in ports.RegisterUserInput) (domain.User, error) {
	if in.Username == "" || in.Password == "" || domain.ParseRole(string(in.Role)) == "" {
		return domain.User{}, domain.ErrInvalidInput
	}

	user, err := m.gw.RegisterUser(ctx, in)
	if err != nil {
		return domain.User{}, err
	}

	m.mu.Lock()
	m.cache = append(m.cache, user)
	m.mu.Unlock()

	m.publisher.Publish(user)
	m.logger.Info().Int64("user_id", user.ID).Str("role", string(user.Role)).Msg("user registered")
	return user, nil
}

// SetActive flips the cached row before calling the backend, so the screen
// reflects the toggle immediately. A backend failure restores the prior value
// and returns the error alongside the (rolled back) collection.
func (m *UserManager) SetActive(ctx context.Context, id int64, active bool) ([]domain.User, error) {
	m.mu.Lock()
	idx := -1
	var prior bool
	for i := range m.cache {
		if m.cache[i].ID == id {
			idx = i
			prior = m.cache[i].Active
			m.cache[i].Active = active
			break
		}
	}
	m.mu.Unlock()

	err := m.gw.SetUserActive(ctx, id, active)
	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		if idx >= 0 {
			m.cache[idx].Active = prior
		}
		m.logger.Warn().Err(err).Int64("user_id", id).Bool("active", active).Msg("user toggle rolled back")
		return m.snapshotLocked(), err
	}
	return m.snapshotLocked(), nil
}

func (m *UserManager) snapshotLocked() []domain.User {
	out := make([]domain.User, len(m.cache))
	copy(out, m.cache)
	return out
}
