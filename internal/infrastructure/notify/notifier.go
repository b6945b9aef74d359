// Package notify delivers in-process events to registered observers through
// a buffered worker, so publishers never block on slow subscribers.
package notify

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/smartinventory/pos-admin/internal/core/domain"
)

const channelBuffer = 64

// UserObserver receives user lifecycle events.
type UserObserver func(domain.User)

// UserNotifier fans out newly registered users to observers. Subscription is
// explicit; there is no implicit global bus.
type UserNotifier struct {
	mu        sync.RWMutex
	observers []UserObserver
	events    chan domain.User
	log       zerolog.Logger
}

// NewUserNotifier creates a notifier. Call Start before publishing.
func NewUserNotifier(log zerolog.Logger) *UserNotifier {
	return &UserNotifier{
		events: make(chan domain.User, channelBuffer),
		log:    log,
	}
}

// Subscribe registers an observer for future events. Observers run on the
// notifier's worker goroutine and must not block for long.
func (n *UserNotifier) Subscribe(obs UserObserver) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.observers = append(n.observers, obs)
}

// Publish enqueues an event. When the buffer is full the event is dropped
// with a warning rather than blocking the caller.
func (n *UserNotifier) Publish(u domain.User) {
	select {
	case n.events <- u:
	default:
		n.log.Warn().Int64("user_id", u.ID).Msg("user event dropped, buffer full")
	}
}

// Start launches the delivery worker. The worker stops when ctx is cancelled.
func (n *UserNotifier) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case u, ok := <-n.events:
				if !ok {
					return
				}
				n.deliver(u)
			}
		}
	}()
}

func (n *UserNotifier) deliver(u domain.User) {
	n.mu.RLock()
	observers := make([]UserObserver, len(n.observers))
	copy(observers, n.observers)
	n.mu.RUnlock()

	for _, obs := range observers {
		obs(u)
	}
}
