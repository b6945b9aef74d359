package notify

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartinventory/pos-admin/internal/core/domain"
)

func TestPublishReachesAllObservers(t *testing.T) {
	n := NewUserNotifier(zerolog.Nop())

	got1 := make(chan domain.User, 1)
	got2 := make(chan domain.User, 1)
	n.Subscribe(func(u domain.User) { got1 <- u })
	n.Subscribe(func(u domain.User) { got2 <- u })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	n.Start(ctx)

	n.Publish(domain.User{ID: 7, Username: "nina"})

	for i, ch := range []chan domain.User{got1, got2} {
		select {
		case u := <-ch:
			if u.ID != 7 || u.Username != "nina" {
				t.Fatalf("observer %d got unexpected user: %+v", i, u)
			}
		case <-time.After(time.Second):
			t.Fatalf("observer %d never received the event", i)
		}
	}
}

func TestPublishWithoutObserversDoesNotBlock(t *testing.T) {
	n := NewUserNotifier(zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	n.Start(ctx)

	done := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer*2; i++ {
			n.Publish(domain.User{ID: int64(i)})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked")
	}
}

func TestLateSubscriberMissesEarlierEvents(t *testing.T) {
	n := NewUserNotifier(zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	n.Start(ctx)

	n.Publish(domain.User{ID: 1})
	time.Sleep(50 * time.Millisecond)

	got := make(chan domain.User, 1)
	n.Subscribe(func(u domain.User) { got <- u })

	n.Publish(domain.User{ID: 2})

	select {
	case u := <-got:
		if u.ID != 2 {
			t.Fatalf("expected only the event published after subscribing, got %+v", u)
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber never received the second event")
	}
}
