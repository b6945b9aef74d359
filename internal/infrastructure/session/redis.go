// Package session persists operator sessions in Redis so a console restart
// does not log every operator out. The live session manager keeps sessions
// in memory; this package is its durable copy.
package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/smartinventory/pos-admin/internal/core/domain"
)

const (
	defaultTimeout = 5 * time.Second
	keyPrefix      = "session:"
	scanBatch      = 100
)

// Config captures the settings for establishing a Redis connection.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect initialises a Redis client and validates connectivity with a ping.
// A default timeout is applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// RedisStore stores one hash per session under session:<id>.
// The token is stored raw; the role keeps its JSON-encoded persisted form,
// so a malformed role field degrades to an empty role instead of dropping
// the session.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore wraps an established Redis client. Sessions expire after ttl
// without a refresh.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Save(ctx context.Context, sess domain.Session) error {
	key := keyPrefix + sess.ID
	fields := map[string]any{
		"token": sess.Token,
		"role":  domain.EncodePersistedRole(sess.Role),
	}
	if err := s.client.HSet(ctx, key, fields).Err(); err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	if err := s.client.Expire(ctx, key, s.ttl).Err(); err != nil {
		return fmt.Errorf("session expire: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}

// LoadAll scans for persisted sessions. Entries without a token are skipped:
// an unauthenticated session is not worth restoring.
func (s *RedisStore) LoadAll(ctx context.Context) ([]domain.Session, error) {
	var sessions []domain.Session
	iter := s.client.Scan(ctx, 0, keyPrefix+"*", scanBatch).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		fields, err := s.client.HGetAll(ctx, key).Result()
		if err != nil {
			return nil, fmt.Errorf("session load %s: %w", key, err)
		}
		token := fields["token"]
		if token == "" {
			continue
		}
		sessions = append(sessions, domain.Session{
			ID:    strings.TrimPrefix(key, keyPrefix),
			Token: token,
			Role:  domain.DecodePersistedRole(fields["role"]),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("session scan: %w", err)
	}
	return sessions, nil
}
