// Package cache provides Redis-backed short-lived state storage.
package cache

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"academy/config"
	"academy/internal/domain/service"
)

const statePrefix = "oauth:state:"

// NewClient creates a Redis client from configuration and verifies the
// connection with a ping.
func NewClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	if cfg.Redis == nil {
		return nil, errors.New("redis config must be provided")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, errors.Wrap(err, "ping redis")
	}

	return client, nil
}

// stateStore implements service.OAuthStateStore on Redis.
type stateStore struct {
	client *redis.Client
}

// NewStateStore is the constructor for stateStore.
func NewStateStore(client *redis.Client) service.OAuthStateStore {
	return &stateStore{client: client}
}

// Save stores the PKCE verifier under the state value with a TTL.
func (s *stateStore) Save(ctx context.Context, state, codeVerifier string, ttl time.Duration) error {
	if err := s.client.Set(ctx, statePrefix+state, codeVerifier, ttl).Err(); err != nil {
		return errors.Wrap(err, "save oauth state")
	}

	return nil
}

// Take retrieves and deletes the verifier stored under state. GETDEL keeps
// the read-and-consume atomic so a state value can never be replayed.
func (s *stateStore) Take(ctx context.Context, state string) (string, error) {
	verifier, err := s.client.GetDel(ctx, statePrefix+state).Result()
	if errors.Is(err, redis.Nil) {
		return "", errors.New("unknown or consumed oauth state")
	}
	if err != nil {
		return "", errors.Wrap(err, "take oauth state")
	}

	return verifier, nil
}
