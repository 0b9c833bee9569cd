// Package session provides Redis-backed device storage for the persisted user session.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"yoga_storefront/internal/feature/auth/usecase"
)

// SessionRedis implements usecase.LocalStorage using Redis.
// Values are stored without expiry: the session lives until logout.
type SessionRedis struct {
	client *redis.Client
	prefix string
}

var _ usecase.LocalStorage = (*SessionRedis)(nil)

// NewSessionRedis creates a new SessionRedis instance.
// Every key is stored under prefix to keep this device's entries apart.
func NewSessionRedis(client *redis.Client, prefix string) *SessionRedis {
	return &SessionRedis{
		client: client,
		prefix: prefix,
	}
}

// storageKey returns the Redis key for a storage key.
func (r *SessionRedis) storageKey(key string) string {
	if r.prefix == "" {
		return key
	}
	return fmt.Sprintf("%s:%s", r.prefix, key)
}

// Get returns the value stored under key.
func (r *SessionRedis) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.client.Get(ctx, r.storageKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return v, true, nil
}

// Set stores value under key with no TTL.
func (r *SessionRedis) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, r.storageKey(key), value, 0).Err()
}

// Delete removes key. Deleting an absent key is not an error.
func (r *SessionRedis) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.storageKey(key)).Err()
}
