package blacklist

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// defaultKeyPrefix namespaces revocation entries in the keyspace.
const defaultKeyPrefix = "blacklist:"

// ErrRevocationFailed is returned when the Redis backend rejects a write.
var ErrRevocationFailed = errors.New("failed to record revocation")

// Redis is a blacklist backed by a shared Redis instance. Each revoked
// identifier is stored as a key that expires at the token's natural
// expiration, so the revocation list never outgrows the set of live tokens.
type Redis struct {
	client    redis.UniversalClient
	keyPrefix string
}

// RedisOption configures the Redis blacklist.
type RedisOption func(*Redis)

// WithKeyPrefix sets a custom key prefix. Default is "blacklist:".
func WithKeyPrefix(prefix string) RedisOption {
	return func(r *Redis) {
		if prefix != "" {
			r.keyPrefix = prefix
		}
	}
}

// NewRedis creates a Redis-backed blacklist.
func NewRedis(client redis.UniversalClient, opts ...RedisOption) *Redis {
	r := &Redis{
		client:    client,
		keyPrefix: defaultKeyPrefix,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add marks the token identifier as revoked until the given time. Identifiers
// whose expiry has already passed are not recorded.
func (r *Redis) Add(ctx context.Context, jti string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	if err := r.client.Set(ctx, r.keyPrefix+jti, 1, ttl).Err(); err != nil {
		return errors.Join(ErrRevocationFailed, err)
	}
	return nil
}

// IsRevoked reports whether the token identifier is currently revoked.
func (r *Redis) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.client.Exists(ctx, r.keyPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
