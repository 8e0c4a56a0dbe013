package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Domain-specific errors for consistent handling across the application.
var (
	ErrEmptyConnectionURL    = errors.New("empty redis connection URL")
	ErrFailedToParseConnURL  = errors.New("failed to parse redis connection URL")
	ErrConnectionNotVerified = errors.New("redis did not become ready within the retry budget")
	ErrHealthcheckFailed     = errors.New("redis healthcheck failed")
)

// Config provides environment-based configuration for the Redis client.
type Config struct {
	// ConnectionURL is the redis:// or rediss:// connection string.
	ConnectionURL string `env:"REDIS_URL,required"`

	// RetryAttempts is the number of ping attempts before giving up.
	RetryAttempts int `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`

	// RetryInterval is the pause between ping attempts.
	RetryInterval time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
}

// Connect creates a Redis client and verifies connectivity with a bounded
// ping retry loop. The returned client is safe for concurrent use; close it
// when the application shuts down.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.ConnectionURL == "" {
		return nil, ErrEmptyConnectionURL
	}

	opts, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseConnURL, err)
	}

	client := redis.NewClient(opts)

	attempts := cfg.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var pingErr error
	for i := 0; i < attempts; i++ {
		if pingErr = client.Ping(ctx).Err(); pingErr == nil {
			return client, nil
		}
		select {
		case <-ctx.Done():
			_ = client.Close()
			return nil, errors.Join(ErrConnectionNotVerified, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	_ = client.Close()
	return nil, errors.Join(ErrConnectionNotVerified, pingErr)
}

// Healthcheck returns a health check function for the given client, suitable
// for readiness probes.
func Healthcheck(client *redis.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
