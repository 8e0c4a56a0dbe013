package pg

import (
	"context"
	"errors"
	"io/fs"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for goose
	"github.com/pressly/goose/v3"
)

// Domain-specific errors for consistent handling across the application.
var (
	ErrEmptyConnectionString = errors.New("empty postgres connection string")
	ErrFailedToParseConfig   = errors.New("failed to parse postgres connection string")
	ErrConnectionNotVerified = errors.New("postgres did not become ready within the retry budget")
	ErrHealthcheckFailed     = errors.New("postgres healthcheck failed")
	ErrMigrationFailed       = errors.New("failed to apply migrations")
)

// Config provides environment-based configuration for the connection pool.
type Config struct {
	// ConnectionString is the postgres:// connection URL.
	ConnectionString string `env:"DATABASE_URL,required"`

	// MaxConns caps the pool size.
	MaxConns int32 `env:"PG_MAX_CONNS" envDefault:"10"`

	// MaxConnIdleTime closes connections idle longer than this.
	MaxConnIdleTime time.Duration `env:"PG_MAX_CONN_IDLE_TIME" envDefault:"10m"`

	// RetryAttempts is the number of ping attempts before giving up.
	RetryAttempts int `env:"PG_RETRY_ATTEMPTS" envDefault:"3"`

	// RetryInterval is the pause between ping attempts.
	RetryInterval time.Duration `env:"PG_RETRY_INTERVAL" envDefault:"5s"`
}

// Connect creates a pgx connection pool and verifies connectivity with a
// bounded ping retry loop.
func Connect(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	if cfg.ConnectionString == "" {
		return nil, ErrEmptyConnectionString
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.ConnectionString)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseConfig, err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MaxConnIdleTime > 0 {
		poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}

	attempts := cfg.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var pingErr error
	for i := 0; i < attempts; i++ {
		if pingErr = pool.Ping(ctx); pingErr == nil {
			return pool, nil
		}
		select {
		case <-ctx.Done():
			pool.Close()
			return nil, errors.Join(ErrConnectionNotVerified, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	pool.Close()
	return nil, errors.Join(ErrConnectionNotVerified, pingErr)
}

// Healthcheck returns a health check function for the given pool, suitable
// for readiness probes.
func Healthcheck(pool *pgxpool.Pool) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := pool.Ping(ctx); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}

// Migrate applies goose SQL migrations from the given filesystem against the
// database. Migration state is tracked in the default goose version table.
func Migrate(ctx context.Context, connString string, migrations fs.FS) error {
	db, err := goose.OpenDBWithDriver("pgx", connString)
	if err != nil {
		return errors.Join(ErrMigrationFailed, err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Join(ErrMigrationFailed, err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return errors.Join(ErrMigrationFailed, err)
	}
	return nil
}
