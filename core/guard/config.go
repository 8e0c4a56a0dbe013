package guard

import (
	"errors"
	"time"

	"github.com/dmitrymomot/authguard/pkg/jwt"
)

// Config provides environment-based configuration for the guard factory.
type Config struct {
	// SigningKey is the HMAC signing secret (required, no default).
	SigningKey string `env:"AUTH_JWT_SECRET,required"`

	// TokenTTL is the issuance window for new tokens.
	TokenTTL time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"24h"`

	// Issuer is the iss claim for issued tokens.
	Issuer string `env:"AUTH_ISSUER" envDefault:""`
}

// Factory builds request-bound guards from a shared collaborator set. The
// factory itself is safe for concurrent use; the guards it produces are not.
type Factory struct {
	signer    Signer
	provider  Provider
	blacklist Blacklist
	opts      []Option
}

// NewFactory creates a guard factory. The blacklist may be nil.
func NewFactory(signer Signer, provider Provider, blacklist Blacklist, opts ...Option) *Factory {
	return &Factory{
		signer:    signer,
		provider:  provider,
		blacklist: blacklist,
		opts:      opts,
	}
}

// NewFactoryFromConfig creates a guard factory with an HMAC signer built from
// configuration. Returns an error if the signing key is missing or too short.
func NewFactoryFromConfig(cfg Config, provider Provider, blacklist Blacklist, opts ...Option) (*Factory, error) {
	if cfg.SigningKey == "" {
		return nil, errors.New("guard: signing key is required")
	}

	service, err := jwt.NewFromString(cfg.SigningKey)
	if err != nil {
		return nil, err
	}

	base := []Option{WithTTL(cfg.TokenTTL)}
	if cfg.Issuer != "" {
		base = append(base, WithIssuer(cfg.Issuer))
	}

	return NewFactory(NewJWTSigner(service), provider, blacklist, append(base, opts...)...), nil
}

// Guard returns a new unbound guard.
func (f *Factory) Guard() *Guard {
	return New(f.signer, f.provider, f.blacklist, f.opts...)
}
