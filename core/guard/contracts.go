package guard

import (
	"context"
	"time"

	"github.com/dmitrymomot/authguard/core/claims"
)

// Credentials is an opaque credential payload (e.g. email/password pairs).
// The guard never inspects it; only the Provider does.
type Credentials map[string]any

// Principal is an authenticated identity. Implementations expose a stable
// unique identifier used as the token subject.
type Principal interface {
	// AuthID returns the principal's unique identifier.
	AuthID() string
}

// CredentialsProvider is an optional Principal capability. Principals that
// implement it contribute a supplemental claim set at token issuance time.
// The contributed claims are applied under protection: reserved claims in
// the returned set are dropped, not applied.
type CredentialsProvider interface {
	// AuthClaims returns claims to embed in tokens issued for the principal.
	AuthClaims() claims.Set
}

// Provider resolves and validates principals against a persistent store.
// Absence is (nil, nil); a non-nil error is an infrastructure fault (store
// unreachable, query failed) and is never masked as an authentication failure.
type Provider interface {
	// RetrieveByID resolves a principal by unique identifier.
	RetrieveByID(ctx context.Context, id string) (Principal, error)
	// RetrieveByCredentials resolves a principal by credentials without
	// validating them.
	RetrieveByCredentials(ctx context.Context, creds Credentials) (Principal, error)
	// ValidateCredentials checks credentials against a resolved principal.
	ValidateCredentials(ctx context.Context, p Principal, creds Credentials) (bool, error)
}

// ClaimsResolver is an optional Provider capability. Providers that implement
// it resolve principals from the full claim set instead of the subject claim
// alone, allowing additional claim checks (issuer, audience, custom claims).
type ClaimsResolver interface {
	// RetrieveByClaims resolves a principal from a verified claim set.
	RetrieveByClaims(ctx context.Context, set claims.Set) (Principal, error)
}

// Signer produces and verifies signed tokens over claim sets.
type Signer interface {
	// Sign serializes and signs the claim set, returning the compact token.
	Sign(set claims.Set) (string, error)
	// Verify checks the token's signature and temporal claims and returns
	// the parsed claim set.
	Verify(token string) (claims.Set, error)
}

// Blacklist records revoked token identifiers (jti claims). A revoked entry
// only needs to survive until the token's natural expiration.
type Blacklist interface {
	// Add marks a token identifier as revoked until the given time.
	Add(ctx context.Context, jti string, until time.Time) error
	// IsRevoked reports whether a token identifier has been revoked.
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
