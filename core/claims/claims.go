package claims

import (
	"time"
)

// Reserved claim names carry well-known semantics and are controlled by the
// token issuer, never by caller-supplied claim payloads.
const (
	ClaimAudience  = "aud" // intended token audience
	ClaimExpiresAt = "exp" // expiration, unix seconds
	ClaimTokenID   = "jti" // unique token identifier, revocation key
	ClaimIssuedAt  = "iat" // issuance time, unix seconds
	ClaimIssuer    = "iss" // token issuer
	ClaimNotBefore = "nbf" // valid-from time, unix seconds
	ClaimSubject   = "sub" // subject / principal identifier
)

// reservedNames indexes the seven reserved claim names for O(1) lookup.
var reservedNames = map[string]struct{}{
	ClaimAudience:  {},
	ClaimExpiresAt: {},
	ClaimTokenID:   {},
	ClaimIssuedAt:  {},
	ClaimIssuer:    {},
	ClaimNotBefore: {},
	ClaimSubject:   {},
}

// IsReserved reports whether name is one of the seven reserved claim names.
func IsReserved(name string) bool {
	_, ok := reservedNames[name]
	return ok
}

// Claim is a single named attribute of a token payload.
type Claim struct {
	Name  string
	Value any
}

// Set is a claim-name to value mapping. Values are JSON-scalar compatible
// (strings, numbers, booleans); time-valued reserved claims are stored as
// unix seconds.
type Set map[string]any

// Has reports whether the set contains a claim with the given name.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Get returns the raw value of the named claim.
func (s Set) Get(name string) (any, bool) {
	v, ok := s[name]
	return v, ok
}

// Clone returns an independent shallow copy of the set.
func (s Set) Clone() Set {
	if s == nil {
		return nil
	}
	out := make(Set, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Subject returns the "sub" claim as a string.
func (s Set) Subject() (string, bool) {
	return s.stringClaim(ClaimSubject)
}

// TokenID returns the "jti" claim as a string.
func (s Set) TokenID() (string, bool) {
	return s.stringClaim(ClaimTokenID)
}

// Issuer returns the "iss" claim as a string.
func (s Set) Issuer() (string, bool) {
	return s.stringClaim(ClaimIssuer)
}

// Audience returns the "aud" claim as a string.
func (s Set) Audience() (string, bool) {
	return s.stringClaim(ClaimAudience)
}

// ExpiresAt returns the "exp" claim as a time.
func (s Set) ExpiresAt() (time.Time, bool) {
	return s.timeClaim(ClaimExpiresAt)
}

// IssuedAt returns the "iat" claim as a time.
func (s Set) IssuedAt() (time.Time, bool) {
	return s.timeClaim(ClaimIssuedAt)
}

// NotBefore returns the "nbf" claim as a time.
func (s Set) NotBefore() (time.Time, bool) {
	return s.timeClaim(ClaimNotBefore)
}

func (s Set) stringClaim(name string) (string, bool) {
	v, ok := s[name]
	if !ok {
		return "", false
	}
	str, ok := v.(string)
	return str, ok
}

func (s Set) timeClaim(name string) (time.Time, bool) {
	v, ok := s[name]
	if !ok {
		return time.Time{}, false
	}
	sec, ok := toUnix(v)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(sec, 0), true
}

// toUnix normalizes the numeric representations a claim value can arrive in
// (int64 when built locally, float64 after a JSON round-trip) to unix seconds.
func toUnix(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	case time.Time:
		return n.Unix(), true
	default:
		return 0, false
	}
}
