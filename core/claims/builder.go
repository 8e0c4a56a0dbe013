package claims

import (
	"fmt"
	"time"
)

// Builder accumulates claims before signing. Reserved claims go through their
// dedicated setters; Set handles custom claims. All setters return the builder
// for chaining. Build returns an independent Set, so a built set never aliases
// the builder's internal state.
type Builder struct {
	claims Set
}

// NewBuilder returns an empty claim builder.
func NewBuilder() *Builder {
	return &Builder{claims: make(Set)}
}

// Subject sets the "sub" claim.
func (b *Builder) Subject(sub string) *Builder {
	b.claims[ClaimSubject] = sub
	return b
}

// Audience sets the "aud" claim.
func (b *Builder) Audience(aud string) *Builder {
	b.claims[ClaimAudience] = aud
	return b
}

// Issuer sets the "iss" claim.
func (b *Builder) Issuer(iss string) *Builder {
	b.claims[ClaimIssuer] = iss
	return b
}

// TokenID sets the "jti" claim.
func (b *Builder) TokenID(jti string) *Builder {
	b.claims[ClaimTokenID] = jti
	return b
}

// ExpiresAt sets the "exp" claim as unix seconds.
func (b *Builder) ExpiresAt(t time.Time) *Builder {
	b.claims[ClaimExpiresAt] = t.Unix()
	return b
}

// IssuedAt sets the "iat" claim as unix seconds.
func (b *Builder) IssuedAt(t time.Time) *Builder {
	b.claims[ClaimIssuedAt] = t.Unix()
	return b
}

// NotBefore sets the "nbf" claim as unix seconds.
func (b *Builder) NotBefore(t time.Time) *Builder {
	b.claims[ClaimNotBefore] = t.Unix()
	return b
}

// Set assigns a custom (non-reserved) claim. Reserved names are routed through
// their dedicated setter so time values are normalized consistently.
func (b *Builder) Set(name string, value any) *Builder {
	if IsReserved(name) {
		return b.applyReserved(name, value)
	}
	b.claims[name] = value
	return b
}

// Apply copies claims from source into the builder. Non-reserved claims are
// applied unconditionally. Reserved claims are applied through their dedicated
// setter when protect is false, and silently dropped when protect is true:
// a caller issuing tokens from principal-supplied data must not be able to
// forge identity, expiry, or revocation claims.
func (b *Builder) Apply(source Set, protect bool) *Builder {
	for name, value := range source {
		if IsReserved(name) {
			if protect {
				continue
			}
			b.applyReserved(name, value)
			continue
		}
		b.claims[name] = value
	}
	return b
}

// ApplyClaims copies structured claims into the builder under the same
// protection rules as Apply.
func (b *Builder) ApplyClaims(source []Claim, protect bool) *Builder {
	for _, c := range source {
		if IsReserved(c.Name) {
			if protect {
				continue
			}
			b.applyReserved(c.Name, c.Value)
			continue
		}
		b.claims[c.Name] = c.Value
	}
	return b
}

// Has reports whether the builder already holds the named claim.
func (b *Builder) Has(name string) bool {
	return b.claims.Has(name)
}

// Build returns an independent snapshot of the accumulated claims.
func (b *Builder) Build() Set {
	return b.claims.Clone()
}

// applyReserved dispatches a reserved claim value to its setter, normalizing
// the value representation on the way in.
func (b *Builder) applyReserved(name string, value any) *Builder {
	switch name {
	case ClaimExpiresAt, ClaimIssuedAt, ClaimNotBefore:
		if sec, ok := toUnix(value); ok {
			b.claims[name] = sec
		}
	case ClaimSubject, ClaimTokenID, ClaimIssuer, ClaimAudience:
		b.claims[name] = stringify(value)
	}
	return b
}

// stringify coerces identifier-valued reserved claims to strings. Principal
// identifiers commonly arrive as non-string scalars (numeric database ids).
func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
