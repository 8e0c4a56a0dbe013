package guard

import (
	"time"

	"github.com/dmitrymomot/authguard/core/claims"
)

// Token is an immutable signed token: the compact wire string plus its parsed
// claim set view. Tokens are never mutated after creation; refresh produces a
// new Token.
type Token struct {
	raw string
	set claims.Set
}

// NewToken wraps an already-verified compact token string and its claim set.
func NewToken(raw string, set claims.Set) *Token {
	return &Token{raw: raw, set: set.Clone()}
}

// String returns the compact serialized token.
func (t *Token) String() string {
	return t.raw
}

// Claims returns an independent copy of the token's claim set.
func (t *Token) Claims() claims.Set {
	return t.set.Clone()
}

// Subject returns the sub claim, or an empty string when absent.
func (t *Token) Subject() string {
	sub, _ := t.set.Subject()
	return sub
}

// ID returns the jti claim (the revocation key), or an empty string when absent.
func (t *Token) ID() string {
	jti, _ := t.set.TokenID()
	return jti
}

// ExpiresAt returns the exp claim, or the zero time when absent.
func (t *Token) ExpiresAt() time.Time {
	exp, _ := t.set.ExpiresAt()
	return exp
}
