package postgres

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/authguard/core/claims"
)

// User is a stored principal. It satisfies both guard.Principal and the
// optional credentials-providing capability: the stored claims document is
// embedded into every token issued for the user, under reserved-claim
// protection.
type User struct {
	ID        uuid.UUID
	Email     string
	Claims    claims.Set
	CreatedAt time.Time
	UpdatedAt time.Time

	passwordHash string
}

// AuthID returns the user's unique identifier as the token subject.
func (u *User) AuthID() string {
	return u.ID.String()
}

// AuthClaims returns the user's stored claims document plus the email claim.
func (u *User) AuthClaims() claims.Set {
	set := u.Claims.Clone()
	if set == nil {
		set = make(claims.Set)
	}
	if u.Email != "" {
		set["email"] = u.Email
	}
	return set
}
