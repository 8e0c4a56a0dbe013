package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/authguard/core/claims"
	"github.com/dmitrymomot/authguard/core/guard"
	"github.com/dmitrymomot/authguard/integration/database/pg"
)

var (
	// ErrEmailTaken is returned when creating a user with an email that
	// already exists.
	ErrEmailTaken = errors.New("email already taken")
	// ErrFailedToHashPassword is returned when bcrypt rejects the password.
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// Provider is a Postgres-backed principal provider. It implements the full
// guard.Provider contract plus the claims-resolving capability, so the guard
// resolves principals from the verified claim set rather than the subject
// claim alone.
//
// All queries respect a pgx.Tx carried in the context via pg.WithTx.
type Provider struct {
	pool *pgxpool.Pool
}

// New creates a provider on top of the given connection pool.
func New(pool *pgxpool.Pool) *Provider {
	return &Provider{pool: pool}
}

const userColumns = "id, email, password_hash, claims, created_at, updated_at"

// RetrieveByID resolves a user by identifier. Unknown or malformed
// identifiers are (nil, nil); only infrastructure faults return an error.
func (p *Provider) RetrieveByID(ctx context.Context, id string) (guard.Principal, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}

	q := pg.QuerierFromContext(ctx, p.pool)
	row := q.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", userID)
	return scanUser(row)
}

// RetrieveByClaims resolves a user from a verified claim set using the sub
// claim. Claim sets without a subject are anonymous.
func (p *Provider) RetrieveByClaims(ctx context.Context, set claims.Set) (guard.Principal, error) {
	sub, ok := set.Subject()
	if !ok || sub == "" {
		return nil, nil
	}
	return p.RetrieveByID(ctx, sub)
}

// RetrieveByCredentials resolves a user by the email credential without
// validating the password.
func (p *Provider) RetrieveByCredentials(ctx context.Context, creds guard.Credentials) (guard.Principal, error) {
	email, ok := creds["email"].(string)
	if !ok || email == "" {
		return nil, nil
	}

	q := pg.QuerierFromContext(ctx, p.pool)
	row := q.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE email = $1", email)
	return scanUser(row)
}

// ValidateCredentials checks the password credential against the stored
// bcrypt hash. A wrong password is (false, nil), never an error.
func (p *Provider) ValidateCredentials(_ context.Context, principal guard.Principal, creds guard.Credentials) (bool, error) {
	user, ok := principal.(*User)
	if !ok {
		return false, nil
	}
	password, ok := creds["password"].(string)
	if !ok || password == "" {
		return false, nil
	}

	err := bcrypt.CompareHashAndPassword([]byte(user.passwordHash), []byte(password))
	return err == nil, nil
}

// Create stores a new user with a bcrypt-hashed password and an optional
// custom claims document.
func (p *Provider) Create(ctx context.Context, email, password string, customClaims claims.Set) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Join(ErrFailedToHashPassword, err)
	}

	if customClaims == nil {
		customClaims = make(claims.Set)
	}

	q := pg.QuerierFromContext(ctx, p.pool)
	row := q.QueryRow(ctx,
		`INSERT INTO users (id, email, password_hash, claims)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (email) DO NOTHING
		 RETURNING `+userColumns,
		uuid.New(), email, string(hash), map[string]any(customClaims),
	)

	user, err := scanUser(row)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrEmailTaken
	}
	return user.(*User), nil
}

// scanUser maps a row to a User. pgx.ErrNoRows is absence, not an error.
func scanUser(row pgx.Row) (guard.Principal, error) {
	var (
		user      User
		claimsDoc map[string]any
	)
	err := row.Scan(&user.ID, &user.Email, &user.passwordHash, &claimsDoc, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	user.Claims = claims.Set(claimsDoc)
	return &user, nil
}
