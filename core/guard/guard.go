package guard

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/authguard/core/claims"
	"github.com/dmitrymomot/authguard/pkg/logger"
)

// defaultTTL is the issuance window for new tokens.
const defaultTTL = 24 * time.Hour

// Guard is the request-scoped authentication state machine. It resolves the
// inbound bearer string to a verified Token and an authenticated Principal,
// issues tokens on login, and revokes them on logout.
//
// A Guard is bound to exactly one request and is not safe for concurrent use.
// When a Guard instance outlives a request, the owner must call SetRequest at
// the start of the next request to reset the memoized state; the middleware
// package does this for every request it serves.
type Guard struct {
	signer    Signer
	provider  Provider
	blacklist Blacklist

	ttl    time.Duration
	issuer string
	now    func() time.Time
	log    *slog.Logger

	req *http.Request

	// token memoization is tri-state: unresolved, resolved-to-token, or
	// settled-to-absent. Absence is memoized; the request cannot grow a
	// bearer header mid-flight.
	tokenResolved bool
	token         *Token

	// user memoization deliberately short-circuits only on a non-nil
	// principal: a nil outcome is re-computed on the next call, so a token
	// set after a failed resolution still gets a chance to resolve.
	user Principal
}

// Option configures a Guard.
type Option func(*Guard)

// WithTTL sets the issuance window for new tokens. Defaults to 24 hours.
func WithTTL(ttl time.Duration) Option {
	return func(g *Guard) {
		if ttl > 0 {
			g.ttl = ttl
		}
	}
}

// WithIssuer sets the iss claim for issued tokens.
func WithIssuer(issuer string) Option {
	return func(g *Guard) {
		g.issuer = issuer
	}
}

// WithClock injects the time source used for exp/iat claims.
// Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(g *Guard) {
		if now != nil {
			g.now = now
		}
	}
}

// WithLogger sets the logger for notable guard transitions.
// Logging is disabled by default.
func WithLogger(log *slog.Logger) Option {
	return func(g *Guard) {
		if log != nil {
			g.log = log
		}
	}
}

// New creates a Guard. The blacklist may be nil, in which case logout clears
// guard state without recording a revocation.
func New(signer Signer, provider Provider, blacklist Blacklist, opts ...Option) *Guard {
	g := &Guard{
		signer:    signer,
		provider:  provider,
		blacklist: blacklist,
		ttl:       defaultTTL,
		now:       time.Now,
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SetRequest binds the guard to an inbound request and resets both memoized
// slots. Returns the guard for chaining.
func (g *Guard) SetRequest(r *http.Request) *Guard {
	g.req = r
	g.tokenResolved = false
	g.token = nil
	g.user = nil
	return g
}

// Request returns the currently bound request, if any.
func (g *Guard) Request() *http.Request {
	return g.req
}

// IssueToken creates a signed token for the principal: sub from the
// principal's identifier, supplemental claims applied under protection, a
// fresh exp within the issuance window, and a random jti as revocation key.
func (g *Guard) IssueToken(p Principal) (*Token, error) {
	if p == nil || p.AuthID() == "" {
		return nil, ErrMissingSubject
	}

	b := claims.NewBuilder().Subject(p.AuthID())

	// Supplemental claims are caller-controlled data: reserved names in
	// them must not be able to override identity, expiry, or revocation
	// claims, so they are applied with protection on.
	if cp, ok := p.(CredentialsProvider); ok {
		b.Apply(cp.AuthClaims(), true)
	}

	now := g.now()
	b.IssuedAt(now).ExpiresAt(now.Add(g.ttl)).TokenID(uuid.New().String())
	if g.issuer != "" {
		b.Issuer(g.issuer)
	}

	set := b.Build()
	raw, err := g.signer.Sign(set)
	if err != nil {
		return nil, errors.Join(ErrFailedToIssue, err)
	}

	g.log.Debug("token issued", logger.UserID(p.AuthID()))
	return &Token{raw: raw, set: set}, nil
}

// Token resolves the request's bearer token. The result, including absence,
// is memoized for the lifetime of the bound request. A missing, malformed, or
// badly signed bearer string yields nil: those are anonymous requests, not
// errors.
func (g *Guard) Token() *Token {
	if g.tokenResolved {
		return g.token
	}
	g.tokenResolved = true
	g.token = g.resolveBearer()
	return g.token
}

// Check reports whether the request carries a valid token.
func (g *Guard) Check() bool {
	return g.Token() != nil
}

// User resolves the authenticated principal for the current token. A non-nil
// cached principal short-circuits; a nil outcome is recomputed on every call.
// Provider errors are infrastructure faults and propagate unmasked; an
// anonymous request is (nil, nil).
func (g *Guard) User(ctx context.Context) (Principal, error) {
	if g.user != nil {
		return g.user, nil
	}

	token := g.Token()
	if token == nil {
		return nil, nil
	}

	var (
		p   Principal
		err error
	)
	if cr, ok := g.provider.(ClaimsResolver); ok {
		p, err = cr.RetrieveByClaims(ctx, token.Claims())
	} else {
		sub := token.Subject()
		if sub == "" {
			return nil, nil
		}
		p, err = g.provider.RetrieveByID(ctx, sub)
	}
	if err != nil {
		return nil, err
	}

	if p != nil {
		g.user = p
	}
	return p, nil
}

// SetToken replaces the cached token and invalidates the cached principal, so
// the next User call re-resolves against the new token's claims. Returns the
// guard for chaining.
func (g *Guard) SetToken(t *Token) *Guard {
	g.tokenResolved = true
	g.token = t
	g.user = nil
	return g
}

// SetUser issues a fresh token for the principal and caches both.
func (g *Guard) SetUser(p Principal) (*Token, error) {
	token, err := g.IssueToken(p)
	if err != nil {
		return nil, err
	}
	g.user = p
	g.tokenResolved = true
	g.token = token
	return token, nil
}

// Login authenticates the principal for the remainder of the request.
// It is an alias for SetUser.
func (g *Guard) Login(p Principal) (*Token, error) {
	return g.SetUser(p)
}

// Validate checks credentials without issuing a token. Both resolution and
// validation must succeed; invalid credentials are (false, nil), never an
// error. On success the resolved principal is cached. A failed validation
// leaves previously cached principal state untouched.
func (g *Guard) Validate(ctx context.Context, creds Credentials) (bool, error) {
	p, err := g.provider.RetrieveByCredentials(ctx, creds)
	if err != nil {
		return false, err
	}
	if p == nil {
		return false, nil
	}

	valid, err := g.provider.ValidateCredentials(ctx, p, creds)
	if err != nil {
		return false, err
	}
	if !valid {
		return false, nil
	}

	g.user = p
	return true, nil
}

// Attempt validates credentials and, on success, issues and caches a token
// for the resolved principal. Invalid credentials are (nil, nil).
func (g *Guard) Attempt(ctx context.Context, creds Credentials) (*Token, error) {
	ok, err := g.Validate(ctx, creds)
	if err != nil || !ok {
		return nil, err
	}

	token, err := g.IssueToken(g.user)
	if err != nil {
		return nil, err
	}
	g.tokenResolved = true
	g.token = token
	return token, nil
}

// Refresh produces a new token carrying the full claim set of the given one
// with a fresh expiration. The jti is carried over, so revoking the original
// identifier also revokes every refresh of it. When t is nil the current
// request token is refreshed.
func (g *Guard) Refresh(t *Token) (*Token, error) {
	if t == nil {
		t = g.Token()
	}
	if t == nil {
		return nil, ErrNoToken
	}

	now := g.now()
	set := claims.NewBuilder().
		Apply(t.Claims(), false).
		IssuedAt(now).
		ExpiresAt(now.Add(g.ttl)).
		Build()

	raw, err := g.signer.Sign(set)
	if err != nil {
		return nil, errors.Join(ErrFailedToIssue, err)
	}
	return &Token{raw: raw, set: set}, nil
}

// Logout revokes the request's bearer token and clears the guard state.
// The token is re-extracted from the request rather than taken from the
// memoized slot. An absent or invalid bearer is already-logged-out: success
// without contacting the blacklist. A blacklist failure is (false, err); the
// guard state is left intact so the caller can retry.
func (g *Guard) Logout(ctx context.Context) (bool, error) {
	token := g.resolveBearer()
	if token == nil {
		g.clear()
		return true, nil
	}

	if g.blacklist != nil {
		if jti := token.ID(); jti != "" {
			until := token.ExpiresAt()
			if until.IsZero() {
				until = g.now().Add(g.ttl)
			}
			if err := g.blacklist.Add(ctx, jti, until); err != nil {
				g.log.Warn("token revocation failed",
					logger.TokenID(jti), logger.Error(err))
				return false, errors.Join(ErrFailedToRevoke, err)
			}
			g.log.Debug("token revoked", logger.TokenID(jti))
		}
	}

	g.clear()
	return true, nil
}

// clear drops both memoized slots without unbinding the request.
func (g *Guard) clear() {
	g.tokenResolved = true
	g.token = nil
	g.user = nil
}

// resolveBearer extracts and verifies the bearer token from the bound
// request. Extraction or verification failures yield nil.
func (g *Guard) resolveBearer() *Token {
	if g.req == nil {
		return nil
	}

	raw := BearerToken(g.req)
	if raw == "" {
		return nil
	}

	set, err := g.signer.Verify(raw)
	if err != nil {
		// Malformed or tampered tokens are anonymous requests, not faults.
		return nil
	}
	return &Token{raw: raw, set: set}
}

// BearerToken extracts the bearer credential from the request's Authorization
// header. Returns an empty string when the header is absent or not a Bearer
// scheme.
func BearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
