// Package guard implements a bearer-token authentication guard: the state
// machine between an inbound HTTP request and an authenticated principal.
//
// A Guard is bound to exactly one request. On the read path it extracts the
// bearer string from the Authorization header, verifies it through the Signer,
// and resolves the principal through the Provider; both results are memoized
// for the remainder of the request. On the write path it issues signed tokens
// on login, re-signs claim sets on refresh, and records revocations on logout.
//
// # Read path
//
//	g := factory.Guard().SetRequest(r)
//
//	token := g.Token()        // nil for anonymous requests
//	user, err := g.User(ctx)  // err only on infrastructure faults
//
// A missing, malformed, or badly signed bearer string is not an error: it is
// an anonymous request, represented as a nil token and nil principal. Provider
// failures (store unreachable) are real errors and propagate, so callers can
// distinguish "not authenticated" from "auth subsystem broken".
//
// # Write path
//
//	token, err := g.Attempt(ctx, guard.Credentials{
//		"email":    "user@example.com",
//		"password": "secret",
//	})
//
//	token, err = g.Refresh(nil) // re-sign current token with a fresh exp
//	ok, err := g.Logout(ctx)    // blacklist current jti, clear guard state
//
// Issued tokens always carry sub (the principal identifier), exp (now plus
// the issuance window, 24h by default), iat, and a random jti used as the
// revocation key. Supplemental claims contributed by the principal are
// applied under protection: they can never override reserved claims.
//
// # Revocation model
//
// The blacklist is consulted only at logout time. A revoked but unexpired
// token remains acceptable to Token until its natural expiry; deployments
// that need read-path revocation can check Blacklist.IsRevoked against
// Token().ID() themselves. Refresh carries the jti over, so revoking one
// identifier revokes the whole refresh family.
//
// # Request reuse
//
// Guards do not reset themselves. SetRequest clears the memoized token and
// principal slots; whoever owns a long-lived guard must call it at every
// request boundary. The middleware package builds a fresh bound guard per
// request, which is the recommended setup.
package guard
