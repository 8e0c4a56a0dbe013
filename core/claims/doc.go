// Package claims provides the claim set and builder used to construct signed
// token payloads.
//
// A claim is a named attribute embedded in a token's signed payload. Seven
// names are reserved (aud, exp, jti, iat, iss, nbf, sub) and carry well-known
// semantics; everything else is an application-defined custom claim.
//
// # Builder
//
// Builder accumulates claims before signing:
//
//	set := claims.NewBuilder().
//		Subject("user-123").
//		ExpiresAt(time.Now().Add(24 * time.Hour)).
//		TokenID(uuid.New().String()).
//		Set("role", "admin").
//		Build()
//
// Build returns an independent Set, so mutating the builder afterwards never
// changes an already-built set.
//
// # Protected application
//
// Apply copies an existing set into a builder. With protect=true, reserved
// claims in the source are silently dropped instead of applied. This is the
// mechanism that keeps principal-supplied supplemental claims from forging
// system-controlled claims such as exp or jti during token issuance:
//
//	b := claims.NewBuilder().Subject(user.AuthID())
//	b.Apply(user.AuthClaims(), true) // cannot override sub, exp, jti, ...
//
// With protect=false all claims carry over, which is how token refresh
// preserves the full claim set of the prior token.
package claims
