// Package jwt provides RFC 7519 token generation and validation using
// HMAC-SHA256, built on github.com/golang-jwt/jwt/v5.
//
// The service signs arbitrary JSON-serializable claims and verifies both the
// signature and the temporal claims (exp, nbf) on parse. Tokens signed with
// any algorithm other than HMAC are rejected to prevent algorithm confusion.
//
// Basic usage:
//
//	service, err := jwt.NewFromString("your-256-bit-secret-at-least-32-bytes")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	token, err := service.Generate(jwt.StandardClaims{
//		Subject:   "user123",
//		ExpiresAt: time.Now().Add(time.Hour).Unix(),
//		IssuedAt:  time.Now().Unix(),
//	})
//
// Parsing into typed claims:
//
//	var claims jwt.StandardClaims
//	if err := service.Parse(token, &claims); err != nil {
//		switch {
//		case errors.Is(err, jwt.ErrExpiredToken):
//			// expired or not yet valid
//		case errors.Is(err, jwt.ErrInvalidSignature):
//			// tampered or signed with another key
//		}
//	}
//
// ParseMap returns the payload as a generic map for callers that work with
// dynamic claim sets.
//
// Signing keys must be at least 32 bytes and should come from a
// cryptographically secure random source.
package jwt
