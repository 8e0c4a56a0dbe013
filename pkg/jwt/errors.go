package jwt

import "errors"

var (
	// ErrSigningKeyTooShort is returned when the signing key is shorter than
	// the 32 bytes required for HMAC-SHA256.
	ErrSigningKeyTooShort = errors.New("signing key must be at least 32 bytes")
	// ErrFailedToSign is returned when token generation fails.
	ErrFailedToSign = errors.New("failed to sign token")
	// ErrInvalidToken is returned when a token cannot be parsed or its claims
	// fail validation.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned when a token's exp claim is in the past or
	// its nbf claim is in the future.
	ErrExpiredToken = errors.New("token has expired or is not yet valid")
	// ErrInvalidSignature is returned when the token signature does not match.
	ErrInvalidSignature = errors.New("invalid token signature")
	// ErrUnexpectedSigningMethod is returned when a token was signed with an
	// algorithm other than HMAC-SHA256.
	ErrUnexpectedSigningMethod = errors.New("unexpected signing method")
)
