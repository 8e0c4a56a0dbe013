package guard

import "errors"

var (
	// ErrNoToken is returned when an operation requires a resolved token and
	// the request carries none.
	ErrNoToken = errors.New("no token available")
	// ErrMissingSubject is returned when a token issuance target has an empty
	// identifier.
	ErrMissingSubject = errors.New("principal has no identifier")
	// ErrFailedToIssue is returned when signing a new token fails.
	ErrFailedToIssue = errors.New("failed to issue token")
	// ErrFailedToRevoke is returned when the blacklist rejects a revocation.
	ErrFailedToRevoke = errors.New("failed to revoke token")
)
