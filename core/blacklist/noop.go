package blacklist

import (
	"context"
	"time"
)

// Noop is a blacklist that never revokes anything. Use it when token
// revocation is not required and short token lifetimes are acceptable.
type Noop struct{}

// Add does nothing and returns nil.
func (Noop) Add(_ context.Context, _ string, _ time.Time) error {
	return nil
}

// IsRevoked always reports false.
func (Noop) IsRevoked(_ context.Context, _ string) (bool, error) {
	return false, nil
}
