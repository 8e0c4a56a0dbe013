package blacklist

import (
	"context"
	"sync"
	"time"
)

// Memory is a mutex-guarded in-process blacklist. Entries expire lazily on
// read; call Cleanup periodically in long-running processes to reclaim memory
// from identifiers that are never queried again.
//
// Suitable for tests and single-process deployments. Multi-instance
// deployments need a shared backend such as Redis.
type Memory struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

// NewMemory creates an empty in-memory blacklist.
func NewMemory() *Memory {
	return &Memory{revoked: make(map[string]time.Time)}
}

// Add marks the token identifier as revoked until the given time.
func (m *Memory) Add(_ context.Context, jti string, until time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revoked[jti] = until
	return nil
}

// IsRevoked reports whether the token identifier is currently revoked.
// Expired entries are removed on the way out.
func (m *Memory) IsRevoked(_ context.Context, jti string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	until, ok := m.revoked[jti]
	if !ok {
		return false, nil
	}
	if time.Now().After(until) {
		delete(m.revoked, jti)
		return false, nil
	}
	return true, nil
}

// Cleanup removes all expired entries and returns the number removed.
func (m *Memory) Cleanup() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	removed := 0
	for jti, until := range m.revoked {
		if now.After(until) {
			delete(m.revoked, jti)
			removed++
		}
	}
	return removed
}
