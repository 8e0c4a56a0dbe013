package blacklist_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authguard/core/blacklist"
)

func TestMemory_AddAndIsRevoked(t *testing.T) {
	ctx := context.Background()
	bl := blacklist.NewMemory()

	revoked, err := bl.IsRevoked(ctx, "token-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, bl.Add(ctx, "token-1", time.Now().Add(time.Hour)))

	revoked, err = bl.IsRevoked(ctx, "token-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = bl.IsRevoked(ctx, "token-2")
	require.NoError(t, err)
	assert.False(t, revoked, "revocation is keyed per identifier")
}

func TestMemory_ExpiredEntriesNotRevoked(t *testing.T) {
	ctx := context.Background()
	bl := blacklist.NewMemory()

	require.NoError(t, bl.Add(ctx, "token-1", time.Now().Add(-time.Minute)))

	revoked, err := bl.IsRevoked(ctx, "token-1")
	require.NoError(t, err)
	assert.False(t, revoked, "entries past the token's expiry no longer revoke")
}

func TestMemory_Cleanup(t *testing.T) {
	ctx := context.Background()
	bl := blacklist.NewMemory()

	require.NoError(t, bl.Add(ctx, "expired-1", time.Now().Add(-time.Minute)))
	require.NoError(t, bl.Add(ctx, "expired-2", time.Now().Add(-time.Second)))
	require.NoError(t, bl.Add(ctx, "live", time.Now().Add(time.Hour)))

	assert.Equal(t, 2, bl.Cleanup())
	assert.Equal(t, 0, bl.Cleanup(), "second sweep finds nothing")

	revoked, err := bl.IsRevoked(ctx, "live")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestMemory_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	bl := blacklist.NewMemory()
	until := time.Now().Add(time.Hour)

	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func(id byte) {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				_ = bl.Add(ctx, string([]byte{'a' + id, byte('0' + j%10)}), until)
				_, _ = bl.IsRevoked(ctx, "a0")
			}
		}(byte(i))
	}
	for i := 0; i < 4; i++ {
		<-done
	}

	revoked, err := bl.IsRevoked(ctx, "a0")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestNoop(t *testing.T) {
	ctx := context.Background()
	bl := blacklist.Noop{}

	require.NoError(t, bl.Add(ctx, "token-1", time.Now().Add(time.Hour)))

	revoked, err := bl.IsRevoked(ctx, "token-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}
