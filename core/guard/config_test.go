package guard_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authguard/core/guard"
)

func TestNewFactoryFromConfig(t *testing.T) {
	t.Run("missing signing key", func(t *testing.T) {
		_, err := guard.NewFactoryFromConfig(guard.Config{}, &fakeProvider{}, nil)
		assert.Error(t, err)
	})

	t.Run("short signing key", func(t *testing.T) {
		_, err := guard.NewFactoryFromConfig(guard.Config{SigningKey: "short"}, &fakeProvider{}, nil)
		assert.Error(t, err)
	})

	t.Run("guards share collaborators", func(t *testing.T) {
		now := time.Now()
		cfg := guard.Config{
			SigningKey: testSigningKey,
			TokenTTL:   time.Hour,
			Issuer:     "authguard-test",
		}
		alice := &testUser{id: "user-1"}
		provider := &fakeProvider{usersByID: map[string]guard.Principal{"user-1": alice}}

		factory, err := guard.NewFactoryFromConfig(cfg, provider, nil,
			guard.WithClock(func() time.Time { return now }))
		require.NoError(t, err)

		issued, err := factory.Guard().IssueToken(alice)
		require.NoError(t, err)
		assert.Equal(t, now.Add(time.Hour).Unix(), issued.ExpiresAt().Unix())
		iss, ok := issued.Claims().Issuer()
		require.True(t, ok)
		assert.Equal(t, "authguard-test", iss)

		// A second guard from the same factory verifies the first's tokens.
		g := factory.Guard().SetRequest(requestWithBearer(issued.String()))
		require.NotNil(t, g.Token())

		user, err := g.User(context.Background())
		require.NoError(t, err)
		assert.Same(t, guard.Principal(alice), user)
	})
}
