package devauth

import (
	"context"
	"testing"

	apperrors "github.com/curiogoods/catalog-api/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResolver_Validation(t *testing.T) {
	_, err := NewResolver(Config{Email: "dev@example.com"})
	require.Error(t, err)

	_, err = NewResolver(Config{Token: "tok"})
	require.Error(t, err)
}

func TestResolveIdentity(t *testing.T) {
	resolver, err := NewResolver(Config{Token: "local-token", Email: "Dev@Example.com"})
	require.NoError(t, err)

	t.Run("matching credential", func(t *testing.T) {
		identity, err := resolver.ResolveIdentity(context.Background(), "local-token")
		require.NoError(t, err)
		assert.Equal(t, "dev-user", identity.Subject)
		assert.Equal(t, "dev@example.com", identity.NormalizedEmail())
	})

	t.Run("wrong credential", func(t *testing.T) {
		_, err := resolver.ResolveIdentity(context.Background(), "nope")
		require.Error(t, err)
		assert.True(t, apperrors.IsUnauthenticated(err))
	})

	t.Run("empty credential", func(t *testing.T) {
		_, err := resolver.ResolveIdentity(context.Background(), "")
		require.Error(t, err)
		assert.True(t, apperrors.IsUnauthenticated(err))
	})
}
