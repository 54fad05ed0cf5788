package bolt_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/core/storage"
	"github.com/dmitrymomot/storefront/integration/storage/bolt"
)

func TestStorage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cart.db")

	st, err := bolt.Open(path, bolt.WithBucket("carts"))
	require.NoError(t, err)

	_, err = st.Get(ctx, "shopping_cart")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, storage.SaveJSON(ctx, st, "shopping_cart", []string{"p1"}))
	require.NoError(t, st.Set(ctx, "a", []byte("1")))

	keys, err := st.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "shopping_cart"}, keys)
	require.NoError(t, st.Close())

	reopened, err := bolt.Open(path, bolt.WithBucket("carts"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	var lines []string
	require.NoError(t, storage.LoadJSON(ctx, reopened, "shopping_cart", &lines))
	assert.Equal(t, []string{"p1"}, lines)

	require.NoError(t, reopened.Delete(ctx, "shopping_cart"))
	require.NoError(t, reopened.Delete(ctx, "shopping_cart"))
	_, err = reopened.Get(ctx, "shopping_cart")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestOpenInvalidPath(t *testing.T) {
	t.Parallel()

	_, err := bolt.Open(filepath.Join(t.TempDir(), "missing", "dir", "x.db"))
	assert.ErrorIs(t, err, bolt.ErrOpen)
}
