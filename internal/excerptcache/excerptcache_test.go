package excerptcache

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetMissingKey(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	_, ok, err := store.Get(Key([]byte("unseen")))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPutThenGet(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	key := Key([]byte("document content"))
	require.NoError(t, store.Put(key, "the excerpt"))

	excerpt, ok, err := store.Get(key)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "the excerpt", excerpt)
}

func TestPutReplacesExisting(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	key := Key([]byte("doc"))
	require.NoError(t, store.Put(key, "first"))
	require.NoError(t, store.Put(key, "second"))

	excerpt, ok, err := store.Get(key)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "second", excerpt)
}

func TestPersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "excerpts.db")

	store, err := Open(path)
	require.NoError(t, err)
	key := Key([]byte("doc"))
	require.NoError(t, store.Put(key, "persisted"))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	excerpt, ok, err := reopened.Get(key)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "persisted", excerpt)
}

func TestKeyIsContentAddressed(t *testing.T) {
	require.Equal(t, Key([]byte("same")), Key([]byte("same")))
	require.NotEqual(t, Key([]byte("one")), Key([]byte("two")))
}
