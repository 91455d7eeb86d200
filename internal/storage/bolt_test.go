package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reel/internal/domain"
)

func TestBoltStoreRoundTrip(t *testing.T) {
	store, err := NewBoltStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	_, ok, err := store.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set("k", `{"a":1}`))

	value, ok, err := store.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"a":1}`, value)

	require.NoError(t, store.Delete("k"))
	_, ok, err = store.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBoltStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := NewBoltStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("k", "v"))
	require.NoError(t, store.Close())

	reopened, err := NewBoltStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	value, ok, err := reopened.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v", value)
}

func TestBoltStoreClosedOperationsFail(t *testing.T) {
	store, err := NewBoltStore("")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, _, err = store.Get("k")
	assert.ErrorIs(t, err, domain.ErrStoreClosed)
	assert.ErrorIs(t, store.Set("k", "v"), domain.ErrStoreClosed)
	assert.ErrorIs(t, store.Delete("k"), domain.ErrStoreClosed)
}

func TestBoltStoreMemoryOnlyMode(t *testing.T) {
	store, err := NewBoltStore("")
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Set("k", "v"))
	value, ok, err := store.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v", value)
}
