package sqlitestore

import (
	"context"
	"path/filepath"
	"testing"

	"klusmarkt/internal/infrastructure/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "db", "kv.sqlite")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Apply(ctx, []storage.Mutation{
		{Key: storage.KeyJobs, Value: []byte(`[{"id":"1"}]`)},
		{Key: storage.KeyPublicJobListings, Value: []byte(`[{"id":"1"}]`)},
	}))
	require.NoError(t, s.Set(ctx, storage.KeyJobs, []byte(`[{"id":"2"}]`)))
	require.NoError(t, s.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	v, ok, err := s2.Get(ctx, storage.KeyJobs)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"2"}]`, string(v))

	keys, err := s2.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{storage.KeyJobs, storage.KeyPublicJobListings}, keys)

	require.NoError(t, s2.Remove(ctx, storage.KeyPublicJobListings))
	_, ok, err = s2.Get(ctx, storage.KeyPublicJobListings)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_WithAdapter(t *testing.T) {
	ctx := context.Background()
	s, err := Open(filepath.Join(t.TempDir(), "kv.sqlite"))
	require.NoError(t, err)
	a := storage.NewAdapter(s, nil)
	defer a.Close()

	require.NoError(t, a.Set(ctx, storage.KeyAvailabilitySettings, map[string]any{"slotMinutes": 30}))
	got, ok, err := storage.Load[map[string]int](ctx, a, storage.KeyAvailabilitySettings)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 30, got["slotMinutes"])
}
