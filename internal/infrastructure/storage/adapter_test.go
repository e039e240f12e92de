package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type record struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func TestAdapter_LoadMissingAndRoundTrip(t *testing.T) {
	ctx := context.Background()
	a := NewAdapter(NewMemoryStore(), nil)

	_, ok, err := Load[[]record](ctx, a, KeyJobs)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, a.Set(ctx, KeyJobs, []record{{ID: "1", Title: "Bathroom"}}))
	got, ok, err := Load[[]record](ctx, a, KeyJobs)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []record{{ID: "1", Title: "Bathroom"}}, got)

	require.NoError(t, a.Remove(ctx, KeyJobs))
	_, ok, err = Load[[]record](ctx, a, KeyJobs)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAdapter_CorruptPayloadIsAbsent(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zapcore.WarnLevel)
	store := NewMemoryStore()
	a := NewAdapter(store, zap.New(core))

	for _, raw := range []string{`{"id":`, `{"id":"1"}`, `not json`} {
		require.NoError(t, store.Set(ctx, KeyJobs, []byte(raw)))
		got, ok, err := Load[[]record](ctx, a, KeyJobs)
		require.NoError(t, err, raw)
		assert.False(t, ok, raw)
		assert.Nil(t, got, raw)
	}
	require.Equal(t, 3, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, KeyJobs, entry.ContextMap()["key"])
}

func TestAdapter_UpdateIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	a := NewAdapter(NewMemoryStore(), nil)
	require.NoError(t, a.Set(ctx, KeyJobs, []record{{ID: "1"}}))

	boom := errors.New("boom")
	err := a.Update(ctx, func(tx *Txn) error {
		require.NoError(t, tx.Set(KeyJobs, []record{}))
		require.NoError(t, tx.Set(KeyPublicJobListings, []record{{ID: "x"}}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	jobs, _, _ := Load[[]record](ctx, a, KeyJobs)
	assert.Len(t, jobs, 1)
	_, ok, _ := Load[[]record](ctx, a, KeyPublicJobListings)
	assert.False(t, ok)
}

func TestAdapter_TxnReadsOwnWrites(t *testing.T) {
	ctx := context.Background()
	a := NewAdapter(NewMemoryStore(), nil)

	err := a.Update(ctx, func(tx *Txn) error {
		if err := tx.Set(KeyJobs, []record{{ID: "1"}}); err != nil {
			return err
		}
		got, ok, err := Load[[]record](ctx, tx, KeyJobs)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Len(t, got, 1)

		tx.Remove(KeyJobs)
		_, ok, err = Load[[]record](ctx, tx, KeyJobs)
		require.NoError(t, err)
		assert.False(t, ok)
		return tx.Set(KeyJobs, []record{{ID: "2"}})
	})
	require.NoError(t, err)

	got, _, _ := Load[[]record](ctx, a, KeyJobs)
	assert.Equal(t, []record{{ID: "2"}}, got)
}

func TestAdapter_EncodeFailureWritesNothing(t *testing.T) {
	ctx := context.Background()
	a := NewAdapter(NewMemoryStore(), nil)
	err := a.Set(ctx, KeyJobs, map[string]any{"bad": make(chan int)})
	require.Error(t, err)
	_, ok, _ := Load[map[string]any](ctx, a, KeyJobs)
	assert.False(t, ok)
}

func TestMemoryHub_CrossTabChanges(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewMemoryHub()
	tabA, tabB := hub.Tab("a"), hub.Tab("b")
	defer tabA.Close()
	defer tabB.Close()

	changesB, err := tabB.Watch(ctx)
	require.NoError(t, err)
	changesA, err := tabA.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, tabA.Set(ctx, KeyAgendaItems, []byte(`[]`)))

	select {
	case c := <-changesB:
		assert.Equal(t, KeyAgendaItems, c.Key)
		assert.Equal(t, "a", c.Origin)
		assert.False(t, c.Removed)
	case <-time.After(time.Second):
		t.Fatal("tab b did not observe the write")
	}
	select {
	case c := <-changesA:
		t.Fatalf("tab a must not observe its own write: %+v", c)
	default:
	}

	v, ok, err := tabB.Get(ctx, KeyAgendaItems)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[]`, string(v))

	cancel()
	_, open := <-changesB
	for open {
		_, open = <-changesB
	}
}

func TestMemoryStore_Closed(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Close())
	_, _, err := s.Get(ctx, KeyJobs)
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, s.Set(ctx, KeyJobs, nil), ErrClosed)
}

func TestChatKey(t *testing.T) {
	k := ChatKey("job-1_craft-2")
	assert.Equal(t, "chat_job-1_craft-2", k)
	id, ok := ChatIDFromKey(k)
	assert.True(t, ok)
	assert.Equal(t, "job-1_craft-2", id)
	_, ok = ChatIDFromKey("chat_")
	assert.False(t, ok)
}
