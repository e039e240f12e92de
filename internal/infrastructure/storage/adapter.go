package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Adapter is the JSON view over a Store.
//
// Reads may run concurrently; Update calls are serialised so every
// read-modify-write sees the previous one's result. Cross-process writers are
// not coordinated: the last physical write wins.
type Adapter struct {
	store Store
	log   *zap.Logger
	mu    sync.RWMutex
}

func NewAdapter(store Store, log *zap.Logger) *Adapter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Adapter{store: store, log: log}
}

// Reader is satisfied by *Adapter and *Txn.
type Reader interface {
	read(ctx context.Context, key string) ([]byte, bool, error)
	corrupt(key string, err error)
}

// Load decodes the value at key. Missing keys and corrupt payloads both return
// found=false with a nil error; corrupt payloads are logged.
func Load[T any](ctx context.Context, r Reader, key string) (T, bool, error) {
	var zero T
	raw, ok, err := r.read(ctx, key)
	if err != nil {
		return zero, false, fmt.Errorf("storage: get %s: %w", key, err)
	}
	if !ok || len(raw) == 0 {
		return zero, false, nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		r.corrupt(key, err)
		return zero, false, nil
	}
	return v, true, nil
}

func (a *Adapter) read(ctx context.Context, key string) ([]byte, bool, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.store.Get(ctx, key)
}

func (a *Adapter) corrupt(key string, err error) {
	a.log.Warn("storage payload corrupt; treating as empty",
		zap.String("key", key),
		zap.Error(fmt.Errorf("%w: %v", ErrCorrupt, err)),
	)
}

// Set encodes v and stores it under key.
func (a *Adapter) Set(ctx context.Context, key string, v any) error {
	return a.Update(ctx, func(tx *Txn) error {
		return tx.Set(key, v)
	})
}

// Remove deletes key. Removing a missing key is not an error.
func (a *Adapter) Remove(ctx context.Context, key string) error {
	return a.Update(ctx, func(tx *Txn) error {
		tx.Remove(key)
		return nil
	})
}

// Update runs fn inside a transaction. Writes are buffered and committed with a
// single Store.Apply after fn returns nil; if fn fails nothing is written.
func (a *Adapter) Update(ctx context.Context, fn func(tx *Txn) error) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	tx := &Txn{adapter: a, pending: map[string]Mutation{}}
	if err := fn(tx); err != nil {
		return err
	}
	if len(tx.order) == 0 {
		return nil
	}
	muts := make([]Mutation, 0, len(tx.order))
	for _, k := range tx.order {
		muts = append(muts, tx.pending[k])
	}
	if err := a.store.Apply(ctx, muts); err != nil {
		return fmt.Errorf("storage: commit %d keys: %w", len(muts), err)
	}
	a.log.Debug("storage commit", zap.Strings("keys", tx.order))
	return nil
}

func (a *Adapter) Close() error {
	return a.store.Close()
}

// Txn buffers writes of one Update call and reads its own writes.
type Txn struct {
	adapter *Adapter
	pending map[string]Mutation
	order   []string
}

func (t *Txn) read(ctx context.Context, key string) ([]byte, bool, error) {
	if m, ok := t.pending[key]; ok {
		if m.Delete {
			return nil, false, nil
		}
		return m.Value, true, nil
	}
	return t.adapter.store.Get(ctx, key)
}

func (t *Txn) corrupt(key string, err error) {
	t.adapter.corrupt(key, err)
}

func (t *Txn) Set(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("storage: encode %s: %w", key, err)
	}
	t.put(Mutation{Key: key, Value: b})
	return nil
}

func (t *Txn) Remove(key string) {
	t.put(Mutation{Key: key, Delete: true})
}

func (t *Txn) put(m Mutation) {
	if _, seen := t.pending[m.Key]; !seen {
		t.order = append(t.order, m.Key)
	}
	t.pending[m.Key] = m
}
