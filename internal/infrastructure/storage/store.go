// Package storage is the only code allowed to touch the key-value namespace.
//
// A Store moves raw bytes; the Adapter layers JSON encoding, corruption
// fallback and serialised read-modify-write transactions on top of it.
// Repositories never see a Store directly.
package storage

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrCorrupt marks a stored payload that does not decode. It is logged and
	// the key is treated as absent; it never reaches callers.
	ErrCorrupt = errors.New("storage: corrupt payload")
	ErrClosed  = errors.New("storage: store closed")
)

// Mutation is one write of a commit. Delete wins over Value.
type Mutation struct {
	Key    string
	Value  []byte
	Delete bool
}

// Store is a flat key-value namespace.
//
// Apply must commit all mutations or none, as far as the backend allows; each
// backend documents its guarantee.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Apply(ctx context.Context, mutations []Mutation) error
	Close() error
}

// Change describes a write observed from outside this process (another tab,
// another instance). Key is empty when the backend cannot tell which key moved.
type Change struct {
	Key     string
	Removed bool
	Origin  string
	At      time.Time
}

// Watcher is implemented by stores that can observe foreign writes. The channel
// is closed when ctx is done or the store is closed.
type Watcher interface {
	Watch(ctx context.Context) (<-chan Change, error)
}
