package storage

import (
	"context"
	"sync"
	"time"
)

const memoryWatchBuffer = 256

// MemoryHub is a shared in-memory namespace with one MemoryStore per "tab".
// A commit made through one tab is reported to the watchers of every other tab.
type MemoryHub struct {
	mu   sync.Mutex
	data map[string][]byte
	tabs map[*MemoryStore]struct{}
}

func NewMemoryHub() *MemoryHub {
	return &MemoryHub{data: map[string][]byte{}, tabs: map[*MemoryStore]struct{}{}}
}

// Tab opens a new view of the hub identified by origin.
func (h *MemoryHub) Tab(origin string) *MemoryStore {
	s := &MemoryStore{hub: h, origin: origin, subs: map[chan Change]struct{}{}}
	h.mu.Lock()
	h.tabs[s] = struct{}{}
	h.mu.Unlock()
	return s
}

// MemoryStore is the default backend. Apply is atomic.
type MemoryStore struct {
	hub    *MemoryHub
	origin string
	subs   map[chan Change]struct{}
	closed bool
}

var (
	_ Store   = (*MemoryStore)(nil)
	_ Watcher = (*MemoryStore)(nil)
)

// NewMemoryStore returns a private, single-tab store.
func NewMemoryStore() *MemoryStore {
	return NewMemoryHub().Tab("memory")
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.hub.mu.Lock()
	defer s.hub.mu.Unlock()
	if s.closed {
		return nil, false, ErrClosed
	}
	v, ok := s.hub.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	return s.Apply(ctx, []Mutation{{Key: key, Value: value}})
}

func (s *MemoryStore) Remove(ctx context.Context, key string) error {
	return s.Apply(ctx, []Mutation{{Key: key, Delete: true}})
}

func (s *MemoryStore) Apply(_ context.Context, mutations []Mutation) error {
	h := s.hub
	h.mu.Lock()
	defer h.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	now := time.Now().UTC()
	for _, m := range mutations {
		if m.Delete {
			delete(h.data, m.Key)
		} else {
			h.data[m.Key] = append([]byte(nil), m.Value...)
		}
	}
	for tab := range h.tabs {
		if tab == s {
			continue
		}
		for _, m := range mutations {
			tab.notify(Change{Key: m.Key, Removed: m.Delete, Origin: s.origin, At: now})
		}
	}
	return nil
}

// notify must be called with the hub lock held. Slow watchers lose events;
// an external change is only a refresh hint and the next one supersedes it.
func (s *MemoryStore) notify(c Change) {
	for ch := range s.subs {
		select {
		case ch <- c:
		default:
		}
	}
}

func (s *MemoryStore) Watch(ctx context.Context) (<-chan Change, error) {
	h := s.hub
	h.mu.Lock()
	defer h.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}
	ch := make(chan Change, memoryWatchBuffer)
	s.subs[ch] = struct{}{}
	go func() {
		<-ctx.Done()
		h.mu.Lock()
		defer h.mu.Unlock()
		if _, ok := s.subs[ch]; ok {
			delete(s.subs, ch)
			close(ch)
		}
	}()
	return ch, nil
}

// Close detaches the tab and closes its watch channels. The context goroutines
// started by Watch still exit only when their context ends.
func (s *MemoryStore) Close() error {
	h := s.hub
	h.mu.Lock()
	defer h.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	delete(h.tabs, s)
	for ch := range s.subs {
		delete(s.subs, ch)
		close(ch)
	}
	return nil
}
