// Package filestore keeps each key in its own JSON file under one directory,
// the closest on-disk analogue of browser local storage.
//
// Writes go to a temp file and are renamed into place, so a single key is never
// observed half-written. Apply renames all files after writing all temps; a
// crash between renames can leave a multi-key commit partially applied.
package filestore

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"klusmarkt/internal/infrastructure/storage"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const (
	fileExt    = ".json"
	tempPrefix = ".tmp-"
)

type Store struct {
	dir    string
	origin string
	log    *zap.Logger

	mu     sync.Mutex
	own    map[string][32]byte // last content hash written by this process; zero hash = removed
	closed bool
	stopCh chan struct{}
	wg     sync.WaitGroup
}

var (
	_ storage.Store   = (*Store)(nil)
	_ storage.Watcher = (*Store)(nil)
)

func New(dir, origin string, log *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("filestore: create dir %s: %w", dir, err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		dir:    dir,
		origin: origin,
		log:    log,
		own:    map[string][32]byte{},
		stopCh: make(chan struct{}),
	}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key)+fileExt)
}

func keyFromPath(p string) (string, bool) {
	name := filepath.Base(p)
	if strings.HasPrefix(name, tempPrefix) || !strings.HasSuffix(name, fileExt) {
		return "", false
	}
	key, err := url.PathUnescape(strings.TrimSuffix(name, fileExt))
	if err != nil {
		return "", false
	}
	return key, true
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	if s.isClosed() {
		return nil, false, storage.ErrClosed
	}
	b, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.Apply(ctx, []storage.Mutation{{Key: key, Value: value}})
}

func (s *Store) Remove(ctx context.Context, key string) error {
	return s.Apply(ctx, []storage.Mutation{{Key: key, Delete: true}})
}

func (s *Store) Apply(ctx context.Context, mutations []storage.Mutation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return storage.ErrClosed
	}

	type staged struct {
		tmp, dst string
	}
	var renames []staged
	cleanup := func() {
		for _, r := range renames {
			_ = os.Remove(r.tmp)
		}
	}

	for _, m := range mutations {
		if err := ctx.Err(); err != nil {
			cleanup()
			return err
		}
		if m.Delete {
			continue
		}
		f, err := os.CreateTemp(s.dir, tempPrefix+"*")
		if err != nil {
			cleanup()
			return fmt.Errorf("filestore: temp for %s: %w", m.Key, err)
		}
		_, werr := f.Write(m.Value)
		cerr := f.Close()
		renames = append(renames, staged{tmp: f.Name(), dst: s.path(m.Key)})
		if werr != nil || cerr != nil {
			cleanup()
			return fmt.Errorf("filestore: write %s: %w", m.Key, errors.Join(werr, cerr))
		}
	}

	for _, r := range renames {
		if err := os.Rename(r.tmp, r.dst); err != nil {
			cleanup()
			return fmt.Errorf("filestore: commit %s: %w", r.dst, err)
		}
	}
	for _, m := range mutations {
		if m.Delete {
			if err := os.Remove(s.path(m.Key)); err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("filestore: remove %s: %w", m.Key, err)
			}
			s.own[m.Key] = [32]byte{}
			continue
		}
		s.own[m.Key] = sha256.Sum256(m.Value)
	}
	return nil
}

// Watch reports writes made to the directory by other processes.
func (s *Store) Watch(ctx context.Context) (<-chan storage.Change, error) {
	if s.isClosed() {
		return nil, storage.ErrClosed
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("filestore: watcher: %w", err)
	}
	if err := w.Add(s.dir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("filestore: watch %s: %w", s.dir, err)
	}

	out := make(chan storage.Change, 64)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer close(out)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case <-s.stopCh:
				return
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				s.log.Warn("filestore watcher error", zap.Error(err))
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				c, ok := s.foreignChange(ev)
				if !ok {
					continue
				}
				select {
				case out <- c:
				case <-ctx.Done():
					return
				case <-s.stopCh:
					return
				}
			}
		}
	}()
	return out, nil
}

func (s *Store) foreignChange(ev fsnotify.Event) (storage.Change, bool) {
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return storage.Change{}, false
	}
	key, ok := keyFromPath(ev.Name)
	if !ok {
		return storage.Change{}, false
	}

	b, err := os.ReadFile(ev.Name)
	removed := errors.Is(err, os.ErrNotExist)
	if err != nil && !removed {
		return storage.Change{}, false
	}

	s.mu.Lock()
	last, known := s.own[key]
	s.mu.Unlock()
	if known {
		if removed && last == [32]byte{} {
			return storage.Change{}, false
		}
		if !removed && last == sha256.Sum256(b) {
			return storage.Change{}, false
		}
	}
	return storage.Change{Key: key, Removed: removed, Origin: "file", At: time.Now().UTC()}, true
}

func (s *Store) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Close stops all watchers and waits for them to exit.
func (s *Store) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.stopCh)
	s.mu.Unlock()
	s.wg.Wait()
	return nil
}
