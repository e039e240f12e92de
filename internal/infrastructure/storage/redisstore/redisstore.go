// Package redisstore keeps the namespace in Redis so several instances share it.
//
// Apply runs inside MULTI/EXEC and then announces each key on a pub/sub channel;
// Watch turns announcements from other origins into storage.Change values.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"klusmarkt/internal/infrastructure/storage"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type Store struct {
	client  *redis.Client
	prefix  string
	channel string
	origin  string
	log     *zap.Logger
}

var (
	_ storage.Store   = (*Store)(nil)
	_ storage.Watcher = (*Store)(nil)
)

// announcement is the pub/sub payload.
type announcement struct {
	Key     string    `json:"key"`
	Removed bool      `json:"removed"`
	Origin  string    `json:"origin"`
	At      time.Time `json:"at"`
}

// New wraps client. prefix namespaces keys per owner ("klusmarkt:<owner>:").
func New(client *redis.Client, prefix, channel, origin string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{client: client, prefix: prefix, channel: channel, origin: origin, log: log}
}

func (s *Store) redisKey(key string) string {
	return s.prefix + key
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := s.client.Get(ctx, s.redisKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.Apply(ctx, []storage.Mutation{{Key: key, Value: value}})
}

func (s *Store) Remove(ctx context.Context, key string) error {
	return s.Apply(ctx, []storage.Mutation{{Key: key, Delete: true}})
}

func (s *Store) Apply(ctx context.Context, mutations []storage.Mutation) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, m := range mutations {
			if m.Delete {
				pipe.Del(ctx, s.redisKey(m.Key))
				continue
			}
			pipe.Set(ctx, s.redisKey(m.Key), m.Value, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redisstore: exec: %w", err)
	}

	now := time.Now().UTC()
	for _, m := range mutations {
		payload, err := encodeAnnouncement(announcement{Key: m.Key, Removed: m.Delete, Origin: s.origin, At: now})
		if err != nil {
			return err
		}
		if err := s.client.Publish(ctx, s.channel, payload).Err(); err != nil {
			// The write itself succeeded; other instances just miss the hint.
			s.log.Warn("redisstore publish failed", zap.String("key", m.Key), zap.Error(err))
		}
	}
	return nil
}

func (s *Store) Watch(ctx context.Context) (<-chan storage.Change, error) {
	sub := s.client.Subscribe(ctx, s.channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("redisstore: subscribe %s: %w", s.channel, err)
	}

	out := make(chan storage.Change, 64)
	go func() {
		defer close(out)
		defer sub.Close()
		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				c, ok := s.decodeForeign(msg.Payload)
				if !ok {
					continue
				}
				select {
				case out <- c:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

func (s *Store) decodeForeign(payload string) (storage.Change, bool) {
	var a announcement
	if err := json.Unmarshal([]byte(payload), &a); err != nil {
		s.log.Warn("redisstore: bad announcement", zap.String("payload", payload), zap.Error(err))
		return storage.Change{}, false
	}
	if a.Origin == s.origin {
		return storage.Change{}, false
	}
	return storage.Change{Key: a.Key, Removed: a.Removed, Origin: a.Origin, At: a.At}, true
}

func encodeAnnouncement(a announcement) (string, error) {
	b, err := json.Marshal(a)
	if err != nil {
		return "", fmt.Errorf("redisstore: encode announcement: %w", err)
	}
	return string(b), nil
}

func (s *Store) Close() error {
	return s.client.Close()
}
