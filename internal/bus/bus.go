// Package bus fans out change notifications to in-process subscribers.
//
// Use cases publish "<entity>.<op>" after a successful commit; Relay turns
// writes observed by a storage.Watcher into "external-change" events.
package bus

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Topic string

const TopicExternalChange Topic = "external-change"

// Entities.
const (
	EntityJobs         = "jobs"
	EntityListings     = "listings"
	EntityQuotes       = "quotes"
	EntityAgenda       = "agenda"
	EntityAvailability = "availability"
	EntityChat         = "chat"
	EntityProfile      = "profile"
	EntitySubscription = "subscription"
)

// Operations.
const (
	OpCreated = "created"
	OpUpdated = "updated"
	OpDeleted = "deleted"
)

func TopicFor(entity, op string) Topic {
	return Topic(entity + "." + op)
}

// Event is the payload delivered to handlers. Payload holds the stored entity
// for created/updated, nil otherwise. Key is set for external changes.
type Event struct {
	Topic   Topic     `json:"topic"`
	ID      string    `json:"id,omitempty"`
	Key     string    `json:"key,omitempty"`
	Origin  string    `json:"origin,omitempty"`
	Payload any       `json:"payload,omitempty"`
	At      time.Time `json:"at"`
}

type Handler func(Event)

type subscription struct {
	seq     uint64
	topic   Topic
	all     bool
	handler Handler
}

// Bus is safe for concurrent use. Handlers run synchronously on the publishing
// goroutine, in subscription order.
type Bus struct {
	log *zap.Logger

	mu   sync.RWMutex
	seq  uint64
	subs map[uint64]*subscription
}

func New(log *zap.Logger) *Bus {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bus{log: log, subs: map[uint64]*subscription{}}
}

// Subscribe registers h for topic and returns its unsubscribe func. Calling the
// returned func more than once is harmless.
func (b *Bus) Subscribe(topic Topic, h Handler) func() {
	return b.add(&subscription{topic: topic, handler: h})
}

// SubscribeAll registers h for every topic.
func (b *Bus) SubscribeAll(h Handler) func() {
	return b.add(&subscription{all: true, handler: h})
}

func (b *Bus) add(s *subscription) func() {
	b.mu.Lock()
	b.seq++
	s.seq = b.seq
	b.subs[s.seq] = s
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, s.seq)
			b.mu.Unlock()
		})
	}
}

// Publish delivers e to the current subscribers of e.Topic. A panicking handler
// is logged and skipped; the remaining handlers still run.
func (b *Bus) Publish(e Event) {
	if e.At.IsZero() {
		e.At = time.Now().UTC()
	}
	for _, s := range b.matching(e.Topic) {
		b.deliver(s, e)
	}
}

func (b *Bus) matching(topic Topic) []*subscription {
	b.mu.RLock()
	out := make([]*subscription, 0, len(b.subs))
	for _, s := range b.subs {
		if s.all || s.topic == topic {
			out = append(out, s)
		}
	}
	b.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}

func (b *Bus) deliver(s *subscription, e Event) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error("bus handler panicked",
				zap.String("topic", string(e.Topic)),
				zap.Uint64("subscription", s.seq),
				zap.Error(fmt.Errorf("panic: %v", r)),
			)
		}
	}()
	s.handler(e)
}

// Len reports the number of live subscriptions.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
