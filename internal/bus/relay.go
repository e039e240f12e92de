package bus

import (
	"context"

	"klusmarkt/internal/infrastructure/storage"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Relay republishes every change seen by w as TopicExternalChange until ctx is
// done or the watcher closes its channel.
func (b *Bus) Relay(ctx context.Context, w storage.Watcher) error {
	changes, err := w.Watch(ctx)
	if err != nil {
		return err
	}
	b.log.Info("external change relay started")
	for c := range changes {
		b.Publish(Event{
			Topic:  TopicExternalChange,
			Key:    c.Key,
			Origin: c.Origin,
			At:     c.At,
		})
	}
	b.log.Info("external change relay stopped", zap.NamedError("cause", ctx.Err()))
	return nil
}

// Run relays all watchers concurrently. It returns the first relay error.
func (b *Bus) Run(ctx context.Context, watchers ...storage.Watcher) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, w := range watchers {
		g.Go(func() error {
			return b.Relay(gctx, w)
		})
	}
	return g.Wait()
}
