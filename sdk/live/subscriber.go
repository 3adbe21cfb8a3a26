package live

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// EventKind is the kind of row mutation carried by a feed event.
type EventKind string

const (
	EventInsert EventKind = "insert"
	EventUpdate EventKind = "update"
	EventDelete EventKind = "delete"
)

// Event is a bare change notification. It carries identifiers only;
// subscribers re-fetch the row to get its joined fields.
type Event[ID comparable] struct {
	Kind EventKind
	ID   ID
}

// Feed delivers change events for one resource and scoping key.
// Subscribe blocks until the context is cancelled or the transport
// fails, and returns the transport error in the latter case.
type Feed[ID comparable] interface {
	Subscribe(ctx context.Context, handler func(Event[ID])) error
}

// SubscriberConfig wires a Subscriber to its remote collaborators.
type SubscriberConfig[ID comparable, T any] struct {
	// Fetch performs the initial bulk read. Required.
	Fetch func(ctx context.Context) ([]T, error)
	// FetchOne re-reads a single row with its joins after an insert or
	// update event. A false return means the row is gone (or no longer
	// active) and is reconciled as a delete. Required.
	FetchOne func(ctx context.Context, id ID) (T, bool, error)
	// Feed is the change event source. Required.
	Feed Feed[ID]
	// RetryDelay is the pause before the single resubscription attempt.
	RetryDelay time.Duration
	// OnError observes non-fatal errors (failed row re-fetch, feed
	// failure). Optional.
	OnError func(error)
}

const defaultRetryDelay = 2 * time.Second

// Subscriber owns one logical subscription: it seeds the collection
// with a bulk fetch, then applies feed events until deactivated. On a
// feed transport failure it resubscribes exactly once after a fixed
// delay; a second failure leaves the collection stale but usable.
type Subscriber[ID comparable, T any] struct {
	collection *Collection[ID, T]
	cfg        SubscriberConfig[ID, T]

	mu     sync.Mutex
	active bool
	cancel context.CancelFunc
}

func NewSubscriber[ID comparable, T any](
	collection *Collection[ID, T],
	cfg SubscriberConfig[ID, T],
) (*Subscriber[ID, T], error) {
	if collection == nil {
		return nil, fmt.Errorf("live: collection is required")
	}
	if cfg.Fetch == nil || cfg.FetchOne == nil || cfg.Feed == nil {
		return nil, fmt.Errorf("live: Fetch, FetchOne and Feed are required")
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = defaultRetryDelay
	}
	return &Subscriber[ID, T]{
		collection: collection,
		cfg:        cfg,
	}, nil
}

// Activate runs the bulk fetch and opens the change feed. Calling it on
// an already-active subscriber is a no-op. On fetch failure the
// subscriber is left inactive and the error is returned.
func (s *Subscriber[ID, T]) Activate(ctx context.Context) error {
	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return nil
	}
	runCtx, cancel := context.WithCancel(ctx)
	s.active = true
	s.cancel = cancel
	s.mu.Unlock()

	rows, err := s.cfg.Fetch(runCtx)
	if err != nil {
		s.Deactivate()
		return err
	}

	// A deactivation racing the fetch wins; the result is discarded.
	if runCtx.Err() != nil {
		return nil
	}
	s.collection.Replace(rows)

	go s.run(runCtx)
	return nil
}

// Deactivate closes the feed and releases resources. Safe to call at
// any point, including before activation completed, and more than once.
func (s *Subscriber[ID, T]) Deactivate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return
	}
	s.active = false
	s.cancel()
	s.cancel = nil
}

// Collection returns the collection this subscriber maintains.
func (s *Subscriber[ID, T]) Collection() *Collection[ID, T] {
	return s.collection
}

func (s *Subscriber[ID, T]) run(ctx context.Context) {
	err := s.cfg.Feed.Subscribe(ctx, func(event Event[ID]) {
		s.handle(ctx, event)
	})
	if ctx.Err() != nil {
		return
	}
	s.report(fmt.Errorf("live: feed failed, resubscribing once: %w", err))

	select {
	case <-ctx.Done():
		return
	case <-time.After(s.cfg.RetryDelay):
	}

	err = s.cfg.Feed.Subscribe(ctx, func(event Event[ID]) {
		s.handle(ctx, event)
	})
	if ctx.Err() != nil {
		return
	}
	// No further retries; the collection stays stale until the next
	// activation.
	s.report(fmt.Errorf("live: feed failed after resubscription: %w", err))
}

func (s *Subscriber[ID, T]) handle(ctx context.Context, event Event[ID]) {
	if ctx.Err() != nil {
		return
	}

	if event.Kind == EventDelete {
		s.collection.ApplyDelete(event.ID)
		return
	}

	row, found, err := s.cfg.FetchOne(ctx, event.ID)
	if err != nil {
		s.report(fmt.Errorf("live: row re-fetch failed: %w", err))
		return
	}
	if ctx.Err() != nil {
		return
	}

	if !found {
		s.collection.ApplyDelete(event.ID)
		return
	}

	switch event.Kind {
	case EventInsert:
		s.collection.ApplyInsert(row)
	case EventUpdate:
		s.collection.ApplyUpdate(row)
	}
}

func (s *Subscriber[ID, T]) report(err error) {
	if s.cfg.OnError != nil {
		s.cfg.OnError(err)
	}
}
