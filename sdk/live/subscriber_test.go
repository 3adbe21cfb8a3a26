package live

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFeed hands each Subscribe call to a scripted session function and
// records how many sessions were opened.
type fakeFeed struct {
	mu       sync.Mutex
	sessions []func(ctx context.Context, handler func(Event[uint])) error
	calls    int
}

func (f *fakeFeed) Subscribe(ctx context.Context, handler func(Event[uint])) error {
	f.mu.Lock()
	idx := f.calls
	f.calls++
	f.mu.Unlock()

	if idx < len(f.sessions) {
		return f.sessions[idx](ctx, handler)
	}
	<-ctx.Done()
	return ctx.Err()
}

func (f *fakeFeed) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// blockingSession keeps the feed open until the context is cancelled.
func blockingSession(ctx context.Context, _ func(Event[uint])) error {
	<-ctx.Done()
	return ctx.Err()
}

func newTestSubscriber(t *testing.T, rows map[uint]msg, feed *fakeFeed) *Subscriber[uint, msg] {
	t.Helper()

	var mu sync.Mutex
	c, err := NewCollection(msgConfig())
	require.NoError(t, err)

	sub, err := NewSubscriber(c, SubscriberConfig[uint, msg]{
		Fetch: func(ctx context.Context) ([]msg, error) {
			mu.Lock()
			defer mu.Unlock()
			out := make([]msg, 0, len(rows))
			for _, m := range rows {
				out = append(out, m)
			}
			return out, nil
		},
		FetchOne: func(ctx context.Context, id uint) (msg, bool, error) {
			mu.Lock()
			defer mu.Unlock()
			m, ok := rows[id]
			return m, ok, nil
		},
		Feed:       feed,
		RetryDelay: 10 * time.Millisecond,
	})
	require.NoError(t, err)
	return sub
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestSubscriber_RequiresCollaborators(t *testing.T) {
	c, err := NewCollection(msgConfig())
	require.NoError(t, err)

	_, err = NewSubscriber[uint, msg](nil, SubscriberConfig[uint, msg]{})
	assert.Error(t, err)

	_, err = NewSubscriber(c, SubscriberConfig[uint, msg]{})
	assert.Error(t, err)
}

func TestSubscriber_ActivateSeedsCollection(t *testing.T) {
	feed := &fakeFeed{sessions: []func(context.Context, func(Event[uint])) error{blockingSession}}
	sub := newTestSubscriber(t, map[uint]msg{
		1: {ID: 1, SentAt: at(10)},
		2: {ID: 2, SentAt: at(20)},
	}, feed)
	defer sub.Deactivate()

	require.NoError(t, sub.Activate(context.Background()))

	assert.Equal(t, 2, sub.Collection().Len())
}

func TestSubscriber_ActivateIsIdempotent(t *testing.T) {
	feed := &fakeFeed{sessions: []func(context.Context, func(Event[uint])) error{blockingSession}}
	sub := newTestSubscriber(t, map[uint]msg{1: {ID: 1, SentAt: at(10)}}, feed)
	defer sub.Deactivate()

	require.NoError(t, sub.Activate(context.Background()))
	require.NoError(t, sub.Activate(context.Background()))
	require.NoError(t, sub.Activate(context.Background()))

	waitFor(t, func() bool { return feed.callCount() == 1 })
	assert.Equal(t, 1, feed.callCount())
}

func TestSubscriber_FetchFailureLeavesInactive(t *testing.T) {
	c, err := NewCollection(msgConfig())
	require.NoError(t, err)

	feed := &fakeFeed{}
	sub, err := NewSubscriber(c, SubscriberConfig[uint, msg]{
		Fetch: func(ctx context.Context) ([]msg, error) {
			return nil, errors.New("unreachable")
		},
		FetchOne: func(ctx context.Context, id uint) (msg, bool, error) {
			return msg{}, false, nil
		},
		Feed: feed,
	})
	require.NoError(t, err)

	assert.Error(t, sub.Activate(context.Background()))
	assert.Equal(t, 0, feed.callCount())

	// Deactivating a never-activated subscriber is safe.
	sub.Deactivate()
}

func TestSubscriber_InsertEventFetchesRow(t *testing.T) {
	handlerCh := make(chan func(Event[uint]), 1)
	feed := &fakeFeed{sessions: []func(context.Context, func(Event[uint])) error{
		func(ctx context.Context, handler func(Event[uint])) error {
			handlerCh <- handler
			<-ctx.Done()
			return ctx.Err()
		},
	}}
	rows := map[uint]msg{1: {ID: 1, SentAt: at(10)}}
	sub := newTestSubscriber(t, rows, feed)
	defer sub.Deactivate()

	require.NoError(t, sub.Activate(context.Background()))
	handler := <-handlerCh

	rows[2] = msg{ID: 2, Text: "new", SentAt: at(20)}
	handler(Event[uint]{Kind: EventInsert, ID: 2})

	got, ok := sub.Collection().Get(2)
	require.True(t, ok)
	assert.Equal(t, "new", got.Text)
}

func TestSubscriber_OptimisticThenFeedInsertYieldsOneRow(t *testing.T) {
	handlerCh := make(chan func(Event[uint]), 1)
	feed := &fakeFeed{sessions: []func(context.Context, func(Event[uint])) error{
		func(ctx context.Context, handler func(Event[uint])) error {
			handlerCh <- handler
			<-ctx.Done()
			return ctx.Err()
		},
	}}
	rows := map[uint]msg{}
	sub := newTestSubscriber(t, rows, feed)
	defer sub.Deactivate()

	require.NoError(t, sub.Activate(context.Background()))
	handler := <-handlerCh

	// Optimistic write lands first, then the feed echoes the insert.
	row := msg{ID: 7, Text: "mine", SentAt: at(10)}
	rows[7] = row
	sub.Collection().ApplyInsert(row)
	handler(Event[uint]{Kind: EventInsert, ID: 7})

	assert.Equal(t, 1, sub.Collection().Len())
}

func TestSubscriber_MissingRowReconcilesAsDelete(t *testing.T) {
	handlerCh := make(chan func(Event[uint]), 1)
	feed := &fakeFeed{sessions: []func(context.Context, func(Event[uint])) error{
		func(ctx context.Context, handler func(Event[uint])) error {
			handlerCh <- handler
			<-ctx.Done()
			return ctx.Err()
		},
	}}
	rows := map[uint]msg{1: {ID: 1, SentAt: at(10)}}
	sub := newTestSubscriber(t, rows, feed)
	defer sub.Deactivate()

	require.NoError(t, sub.Activate(context.Background()))
	handler := <-handlerCh

	// The row vanished between the event and the re-fetch.
	delete(rows, 1)
	handler(Event[uint]{Kind: EventUpdate, ID: 1})

	assert.Equal(t, 0, sub.Collection().Len())
}

func TestSubscriber_ResubscribesExactlyOnce(t *testing.T) {
	var reported []error
	var mu sync.Mutex

	feed := &fakeFeed{sessions: []func(context.Context, func(Event[uint])) error{
		func(ctx context.Context, handler func(Event[uint])) error {
			return errors.New("transport down")
		},
		func(ctx context.Context, handler func(Event[uint])) error {
			return errors.New("still down")
		},
	}}

	c, err := NewCollection(msgConfig())
	require.NoError(t, err)
	sub, err := NewSubscriber(c, SubscriberConfig[uint, msg]{
		Fetch:      func(ctx context.Context) ([]msg, error) { return nil, nil },
		FetchOne:   func(ctx context.Context, id uint) (msg, bool, error) { return msg{}, false, nil },
		Feed:       feed,
		RetryDelay: 5 * time.Millisecond,
		OnError: func(err error) {
			mu.Lock()
			reported = append(reported, err)
			mu.Unlock()
		},
	})
	require.NoError(t, err)
	defer sub.Deactivate()

	require.NoError(t, sub.Activate(context.Background()))

	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(reported) == 2
	})

	// Two failed sessions, no third attempt.
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, 2, feed.callCount())
}

func TestSubscriber_DeactivateDiscardsInFlightResults(t *testing.T) {
	handlerCh := make(chan func(Event[uint]), 1)
	fetchStarted := make(chan struct{})
	release := make(chan struct{})

	c, err := NewCollection(msgConfig())
	require.NoError(t, err)

	feed := &fakeFeed{sessions: []func(context.Context, func(Event[uint])) error{
		func(ctx context.Context, handler func(Event[uint])) error {
			handlerCh <- handler
			<-ctx.Done()
			return ctx.Err()
		},
	}}

	sub, err := NewSubscriber(c, SubscriberConfig[uint, msg]{
		Fetch: func(ctx context.Context) ([]msg, error) { return nil, nil },
		FetchOne: func(ctx context.Context, id uint) (msg, bool, error) {
			close(fetchStarted)
			<-release
			return msg{ID: id, SentAt: at(10)}, true, nil
		},
		Feed: feed,
	})
	require.NoError(t, err)

	require.NoError(t, sub.Activate(context.Background()))
	handler := <-handlerCh

	done := make(chan struct{})
	go func() {
		handler(Event[uint]{Kind: EventInsert, ID: 1})
		close(done)
	}()

	<-fetchStarted
	sub.Deactivate()
	close(release)
	<-done

	// The re-fetch completed after deactivation; its result is dropped.
	assert.Equal(t, 0, c.Len())
}

func TestSubscriber_ReactivateAfterDeactivate(t *testing.T) {
	feed := &fakeFeed{sessions: []func(context.Context, func(Event[uint])) error{
		blockingSession,
		blockingSession,
	}}
	sub := newTestSubscriber(t, map[uint]msg{1: {ID: 1, SentAt: at(10)}}, feed)

	require.NoError(t, sub.Activate(context.Background()))
	sub.Deactivate()
	require.NoError(t, sub.Activate(context.Background()))
	defer sub.Deactivate()

	waitFor(t, func() bool { return feed.callCount() == 2 })
	assert.Equal(t, 1, sub.Collection().Len())
}
