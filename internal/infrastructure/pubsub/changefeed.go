package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"parley/internal/shared/goroutine"
	"parley/internal/shared/logger"
)

// feedChannelPrefix is the Redis channel namespace for row change events.
// One channel per table: parley:feed:tickets, parley:feed:ticket_messages...
const feedChannelPrefix = "parley:feed:"

const (
	TableTickets     = "tickets"
	TableMessages    = "ticket_messages"
	TableNotes       = "ticket_notes"
	TableSuggestions = "suggestions"
)

// ChangeKind is the kind of row mutation carried by a change event.
type ChangeKind string

const (
	ChangeInsert ChangeKind = "insert"
	ChangeUpdate ChangeKind = "update"
	ChangeDelete ChangeKind = "delete"
)

// ChangeEvent describes a single committed row mutation. Consumers that need
// the row body re-fetch it themselves; the event only carries identifiers.
type ChangeEvent struct {
	Table    string     `json:"table"`
	Kind     ChangeKind `json:"kind"`
	ID       uint       `json:"id"`
	TicketID uint       `json:"ticket_id,omitempty"`
}

// ChangePublisher publishes committed row changes to the feed.
type ChangePublisher interface {
	PublishChange(ctx context.Context, event ChangeEvent) error
}

// ChangeSubscriber delivers row changes for a set of tables to a handler.
type ChangeSubscriber interface {
	SubscribeChanges(ctx context.Context, tables []string, handler func(event ChangeEvent)) error
}

// ChangeFeed combines publisher and subscriber.
type ChangeFeed interface {
	ChangePublisher
	ChangeSubscriber
}

// RedisChangeFeed implements ChangeFeed over Redis Pub/Sub.
type RedisChangeFeed struct {
	client *redis.Client
	logger logger.Interface
}

func NewRedisChangeFeed(client *redis.Client, logger logger.Interface) *RedisChangeFeed {
	return &RedisChangeFeed{
		client: client,
		logger: logger,
	}
}

// FeedChannel returns the Redis channel name for a table.
func FeedChannel(table string) string {
	return feedChannelPrefix + table
}

func (f *RedisChangeFeed) PublishChange(ctx context.Context, event ChangeEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal change event: %w", err)
	}

	if err := f.client.Publish(ctx, FeedChannel(event.Table), data).Err(); err != nil {
		f.logger.Errorw("failed to publish change event",
			"table", event.Table,
			"kind", event.Kind,
			"id", event.ID,
			"error", err,
		)
		return fmt.Errorf("failed to publish change event: %w", err)
	}

	f.logger.Debugw("change event published",
		"table", event.Table,
		"kind", event.Kind,
		"id", event.ID,
	)
	return nil
}

func (f *RedisChangeFeed) SubscribeChanges(ctx context.Context, tables []string, handler func(event ChangeEvent)) error {
	channels := make([]string, len(tables))
	for i, table := range tables {
		channels[i] = FeedChannel(table)
	}
	return f.subscribeWithReconnect(ctx, channels, func(payload string) {
		var event ChangeEvent
		if err := json.Unmarshal([]byte(payload), &event); err != nil {
			f.logger.Warnw("failed to unmarshal change event",
				"payload", payload,
				"error", err,
			)
			return
		}
		handler(event)
	})
}

// subscribeWithReconnect wraps subscribe with automatic reconnection and
// exponential backoff.
func (f *RedisChangeFeed) subscribeWithReconnect(ctx context.Context, channels []string, handler func(payload string)) error {
	backoff := time.Second
	maxBackoff := 30 * time.Second

	for {
		err := f.subscribe(ctx, channels, handler)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		f.logger.Warnw("change feed disconnected, reconnecting",
			"channels", channels,
			"error", err,
			"backoff", backoff,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}

		backoff = min(backoff*2, maxBackoff)
	}
}

func (f *RedisChangeFeed) subscribe(ctx context.Context, channels []string, handler func(payload string)) error {
	pubsub := f.client.Subscribe(ctx, channels...)
	defer pubsub.Close()

	_, err := pubsub.Receive(ctx)
	if err != nil {
		return fmt.Errorf("failed to subscribe to change feed: %w", err)
	}

	f.logger.Infow("subscribed to change feed", "channels", channels)

	ch := pubsub.Channel()

	for {
		select {
		case <-ctx.Done():
			f.logger.Infow("change feed subscriber stopped", "reason", ctx.Err())
			return ctx.Err()

		case msg, ok := <-ch:
			if !ok {
				f.logger.Warnw("change feed channel closed")
				return nil
			}

			// Handlers run on the subscription goroutine so events for
			// one row arrive at the handler in publish order. A slow
			// handler only delays its own subscription.
			goroutine.Safe(f.logger, "change-feed-handler", func() {
				handler(msg.Payload)
			})
		}
	}
}
