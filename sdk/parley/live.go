package parley

import (
	"context"
	"errors"
	"net/http"

	"parley/sdk/live"
)

// LiveOptions tunes a live subscription.
type LiveOptions struct {
	// OnError observes non-fatal subscription errors. Optional.
	OnError func(error)
}

// suggestionPending matches the server's active-suggestion filter.
func suggestionPending(s Suggestion) bool {
	return s.Status == "pending"
}

// rowGone reports whether a re-fetch failure means the row is no longer
// visible to the caller rather than a transport problem.
func rowGone(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Status == http.StatusNotFound || apiErr.Status == http.StatusForbidden
}

// LiveTickets maintains a collection of the tickets visible to the
// caller, newest first, kept current by the change stream. Pair it with
// live.NewMutator over the same collection for optimistic writes.
func (c *Client) LiveTickets(opts LiveOptions) (*live.Subscriber[uint, Ticket], error) {
	collection, err := live.NewCollection(live.Config[uint, Ticket]{
		IDOf: func(t Ticket) uint { return t.ID },
	})
	if err != nil {
		return nil, err
	}

	return live.NewSubscriber(collection, live.SubscriberConfig[uint, Ticket]{
		Fetch: func(ctx context.Context) ([]Ticket, error) {
			page, err := c.ListTickets(ctx, ListTicketsInput{PageSize: 100})
			if err != nil {
				return nil, err
			}
			return page.Items, nil
		},
		FetchOne: func(ctx context.Context, id uint) (Ticket, bool, error) {
			t, err := c.GetTicket(ctx, id)
			if err != nil {
				if rowGone(err) {
					return Ticket{}, false, nil
				}
				return Ticket{}, false, err
			}
			return *t, true, nil
		},
		Feed:    c.TicketsFeed(),
		OnError: opts.OnError,
	})
}

// LiveMessages maintains the conversation of one ticket in
// chronological order.
func (c *Client) LiveMessages(ticketID uint, opts LiveOptions) (*live.Subscriber[uint, Message], error) {
	collection, err := live.NewCollection(live.Config[uint, Message]{
		IDOf: func(m Message) uint { return m.ID },
		Less: func(a, b Message) bool { return a.CreatedAt.Before(b.CreatedAt) },
	})
	if err != nil {
		return nil, err
	}

	return live.NewSubscriber(collection, live.SubscriberConfig[uint, Message]{
		Fetch: func(ctx context.Context) ([]Message, error) {
			return c.ListMessages(ctx, ticketID)
		},
		// There is no single-message endpoint; the row is re-read
		// through the conversation listing.
		FetchOne: func(ctx context.Context, id uint) (Message, bool, error) {
			messages, err := c.ListMessages(ctx, ticketID)
			if err != nil {
				return Message{}, false, err
			}
			for _, m := range messages {
				if m.ID == id {
					return m, true, nil
				}
			}
			return Message{}, false, nil
		},
		Feed:    c.TicketFeed(ticketID, TableMessages),
		OnError: opts.OnError,
	})
}

// LiveNotes maintains the internal notes of one ticket in chronological
// order. Staff only; customers' note events never reach their stream.
func (c *Client) LiveNotes(ticketID uint, opts LiveOptions) (*live.Subscriber[uint, Note], error) {
	collection, err := live.NewCollection(live.Config[uint, Note]{
		IDOf: func(n Note) uint { return n.ID },
		Less: func(a, b Note) bool { return a.CreatedAt.Before(b.CreatedAt) },
	})
	if err != nil {
		return nil, err
	}

	return live.NewSubscriber(collection, live.SubscriberConfig[uint, Note]{
		Fetch: func(ctx context.Context) ([]Note, error) {
			return c.ListNotes(ctx, ticketID)
		},
		FetchOne: func(ctx context.Context, id uint) (Note, bool, error) {
			notes, err := c.ListNotes(ctx, ticketID)
			if err != nil {
				return Note{}, false, err
			}
			for _, n := range notes {
				if n.ID == id {
					return n, true, nil
				}
			}
			return Note{}, false, nil
		},
		Feed:    c.TicketFeed(ticketID, TableNotes),
		OnError: opts.OnError,
	})
}

// LiveSuggestions maintains the pending suggestions of one ticket. A
// suggestion that is accepted or rejected disappears from the
// collection: either its update event carries a terminal status, or the
// re-fetch against the active listing misses and reconciles as a
// delete.
func (c *Client) LiveSuggestions(ticketID uint, opts LiveOptions) (*live.Subscriber[uint, Suggestion], error) {
	collection, err := live.NewCollection(live.Config[uint, Suggestion]{
		IDOf:     func(s Suggestion) uint { return s.ID },
		Terminal: func(s Suggestion) bool { return !suggestionPending(s) },
	})
	if err != nil {
		return nil, err
	}

	return live.NewSubscriber(collection, live.SubscriberConfig[uint, Suggestion]{
		Fetch: func(ctx context.Context) ([]Suggestion, error) {
			return c.ListActiveSuggestions(ctx, ticketID)
		},
		FetchOne: func(ctx context.Context, id uint) (Suggestion, bool, error) {
			suggestions, err := c.ListActiveSuggestions(ctx, ticketID)
			if err != nil {
				return Suggestion{}, false, err
			}
			for _, s := range suggestions {
				if s.ID == id {
					return s, true, nil
				}
			}
			return Suggestion{}, false, nil
		},
		Feed:    c.TicketFeed(ticketID, TableSuggestions),
		OnError: opts.OnError,
	})
}
