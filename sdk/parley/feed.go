package parley

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"parley/sdk/live"
)

// Table names carried on change events.
const (
	TableTickets     = "tickets"
	TableMessages    = "ticket_messages"
	TableNotes       = "ticket_notes"
	TableSuggestions = "suggestions"
)

// changeEvent is the wire form of a server change notification.
type changeEvent struct {
	Table    string `json:"table"`
	Kind     string `json:"kind"`
	ID       uint   `json:"id"`
	TicketID uint   `json:"ticket_id,omitempty"`
}

// streamFeed adapts one table of a server-sent event stream to
// live.Feed. Each Subscribe call opens a fresh connection.
type streamFeed struct {
	client *Client
	path   string
	table  string
}

// TicketFeed streams changes scoped to one ticket, filtered to the
// given table.
func (c *Client) TicketFeed(ticketID uint, table string) live.Feed[uint] {
	return &streamFeed{
		client: c,
		path:   fmt.Sprintf("/stream/tickets/%d", ticketID),
		table:  table,
	}
}

// TicketsFeed streams changes to the ticket rows visible to the caller.
func (c *Client) TicketsFeed() live.Feed[uint] {
	return &streamFeed{
		client: c,
		path:   "/stream/tickets",
		table:  TableTickets,
	}
}

func (f *streamFeed) Subscribe(ctx context.Context, handler func(live.Event[uint])) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.client.baseURL+f.path, nil)
	if err != nil {
		return fmt.Errorf("parley: build stream request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+f.client.token)
	req.Header.Set("Accept", "text/event-stream")

	// The stream stays open indefinitely, so the shared client timeout
	// cannot apply here.
	streamClient := &http.Client{Transport: f.client.httpClient.Transport}
	resp, err := streamClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("parley: open stream: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &APIError{Status: resp.StatusCode, Type: "error", Message: "stream connection rejected"}
	}

	scanner := bufio.NewScanner(resp.Body)
	var eventName string
	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case line == "":
			eventName = ""
		case strings.HasPrefix(line, "event:"):
			eventName = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			if eventName != "change" {
				continue
			}
			data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))

			var change changeEvent
			if err := json.Unmarshal([]byte(data), &change); err != nil {
				continue
			}
			if change.Table != f.table {
				continue
			}
			handler(live.Event[uint]{Kind: live.EventKind(change.Kind), ID: change.ID})
		}
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("parley: stream read: %w", err)
	}
	return fmt.Errorf("parley: stream closed by server")
}
