package parley

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
)

// CreateTicketInput is the payload for opening a ticket.
type CreateTicketInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority,omitempty"`
}

// CreateTicketResult reports the server-assigned identifiers.
type CreateTicketResult struct {
	TicketID uint   `json:"ticket_id"`
	Number   string `json:"number"`
	Status   string `json:"status"`
}

// ListTicketsInput filters and pages a ticket listing. Zero values are
// omitted and fall back to server defaults.
type ListTicketsInput struct {
	Page       int
	PageSize   int
	Status     string
	Priority   string
	Search     string
	CustomerID uint
	AssigneeID uint
}

func (c *Client) CreateTicket(ctx context.Context, input CreateTicketInput) (*CreateTicketResult, error) {
	var result CreateTicketResult
	if err := c.do(ctx, http.MethodPost, "/tickets", input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GetTicket(ctx context.Context, ticketID uint) (*Ticket, error) {
	var ticket Ticket
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tickets/%d", ticketID), nil, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (c *Client) ListTickets(ctx context.Context, input ListTicketsInput) (*TicketPage, error) {
	params := map[string]string{
		"status":   input.Status,
		"priority": input.Priority,
		"search":   input.Search,
	}
	if input.Page > 0 {
		params["page"] = strconv.Itoa(input.Page)
	}
	if input.PageSize > 0 {
		params["page_size"] = strconv.Itoa(input.PageSize)
	}
	if input.CustomerID > 0 {
		params["customer_id"] = strconv.FormatUint(uint64(input.CustomerID), 10)
	}
	if input.AssigneeID > 0 {
		params["assignee_id"] = strconv.FormatUint(uint64(input.AssigneeID), 10)
	}

	var page TicketPage
	if err := c.do(ctx, http.MethodGet, "/tickets"+query(params), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) AssignTicket(ctx context.Context, ticketID, assigneeID uint) error {
	body := map[string]uint{"assignee_id": assigneeID}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/tickets/%d/assign", ticketID), body, nil)
}

func (c *Client) ChangeTicketStatus(ctx context.Context, ticketID uint, status string) error {
	body := map[string]string{"status": status}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/tickets/%d/status", ticketID), body, nil)
}

func (c *Client) ChangeTicketPriority(ctx context.Context, ticketID uint, priority string) error {
	body := map[string]string{"priority": priority}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/tickets/%d/priority", ticketID), body, nil)
}

const maxTagsPerTicket = 3

// ReplaceTicketTags swaps the ticket's full tag set. Oversized sets are
// rejected locally so no doomed request reaches the server.
func (c *Client) ReplaceTicketTags(ctx context.Context, ticketID uint, tags []string) error {
	if len(tags) > maxTagsPerTicket {
		return &APIError{
			Status:  http.StatusBadRequest,
			Type:    "validation",
			Message: fmt.Sprintf("a ticket can carry at most %d tags", maxTagsPerTicket),
		}
	}
	body := map[string][]string{"tags": tags}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/tickets/%d/tags", ticketID), body, nil)
}

func (c *Client) RateTicket(ctx context.Context, ticketID uint, rating int) error {
	body := map[string]int{"rating": rating}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/tickets/%d/rate", ticketID), body, nil)
}

func (c *Client) DeleteTicket(ctx context.Context, ticketID uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/tickets/%d", ticketID), nil, nil)
}
