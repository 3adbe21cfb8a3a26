package parley

import (
	"context"
	"fmt"
	"net/http"
)

// TagInput is the payload for creating or updating a tag.
type TagInput struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// requireStaff pre-checks the caller's role before a tag mutation so a
// customer token fails fast without a doomed write reaching the server.
func (c *Client) requireStaff(ctx context.Context) error {
	session, err := c.Session(ctx)
	if err != nil {
		return err
	}
	if !session.IsStaff() {
		return &APIError{
			Status:  http.StatusForbidden,
			Type:    "forbidden",
			Message: "tag management requires an agent or admin role",
		}
	}
	return nil
}

func (c *Client) ListTags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	if err := c.do(ctx, http.MethodGet, "/tags", nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (c *Client) CreateTag(ctx context.Context, input TagInput) (uint, error) {
	if err := c.requireStaff(ctx); err != nil {
		return 0, err
	}
	var result struct {
		TagID uint `json:"tag_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/tags", input, &result); err != nil {
		return 0, err
	}
	return result.TagID, nil
}

func (c *Client) UpdateTag(ctx context.Context, tagID uint, input TagInput) error {
	if err := c.requireStaff(ctx); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/tags/%d", tagID), input, nil)
}

func (c *Client) DeleteTag(ctx context.Context, tagID uint) error {
	if err := c.requireStaff(ctx); err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/tags/%d", tagID), nil, nil)
}
