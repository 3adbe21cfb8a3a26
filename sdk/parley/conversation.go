package parley

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// AttachmentInput is a file to upload alongside a message.
type AttachmentInput struct {
	FileName string
	Reader   io.Reader
}

// AddMessageInput is the payload for posting a conversation message.
// Attachments switch the request to multipart encoding.
type AddMessageInput struct {
	Text        string
	Attachments []AttachmentInput
}

// AddMessageResult reports the stored message identifiers.
type AddMessageResult struct {
	MessageID uint `json:"message_id"`
	TicketID  uint `json:"ticket_id"`
}

func (c *Client) AddMessage(ctx context.Context, ticketID uint, input AddMessageInput) (*AddMessageResult, error) {
	path := fmt.Sprintf("/tickets/%d/messages", ticketID)
	var result AddMessageResult

	if len(input.Attachments) == 0 {
		body := map[string]string{"text": input.Text}
		if err := c.do(ctx, http.MethodPost, path, body, &result); err != nil {
			return nil, err
		}
		return &result, nil
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.WriteField("text", input.Text); err != nil {
		return nil, fmt.Errorf("parley: encode message text: %w", err)
	}
	for _, att := range input.Attachments {
		part, err := writer.CreateFormFile("attachments", att.FileName)
		if err != nil {
			return nil, fmt.Errorf("parley: encode attachment %q: %w", att.FileName, err)
		}
		if _, err := io.Copy(part, att.Reader); err != nil {
			return nil, fmt.Errorf("parley: read attachment %q: %w", att.FileName, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("parley: finalize upload: %w", err)
	}

	if err := c.doMultipart(ctx, path, writer.FormDataContentType(), &buf, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListMessages(ctx context.Context, ticketID uint) ([]Message, error) {
	var messages []Message
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tickets/%d/messages", ticketID), nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (c *Client) DeleteMessage(ctx context.Context, messageID uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/messages/%d", messageID), nil, nil)
}

// AddNoteInput is the payload for a staff-only note.
type AddNoteInput struct {
	Body       string `json:"body"`
	Visibility string `json:"visibility,omitempty"`
}

// AddNoteResult reports the stored note identifiers.
type AddNoteResult struct {
	NoteID   uint `json:"note_id"`
	TicketID uint `json:"ticket_id"`
}

func (c *Client) AddNote(ctx context.Context, ticketID uint, input AddNoteInput) (*AddNoteResult, error) {
	var result AddNoteResult
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/tickets/%d/notes", ticketID), input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListNotes(ctx context.Context, ticketID uint) ([]Note, error) {
	var notes []Note
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tickets/%d/notes", ticketID), nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *Client) UpdateNote(ctx context.Context, noteID uint, input AddNoteInput) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/notes/%d", noteID), input, nil)
}

func (c *Client) DeleteNote(ctx context.Context, noteID uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/notes/%d", noteID), nil, nil)
}

// DownloadAttachment streams a stored attachment. The caller owns the
// returned reader and must close it.
func (c *Client) DownloadAttachment(ctx context.Context, storageKey string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/attachments/"+storageKey, nil)
	if err != nil {
		return nil, fmt.Errorf("parley: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("parley: download attachment: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &APIError{Status: resp.StatusCode, Type: "error", Message: "attachment download failed"}
	}
	return resp.Body, nil
}
