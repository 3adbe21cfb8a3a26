package value_objects

import (
	"encoding/json"
	"fmt"
)

// ContentKind discriminates the message content union.
type ContentKind string

const (
	// ContentPlain is ordinary free text written by a person.
	ContentPlain ContentKind = "plain"
	// ContentKBReferral is an automated referral to a knowledge-base
	// article, carried as structured data rather than embedded markup.
	ContentKBReferral ContentKind = "kb_referral"
)

// MessageContent is the tagged content of a ticket message. Plain content
// carries only text; a KB referral additionally references the suggested
// article.
type MessageContent struct {
	Kind         ContentKind `json:"kind"`
	Text         string      `json:"text"`
	ArticleID    uint        `json:"article_id,omitempty"`
	ArticleTitle string      `json:"article_title,omitempty"`
}

// NewPlainContent builds plain text message content.
func NewPlainContent(text string) (MessageContent, error) {
	if len(text) == 0 {
		return MessageContent{}, fmt.Errorf("content text cannot be empty")
	}
	if len(text) > 10000 {
		return MessageContent{}, fmt.Errorf("content exceeds maximum length of 10000 characters")
	}
	return MessageContent{Kind: ContentPlain, Text: text}, nil
}

// NewKBReferralContent builds knowledge-base referral content.
func NewKBReferralContent(text string, articleID uint, articleTitle string) (MessageContent, error) {
	if len(text) == 0 {
		return MessageContent{}, fmt.Errorf("content text cannot be empty")
	}
	if articleID == 0 {
		return MessageContent{}, fmt.Errorf("article ID is required for a KB referral")
	}
	if len(articleTitle) == 0 {
		return MessageContent{}, fmt.Errorf("article title is required for a KB referral")
	}
	return MessageContent{
		Kind:         ContentKBReferral,
		Text:         text,
		ArticleID:    articleID,
		ArticleTitle: articleTitle,
	}, nil
}

func (c MessageContent) IsValid() bool {
	switch c.Kind {
	case ContentPlain:
		return len(c.Text) > 0
	case ContentKBReferral:
		return len(c.Text) > 0 && c.ArticleID != 0 && len(c.ArticleTitle) > 0
	default:
		return false
	}
}

// Encode serializes the content for storage as a JSON column.
func (c MessageContent) Encode() (string, error) {
	if !c.IsValid() {
		return "", fmt.Errorf("invalid message content")
	}
	data, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to encode message content: %w", err)
	}
	return string(data), nil
}

// DecodeMessageContent parses a stored JSON content column.
func DecodeMessageContent(raw string) (MessageContent, error) {
	var c MessageContent
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return MessageContent{}, fmt.Errorf("failed to decode message content: %w", err)
	}
	if !c.IsValid() {
		return MessageContent{}, fmt.Errorf("decoded message content is invalid")
	}
	return c, nil
}
