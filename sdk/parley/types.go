package parley

import "time"

// Ticket is a support ticket as returned by the server.
type Ticket struct {
	ID              uint       `json:"id"`
	Number          string     `json:"number"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Status          string     `json:"status"`
	Priority        string     `json:"priority"`
	CustomerID      uint       `json:"customer_id"`
	AssigneeID      *uint      `json:"assignee_id,omitempty"`
	Tags            []string   `json:"tags"`
	Rating          *int       `json:"rating,omitempty"`
	FirstResponseAt *time.Time `json:"first_response_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Attachment is a stored file linked to a message.
type Attachment struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
	URL         string `json:"url"`
}

// Message is one entry in a ticket conversation.
type Message struct {
	ID           uint         `json:"id"`
	TicketID     uint         `json:"ticket_id"`
	AuthorID     uint         `json:"author_id"`
	ContentKind  string       `json:"content_kind"`
	Text         string       `json:"text"`
	ArticleID    uint         `json:"article_id,omitempty"`
	ArticleTitle string       `json:"article_title,omitempty"`
	AIGenerated  bool         `json:"ai_generated"`
	Attachments  []Attachment `json:"attachments"`
	CreatedAt    time.Time    `json:"created_at"`
}

// Note is a staff-only annotation on a ticket.
type Note struct {
	ID         uint      `json:"id"`
	TicketID   uint      `json:"ticket_id"`
	AuthorID   uint      `json:"author_id"`
	Body       string    `json:"body"`
	Visibility string    `json:"visibility"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Suggestion is an AI-drafted reply pending staff review.
type Suggestion struct {
	ID               uint      `json:"id"`
	TicketID         uint      `json:"ticket_id"`
	Response         string    `json:"response"`
	Confidence       float64   `json:"confidence"`
	Status           string    `json:"status"`
	Model            string    `json:"model"`
	SourceArticleIDs []uint    `json:"source_article_ids"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Tag is a label applied to tickets.
type Tag struct {
	ID         uint       `json:"id"`
	Name       string     `json:"name"`
	Color      string     `json:"color"`
	UsageCount int        `json:"usage_count"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Article is a knowledge base article.
type Article struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	HTML      string    `json:"html,omitempty"`
	IsPublic  bool      `json:"is_public"`
	AuthorID  uint      `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SearchResult is a knowledge search hit with its similarity score.
type SearchResult struct {
	Article    *Article `json:"article"`
	Similarity float64  `json:"similarity"`
}

// TicketPage is one page of a ticket listing.
type TicketPage struct {
	Items      []Ticket `json:"items"`
	Total      int64    `json:"total"`
	Page       int      `json:"page"`
	PageSize   int      `json:"page_size"`
	TotalPages int      `json:"total_pages"`
}

// Session identifies the authenticated caller.
type Session struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"user_role"`
}

// IsStaff reports whether the session may use agent and admin surfaces.
func (s Session) IsStaff() bool {
	return s.Role == "agent" || s.Role == "admin"
}
