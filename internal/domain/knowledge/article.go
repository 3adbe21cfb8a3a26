package knowledge

import (
	"fmt"
	"time"

	"parley/internal/shared/biztime"
)

// EmbeddingDimensions is the vector size produced by the embedding model.
const EmbeddingDimensions = 1536

// Article is a knowledge-base entry. Its embedding is derived from title and
// content and must be recomputed whenever either changes.
type Article struct {
	id             uint
	title          string
	content        string
	isPublic       bool
	authorID       uint
	embedding      []float32
	embeddedAt     *time.Time
	createdAt      time.Time
	updatedAt      time.Time
	embeddingDirty bool
}

func NewArticle(title, content string, isPublic bool, authorID uint) (*Article, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	now := biztime.NowUTC()
	return &Article{
		title:          title,
		content:        content,
		isPublic:       isPublic,
		authorID:       authorID,
		createdAt:      now,
		updatedAt:      now,
		embeddingDirty: true,
	}, nil
}

func ReconstructArticle(
	id uint,
	title string,
	content string,
	isPublic bool,
	authorID uint,
	embedding []float32,
	embeddedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Article, error) {
	if id == 0 {
		return nil, fmt.Errorf("article ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if len(embedding) > 0 && len(embedding) != EmbeddingDimensions {
		return nil, fmt.Errorf("embedding must have %d dimensions, got %d", EmbeddingDimensions, len(embedding))
	}

	return &Article{
		id:             id,
		title:          title,
		content:        content,
		isPublic:       isPublic,
		authorID:       authorID,
		embedding:      embedding,
		embeddedAt:     embeddedAt,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		embeddingDirty: len(embedding) == 0,
	}, nil
}

func (a *Article) ID() uint {
	return a.id
}

func (a *Article) Title() string {
	return a.title
}

func (a *Article) Content() string {
	return a.content
}

func (a *Article) IsPublic() bool {
	return a.isPublic
}

func (a *Article) AuthorID() uint {
	return a.authorID
}

func (a *Article) Embedding() []float32 {
	return a.embedding
}

func (a *Article) EmbeddedAt() *time.Time {
	return a.embeddedAt
}

func (a *Article) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Article) UpdatedAt() time.Time {
	return a.updatedAt
}

// NeedsEmbedding reports whether the stored embedding is stale or missing.
func (a *Article) NeedsEmbedding() bool {
	return a.embeddingDirty
}

func (a *Article) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("article ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("article ID cannot be zero")
	}
	a.id = id
	return nil
}

// UpdateContent edits title and content, invalidating the embedding.
func (a *Article) UpdateContent(title, content string) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(content) == 0 {
		return fmt.Errorf("content is required")
	}

	if title == a.title && content == a.content {
		return nil
	}

	a.title = title
	a.content = content
	a.embeddingDirty = true
	a.updatedAt = biztime.NowUTC()
	return nil
}

func (a *Article) SetPublic(isPublic bool) {
	if a.isPublic == isPublic {
		return
	}
	a.isPublic = isPublic
	a.updatedAt = biztime.NowUTC()
}

// SetEmbedding stores a freshly computed vector and clears the dirty flag.
func (a *Article) SetEmbedding(embedding []float32) error {
	if len(embedding) != EmbeddingDimensions {
		return fmt.Errorf("embedding must have %d dimensions, got %d", EmbeddingDimensions, len(embedding))
	}
	a.embedding = embedding
	now := biztime.NowUTC()
	a.embeddedAt = &now
	a.embeddingDirty = false
	a.updatedAt = now
	return nil
}

// EmbeddingInput is the text sent to the embedding model.
func (a *Article) EmbeddingInput() string {
	return a.title + "\n\n" + a.content
}
