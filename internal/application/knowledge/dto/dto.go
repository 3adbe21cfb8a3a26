package dto

import (
	"time"

	"parley/internal/domain/knowledge"
)

type ArticleDTO struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	HTML      string    `json:"html,omitempty"`
	IsPublic  bool      `json:"is_public"`
	AuthorID  uint      `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SearchResultDTO struct {
	Article    *ArticleDTO `json:"article"`
	Similarity float64     `json:"similarity"`
}

func FromArticle(a *knowledge.Article) *ArticleDTO {
	return &ArticleDTO{
		ID:        a.ID(),
		Title:     a.Title(),
		Content:   a.Content(),
		IsPublic:  a.IsPublic(),
		AuthorID:  a.AuthorID(),
		CreatedAt: a.CreatedAt(),
		UpdatedAt: a.UpdatedAt(),
	}
}

func FromArticles(articles []*knowledge.Article) []*ArticleDTO {
	dtos := make([]*ArticleDTO, 0, len(articles))
	for _, a := range articles {
		dtos = append(dtos, FromArticle(a))
	}
	return dtos
}
