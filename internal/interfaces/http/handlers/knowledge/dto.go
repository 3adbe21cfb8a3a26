package knowledge

import "parley/internal/application/knowledge/usecases"

type CreateArticleRequest struct {
	Title    string `json:"title" binding:"required,max=200"`
	Content  string `json:"content" binding:"required,max=50000"`
	IsPublic bool   `json:"is_public"`
}

func (r *CreateArticleRequest) ToCommand(authorID uint) usecases.CreateArticleCommand {
	return usecases.CreateArticleCommand{
		Title:    r.Title,
		Content:  r.Content,
		IsPublic: r.IsPublic,
		AuthorID: authorID,
	}
}

type UpdateArticleRequest struct {
	Title    string `json:"title" binding:"required,max=200"`
	Content  string `json:"content" binding:"required,max=50000"`
	IsPublic bool   `json:"is_public"`
}
