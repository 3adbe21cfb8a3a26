package parley

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
)

// ArticleInput is the payload for creating or updating an article.
type ArticleInput struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	IsPublic bool   `json:"is_public"`
}

func (c *Client) CreateArticle(ctx context.Context, input ArticleInput) (uint, error) {
	var result struct {
		ArticleID uint `json:"article_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/kb/articles", input, &result); err != nil {
		return 0, err
	}
	return result.ArticleID, nil
}

// GetArticle fetches an article. renderHTML controls whether the server
// includes the sanitized HTML rendering alongside the markdown source.
func (c *Client) GetArticle(ctx context.Context, articleID uint, renderHTML bool) (*Article, error) {
	path := fmt.Sprintf("/kb/articles/%d", articleID)
	if !renderHTML {
		path += "?render=false"
	}
	var article Article
	if err := c.do(ctx, http.MethodGet, path, nil, &article); err != nil {
		return nil, err
	}
	return &article, nil
}

// ArticlePage is one page of an article listing.
type ArticlePage struct {
	Items      []Article `json:"items"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalPages int       `json:"total_pages"`
}

func (c *Client) ListArticles(ctx context.Context, page, pageSize int) (*ArticlePage, error) {
	params := map[string]string{}
	if page > 0 {
		params["page"] = strconv.Itoa(page)
	}
	if pageSize > 0 {
		params["page_size"] = strconv.Itoa(pageSize)
	}

	var result ArticlePage
	if err := c.do(ctx, http.MethodGet, "/kb/articles"+query(params), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) UpdateArticle(ctx context.Context, articleID uint, input ArticleInput) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/kb/articles/%d", articleID), input, nil)
}

func (c *Client) DeleteArticle(ctx context.Context, articleID uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/kb/articles/%d", articleID), nil, nil)
}

// SearchArticles runs a semantic search over the knowledge base.
func (c *Client) SearchArticles(ctx context.Context, q string, limit int) ([]SearchResult, error) {
	params := map[string]string{"q": q}
	if limit > 0 {
		params["limit"] = strconv.Itoa(limit)
	}

	var results []SearchResult
	if err := c.do(ctx, http.MethodGet, "/kb/search"+query(params), nil, &results); err != nil {
		return nil, err
	}
	return results, nil
}
