package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"parley/internal/shared/config"
	"parley/internal/shared/logger"
)

// OpenAIService implements embedding and response drafting against the
// OpenAI API. Both the ticket worker and the interactive search path
// share one client.
type OpenAIService struct {
	client          *openai.Client
	embeddingModel  string
	completionModel string
	logger          logger.Interface
}

func NewOpenAIService(cfg *config.OpenAIConfig, logger logger.Interface) *OpenAIService {
	return &OpenAIService{
		client:          openai.NewClient(cfg.APIKey),
		embeddingModel:  cfg.EmbeddingModel,
		completionModel: cfg.CompletionModel,
		logger:          logger,
	}
}

// Embed computes a vector embedding for the given text.
func (s *OpenAIService) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := s.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.EmbeddingModel(s.embeddingModel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("embedding response contained no data")
	}

	return resp.Data[0].Embedding, nil
}

// ModelName reports the embedding model identifier stored alongside
// generated suggestions.
func (s *OpenAIService) ModelName() string {
	return s.embeddingModel
}

// DraftResponse asks the completion model to draft a support reply from
// the matched knowledge-base article.
func (s *OpenAIService) DraftResponse(ctx context.Context, ticketTitle, ticketDescription, articleTitle, articleContent string) (string, error) {
	prompt := fmt.Sprintf(
		"A customer opened a support ticket.\n\nTicket title: %s\nTicket description: %s\n\n"+
			"The following knowledge base article appears relevant.\n\nArticle title: %s\nArticle content:\n%s\n\n"+
			"Draft a concise, friendly reply to the customer that resolves their issue using the article. "+
			"Do not invent steps that are not in the article.",
		ticketTitle, ticketDescription, articleTitle, articleContent,
	)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.completionModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a helpful customer support assistant.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err != nil {
		return "", fmt.Errorf("failed to draft response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion response contained no choices")
	}

	draft := strings.TrimSpace(resp.Choices[0].Message.Content)
	s.logger.Debugw("response drafted",
		"model", s.completionModel,
		"length", len(draft),
	)

	return draft, nil
}
