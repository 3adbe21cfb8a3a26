package usecases

import (
	"context"
	"fmt"

	"parley/internal/domain/knowledge"
	"parley/internal/domain/suggestion"
	"parley/internal/domain/ticket"
	"parley/internal/shared/errors"
	"parley/internal/shared/logger"
)

type GenerateSuggestionCommand struct {
	TicketID uint
	// SkipIfExists makes re-delivery of the same ticket event a no-op
	// instead of stacking duplicate suggestions.
	SkipIfExists bool
}

type GenerateSuggestionResult struct {
	SuggestionID uint    `json:"suggestion_id"`
	TicketID     uint    `json:"ticket_id"`
	Confidence   float64 `json:"confidence"`
	Skipped      bool    `json:"skipped"`
}

// GenerateSuggestionUseCase runs the knowledge-base matching pipeline for
// one ticket: embed the ticket text, search article embeddings, score the
// best match, draft a response, store a pending suggestion.
type GenerateSuggestionUseCase struct {
	ticketRepo     ticket.TicketRepository
	articleRepo    knowledge.ArticleRepository
	suggestionRepo suggestion.SuggestionRepository
	embedder       Embedder
	drafter        ResponseDrafter
	threshold      float64
	searchLimit    int
	logger         logger.Interface
}

func NewGenerateSuggestionUseCase(
	ticketRepo ticket.TicketRepository,
	articleRepo knowledge.ArticleRepository,
	suggestionRepo suggestion.SuggestionRepository,
	embedder Embedder,
	drafter ResponseDrafter,
	threshold float64,
	searchLimit int,
	logger logger.Interface,
) *GenerateSuggestionUseCase {
	if searchLimit <= 0 {
		searchLimit = 3
	}
	return &GenerateSuggestionUseCase{
		ticketRepo:     ticketRepo,
		articleRepo:    articleRepo,
		suggestionRepo: suggestionRepo,
		embedder:       embedder,
		drafter:        drafter,
		threshold:      threshold,
		searchLimit:    searchLimit,
		logger:         logger,
	}
}

func (uc *GenerateSuggestionUseCase) Execute(ctx context.Context, cmd GenerateSuggestionCommand) (*GenerateSuggestionResult, error) {
	uc.logger.Infow("executing generate suggestion use case", "ticket_id", cmd.TicketID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	if cmd.SkipIfExists {
		exists, err := uc.suggestionRepo.ExistsForTicket(ctx, cmd.TicketID)
		if err != nil {
			return nil, errors.NewInternalError("failed to check existing suggestions")
		}
		if exists {
			uc.logger.Debugw("suggestion already exists, skipping", "ticket_id", cmd.TicketID)
			return &GenerateSuggestionResult{TicketID: cmd.TicketID, Skipped: true}, nil
		}
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	queryText := t.Title() + "\n\n" + t.Description()
	embedding, err := uc.embedder.Embed(ctx, queryText)
	if err != nil {
		uc.logger.Errorw("failed to embed ticket text", "error", err, "ticket_id", t.ID())
		return nil, errors.NewInternalError(fmt.Sprintf("failed to embed ticket text: %v", err))
	}

	results, err := uc.articleRepo.SearchByEmbedding(ctx, embedding, uc.searchLimit, uc.threshold)
	if err != nil {
		uc.logger.Errorw("embedding search failed", "error", err, "ticket_id", t.ID())
		return nil, errors.NewInternalError("knowledge base search failed")
	}

	if len(results) == 0 {
		uc.logger.Infow("no article matched above threshold",
			"ticket_id", t.ID(),
			"threshold", uc.threshold)
		return &GenerateSuggestionResult{TicketID: t.ID(), Skipped: true}, nil
	}

	best := results[0]
	confidence := ConfidenceFromSimilarity(best.Similarity)

	response := uc.draftResponse(ctx, t, best.Article)

	sourceIDs := make([]uint, 0, len(results))
	for _, r := range results {
		sourceIDs = append(sourceIDs, r.Article.ID())
	}

	sg, err := suggestion.NewSuggestion(t.ID(), response, confidence, uc.embedder.ModelName(), sourceIDs)
	if err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	if err := uc.suggestionRepo.Save(ctx, sg); err != nil {
		uc.logger.Errorw("failed to save suggestion", "error", err, "ticket_id", t.ID())
		return nil, errors.NewInternalError("failed to save suggestion")
	}

	uc.logger.Infow("suggestion generated",
		"suggestion_id", sg.ID(),
		"ticket_id", t.ID(),
		"confidence", confidence,
		"article_id", best.Article.ID())

	return &GenerateSuggestionResult{
		SuggestionID: sg.ID(),
		TicketID:     t.ID(),
		Confidence:   confidence,
	}, nil
}

// draftResponse asks the completion model for a reply; if drafting fails the
// matched article is quoted directly so the pipeline still produces a
// suggestion.
func (uc *GenerateSuggestionUseCase) draftResponse(ctx context.Context, t *ticket.Ticket, article *knowledge.Article) string {
	if uc.drafter != nil {
		drafted, err := uc.drafter.DraftResponse(ctx, t.Title(), t.Description(), article.Title(), article.Content())
		if err == nil && len(drafted) > 0 {
			return drafted
		}
		if err != nil {
			uc.logger.Warnw("response drafting failed, falling back to article quote",
				"error", err,
				"ticket_id", t.ID())
		}
	}

	return fmt.Sprintf("This may help with your issue. From our knowledge base article %q:\n\n%s",
		article.Title(), article.Content())
}
