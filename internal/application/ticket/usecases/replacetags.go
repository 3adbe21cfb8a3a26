package usecases

import (
	"context"

	"parley/internal/domain/tag"
	"parley/internal/domain/ticket"
	"parley/internal/shared/errors"
	"parley/internal/shared/logger"
)

// TransactionRunner executes a function inside a database transaction.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ReplaceTagsCommand struct {
	TicketID  uint
	TagNames  []string
	ChangedBy uint
}

type ReplaceTagsResult struct {
	TicketID uint     `json:"ticket_id"`
	Tags     []string `json:"tags"`
}

// ReplaceTagsUseCase swaps a ticket's tag set. Missing tags are created on
// the fly; the delete+insert of the join rows runs inside one transaction so
// a failed replace never leaves a half-applied set.
type ReplaceTagsUseCase struct {
	ticketRepo ticket.TicketRepository
	tagRepo    tag.TagRepository
	txRunner   TransactionRunner
	logger     logger.Interface
}

func NewReplaceTagsUseCase(
	ticketRepo ticket.TicketRepository,
	tagRepo tag.TagRepository,
	txRunner TransactionRunner,
	logger logger.Interface,
) *ReplaceTagsUseCase {
	return &ReplaceTagsUseCase{
		ticketRepo: ticketRepo,
		tagRepo:    tagRepo,
		txRunner:   txRunner,
		logger:     logger,
	}
}

func (uc *ReplaceTagsUseCase) Execute(ctx context.Context, cmd ReplaceTagsCommand) (*ReplaceTagsResult, error) {
	uc.logger.Infow("executing replace tags use case",
		"ticket_id", cmd.TicketID,
		"tags", cmd.TagNames)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if len(cmd.TagNames) > ticket.MaxTagsPerTicket {
		return nil, errors.NewValidationError("a ticket cannot have more than 3 tags")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to find ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewNotFoundError("ticket not found")
	}

	// Validates the cap and deduplicates before anything touches the store.
	if err := t.SetTags(cmd.TagNames); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var tagIDs []uint
	var tagNames []string

	err = uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		for _, name := range t.Tags() {
			resolved, err := uc.resolveTag(txCtx, name)
			if err != nil {
				return err
			}
			resolved.RecordUsage()
			if err := uc.tagRepo.Update(txCtx, resolved); err != nil {
				return errors.NewInternalError("failed to update tag usage")
			}
			tagIDs = append(tagIDs, resolved.ID())
			tagNames = append(tagNames, resolved.Name())
		}

		return uc.ticketRepo.ReplaceTags(txCtx, t.ID(), tagIDs)
	})
	if err != nil {
		uc.logger.Errorw("failed to replace tags", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	if tagNames == nil {
		tagNames = []string{}
	}

	return &ReplaceTagsResult{
		TicketID: t.ID(),
		Tags:     tagNames,
	}, nil
}

func (uc *ReplaceTagsUseCase) resolveTag(ctx context.Context, name string) (*tag.Tag, error) {
	existing, err := uc.tagRepo.GetByNormalizedName(ctx, tag.NormalizeName(name))
	if err == nil && existing != nil {
		return existing, nil
	}

	created, err := tag.NewTag(name, "#808080")
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.tagRepo.Save(ctx, created); err != nil {
		return nil, errors.NewInternalError("failed to create tag")
	}
	return created, nil
}
