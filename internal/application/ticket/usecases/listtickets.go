package usecases

import (
	"context"

	"parley/internal/application/ticket/dto"
	"parley/internal/domain/ticket"
	vo "parley/internal/domain/ticket/value_objects"
	"parley/internal/shared/authorization"
	"parley/internal/shared/errors"
	"parley/internal/shared/logger"
	"parley/internal/shared/utils"
)

type ListTicketsQuery struct {
	Status        string
	Priority      string
	CustomerID    *uint
	AssigneeID    *uint
	Search        string
	Page          int
	PageSize      int
	RequesterID   uint
	RequesterRole string
}

type ListTicketsResult struct {
	Tickets  []*dto.TicketDTO
	Total    int64
	Page     int
	PageSize int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	page, pageSize := utils.NormalizePagination(query.Page, query.PageSize)

	filter := ticket.TicketFilter{
		CustomerID: query.CustomerID,
		AssigneeID: query.AssigneeID,
		Search:     query.Search,
		Page:       page,
		PageSize:   pageSize,
		SortBy:     "created_at",
		SortOrder:  "desc",
	}

	if len(query.Status) > 0 {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	if len(query.Priority) > 0 {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}

	var (
		tickets []*ticket.Ticket
		total   int64
		err     error
	)

	// Customers only ever see their own tickets regardless of filters.
	if !authorization.ParseUserRole(query.RequesterRole).IsStaff() {
		tickets, total, err = uc.ticketRepo.GetCustomerTickets(ctx, query.RequesterID, filter)
	} else {
		tickets, total, err = uc.ticketRepo.List(ctx, filter)
	}
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	return &ListTicketsResult{
		Tickets:  dto.FromTickets(tickets),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
