package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"parley/internal/application/ticket/usecases"
	"parley/internal/shared/errors"
)

type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required,max=5000"`
	Priority    string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
}

func (r *CreateTicketRequest) ToCommand(customerID uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		CustomerID:  customerID,
	}
}

type AssignTicketRequest struct {
	AssigneeID uint `json:"assignee_id" binding:"required"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=new open pending in_progress resolved closed"`
}

type ChangePriorityRequest struct {
	Priority string `json:"priority" binding:"required,oneof=low medium high urgent"`
}

type ReplaceTagsRequest struct {
	Tags []string `json:"tags" binding:"max=3,dive,required,max=30"`
}

type RateTicketRequest struct {
	Rating int `json:"rating" binding:"required,min=1,max=5"`
}

type AddMessageRequest struct {
	Text string `json:"text" binding:"required,max=10000"`
}

type AddNoteRequest struct {
	Body       string `json:"body" binding:"required,max=5000"`
	Visibility string `json:"visibility" binding:"omitempty,oneof=private team public"`
}

type UpdateNoteRequest struct {
	Body       string `json:"body" binding:"required,max=5000"`
	Visibility string `json:"visibility" binding:"omitempty,oneof=private team public"`
}

type ListTicketsRequest struct {
	Page       int
	PageSize   int
	Status     string
	Priority   string
	Search     string
	CustomerID *uint
	AssigneeID *uint
}

func (r *ListTicketsRequest) ToQuery(requesterID uint, requesterRole string) usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		Status:        r.Status,
		Priority:      r.Priority,
		CustomerID:    r.CustomerID,
		AssigneeID:    r.AssigneeID,
		Search:        r.Search,
		Page:          r.Page,
		PageSize:      r.PageSize,
		RequesterID:   requesterID,
		RequesterRole: requesterRole,
	}
}

func parseListTicketsRequest(c *gin.Context) (*ListTicketsRequest, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	req := &ListTicketsRequest{
		Page:     page,
		PageSize: pageSize,
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Search:   c.Query("search"),
	}

	if customerIDStr := c.Query("customer_id"); customerIDStr != "" {
		customerID, err := strconv.ParseUint(customerIDStr, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("Invalid customer_id")
		}
		id := uint(customerID)
		req.CustomerID = &id
	}

	if assigneeIDStr := c.Query("assignee_id"); assigneeIDStr != "" {
		assigneeID, err := strconv.ParseUint(assigneeIDStr, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("Invalid assignee_id")
		}
		id := uint(assigneeID)
		req.AssigneeID = &id
	}

	return req, nil
}
