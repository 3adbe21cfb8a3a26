package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"parley/internal/domain/ticket"
	"parley/internal/infrastructure/persistence/mappers"
	"parley/internal/infrastructure/persistence/models"
	"parley/internal/infrastructure/pubsub"
	db "parley/internal/shared/db"
)

// allowedTicketOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedTicketOrderByFields = map[string]bool{
	"id":          true,
	"number":      true,
	"title":       true,
	"status":      true,
	"priority":    true,
	"customer_id": true,
	"assignee_id": true,
	"created_at":  true,
	"updated_at":  true,
}

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	feed   pubsub.ChangePublisher
}

func NewTicketRepository(db *gorm.DB, feed pubsub.ChangePublisher) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
		feed:   feed,
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}

	r.publish(ctx, pubsub.ChangeInsert, model.ID)
	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	r.publish(ctx, pubsub.ChangeUpdate, model.ID)
	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.TicketModel{}, ticketID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ticket not found")
	}

	if err := tx.Where("ticket_id = ?", ticketID).Delete(&models.TicketTagModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete ticket tag links: %w", err)
	}

	r.publish(ctx, pubsub.ChangeDelete, ticketID)
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, ticketID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	tags, err := r.loadTagNames(ctx, model.ID)
	if err != nil {
		return nil, err
	}

	return r.mapper.ToDomain(&model, tags)
}

func (r *TicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("number = ?", number).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	tags, err := r.loadTagNames(ctx, model.ID)
	if err != nil {
		return nil, err
	}

	return r.mapper.ToDomain(&model, tags)
}

func (r *TicketRepository) List(
	ctx context.Context,
	filter ticket.TicketFilter,
) ([]*ticket.Ticket, int64, error) {
	return r.list(ctx, filter, nil, nil)
}

func (r *TicketRepository) GetCustomerTickets(
	ctx context.Context,
	customerID uint,
	filter ticket.TicketFilter,
) ([]*ticket.Ticket, int64, error) {
	return r.list(ctx, filter, &customerID, nil)
}

func (r *TicketRepository) GetAssignedTickets(
	ctx context.Context,
	assigneeID uint,
	filter ticket.TicketFilter,
) ([]*ticket.Ticket, int64, error) {
	return r.list(ctx, filter, nil, &assigneeID)
}

// ReplaceTags swaps the ticket's tag links wholesale. Callers run this
// inside a transaction together with tag usage updates.
func (r *TicketRepository) ReplaceTags(ctx context.Context, ticketID uint, tagIDs []uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("ticket_id = ?", ticketID).Delete(&models.TicketTagModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear ticket tags: %w", err)
	}

	if len(tagIDs) > 0 {
		links := make([]models.TicketTagModel, len(tagIDs))
		for i, tagID := range tagIDs {
			links[i] = models.TicketTagModel{TicketID: ticketID, TagID: tagID}
		}
		if err := tx.Create(&links).Error; err != nil {
			return fmt.Errorf("failed to link ticket tags: %w", err)
		}
	}

	// The write is not visible until the surrounding transaction
	// commits; publishing earlier would let subscribers re-fetch
	// pre-commit state.
	db.AfterCommit(ctx, func() {
		r.publish(ctx, pubsub.ChangeUpdate, ticketID)
	})
	return nil
}

func (r *TicketRepository) list(
	ctx context.Context,
	filter ticket.TicketFilter,
	customerID *uint,
	assigneeID *uint,
) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if customerID != nil {
		query = query.Where("customer_id = ?", *customerID)
	}
	if assigneeID != nil {
		query = query.Where("assignee_id = ?", *assigneeID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if len(filter.Tags) > 0 {
		query = query.Where(
			"id IN (?)",
			tx.Model(&models.TicketTagModel{}).
				Select("ticket_id").
				Joins("JOIN tags ON tags.id = ticket_tags.tag_id").
				Where("tags.normalized_name IN ?", normalizeTagNames(filter.Tags)),
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	// Apply sorting with whitelist validation to prevent SQL injection
	sortBy := strings.ToLower(filter.SortBy)
	if sortBy != "" && allowedTicketOrderByFields[sortBy] {
		order := strings.ToUpper(filter.SortOrder)
		if order != "ASC" && order != "DESC" {
			order = "DESC"
		}
		query = query.Order(sortBy + " " + order)
	} else {
		query = query.Order("created_at DESC")
	}

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var ticketModels []models.TicketModel
	if err := query.Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i, model := range ticketModels {
		tags, err := r.loadTagNames(ctx, model.ID)
		if err != nil {
			return nil, 0, err
		}
		t, err := r.mapper.ToDomain(&model, tags)
		if err != nil {
			return nil, 0, err
		}
		tickets[i] = t
	}

	return tickets, total, nil
}

func (r *TicketRepository) loadTagNames(ctx context.Context, ticketID uint) ([]string, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var names []string
	if err := tx.
		Model(&models.TicketTagModel{}).
		Select("tags.name").
		Joins("JOIN tags ON tags.id = ticket_tags.tag_id").
		Where("ticket_tags.ticket_id = ?", ticketID).
		Order("tags.name ASC").
		Scan(&names).Error; err != nil {
		return nil, fmt.Errorf("failed to load ticket tags: %w", err)
	}

	return names, nil
}

// publish emits a change feed event. Failures are already logged by the
// feed implementation and never fail the write.
func (r *TicketRepository) publish(ctx context.Context, kind pubsub.ChangeKind, ticketID uint) {
	if r.feed == nil {
		return
	}
	_ = r.feed.PublishChange(ctx, pubsub.ChangeEvent{
		Table:    pubsub.TableTickets,
		Kind:     kind,
		ID:       ticketID,
		TicketID: ticketID,
	})
}

func normalizeTagNames(names []string) []string {
	normalized := make([]string, len(names))
	for i, name := range names {
		normalized[i] = strings.ToLower(strings.TrimSpace(name))
	}
	return normalized
}
