package notification

import (
	"parley/internal/domain/shared/events"
	"parley/internal/domain/ticket"
	vo "parley/internal/domain/ticket/value_objects"
	"parley/internal/shared/logger"
)

// Notifier sends ticket notification emails.
type Notifier interface {
	SendTicketAssigned(to, ticketNumber, ticketTitle string) error
	SendTicketResolved(to, ticketNumber, ticketTitle string) error
}

// EmailEventHandlers turns ticket domain events into notification emails.
// Delivery goes to the shared team inbox; the user directory lives outside
// this service.
type EmailEventHandlers struct {
	notifier      Notifier
	notifyAddress string
	logger        logger.Interface
}

func NewEmailEventHandlers(notifier Notifier, notifyAddress string, logger logger.Interface) *EmailEventHandlers {
	return &EmailEventHandlers{
		notifier:      notifier,
		notifyAddress: notifyAddress,
		logger:        logger,
	}
}

// Register subscribes the handlers on the dispatcher.
func (h *EmailEventHandlers) Register(dispatcher events.EventSubscriber) error {
	if err := dispatcher.Subscribe(ticket.EventTypeTicketAssigned,
		events.NewSimpleEventHandler(ticket.EventTypeTicketAssigned, h.handleTicketAssigned)); err != nil {
		return err
	}

	return dispatcher.Subscribe(ticket.EventTypeTicketStatusChanged,
		events.NewSimpleEventHandler(ticket.EventTypeTicketStatusChanged, h.handleStatusChanged))
}

func (h *EmailEventHandlers) handleTicketAssigned(event events.DomainEvent) error {
	assigned, ok := event.(ticket.TicketAssignedEvent)
	if !ok {
		h.logger.Warnw("unexpected event payload for ticket assignment", "event_type", event.GetEventType())
		return nil
	}

	if err := h.notifier.SendTicketAssigned(h.notifyAddress, assigned.Number, assigned.Title); err != nil {
		h.logger.Errorw("failed to send assignment notification",
			"ticket_id", assigned.TicketID,
			"error", err)
		return err
	}

	h.logger.Debugw("assignment notification sent", "ticket_id", assigned.TicketID)
	return nil
}

func (h *EmailEventHandlers) handleStatusChanged(event events.DomainEvent) error {
	changed, ok := event.(ticket.TicketStatusChangedEvent)
	if !ok {
		h.logger.Warnw("unexpected event payload for status change", "event_type", event.GetEventType())
		return nil
	}

	if changed.NewStatus != vo.StatusResolved.String() {
		return nil
	}

	if err := h.notifier.SendTicketResolved(h.notifyAddress, changed.Number, changed.Title); err != nil {
		h.logger.Errorw("failed to send resolution notification",
			"ticket_id", changed.TicketID,
			"error", err)
		return err
	}

	h.logger.Debugw("resolution notification sent", "ticket_id", changed.TicketID)
	return nil
}
