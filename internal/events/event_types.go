package events

import (
	"time"

	"github.com/Antonk123/latest-it-ticketing/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated       EventType = "ticket_created"
	EventTicketUpdated       EventType = "ticket_updated"
	EventTicketStatusChanged EventType = "ticket_status_changed"
	EventTicketDeleted       EventType = "ticket_deleted"
	EventPublicTicketSubmit  EventType = "public_ticket_submitted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  string      `json:"ticket_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	Title       string                `json:"title"`
	Priority    domain.TicketPriority `json:"priority"`
	CategoryID  *string               `json:"category_id,omitempty"`
	RequesterID string                `json:"requester_id"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	OldStatus domain.TicketStatus `json:"old_status"`
	NewStatus domain.TicketStatus `json:"new_status"`
}

// TicketDeletedPayload payload.
type TicketDeletedPayload struct {
	AttachmentCount int `json:"attachment_count"`
	ChecklistCount  int `json:"checklist_count"`
}

// PublicTicketSubmittedPayload payload.
type PublicTicketSubmittedPayload struct {
	ContactID       string `json:"contact_id"`
	ContactReused   bool   `json:"contact_reused"`
	CategoryOmitted bool   `json:"category_omitted"`
}
