package dto

import (
	"time"

	"github.com/Antonk123/latest-it-ticketing/internal/domain"
)

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Status      domain.TicketStatus   `json:"status,omitempty"`
	Priority    domain.TicketPriority `json:"priority,omitempty"`
	CategoryID  *string               `json:"category_id"`
	RequesterID string                `json:"requester_id"`
	Notes       *string               `json:"notes"`
	Solution    *string               `json:"solution"`
	// Checklist optionally seeds sub-tasks in submitted order.
	Checklist []string `json:"checklist,omitempty"`
}

// UpdateTicketRequest payload; absent fields are left untouched. A null
// category_id clears the assignment.
type UpdateTicketRequest struct {
	Title       *string                `json:"title"`
	Description *string                `json:"description"`
	Status      *domain.TicketStatus   `json:"status"`
	Priority    *domain.TicketPriority `json:"priority"`
	CategoryID  OptionalString         `json:"category_id"`
	RequesterID *string                `json:"requester_id"`
	Notes       *string                `json:"notes"`
	Solution    *string                `json:"solution"`
}

// TicketResponse is the full ticket representation.
type TicketResponse struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Status      domain.TicketStatus   `json:"status"`
	Priority    domain.TicketPriority `json:"priority"`
	CategoryID  *string               `json:"category_id"`
	RequesterID string                `json:"requester_id"`
	Notes       *string               `json:"notes"`
	Solution    *string               `json:"solution"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
	ResolvedAt  *time.Time            `json:"resolved_at"`
	ClosedAt    *time.Time            `json:"closed_at"`
}

// TicketFromDomain maps a ticket to its response shape.
func TicketFromDomain(ticket *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:          ticket.ID,
		Title:       ticket.Title,
		Description: ticket.Description,
		Status:      ticket.Status,
		Priority:    ticket.Priority,
		CategoryID:  ticket.CategoryID,
		RequesterID: ticket.RequesterID,
		Notes:       ticket.Notes,
		Solution:    ticket.Solution,
		CreatedAt:   ticket.CreatedAt,
		UpdatedAt:   ticket.UpdatedAt,
		ResolvedAt:  ticket.ResolvedAt,
		ClosedAt:    ticket.ClosedAt,
	}
}
