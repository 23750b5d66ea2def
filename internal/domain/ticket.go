package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in-progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

// TicketPriority enumerates urgency levels.
//
// The staff form offers "critical" as its top tier while the public intake
// form offers "urgent"; both are representable so either path persists what
// it collected.
type TicketPriority string

const (
	TicketPriorityLow      TicketPriority = "low"
	TicketPriorityMedium   TicketPriority = "medium"
	TicketPriorityHigh     TicketPriority = "high"
	TicketPriorityCritical TicketPriority = "critical"
	TicketPriorityUrgent   TicketPriority = "urgent"
)

// Ticket is the aggregate for support requests.
type Ticket struct {
	ID          string
	Title       string
	Description string
	Status      TicketStatus
	Priority    TicketPriority
	CategoryID  *string
	RequesterID string
	Notes       *string
	Solution    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ResolvedAt  *time.Time
	ClosedAt    *time.Time
}

// TicketPatch carries a partial update; nil fields are left untouched.
// ClearCategory removes the current category assignment and takes
// precedence over CategoryID.
type TicketPatch struct {
	Title         *string
	Description   *string
	Status        *TicketStatus
	Priority      *TicketPriority
	CategoryID    *string
	ClearCategory bool
	RequesterID   *string
	Notes         *string
	Solution      *string
}
