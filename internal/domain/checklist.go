package domain

import "time"

// ChecklistItem is an ordered sub-task attached to a ticket. Position
// values are unique per ticket and determine display order.
type ChecklistItem struct {
	ID        string
	TicketID  string
	Label     string
	Completed bool
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
