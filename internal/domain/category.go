package domain

import "time"

// Category is a user-managed label applied to tickets.
// Slug is derived from the label (lowercase, whitespace collapsed to
// hyphens) and is stored for lookups.
type Category struct {
	ID        string
	Label     string
	Slug      string
	CreatedAt time.Time
}
