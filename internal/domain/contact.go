package domain

import "time"

// Contact is the requester on whose behalf tickets are opened.
type Contact struct {
	ID         string
	Name       string
	Email      string
	Department *string
	CreatedAt  time.Time
}
