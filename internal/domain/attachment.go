package domain

import "time"

// Attachment stores metadata for a file uploaded against a ticket. The
// bytes themselves live in object storage under StorageKey.
type Attachment struct {
	ID         string
	TicketID   string
	FileName   string
	StorageKey string
	SizeBytes  int64
	MimeType   string
	CreatedAt  time.Time
}
