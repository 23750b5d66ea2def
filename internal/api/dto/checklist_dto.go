package dto

import (
	"github.com/Antonk123/latest-it-ticketing/internal/domain"
	"github.com/Antonk123/latest-it-ticketing/internal/service"
)

// AddChecklistItemRequest payload.
type AddChecklistItemRequest struct {
	Label string `json:"label"`
}

// BulkChecklistRequest payload; labels are inserted in submitted order.
type BulkChecklistRequest struct {
	Labels []string `json:"labels"`
}

// UpdateChecklistItemRequest payload; absent fields are left untouched.
type UpdateChecklistItemRequest struct {
	Label     *string `json:"label"`
	Completed *bool   `json:"completed"`
}

// ChecklistItemResponse representation.
type ChecklistItemResponse struct {
	ID        string `json:"id"`
	TicketID  string `json:"ticket_id"`
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
	Position  int    `json:"position"`
}

// ChecklistItemFromDomain maps an item to its response shape.
func ChecklistItemFromDomain(item *domain.ChecklistItem) ChecklistItemResponse {
	return ChecklistItemResponse{
		ID:        item.ID,
		TicketID:  item.TicketID,
		Label:     item.Label,
		Completed: item.Completed,
		Position:  item.Position,
	}
}

// AttachmentResponse representation with derived public URL.
type AttachmentResponse struct {
	ID        string `json:"id"`
	TicketID  string `json:"ticket_id"`
	FileName  string `json:"file_name"`
	SizeBytes int64  `json:"size_bytes"`
	MimeType  string `json:"mime_type"`
	URL       string `json:"url"`
}

// AttachmentFromView maps an attachment view to its response shape.
func AttachmentFromView(view *service.AttachmentView) AttachmentResponse {
	return AttachmentResponse{
		ID:        view.ID,
		TicketID:  view.TicketID,
		FileName:  view.FileName,
		SizeBytes: view.SizeBytes,
		MimeType:  view.MimeType,
		URL:       view.URL,
	}
}
