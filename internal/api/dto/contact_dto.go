package dto

import (
	"time"

	"github.com/Antonk123/latest-it-ticketing/internal/domain"
)

// ContactRequest payload for create/update.
type ContactRequest struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Department *string `json:"department"`
}

// ContactResponse representation.
type ContactResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Department *string   `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
}

// ContactFromDomain maps a contact to its response shape.
func ContactFromDomain(contact *domain.Contact) ContactResponse {
	return ContactResponse{
		ID:         contact.ID,
		Name:       contact.Name,
		Email:      contact.Email,
		Department: contact.Department,
		CreatedAt:  contact.CreatedAt,
	}
}

// CategoryRequest payload.
type CategoryRequest struct {
	Label string `json:"label"`
}

// CategoryResponse representation.
type CategoryResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Slug  string `json:"slug"`
}

// CategoryFromDomain maps a category to its response shape.
func CategoryFromDomain(category *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:    category.ID,
		Label: category.Label,
		Slug:  category.Slug,
	}
}
