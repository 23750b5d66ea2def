package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/Antonk123/latest-it-ticketing/internal/domain"
	"github.com/Antonk123/latest-it-ticketing/internal/repository"
	"github.com/Antonk123/latest-it-ticketing/internal/validate"
	apperrors "github.com/Antonk123/latest-it-ticketing/pkg/util"
)

// ContactService manages the requester registry.
type ContactService struct {
	contacts repository.ContactRepository
}

// ContactInput describes contact create/update payloads.
type ContactInput struct {
	Name       string
	Email      string
	Department *string
}

// NewContactService constructs the service.
func NewContactService(contacts repository.ContactRepository) *ContactService {
	return &ContactService{contacts: contacts}
}

// List returns all contacts ordered by name.
func (s *ContactService) List(ctx context.Context) ([]domain.Contact, error) {
	contacts, err := s.contacts.List(ctx)
	if err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	return contacts, nil
}

// GetByID looks up one contact; missing ids yield (nil, nil).
func (s *ContactService) GetByID(ctx context.Context, id string) (*domain.Contact, error) {
	contact, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewPersistenceError(err)
	}
	return contact, nil
}

// Create validates and persists a new contact. Emails are stored
// lowercased so the case-insensitive reuse lookup stays exact-match.
func (s *ContactService) Create(ctx context.Context, input ContactInput) (*domain.Contact, error) {
	if err := validateContact(input); err != nil {
		return nil, err
	}
	contact := &domain.Contact{
		Name:       strings.TrimSpace(input.Name),
		Email:      strings.ToLower(strings.TrimSpace(input.Email)),
		Department: input.Department,
	}
	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	return contact, nil
}

// Update validates and persists contact edits.
func (s *ContactService) Update(ctx context.Context, id string, input ContactInput) (*domain.Contact, error) {
	if err := validateContact(input); err != nil {
		return nil, err
	}
	contact, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("contact", map[string]any{"id": id})
		}
		return nil, apperrors.NewPersistenceError(err)
	}
	contact.Name = strings.TrimSpace(input.Name)
	contact.Email = strings.ToLower(strings.TrimSpace(input.Email))
	contact.Department = input.Department
	if err := s.contacts.Update(ctx, contact); err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	return contact, nil
}

// Delete removes a contact.
func (s *ContactService) Delete(ctx context.Context, id string) error {
	if err := s.contacts.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("contact", map[string]any{"id": id})
		}
		return apperrors.NewPersistenceError(err)
	}
	return nil
}

func validateContact(input ContactInput) error {
	var v validate.Violations
	v.RequiredText("name", input.Name, validate.MaxContactNameLen)
	v.Email(input.Email)
	if input.Department != nil {
		v.OptionalText("department", *input.Department, validate.MaxDepartmentLen)
	}
	if !v.OK() {
		return apperrors.NewValidationError(v.Message(), nil)
	}
	return nil
}
