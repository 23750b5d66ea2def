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

// ChecklistService manages the ordered sub-tasks of a ticket.
type ChecklistService struct {
	checklists repository.ChecklistRepository
}

// ChecklistPatch carries a partial item edit.
type ChecklistPatch struct {
	Label     *string
	Completed *bool
}

// NewChecklistService constructs the service.
func NewChecklistService(checklists repository.ChecklistRepository) *ChecklistService {
	return &ChecklistService{checklists: checklists}
}

// ListByTicket returns items in display order.
func (s *ChecklistService) ListByTicket(ctx context.Context, ticketID string) ([]domain.ChecklistItem, error) {
	items, err := s.checklists.ListByTicket(ctx, ticketID)
	if err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	return items, nil
}

// Add appends one item at the next free position.
func (s *ChecklistService) Add(ctx context.Context, ticketID, label string) (*domain.ChecklistItem, error) {
	var v validate.Violations
	v.RequiredText("label", label, validate.MaxChecklistLen)
	if !v.OK() {
		return nil, apperrors.NewValidationError(v.Message(), nil)
	}

	max, err := s.checklists.MaxPosition(ctx, ticketID)
	if err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	item := &domain.ChecklistItem{
		TicketID: ticketID,
		Label:    strings.TrimSpace(label),
		Position: max + 1,
	}
	if err := s.checklists.Create(ctx, item); err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	return item, nil
}

// AddBulk inserts labels in input order at positions 0..n-1. It is meant
// for seeding a fresh ticket's checklist in one call.
func (s *ChecklistService) AddBulk(ctx context.Context, ticketID string, labels []string) ([]domain.ChecklistItem, error) {
	if len(labels) == 0 {
		return []domain.ChecklistItem{}, nil
	}
	var v validate.Violations
	for _, label := range labels {
		v.RequiredText("label", label, validate.MaxChecklistLen)
	}
	if !v.OK() {
		return nil, apperrors.NewValidationError(v.Message(), nil)
	}

	items := make([]domain.ChecklistItem, 0, len(labels))
	for i, label := range labels {
		items = append(items, domain.ChecklistItem{
			TicketID: ticketID,
			Label:    strings.TrimSpace(label),
			Position: i,
		})
	}
	created, err := s.checklists.CreateBulk(ctx, items)
	if err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	return created, nil
}

// Update edits an item's label or completion flag.
func (s *ChecklistService) Update(ctx context.Context, id string, patch ChecklistPatch) (*domain.ChecklistItem, error) {
	if patch.Label != nil {
		var v validate.Violations
		v.RequiredText("label", *patch.Label, validate.MaxChecklistLen)
		if !v.OK() {
			return nil, apperrors.NewValidationError(v.Message(), nil)
		}
	}

	item, err := s.checklists.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("checklist item", map[string]any{"id": id})
		}
		return nil, apperrors.NewPersistenceError(err)
	}
	if patch.Label != nil {
		item.Label = strings.TrimSpace(*patch.Label)
	}
	if patch.Completed != nil {
		item.Completed = *patch.Completed
	}
	if err := s.checklists.Update(ctx, item); err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	return item, nil
}

// Delete removes one item.
func (s *ChecklistService) Delete(ctx context.Context, id string) error {
	if err := s.checklists.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("checklist item", map[string]any{"id": id})
		}
		return apperrors.NewPersistenceError(err)
	}
	return nil
}
