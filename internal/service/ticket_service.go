package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Antonk123/latest-it-ticketing/internal/domain"
	"github.com/Antonk123/latest-it-ticketing/internal/events"
	"github.com/Antonk123/latest-it-ticketing/internal/persistence"
	"github.com/Antonk123/latest-it-ticketing/internal/repository"
	"github.com/Antonk123/latest-it-ticketing/internal/storage"
	"github.com/Antonk123/latest-it-ticketing/internal/validate"
	apperrors "github.com/Antonk123/latest-it-ticketing/pkg/util"
)

// TicketService coordinates the ticket lifecycle: validated writes, derived
// status timestamps, and best-effort cascade deletion.
type TicketService struct {
	tickets     repository.TicketRepository
	contacts    repository.ContactRepository
	checklists  repository.ChecklistRepository
	attachments repository.AttachmentRepository
	objects     storage.ObjectStore
	listCache   *persistence.TicketListCache
	dispatcher  events.Dispatcher
	logger      *zap.Logger
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	TicketRepo     repository.TicketRepository
	ContactRepo    repository.ContactRepository
	ChecklistRepo  repository.ChecklistRepository
	AttachmentRepo repository.AttachmentRepository
	ObjectStore    storage.ObjectStore
	ListCache      *persistence.TicketListCache
	Dispatcher     events.Dispatcher
	Logger         *zap.Logger
}

// TicketCreateInput describes ticket creation payload.
type TicketCreateInput struct {
	Title       string
	Description string
	Status      domain.TicketStatus
	Priority    domain.TicketPriority
	CategoryID  *string
	RequesterID string
	Notes       *string
	Solution    *string
	// Checklist optionally seeds sub-tasks in submitted order.
	Checklist []string
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TicketService{
		tickets:     deps.TicketRepo,
		contacts:    deps.ContactRepo,
		checklists:  deps.ChecklistRepo,
		attachments: deps.AttachmentRepo,
		objects:     deps.ObjectStore,
		listCache:   deps.ListCache,
		dispatcher:  deps.Dispatcher,
		logger:      logger,
	}
}

// List returns tickets ordered by creation time, newest first. A cached
// copy is served when available; filtered listings always hit the store.
func (s *TicketService) List(ctx context.Context, filter repository.TicketFilter) ([]domain.Ticket, error) {
	unfiltered := len(filter.Statuses) == 0 && len(filter.Priorities) == 0 &&
		filter.CategoryID == nil && filter.RequesterID == nil &&
		filter.SearchTerm == nil && filter.Limit == 0 && filter.Offset == 0

	if unfiltered {
		if cached, ok := s.listCache.Get(ctx); ok {
			return cached, nil
		}
	}
	tickets, err := s.tickets.List(ctx, filter)
	if err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	if unfiltered {
		s.listCache.Set(ctx, tickets)
	}
	return tickets, nil
}

// Create validates the draft and persists it. The requester must resolve to
// an existing contact before anything is written.
func (s *TicketService) Create(ctx context.Context, input TicketCreateInput) (*domain.Ticket, error) {
	var v validate.Violations
	v.RequiredText("title", input.Title, validate.MaxTitleLen)
	v.RequiredText("description", input.Description, validate.MaxDescriptionLen)
	if input.Status != "" {
		v.Status(input.Status)
	}
	if input.Priority != "" {
		v.Priority(input.Priority, validate.StaffPriorities)
	}
	if input.Notes != nil {
		v.OptionalText("notes", *input.Notes, validate.MaxNotesLen)
	}
	if input.Solution != nil {
		v.OptionalText("solution", *input.Solution, validate.MaxSolutionLen)
	}
	if strings.TrimSpace(input.RequesterID) == "" {
		v.Add("requester is required")
	}
	for _, label := range input.Checklist {
		v.RequiredText("checklist label", label, validate.MaxChecklistLen)
	}
	if !v.OK() {
		return nil, apperrors.NewValidationError(v.Message(), nil)
	}

	if _, err := s.contacts.GetByID(ctx, input.RequesterID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewValidationError("requester does not exist", nil)
		}
		return nil, apperrors.NewPersistenceError(err)
	}

	ticket := &domain.Ticket{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Status:      input.Status,
		Priority:    input.Priority,
		CategoryID:  input.CategoryID,
		RequesterID: input.RequesterID,
		Notes:       input.Notes,
		Solution:    input.Solution,
	}
	if ticket.Status == "" {
		ticket.Status = domain.TicketStatusOpen
	}
	if ticket.Priority == "" {
		ticket.Priority = domain.TicketPriorityMedium
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	if len(input.Checklist) > 0 {
		items := make([]domain.ChecklistItem, 0, len(input.Checklist))
		for i, label := range input.Checklist {
			items = append(items, domain.ChecklistItem{
				TicketID: ticket.ID,
				Label:    strings.TrimSpace(label),
				Position: i,
			})
		}
		if _, err := s.checklists.CreateBulk(ctx, items); err != nil {
			return nil, apperrors.NewPersistenceError(err)
		}
	}
	s.listCache.Invalidate(ctx)
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		Payload: events.TicketCreatedPayload{
			Title:       ticket.Title,
			Priority:    ticket.Priority,
			CategoryID:  ticket.CategoryID,
			RequesterID: ticket.RequesterID,
		},
	})
	return ticket, nil
}

// Update applies a partial edit. Only supplied fields are validated and
// written; updatedAt always refreshes. The first transition into resolved
// or closed stamps the matching derived timestamp; once set those stamps
// survive any later status change.
func (s *TicketService) Update(ctx context.Context, id string, patch domain.TicketPatch) (*domain.Ticket, error) {
	var v validate.Violations
	if patch.Title != nil {
		v.RequiredText("title", *patch.Title, validate.MaxTitleLen)
	}
	if patch.Description != nil {
		v.RequiredText("description", *patch.Description, validate.MaxDescriptionLen)
	}
	if patch.Status != nil {
		v.Status(*patch.Status)
	}
	if patch.Priority != nil {
		v.Priority(*patch.Priority, validate.StaffPriorities)
	}
	if patch.Notes != nil {
		v.OptionalText("notes", *patch.Notes, validate.MaxNotesLen)
	}
	if patch.Solution != nil {
		v.OptionalText("solution", *patch.Solution, validate.MaxSolutionLen)
	}
	if patch.RequesterID != nil && strings.TrimSpace(*patch.RequesterID) == "" {
		v.Add("requester is required")
	}
	if !v.OK() {
		return nil, apperrors.NewValidationError(v.Message(), nil)
	}

	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"id": id})
		}
		return nil, apperrors.NewPersistenceError(err)
	}

	if patch.RequesterID != nil {
		if _, err := s.contacts.GetByID(ctx, *patch.RequesterID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.NewValidationError("requester does not exist", nil)
			}
			return nil, apperrors.NewPersistenceError(err)
		}
		ticket.RequesterID = *patch.RequesterID
	}

	oldStatus := ticket.Status
	if patch.Title != nil {
		ticket.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		ticket.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Priority != nil {
		ticket.Priority = *patch.Priority
	}
	if patch.ClearCategory {
		ticket.CategoryID = nil
	} else if patch.CategoryID != nil {
		ticket.CategoryID = patch.CategoryID
	}
	if patch.Notes != nil {
		ticket.Notes = patch.Notes
	}
	if patch.Solution != nil {
		ticket.Solution = patch.Solution
	}
	if patch.Status != nil {
		ticket.Status = *patch.Status
		now := time.Now()
		if ticket.Status == domain.TicketStatusResolved && ticket.ResolvedAt == nil {
			ticket.ResolvedAt = &now
		}
		if ticket.Status == domain.TicketStatusClosed && ticket.ClosedAt == nil {
			ticket.ClosedAt = &now
		}
	}

	if err := s.tickets.Update(ctx, ticket); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"id": id})
		}
		return nil, apperrors.NewPersistenceError(err)
	}
	s.listCache.Invalidate(ctx)

	if patch.Status != nil && *patch.Status != oldStatus {
		s.publishEvent(ctx, events.Event{
			Type:     events.EventTicketStatusChanged,
			TicketID: ticket.ID,
			Payload: events.TicketStatusChangedPayload{
				OldStatus: oldStatus,
				NewStatus: ticket.Status,
			},
		})
	} else {
		s.publishEvent(ctx, events.Event{
			Type:     events.EventTicketUpdated,
			TicketID: ticket.ID,
		})
	}
	return ticket, nil
}

// Delete removes the ticket together with its checklist items and
// attachments. Object-storage removal is best effort: a failure there is
// logged and the row delete still proceeds. The ticket row delete itself
// never fails silently.
func (s *TicketService) Delete(ctx context.Context, id string) error {
	attachments, err := s.attachments.ListByTicket(ctx, id)
	if err != nil {
		return apperrors.NewPersistenceError(err)
	}
	if len(attachments) > 0 && s.objects != nil {
		keys := make([]string, 0, len(attachments))
		for _, att := range attachments {
			keys = append(keys, att.StorageKey)
		}
		if err := s.objects.Remove(ctx, keys); err != nil {
			s.logger.Warn("failed to remove attachment objects",
				zap.String("ticket_id", id), zap.Error(err))
		}
	}
	if err := s.attachments.DeleteByTicket(ctx, id); err != nil {
		return apperrors.NewPersistenceError(err)
	}

	checklist, err := s.checklists.ListByTicket(ctx, id)
	if err != nil {
		return apperrors.NewPersistenceError(err)
	}
	if err := s.checklists.DeleteByTicket(ctx, id); err != nil {
		return apperrors.NewPersistenceError(err)
	}

	if err := s.tickets.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("ticket", map[string]any{"id": id})
		}
		return apperrors.NewPersistenceError(err)
	}
	s.listCache.Invalidate(ctx)
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketDeleted,
		TicketID: id,
		Payload: events.TicketDeletedPayload{
			AttachmentCount: len(attachments),
			ChecklistCount:  len(checklist),
		},
	})
	return nil
}

// GetByID looks up a single ticket. A missing id yields (nil, nil): absence
// is an ordinary outcome, not an error.
func (s *TicketService) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewPersistenceError(err)
	}
	return ticket, nil
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
