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
	"github.com/Antonk123/latest-it-ticketing/internal/validate"
	apperrors "github.com/Antonk123/latest-it-ticketing/pkg/util"
)

// IntakeService handles unauthenticated public ticket submissions: it
// reuses or creates the submitting contact, then opens a ticket on their
// behalf. Every call is independent; there is no dedup or retry.
type IntakeService struct {
	tickets    repository.TicketRepository
	contacts   repository.ContactRepository
	listCache  *persistence.TicketListCache
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// IntakeDependencies bundles collaborators for the intake service.
type IntakeDependencies struct {
	TicketRepo  repository.TicketRepository
	ContactRepo repository.ContactRepository
	ListCache   *persistence.TicketListCache
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
}

// PublicSubmission is the payload accepted from anonymous submitters.
type PublicSubmission struct {
	Name        string
	Email       string
	Title       string
	Description string
	Category    string
	Priority    string
}

// NewIntakeService constructs the service.
func NewIntakeService(deps IntakeDependencies) *IntakeService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IntakeService{
		tickets:    deps.TicketRepo,
		contacts:   deps.ContactRepo,
		listCache:  deps.ListCache,
		dispatcher: deps.Dispatcher,
		logger:     logger,
	}
}

// Submit validates the submission and creates the ticket, returning the
// new ticket id. Validation failures come back as DomainErrors with a 4xx
// status; store failures map to 5xx.
func (s *IntakeService) Submit(ctx context.Context, sub PublicSubmission) (string, error) {
	var v validate.Violations
	v.RequiredText("name", sub.Name, validate.MaxContactNameLen)
	v.Email(sub.Email)
	v.RequiredText("title", sub.Title, validate.MaxTitleLen)
	v.RequiredText("description", sub.Description, validate.MaxDescriptionLen)
	if !v.OK() {
		return "", apperrors.NewValidationError(v.Message(), nil)
	}

	// Anything outside the public enum falls back to medium instead of
	// failing the whole submission.
	priority := domain.TicketPriority(strings.TrimSpace(sub.Priority))
	if !validate.PriorityAllowed(priority, validate.PublicPriorities) {
		priority = domain.TicketPriorityMedium
	}

	contact, reused, err := s.findOrCreateContact(ctx, sub.Name, sub.Email)
	if err != nil {
		return "", apperrors.NewPersistenceError(err)
	}

	ticket := &domain.Ticket{
		Title:       strings.TrimSpace(sub.Title),
		Description: strings.TrimSpace(sub.Description),
		Status:      domain.TicketStatusOpen,
		Priority:    priority,
		RequesterID: contact.ID,
	}

	// A malformed category id is dropped silently rather than rejecting
	// the submission.
	categoryOmitted := false
	if trimmed := strings.TrimSpace(sub.Category); trimmed != "" {
		if _, err := uuid.Parse(trimmed); err == nil {
			ticket.CategoryID = &trimmed
		} else {
			categoryOmitted = true
		}
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return "", apperrors.NewPersistenceError(err)
	}
	s.listCache.Invalidate(ctx)
	s.logger.Info("public ticket created",
		zap.String("ticket_id", ticket.ID),
		zap.Bool("contact_reused", reused))

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventPublicTicketSubmit,
			TicketID:  ticket.ID,
			Timestamp: time.Now(),
			Payload: events.PublicTicketSubmittedPayload{
				ContactID:       contact.ID,
				ContactReused:   reused,
				CategoryOmitted: categoryOmitted,
			},
		})
	}
	return ticket.ID, nil
}

// findOrCreateContact matches on the lowercased email; the reused flag is
// true when an existing contact was found.
func (s *IntakeService) findOrCreateContact(ctx context.Context, name, email string) (*domain.Contact, bool, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))

	contact, err := s.contacts.GetByEmail(ctx, normalized)
	if err == nil {
		return contact, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, err
	}

	contact = &domain.Contact{
		Name:  strings.TrimSpace(name),
		Email: normalized,
	}
	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, false, err
	}
	return contact, false, nil
}
