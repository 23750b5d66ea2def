package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Antonk123/latest-it-ticketing/internal/domain"
	"github.com/Antonk123/latest-it-ticketing/internal/repository"
	apperrors "github.com/Antonk123/latest-it-ticketing/pkg/util"
)

type ticketFixture struct {
	svc         *TicketService
	tickets     *fakeTicketRepo
	contacts    *fakeContactRepo
	checklists  *fakeChecklistRepo
	attachments *fakeAttachmentRepo
	objects     *fakeObjectStore
}

func newTicketFixture(t *testing.T) *ticketFixture {
	t.Helper()
	f := &ticketFixture{
		tickets:     newFakeTicketRepo(),
		contacts:    newFakeContactRepo(),
		checklists:  newFakeChecklistRepo(),
		attachments: newFakeAttachmentRepo(),
		objects:     newFakeObjectStore(),
	}
	f.svc = NewTicketService(TicketDependencies{
		TicketRepo:     f.tickets,
		ContactRepo:    f.contacts,
		ChecklistRepo:  f.checklists,
		AttachmentRepo: f.attachments,
		ObjectStore:    f.objects,
	})
	return f
}

func (f *ticketFixture) seedContact(t *testing.T) *domain.Contact {
	t.Helper()
	contact := &domain.Contact{Name: "Jamie Ortega", Email: "jamie@example.com"}
	if err := f.contacts.Create(context.Background(), contact); err != nil {
		t.Fatalf("seed contact: %v", err)
	}
	return contact
}

func (f *ticketFixture) seedTicket(t *testing.T) *domain.Ticket {
	t.Helper()
	contact := f.seedContact(t)
	ticket, err := f.svc.Create(context.Background(), TicketCreateInput{
		Title:       "Laptop will not boot",
		Description: "Black screen after the vendor logo.",
		RequesterID: contact.ID,
	})
	if err != nil {
		t.Fatalf("seed ticket: %v", err)
	}
	return ticket
}

func TestTicketCreateDefaults(t *testing.T) {
	f := newTicketFixture(t)
	ticket := f.seedTicket(t)

	if ticket.Status != domain.TicketStatusOpen {
		t.Errorf("Status = %q, want %q", ticket.Status, domain.TicketStatusOpen)
	}
	if ticket.Priority != domain.TicketPriorityMedium {
		t.Errorf("Priority = %q, want %q", ticket.Priority, domain.TicketPriorityMedium)
	}
	if !ticket.CreatedAt.Equal(ticket.UpdatedAt) {
		t.Errorf("CreatedAt = %v, UpdatedAt = %v, want equal at creation", ticket.CreatedAt, ticket.UpdatedAt)
	}
	if ticket.ResolvedAt != nil || ticket.ClosedAt != nil {
		t.Error("new ticket must not carry resolved or closed timestamps")
	}
}

func TestTicketCreateRejectsBlankTitle(t *testing.T) {
	f := newTicketFixture(t)
	contact := f.seedContact(t)

	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := f.svc.Create(context.Background(), TicketCreateInput{
			Title:       title,
			Description: "something broke",
			RequesterID: contact.ID,
		})
		if err == nil {
			t.Fatalf("Create(title=%q) succeeded, want validation error", title)
		}
		var derr *apperrors.DomainError
		if !errors.As(err, &derr) {
			t.Fatalf("Create(title=%q) error = %T, want *DomainError", title, err)
		}
		if !strings.Contains(derr.Message, "title") {
			t.Errorf("error message %q does not mention title", derr.Message)
		}
	}
	if len(f.tickets.tickets) != 0 {
		t.Errorf("stored tickets = %d, want 0 after rejected creates", len(f.tickets.tickets))
	}
}

func TestTicketCreateAggregatesViolations(t *testing.T) {
	f := newTicketFixture(t)

	_, err := f.svc.Create(context.Background(), TicketCreateInput{
		Title:       "",
		Description: "",
		Status:      "archived",
	})
	if err == nil {
		t.Fatal("Create with three violations succeeded")
	}
	var derr *apperrors.DomainError
	if !errors.As(err, &derr) {
		t.Fatalf("error = %T, want *DomainError", err)
	}
	for _, want := range []string{"title", "description", "status", "requester"} {
		if !strings.Contains(derr.Message, want) {
			t.Errorf("message %q missing %q", derr.Message, want)
		}
	}
}

func TestTicketCreateSeedsChecklist(t *testing.T) {
	f := newTicketFixture(t)
	contact := f.seedContact(t)
	ctx := context.Background()

	labels := []string{"collect logs", "check disk health"}
	ticket, err := f.svc.Create(ctx, TicketCreateInput{
		Title:       "Server slow",
		Description: "Load spikes every morning.",
		RequesterID: contact.ID,
		Checklist:   labels,
	})
	if err != nil {
		t.Fatalf("Create with checklist: %v", err)
	}

	items, err := f.checklists.ListByTicket(ctx, ticket.ID)
	if err != nil {
		t.Fatalf("ListByTicket: %v", err)
	}
	if len(items) != len(labels) {
		t.Fatalf("len(items) = %d, want %d", len(items), len(labels))
	}
	for i, item := range items {
		if item.Label != labels[i] {
			t.Errorf("item %d Label = %q, want %q", i, item.Label, labels[i])
		}
		if item.Position != i {
			t.Errorf("item %d Position = %d, want %d", i, item.Position, i)
		}
	}
}

func TestTicketCreateBlankChecklistLabelWritesNothing(t *testing.T) {
	f := newTicketFixture(t)
	contact := f.seedContact(t)

	_, err := f.svc.Create(context.Background(), TicketCreateInput{
		Title:       "Server slow",
		Description: "Load spikes every morning.",
		RequesterID: contact.ID,
		Checklist:   []string{"collect logs", "   "},
	})
	if err == nil {
		t.Fatal("Create with blank checklist label succeeded")
	}
	var derr *apperrors.DomainError
	if !errors.As(err, &derr) {
		t.Fatalf("error = %T, want *DomainError", err)
	}
	if !strings.Contains(derr.Message, "checklist label") {
		t.Errorf("message %q does not mention the checklist label", derr.Message)
	}
	if len(f.tickets.tickets) != 0 {
		t.Errorf("stored tickets = %d, want 0 after rejected create", len(f.tickets.tickets))
	}
	if len(f.checklists.items) != 0 {
		t.Errorf("stored checklist items = %d, want 0 after rejected create", len(f.checklists.items))
	}
}

func TestTicketCreateUnknownRequester(t *testing.T) {
	f := newTicketFixture(t)

	_, err := f.svc.Create(context.Background(), TicketCreateInput{
		Title:       "Printer jam",
		Description: "Tray two keeps jamming.",
		RequesterID: "contact-missing",
	})
	if err == nil {
		t.Fatal("Create with unknown requester succeeded")
	}
	if len(f.tickets.tickets) != 0 {
		t.Error("ticket was persisted despite unknown requester")
	}
}

func TestTicketUpdateStampsResolvedOnce(t *testing.T) {
	f := newTicketFixture(t)
	ticket := f.seedTicket(t)
	ctx := context.Background()

	resolved := domain.TicketStatusResolved
	first, err := f.svc.Update(ctx, ticket.ID, domain.TicketPatch{Status: &resolved})
	if err != nil {
		t.Fatalf("Update to resolved: %v", err)
	}
	if first.ResolvedAt == nil {
		t.Fatal("ResolvedAt not set on first transition to resolved")
	}
	stamp := *first.ResolvedAt

	// Reopen, then resolve again. The original stamp must survive.
	open := domain.TicketStatusOpen
	if _, err := f.svc.Update(ctx, ticket.ID, domain.TicketPatch{Status: &open}); err != nil {
		t.Fatalf("Update to open: %v", err)
	}
	second, err := f.svc.Update(ctx, ticket.ID, domain.TicketPatch{Status: &resolved})
	if err != nil {
		t.Fatalf("Update back to resolved: %v", err)
	}
	if second.ResolvedAt == nil {
		t.Fatal("ResolvedAt was unset by reopening")
	}
	if !second.ResolvedAt.Equal(stamp) {
		t.Errorf("ResolvedAt = %v, want original %v", *second.ResolvedAt, stamp)
	}
}

func TestTicketUpdateStampsClosedOnce(t *testing.T) {
	f := newTicketFixture(t)
	ticket := f.seedTicket(t)
	ctx := context.Background()

	closed := domain.TicketStatusClosed
	first, err := f.svc.Update(ctx, ticket.ID, domain.TicketPatch{Status: &closed})
	if err != nil {
		t.Fatalf("Update to closed: %v", err)
	}
	if first.ClosedAt == nil {
		t.Fatal("ClosedAt not set on first transition to closed")
	}
	stamp := *first.ClosedAt

	inProgress := domain.TicketStatusInProgress
	reopened, err := f.svc.Update(ctx, ticket.ID, domain.TicketPatch{Status: &inProgress})
	if err != nil {
		t.Fatalf("Update to in-progress: %v", err)
	}
	if reopened.ClosedAt == nil || !reopened.ClosedAt.Equal(stamp) {
		t.Error("ClosedAt changed after leaving closed status")
	}
}

func TestTicketUpdateRefreshesUpdatedAt(t *testing.T) {
	f := newTicketFixture(t)
	ticket := f.seedTicket(t)
	ctx := context.Background()

	notes := "called the user, awaiting reply"
	updated, err := f.svc.Update(ctx, ticket.ID, domain.TicketPatch{Notes: &notes})
	if err != nil {
		t.Fatalf("Update notes: %v", err)
	}
	if !updated.UpdatedAt.After(ticket.UpdatedAt) {
		t.Errorf("UpdatedAt = %v, want after %v", updated.UpdatedAt, ticket.UpdatedAt)
	}
	if !updated.CreatedAt.Equal(ticket.CreatedAt) {
		t.Errorf("CreatedAt changed on update: %v vs %v", updated.CreatedAt, ticket.CreatedAt)
	}
}

func TestTicketUpdatePartialPatchLeavesOtherFields(t *testing.T) {
	f := newTicketFixture(t)
	ticket := f.seedTicket(t)

	priority := domain.TicketPriorityHigh
	updated, err := f.svc.Update(context.Background(), ticket.ID, domain.TicketPatch{Priority: &priority})
	if err != nil {
		t.Fatalf("Update priority: %v", err)
	}
	if updated.Priority != domain.TicketPriorityHigh {
		t.Errorf("Priority = %q, want %q", updated.Priority, domain.TicketPriorityHigh)
	}
	if updated.Title != ticket.Title {
		t.Errorf("Title = %q, want untouched %q", updated.Title, ticket.Title)
	}
	if updated.Status != ticket.Status {
		t.Errorf("Status = %q, want untouched %q", updated.Status, ticket.Status)
	}
}

func TestTicketUpdateClearsCategory(t *testing.T) {
	f := newTicketFixture(t)
	ticket := f.seedTicket(t)
	ctx := context.Background()

	categoryID := "6f1a2b3c-4d5e-4f60-8a9b-0c1d2e3f4a5b"
	assigned, err := f.svc.Update(ctx, ticket.ID, domain.TicketPatch{CategoryID: &categoryID})
	if err != nil {
		t.Fatalf("Update assigning category: %v", err)
	}
	if assigned.CategoryID == nil || *assigned.CategoryID != categoryID {
		t.Fatalf("CategoryID = %v, want %q", assigned.CategoryID, categoryID)
	}

	cleared, err := f.svc.Update(ctx, ticket.ID, domain.TicketPatch{ClearCategory: true})
	if err != nil {
		t.Fatalf("Update clearing category: %v", err)
	}
	if cleared.CategoryID != nil {
		t.Errorf("CategoryID = %q after clear, want nil", *cleared.CategoryID)
	}
}

func TestTicketUpdateMissingTicket(t *testing.T) {
	f := newTicketFixture(t)

	notes := "x"
	_, err := f.svc.Update(context.Background(), "ticket-missing", domain.TicketPatch{Notes: &notes})
	var derr *apperrors.DomainError
	if !errors.As(err, &derr) {
		t.Fatalf("error = %v, want *DomainError", err)
	}
	if derr.HTTPStatus != 404 {
		t.Errorf("HTTPStatus = %d, want 404", derr.HTTPStatus)
	}
}

func TestTicketGetByIDAbsent(t *testing.T) {
	f := newTicketFixture(t)

	ticket, err := f.svc.GetByID(context.Background(), "ticket-missing")
	if err != nil {
		t.Fatalf("GetByID on absent id: %v, want nil error", err)
	}
	if ticket != nil {
		t.Errorf("GetByID = %+v, want nil for absent id", ticket)
	}
}

func TestTicketDeleteCascades(t *testing.T) {
	f := newTicketFixture(t)
	ticket := f.seedTicket(t)
	ctx := context.Background()

	f.checklists.Create(ctx, &domain.ChecklistItem{TicketID: ticket.ID, Label: "check cables", Position: 0})
	f.attachments.Create(ctx, &domain.Attachment{TicketID: ticket.ID, FileName: "boot.log", StorageKey: ticket.ID + "/boot.log"})
	f.objects.objects[ticket.ID+"/boot.log"] = []byte("log")

	if err := f.svc.Delete(ctx, ticket.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(f.tickets.tickets) != 0 {
		t.Error("ticket row survived delete")
	}
	if items, _ := f.checklists.ListByTicket(ctx, ticket.ID); len(items) != 0 {
		t.Errorf("checklist items after delete = %d, want 0", len(items))
	}
	if atts, _ := f.attachments.ListByTicket(ctx, ticket.ID); len(atts) != 0 {
		t.Errorf("attachment rows after delete = %d, want 0", len(atts))
	}
	if len(f.objects.removed) != 1 || f.objects.removed[0] != ticket.ID+"/boot.log" {
		t.Errorf("removed object keys = %v, want the attachment key", f.objects.removed)
	}
}

func TestTicketDeleteToleratesStorageFailure(t *testing.T) {
	f := newTicketFixture(t)
	ticket := f.seedTicket(t)
	ctx := context.Background()

	f.attachments.Create(ctx, &domain.Attachment{TicketID: ticket.ID, FileName: "shot.png", StorageKey: ticket.ID + "/shot.png"})
	f.objects.removeErr = errors.New("disk offline")

	if err := f.svc.Delete(ctx, ticket.ID); err != nil {
		t.Fatalf("Delete with failing storage: %v, want success", err)
	}
	if len(f.tickets.tickets) != 0 {
		t.Error("ticket row survived delete when storage failed")
	}
	if atts, _ := f.attachments.ListByTicket(ctx, ticket.ID); len(atts) != 0 {
		t.Error("attachment rows survived delete when storage failed")
	}
}

func TestTicketDeleteMissing(t *testing.T) {
	f := newTicketFixture(t)

	err := f.svc.Delete(context.Background(), "ticket-missing")
	var derr *apperrors.DomainError
	if !errors.As(err, &derr) {
		t.Fatalf("error = %v, want *DomainError", err)
	}
	if derr.HTTPStatus != 404 {
		t.Errorf("HTTPStatus = %d, want 404", derr.HTTPStatus)
	}
}

func TestTicketListNewestFirst(t *testing.T) {
	f := newTicketFixture(t)
	contact := f.seedContact(t)
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		if _, err := f.svc.Create(ctx, TicketCreateInput{
			Title:       title,
			Description: "d",
			RequesterID: contact.ID,
		}); err != nil {
			t.Fatalf("Create %q: %v", title, err)
		}
	}

	tickets, err := f.svc.List(ctx, repository.TicketFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(tickets) != 3 {
		t.Fatalf("len(tickets) = %d, want 3", len(tickets))
	}
	for i := 1; i < len(tickets); i++ {
		if tickets[i].CreatedAt.After(tickets[i-1].CreatedAt) {
			t.Errorf("tickets out of order at %d: %v after %v", i, tickets[i].CreatedAt, tickets[i-1].CreatedAt)
		}
	}
}
