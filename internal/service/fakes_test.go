package service

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Antonk123/latest-it-ticketing/internal/domain"
	"github.com/Antonk123/latest-it-ticketing/internal/repository"
)

type fakeTicketRepo struct {
	tickets   map[string]*domain.Ticket
	seq       int
	createErr error
	updateErr error
	deleteErr error
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{tickets: make(map[string]*domain.Ticket)}
}

func (r *fakeTicketRepo) Create(ctx context.Context, ticket *domain.Ticket) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.seq++
	ticket.ID = fmt.Sprintf("ticket-%d", r.seq)
	now := time.Now()
	ticket.CreatedAt = now
	ticket.UpdatedAt = now
	copied := *ticket
	r.tickets[ticket.ID] = &copied
	return nil
}

func (r *fakeTicketRepo) Update(ctx context.Context, ticket *domain.Ticket) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	stored, ok := r.tickets[ticket.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	now := time.Now()
	if !now.After(stored.UpdatedAt) {
		now = stored.UpdatedAt.Add(time.Nanosecond)
	}
	ticket.UpdatedAt = now
	copied := *ticket
	r.tickets[ticket.ID] = &copied
	return nil
}

func (r *fakeTicketRepo) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	stored, ok := r.tickets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *stored
	return &copied, nil
}

func (r *fakeTicketRepo) List(ctx context.Context, filter repository.TicketFilter) ([]domain.Ticket, error) {
	result := make([]domain.Ticket, 0, len(r.tickets))
	for _, t := range r.tickets {
		result = append(result, *t)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *fakeTicketRepo) Delete(ctx context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.tickets[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.tickets, id)
	return nil
}

type fakeContactRepo struct {
	contacts  map[string]*domain.Contact
	seq       int
	createErr error
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{contacts: make(map[string]*domain.Contact)}
}

func (r *fakeContactRepo) Create(ctx context.Context, contact *domain.Contact) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.seq++
	contact.ID = fmt.Sprintf("contact-%d", r.seq)
	contact.CreatedAt = time.Now()
	copied := *contact
	r.contacts[contact.ID] = &copied
	return nil
}

func (r *fakeContactRepo) Update(ctx context.Context, contact *domain.Contact) error {
	if _, ok := r.contacts[contact.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *contact
	r.contacts[contact.ID] = &copied
	return nil
}

func (r *fakeContactRepo) GetByID(ctx context.Context, id string) (*domain.Contact, error) {
	stored, ok := r.contacts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *stored
	return &copied, nil
}

func (r *fakeContactRepo) GetByEmail(ctx context.Context, email string) (*domain.Contact, error) {
	for _, c := range r.contacts {
		if strings.EqualFold(c.Email, email) {
			copied := *c
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeContactRepo) List(ctx context.Context) ([]domain.Contact, error) {
	result := make([]domain.Contact, 0, len(r.contacts))
	for _, c := range r.contacts {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *fakeContactRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.contacts[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.contacts, id)
	return nil
}

type fakeChecklistRepo struct {
	items map[string]*domain.ChecklistItem
	seq   int
}

func newFakeChecklistRepo() *fakeChecklistRepo {
	return &fakeChecklistRepo{items: make(map[string]*domain.ChecklistItem)}
}

func (r *fakeChecklistRepo) Create(ctx context.Context, item *domain.ChecklistItem) error {
	r.seq++
	item.ID = fmt.Sprintf("item-%d", r.seq)
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *fakeChecklistRepo) CreateBulk(ctx context.Context, items []domain.ChecklistItem) ([]domain.ChecklistItem, error) {
	created := make([]domain.ChecklistItem, 0, len(items))
	for i := range items {
		item := items[i]
		if err := r.Create(ctx, &item); err != nil {
			return nil, err
		}
		created = append(created, item)
	}
	return created, nil
}

func (r *fakeChecklistRepo) Update(ctx context.Context, item *domain.ChecklistItem) error {
	if _, ok := r.items[item.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *fakeChecklistRepo) GetByID(ctx context.Context, id string) (*domain.ChecklistItem, error) {
	stored, ok := r.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *stored
	return &copied, nil
}

func (r *fakeChecklistRepo) ListByTicket(ctx context.Context, ticketID string) ([]domain.ChecklistItem, error) {
	result := []domain.ChecklistItem{}
	for _, item := range r.items {
		if item.TicketID == ticketID {
			result = append(result, *item)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Position < result[j].Position })
	return result, nil
}

func (r *fakeChecklistRepo) MaxPosition(ctx context.Context, ticketID string) (int, error) {
	max := -1
	for _, item := range r.items {
		if item.TicketID == ticketID && item.Position > max {
			max = item.Position
		}
	}
	return max, nil
}

func (r *fakeChecklistRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.items, id)
	return nil
}

func (r *fakeChecklistRepo) DeleteByTicket(ctx context.Context, ticketID string) error {
	for id, item := range r.items {
		if item.TicketID == ticketID {
			delete(r.items, id)
		}
	}
	return nil
}

type fakeAttachmentRepo struct {
	attachments map[string]*domain.Attachment
	seq         int
	createErr   error
}

func newFakeAttachmentRepo() *fakeAttachmentRepo {
	return &fakeAttachmentRepo{attachments: make(map[string]*domain.Attachment)}
}

func (r *fakeAttachmentRepo) Create(ctx context.Context, attachment *domain.Attachment) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.seq++
	attachment.ID = fmt.Sprintf("attachment-%d", r.seq)
	attachment.CreatedAt = time.Now()
	copied := *attachment
	r.attachments[attachment.ID] = &copied
	return nil
}

func (r *fakeAttachmentRepo) GetByID(ctx context.Context, id string) (*domain.Attachment, error) {
	stored, ok := r.attachments[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *stored
	return &copied, nil
}

func (r *fakeAttachmentRepo) ListByTicket(ctx context.Context, ticketID string) ([]domain.Attachment, error) {
	result := []domain.Attachment{}
	for _, att := range r.attachments {
		if att.TicketID == ticketID {
			result = append(result, *att)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *fakeAttachmentRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.attachments[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.attachments, id)
	return nil
}

func (r *fakeAttachmentRepo) DeleteByTicket(ctx context.Context, ticketID string) error {
	for id, att := range r.attachments {
		if att.TicketID == ticketID {
			delete(r.attachments, id)
		}
	}
	return nil
}

type fakeObjectStore struct {
	objects   map[string][]byte
	removed   []string
	removeErr error
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{objects: make(map[string][]byte)}
}

func (s *fakeObjectStore) Upload(ctx context.Context, key string, r io.Reader, size int64) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.objects[key] = data
	return nil
}

func (s *fakeObjectStore) Remove(ctx context.Context, keys []string) error {
	s.removed = append(s.removed, keys...)
	if s.removeErr != nil {
		return s.removeErr
	}
	for _, key := range keys {
		delete(s.objects, key)
	}
	return nil
}

func (s *fakeObjectStore) PublicURL(key string) string {
	return "http://files.test/" + key
}
