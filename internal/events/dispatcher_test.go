package events

import (
	"context"
	"errors"
	"testing"
)

func TestDispatcherInvokesSubscribedHandlers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var created, deleted int
	d.Subscribe(EventTicketCreated, func(ctx context.Context, e Event) error {
		created++
		return nil
	})
	d.Subscribe(EventTicketDeleted, func(ctx context.Context, e Event) error {
		deleted++
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventTicketCreated, TicketID: "t1"}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if created != 1 {
		t.Errorf("created handler calls = %d, want 1", created)
	}
	if deleted != 0 {
		t.Errorf("deleted handler calls = %d, want 0", deleted)
	}
}

func TestDispatcherFailingHandlerDoesNotStopOthers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var second bool
	d.Subscribe(EventTicketUpdated, func(ctx context.Context, e Event) error {
		return errors.New("handler blew up")
	})
	d.Subscribe(EventTicketUpdated, func(ctx context.Context, e Event) error {
		second = true
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventTicketUpdated}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if !second {
		t.Error("second handler was not invoked after the first failed")
	}
}

func TestDispatcherNoSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	if err := d.Publish(context.Background(), Event{Type: EventPublicTicketSubmit}); err != nil {
		t.Errorf("Publish with no subscribers: %v", err)
	}
}
