package service

import (
	"context"
	"testing"
)

func TestChecklistAddAssignsNextPosition(t *testing.T) {
	repo := newFakeChecklistRepo()
	svc := NewChecklistService(repo)
	ctx := context.Background()

	first, err := svc.Add(ctx, "ticket-1", "check power supply")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if first.Position != 0 {
		t.Errorf("first Position = %d, want 0", first.Position)
	}

	second, err := svc.Add(ctx, "ticket-1", "swap cable")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if second.Position != 1 {
		t.Errorf("second Position = %d, want 1", second.Position)
	}

	// Positions are scoped per ticket.
	other, err := svc.Add(ctx, "ticket-2", "reboot router")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if other.Position != 0 {
		t.Errorf("other ticket Position = %d, want 0", other.Position)
	}
}

func TestChecklistAddBulkPreservesOrder(t *testing.T) {
	repo := newFakeChecklistRepo()
	svc := NewChecklistService(repo)

	labels := []string{"backup data", "reimage", "restore data"}
	created, err := svc.AddBulk(context.Background(), "ticket-1", labels)
	if err != nil {
		t.Fatalf("AddBulk: %v", err)
	}
	if len(created) != len(labels) {
		t.Fatalf("len(created) = %d, want %d", len(created), len(labels))
	}
	for i, item := range created {
		if item.Position != i {
			t.Errorf("item %d Position = %d, want %d", i, item.Position, i)
		}
		if item.Label != labels[i] {
			t.Errorf("item %d Label = %q, want %q", i, item.Label, labels[i])
		}
	}
}

func TestChecklistAddRejectsBlankLabel(t *testing.T) {
	repo := newFakeChecklistRepo()
	svc := NewChecklistService(repo)

	if _, err := svc.Add(context.Background(), "ticket-1", "   "); err == nil {
		t.Error("Add with blank label succeeded")
	}
	if len(repo.items) != 0 {
		t.Errorf("stored items = %d, want 0", len(repo.items))
	}
}

func TestChecklistUpdateTogglesCompletion(t *testing.T) {
	repo := newFakeChecklistRepo()
	svc := NewChecklistService(repo)
	ctx := context.Background()

	item, err := svc.Add(ctx, "ticket-1", "run diagnostics")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	done := true
	updated, err := svc.Update(ctx, item.ID, ChecklistPatch{Completed: &done})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.Completed {
		t.Error("Completed = false after toggling on")
	}
	if updated.Label != item.Label {
		t.Errorf("Label = %q, want untouched %q", updated.Label, item.Label)
	}
}
