package validate

import (
	"strings"
	"testing"

	"github.com/Antonk123/latest-it-ticketing/internal/domain"
)

func TestRequiredText_Empty(t *testing.T) {
	var v Violations
	v.RequiredText("title", "", MaxTitleLen)
	if v.OK() {
		t.Fatal("expected violation for empty title")
	}
	if got := v.Message(); got != "title is required" {
		t.Errorf("Message() = %q, want %q", got, "title is required")
	}
}

func TestRequiredText_WhitespaceOnly(t *testing.T) {
	var v Violations
	v.RequiredText("title", "   \t  ", MaxTitleLen)
	if v.OK() {
		t.Fatal("expected violation for whitespace-only title")
	}
}

func TestRequiredText_LengthBoundary(t *testing.T) {
	cases := []struct {
		name   string
		length int
		wantOK bool
	}{
		{"at limit", MaxDescriptionLen, true},
		{"one over", MaxDescriptionLen + 1, false},
		{"one char", 1, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var v Violations
			v.RequiredText("description", strings.Repeat("a", tc.length), MaxDescriptionLen)
			if v.OK() != tc.wantOK {
				t.Errorf("length %d: OK() = %v, want %v", tc.length, v.OK(), tc.wantOK)
			}
		})
	}
}

func TestRequiredText_CountsCharactersNotBytes(t *testing.T) {
	cases := []struct {
		name   string
		length int
		wantOK bool
	}{
		{"multibyte at limit", MaxDescriptionLen, true},
		{"multibyte one over", MaxDescriptionLen + 1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var v Violations
			v.RequiredText("description", strings.Repeat("ü", tc.length), MaxDescriptionLen)
			if v.OK() != tc.wantOK {
				t.Errorf("%d runes: OK() = %v, want %v", tc.length, v.OK(), tc.wantOK)
			}
		})
	}
}

func TestRequiredText_TrimsBeforeLengthCheck(t *testing.T) {
	var v Violations
	padded := "  " + strings.Repeat("a", MaxTitleLen) + "  "
	v.RequiredText("title", padded, MaxTitleLen)
	if !v.OK() {
		t.Errorf("trimmed value at limit should pass, got %q", v.Message())
	}
}

func TestOptionalText(t *testing.T) {
	var v Violations
	v.OptionalText("notes", "", MaxNotesLen)
	if !v.OK() {
		t.Error("empty optional field should pass")
	}
	v.OptionalText("notes", strings.Repeat("x", MaxNotesLen+1), MaxNotesLen)
	if v.OK() {
		t.Error("oversized optional field should fail")
	}
}

func TestEmail(t *testing.T) {
	cases := []struct {
		email  string
		wantOK bool
	}{
		{"user@example.com", true},
		{"first.last@sub.example.co.uk", true},
		{"", false},
		{"no-at-sign", false},
		{"no-domain@", false},
		{"spaces in@example.com", false},
		{"missing-tld@example", false},
		{"a@b." + strings.Repeat("c", MaxEmailLen), false},
	}
	for _, tc := range cases {
		var v Violations
		v.Email(tc.email)
		if v.OK() != tc.wantOK {
			t.Errorf("Email(%q): OK() = %v, want %v", tc.email, v.OK(), tc.wantOK)
		}
	}
}

func TestStatus(t *testing.T) {
	for _, s := range []domain.TicketStatus{
		domain.TicketStatusOpen,
		domain.TicketStatusInProgress,
		domain.TicketStatusResolved,
		domain.TicketStatusClosed,
	} {
		var v Violations
		v.Status(s)
		if !v.OK() {
			t.Errorf("Status(%q) unexpectedly rejected", s)
		}
	}

	var v Violations
	v.Status(domain.TicketStatus("archived"))
	if v.OK() {
		t.Error("unknown status should be rejected")
	}
}

func TestPriority_AllowLists(t *testing.T) {
	var v Violations
	v.Priority(domain.TicketPriorityCritical, StaffPriorities)
	if !v.OK() {
		t.Error("critical should pass the staff allow-list")
	}

	v = Violations{}
	v.Priority(domain.TicketPriorityUrgent, StaffPriorities)
	if v.OK() {
		t.Error("urgent should fail the staff allow-list")
	}

	if !PriorityAllowed(domain.TicketPriorityUrgent, PublicPriorities) {
		t.Error("urgent should pass the public allow-list")
	}
	if PriorityAllowed(domain.TicketPriority("extreme"), PublicPriorities) {
		t.Error("extreme should fail the public allow-list")
	}
}

func TestMessage_AggregatesAllViolations(t *testing.T) {
	var v Violations
	v.RequiredText("title", "", MaxTitleLen)
	v.RequiredText("description", "", MaxDescriptionLen)
	v.Email("bogus")

	msg := v.Message()
	for _, want := range []string{"title is required", "description is required", "invalid email format"} {
		if !strings.Contains(msg, want) {
			t.Errorf("aggregated message %q missing %q", msg, want)
		}
	}
	if got := strings.Count(msg, ","); got != 2 {
		t.Errorf("expected 2 separators in %q, got %d", msg, got)
	}
}
