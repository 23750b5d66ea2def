// Package validate holds the field rules shared by the staff API and the
// public intake path. Both call sites consume the same predicates so the
// rule sets cannot drift; each rule trims its input before checking.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Antonk123/latest-it-ticketing/internal/domain"
)

const (
	MaxTitleLen       = 200
	MaxDescriptionLen = 5000
	MaxNotesLen       = 5000
	MaxSolutionLen    = 5000
	MaxContactNameLen = 100
	MaxEmailLen       = 255
	MaxDepartmentLen  = 100
	MaxCategoryLen    = 50
	MaxChecklistLen   = 200
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// StaffPriorities is the enum offered by the internal staff form.
var StaffPriorities = []domain.TicketPriority{
	domain.TicketPriorityLow,
	domain.TicketPriorityMedium,
	domain.TicketPriorityHigh,
	domain.TicketPriorityCritical,
}

// PublicPriorities is the enum offered by the public submission form.
var PublicPriorities = []domain.TicketPriority{
	domain.TicketPriorityLow,
	domain.TicketPriorityMedium,
	domain.TicketPriorityHigh,
	domain.TicketPriorityUrgent,
}

var statuses = []domain.TicketStatus{
	domain.TicketStatusOpen,
	domain.TicketStatusInProgress,
	domain.TicketStatusResolved,
	domain.TicketStatusClosed,
}

// Violations accumulates rule failures; Err flattens them into the single
// aggregated message surfaced to callers.
type Violations struct {
	messages []string
}

// Add records a failed rule.
func (v *Violations) Add(message string) {
	v.messages = append(v.messages, message)
}

// OK reports whether no rule failed.
func (v *Violations) OK() bool {
	return len(v.messages) == 0
}

// Message joins every violation into one human-readable string.
func (v *Violations) Message() string {
	return strings.Join(v.messages, ", ")
}

// RequiredText enforces a non-empty, length-capped field after trimming.
func (v *Violations) RequiredText(field, value string, max int) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		v.Add(fmt.Sprintf("%s is required", field))
		return
	}
	if utf8.RuneCountInString(trimmed) > max {
		v.Add(fmt.Sprintf("%s must be less than %d characters", field, max))
	}
}

// OptionalText enforces only the length cap; empty is fine.
func (v *Violations) OptionalText(field, value string, max int) {
	if utf8.RuneCountInString(strings.TrimSpace(value)) > max {
		v.Add(fmt.Sprintf("%s must be less than %d characters", field, max))
	}
}

// Email enforces the required local@domain.tld shape and the length cap.
func (v *Violations) Email(value string) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		v.Add("email is required")
		return
	}
	if !emailPattern.MatchString(trimmed) || utf8.RuneCountInString(trimmed) > MaxEmailLen {
		v.Add("invalid email format")
	}
}

// Status rejects values outside the four lifecycle states.
func (v *Violations) Status(value domain.TicketStatus) {
	for _, s := range statuses {
		if s == value {
			return
		}
	}
	v.Add(fmt.Sprintf("invalid status %q", value))
}

// Priority rejects values outside the supplied allow-list.
func (v *Violations) Priority(value domain.TicketPriority, allowed []domain.TicketPriority) {
	if PriorityAllowed(value, allowed) {
		return
	}
	v.Add(fmt.Sprintf("invalid priority %q", value))
}

// PriorityAllowed reports whether value is in the allow-list.
func PriorityAllowed(value domain.TicketPriority, allowed []domain.TicketPriority) bool {
	for _, p := range allowed {
		if p == value {
			return true
		}
	}
	return false
}
