// Package item defines the card records a carousel displays.
//
// Items are owned by the caller and treated as read-only by the engine.
package item

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status is the workflow state shown on a card's status badge.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// Priority is the urgency shown on a card's priority badge.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParseStatus maps free-form text onto a Status. The second result reports
// whether the text named a known status; unknown text yields StatusTodo.
func ParseStatus(s string) (Status, bool) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusTodo:
		return StatusTodo, true
	case StatusInProgress, "in_progress", "inprogress":
		return StatusInProgress, true
	case StatusDone:
		return StatusDone, true
	}
	return StatusTodo, false
}

// ParsePriority maps free-form text onto a Priority. Unknown text yields
// PriorityMedium.
func ParsePriority(s string) (Priority, bool) {
	switch Priority(strings.ToLower(strings.TrimSpace(s))) {
	case PriorityLow:
		return PriorityLow, true
	case PriorityMedium:
		return PriorityMedium, true
	case PriorityHigh:
		return PriorityHigh, true
	}
	return PriorityMedium, false
}

// Item is one card's worth of data.
type Item struct {
	ID          string
	Label       string
	Description string
	Status      Status
	Priority    Priority

	// ImageURL optionally points at a background photo (http(s) or file path).
	ImageURL string

	// DueDate is the zero time when the item has no due date.
	DueDate time.Time
}

// HasDueDate reports whether the item carries a due date.
func (it Item) HasDueDate() bool {
	return !it.DueDate.IsZero()
}

// namespace seeds the deterministic IDs handed out by StableID.
var namespace = uuid.MustParse("5d1c6f0e-3b0f-4c59-9a8e-1f9b3c2d7a10")

// StableID derives a deterministic identifier from a label and position,
// for items whose source did not supply one.
func StableID(label string, index int) string {
	var b strings.Builder
	b.WriteString(label)
	b.WriteByte('#')
	b.WriteString(strconv.Itoa(index))
	return uuid.NewSHA1(namespace, []byte(b.String())).String()
}

// Key identifies the item's card artwork: its ID, or for items without one
// a deterministic ID derived from the fields drawn on the card.
func (it Item) Key() string {
	if it.ID != "" {
		return it.ID
	}
	fields := []string{
		it.Label,
		it.Description,
		string(it.Status),
		string(it.Priority),
		it.DueDate.UTC().Format(time.RFC3339Nano),
	}
	return uuid.NewSHA1(namespace, []byte(strings.Join(fields, "\x00"))).String()
}

// Placeholders returns the built-in set shown when a carousel is given no
// items.
func Placeholders() []Item {
	items := []Item{
		{
			Label:    "Bridge",
			Status:   StatusTodo,
			Priority: PriorityLow,
			ImageURL: "https://picsum.photos/seed/1/800/600?grayscale",
		},
		{
			Label:    "Desk Setup",
			Status:   StatusInProgress,
			Priority: PriorityMedium,
			ImageURL: "https://picsum.photos/seed/2/800/600?grayscale",
		},
		{
			Label:    "Waterfall",
			Status:   StatusDone,
			Priority: PriorityHigh,
			ImageURL: "https://picsum.photos/seed/3/800/600?grayscale",
		},
	}
	for i := range items {
		items[i].ID = StableID(items[i].Label, i)
	}
	return items
}
