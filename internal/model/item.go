package model

// Item is the domain model for a todo entry.
// Items are told apart by pointer, never by value: two entries with the
// same text and deadline are still two different tasks.
type Item struct {
	ShortDescription string `json:"short_description"`
	Details          string `json:"details"`
	Deadline         Date   `json:"deadline"`
}

// NewItem builds an item as-is. Callers validate first (see Validate).
func NewItem(shortDescription, details string, deadline Date) *Item {
	return &Item{
		ShortDescription: shortDescription,
		Details:          details,
		Deadline:         deadline,
	}
}

// Set replaces all three fields in place.
func (it *Item) Set(shortDescription, details string, deadline Date) {
	it.ShortDescription = shortDescription
	it.Details = details
	it.Deadline = deadline
}

// DueOn reports whether the deadline falls on d.
func (it *Item) DueOn(d Date) bool { return it.Deadline == d }

// Urgency buckets an item relative to today, the same way the list colors it.
type Urgency int

const (
	UrgencyLater Urgency = iota
	UrgencyTomorrow
	UrgencyToday
	UrgencyOverdue
)

func (u Urgency) String() string {
	switch u {
	case UrgencyOverdue:
		return "overdue"
	case UrgencyToday:
		return "today"
	case UrgencyTomorrow:
		return "tomorrow"
	default:
		return "later"
	}
}

// Urgency classifies the item's deadline against today.
func (it *Item) Urgency(today Date) Urgency {
	switch c := it.Deadline.Compare(today); {
	case c < 0:
		return UrgencyOverdue
	case c == 0:
		return UrgencyToday
	case it.Deadline == today.AddDays(1):
		return UrgencyTomorrow
	default:
		return UrgencyLater
	}
}
