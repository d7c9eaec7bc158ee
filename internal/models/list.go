package models

// List represents a to-do list: an ordered sequence of items with an
// optional owner and a set of sharees.
//
// A list is only ever created together with its first item, so a persisted
// list always has at least one item. Item order is insertion order and is
// never changed.
type List struct {
	// ID is the unique identifier for the list (UUID format). Anyone
	// holding the id may view the list.
	ID string

	// OwnerEmail is the email of the user who created the list while
	// authenticated. Empty for anonymously created lists.
	OwnerEmail string

	// Sharees holds the emails of users the list has been shared with.
	// Unordered; the owner may appear here but that grants nothing extra.
	Sharees []string

	// Items are the list's entries in insertion order.
	Items []Item

	// CreatedAt is the Unix timestamp when the list was created.
	CreatedAt int64
}

// Name returns the list's display name, which is the text of its first
// item. Returns the empty string for a list with no items (which should not
// occur for persisted lists).
func (l *List) Name() string {
	if len(l.Items) == 0 {
		return ""
	}
	return l.Items[0].Text
}

// HasItem reports whether the list already contains an item with exactly
// the given text (case-sensitive).
func (l *List) HasItem(text string) bool {
	for _, item := range l.Items {
		if item.Text == text {
			return true
		}
	}
	return false
}

// ItemTexts returns the item texts in insertion order.
func (l *List) ItemTexts() []string {
	texts := make([]string, len(l.Items))
	for i, item := range l.Items {
		texts[i] = item.Text
	}
	return texts
}
