package models

// Item is a single line of text on a list.
//
// Items are immutable once created: no edits, no reordering, no individual
// deletion (deleting the list removes its items). Text must be non-empty
// and unique within the owning list; the same text may appear on other
// lists.
type Item struct {
	// ID is the unique identifier for the item (UUID format).
	ID string

	// ListID references the owning list. Required.
	ListID string

	// Position is the item's zero-based insertion index within the list.
	Position int

	// Text is the item's content. Non-empty, unique within the list.
	Text string
}
