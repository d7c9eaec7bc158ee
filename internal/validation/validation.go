// Package validation enforces the item write-time invariants: item text
// must be non-empty and unique within its list.
package validation

import (
	"errors"
	"fmt"
)

// User-facing messages for the two item validation failures.
const (
	EmptyItemMessage     = "You can't have an empty list item"
	DuplicateItemMessage = "You've already got that on your list"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrEmptyItem     = errors.New(EmptyItemMessage)
	ErrDuplicateItem = errors.New(DuplicateItemMessage)
)

// Error is a validation failure on a single field. It wraps one of the
// sentinel errors above so callers can branch with errors.Is while still
// having the offending field and display message at hand.
type Error struct {
	Field   string
	Message string
	kind    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *Error) Unwrap() error {
	return e.kind
}

// CheckItemText validates candidate item text against the texts already on
// the list. Rules apply in order and the first failure wins:
//
//  1. text must not be the empty string
//  2. text must not exactly match an existing sibling (case-sensitive)
//
// Returns nil when the text is acceptable. The check is decoupled from
// persistence; the storage layer backstops rule 2 with a uniqueness
// constraint so concurrent writers cannot race past it.
func CheckItemText(text string, siblings []string) error {
	if text == "" {
		return &Error{Field: "text", Message: EmptyItemMessage, kind: ErrEmptyItem}
	}
	for _, s := range siblings {
		if s == text {
			return &Error{Field: "text", Message: DuplicateItemMessage, kind: ErrDuplicateItem}
		}
	}
	return nil
}

// Duplicate returns the canonical duplicate-item validation error. The
// sqlite store uses it to surface uniqueness-constraint violations the same
// way as the pre-write check.
func Duplicate() error {
	return &Error{Field: "text", Message: DuplicateItemMessage, kind: ErrDuplicateItem}
}
