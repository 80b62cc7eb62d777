package domain

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	// ErrEmptyText is returned when an item's text is blank.
	ErrEmptyText = errors.New("item text must not be empty")
	// ErrInvalidText is returned when an item's text is not valid UTF-8
	// and so cannot be stored unchanged.
	ErrInvalidText = errors.New("item text must be valid UTF-8")
)

// Item is a single task in the list.
type Item struct {
	ID   string
	Text string
	Done bool
}

// ValidateText rejects text that is empty, whitespace only or not valid
// UTF-8. The text itself is stored as given.
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	if !utf8.ValidString(text) {
		return ErrInvalidText
	}
	return nil
}

// Find returns the position of the item with the given id, or -1.
func Find(items []Item, id string) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// Equal reports whether two lists hold the same items in the same order.
func Equal(a, b []Item) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Stats counts completed and pending items.
func Stats(items []Item) (done, pending int) {
	for _, it := range items {
		if it.Done {
			done++
		} else {
			pending++
		}
	}
	return
}

// Clone returns a copy of items that shares no backing array with the input.
func Clone(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
