package domain

// Reduce maps the current list and an action to the next list.
//
// It never mutates items. Actions that target an unknown id, adds that
// would duplicate an existing id, and unknown action kinds return items
// unchanged (the same slice).
func Reduce(items []Item, a Action) []Item {
	switch a.Kind {
	case ActionAdd:
		if a.ID == "" || Find(items, a.ID) >= 0 {
			return items
		}
		next := make([]Item, len(items), len(items)+1)
		copy(next, items)
		return append(next, Item{ID: a.ID, Text: a.Text, Done: false})

	case ActionToggle:
		i := Find(items, a.ID)
		if i < 0 {
			return items
		}
		next := Clone(items)
		next[i].Done = !next[i].Done
		return next

	case ActionDelete:
		i := Find(items, a.ID)
		if i < 0 {
			return items
		}
		next := make([]Item, 0, len(items)-1)
		next = append(next, items[:i]...)
		return append(next, items[i+1:]...)

	case ActionEdit:
		i := Find(items, a.ID)
		if i < 0 {
			return items
		}
		next := Clone(items)
		next[i].Text = a.Text
		return next
	}
	return items
}
