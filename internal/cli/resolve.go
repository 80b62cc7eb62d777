package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/ticklist/internal/domain"
)

// resolveItemID resolves an item reference which can be:
//   - A full item id
//   - A 1-based position in the list
//   - A unique id prefix
//
// ok is false when nothing matches. A prefix shared by several items is an
// error.
func resolveItemID(items []domain.Item, ref string) (id string, ok bool, err error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", false, nil
	}
	if domain.Find(items, ref) >= 0 {
		return ref, true, nil
	}
	if pos, err := strconv.Atoi(ref); err == nil {
		if pos >= 1 && pos <= len(items) {
			return items[pos-1].ID, true, nil
		}
	}

	var matches []string
	for _, it := range items {
		if strings.HasPrefix(it.ID, ref) {
			matches = append(matches, it.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", false, nil
	case 1:
		return matches[0], true, nil
	default:
		return "", false, fmt.Errorf("%q matches %d items; use more of the id", ref, len(matches))
	}
}
