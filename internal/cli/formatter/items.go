package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/ticklist/internal/domain"
)

const summaryBarWidth = 10

// ListOptions controls FormatItemList.
type ListOptions struct {
	// Group lists pending items first and done items after, each under
	// its own header. Positions still refer to the ungrouped order.
	Group bool
}

// FormatSummary renders the done/pending/total counts and a progress bar.
func FormatSummary(items []domain.Item) string {
	done, pending := domain.Stats(items)
	total := done + pending
	counts := fmt.Sprintf("%s done · %s pending · %s",
		StyleGreen.Render(strconv.Itoa(done)),
		StyleBlue.Render(strconv.Itoa(pending)),
		Plural(total, "item"),
	)
	return counts + "  " + RenderProgress(done, total, summaryBarWidth)
}

// FormatItemList renders the list as a table of position, short id,
// status and text.
func FormatItemList(items []domain.Item, opts ListOptions) string {
	if len(items) == 0 {
		return Dim("No items yet. Add one with: ticklist add <text>") + "\n"
	}

	var b strings.Builder
	b.WriteString(FormatSummary(items))
	b.WriteString("\n\n")

	if !opts.Group {
		b.WriteString(itemTable(items, func(domain.Item) bool { return true }))
		return b.String()
	}

	sections := []struct {
		title string
		keep  func(domain.Item) bool
	}{
		{"Pending", func(it domain.Item) bool { return !it.Done }},
		{"Done", func(it domain.Item) bool { return it.Done }},
	}
	first := true
	for _, s := range sections {
		table := itemTable(items, s.keep)
		if table == "" {
			continue
		}
		if !first {
			b.WriteByte('\n')
		}
		first = false
		b.WriteString(Header(s.title))
		b.WriteByte('\n')
		b.WriteString(table)
	}
	return b.String()
}

// itemTable renders the items accepted by keep, or "" when none are.
func itemTable(items []domain.Item, keep func(domain.Item) bool) string {
	var rows [][]string
	for i, it := range items {
		if !keep(it) {
			continue
		}
		rows = append(rows, []string{
			Dim(strconv.Itoa(i + 1)),
			TruncID(it.ID),
			StatusMark(it.Done),
			ItemText(it.Text, it.Done),
		})
	}
	if len(rows) == 0 {
		return ""
	}
	return RenderTable([]string{"#", "ID", "STATUS", "TEXT"}, rows)
}
