package persist

import (
	"context"
	"errors"
	"log/slog"

	"github.com/alexanderramin/ticklist/internal/domain"
	"github.com/alexanderramin/ticklist/internal/repository"
)

// DefaultSlot is the storage key the list is kept under.
const DefaultSlot = "todos"

// sequencer is implemented by id generators that keep a numeric
// high-water mark worth carrying across sessions.
type sequencer interface {
	Last() int64
	Advance(n int64)
}

// Bridge hydrates the list from a storage slot and writes it back after
// every change.
type Bridge struct {
	slots  repository.SlotRepo
	slot   string
	ids    domain.IDGenerator
	logger *slog.Logger
}

// NewBridge creates a Bridge. ids re-mints ids that are blank or duplicated
// in stored data. A nil logger discards log output.
func NewBridge(slots repository.SlotRepo, slot string, ids domain.IDGenerator, logger *slog.Logger) *Bridge {
	if slot == "" {
		slot = DefaultSlot
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Bridge{slots: slots, slot: slot, ids: ids, logger: logger}
}

// Slot returns the storage key used by the bridge.
func (b *Bridge) Slot() string { return b.slot }

// Load reads the stored list. A missing, unreadable or malformed snapshot
// yields an empty list; Load never fails.
func (b *Bridge) Load(ctx context.Context) []domain.Item {
	raw, err := b.slots.Get(ctx, b.slot)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			b.logger.DebugContext(ctx, "no stored list", "slot", b.slot)
		} else {
			b.logger.WarnContext(ctx, "reading stored list failed, starting empty", "slot", b.slot, "error", err)
		}
		return []domain.Item{}
	}

	decoded, err := Decode(raw)
	if err != nil {
		b.logger.WarnContext(ctx, "stored list is malformed, starting empty", "slot", b.slot, "error", err)
		return []domain.Item{}
	}

	if seq, ok := b.ids.(sequencer); ok && decoded.LastID > 0 {
		seq.Advance(decoded.LastID)
	}
	items, dropped, reminted := b.repair(decoded.Items)
	if dropped > 0 || reminted > 0 || decoded.Legacy {
		b.logger.InfoContext(ctx, "stored list normalised",
			"slot", b.slot,
			"legacy", decoded.Legacy,
			"dropped", dropped,
			"reminted", reminted,
		)
	}
	return items
}

// repair drops blank-text entries and re-mints blank or duplicate ids so
// the loaded list satisfies the uniqueness invariant.
func (b *Bridge) repair(in []domain.Item) (out []domain.Item, dropped, reminted int) {
	if o, ok := b.ids.(interface{ Observe([]domain.Item) }); ok {
		o.Observe(in)
	}
	seen := make(map[string]bool, len(in))
	out = make([]domain.Item, 0, len(in))
	for _, it := range in {
		if domain.ValidateText(it.Text) != nil {
			dropped++
			continue
		}
		if it.ID == "" || seen[it.ID] {
			it.ID = b.freshID(seen)
			reminted++
		}
		seen[it.ID] = true
		out = append(out, it)
	}
	return out, dropped, reminted
}

func (b *Bridge) freshID(seen map[string]bool) string {
	for {
		id := b.ids.NewID()
		if !seen[id] {
			return id
		}
	}
}

// Save overwrites the stored snapshot with items. Failures are returned as
// *SaveError and are not retried.
func (b *Bridge) Save(ctx context.Context, items []domain.Item) error {
	var lastID int64
	if seq, ok := b.ids.(sequencer); ok {
		lastID = seq.Last()
	}
	data, err := EncodeWithLastID(items, lastID)
	if err != nil {
		return &SaveError{Slot: b.slot, Err: err}
	}
	if err := b.slots.Put(ctx, b.slot, data); err != nil {
		b.logger.ErrorContext(ctx, "saving list failed", "slot", b.slot, "items", len(items), "error", err)
		return &SaveError{Slot: b.slot, Err: err}
	}
	b.logger.DebugContext(ctx, "list saved", "slot", b.slot, "items", len(items))
	return nil
}
