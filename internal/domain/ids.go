package domain

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator mints item ids that are unique for the lifetime of a session.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator mints random v4 UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.New().String() }

// SequenceGenerator mints decimal ids from a monotonically increasing counter.
type SequenceGenerator struct {
	last atomic.Int64
}

// NewSequenceGenerator returns a generator whose first id is start+1.
func NewSequenceGenerator(start int64) *SequenceGenerator {
	g := &SequenceGenerator{}
	g.last.Store(start)
	return g
}

func (g *SequenceGenerator) NewID() string {
	return strconv.FormatInt(g.last.Add(1), 10)
}

// Last returns the highest id minted or observed so far.
func (g *SequenceGenerator) Last() int64 { return g.last.Load() }

// Advance moves the counter to n if it is behind. It never moves it back.
func (g *SequenceGenerator) Advance(n int64) {
	for {
		cur := g.last.Load()
		if n <= cur || g.last.CompareAndSwap(cur, n) {
			return
		}
	}
}

// Observe advances the counter past any numeric ids already in items,
// so a hydrated list never collides with newly minted ids.
func (g *SequenceGenerator) Observe(items []Item) {
	for _, it := range items {
		if n, err := strconv.ParseInt(it.ID, 10, 64); err == nil {
			g.Advance(n)
		}
	}
}
