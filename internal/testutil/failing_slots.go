package testutil

import (
	"context"
	"sync/atomic"
)

// Slots mirrors the slot repository contract so tests can wrap any backend
// without importing the repository package.
type Slots interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// FailingSlots wraps a Slots backend and fails Put calls while Fail is set.
// Gets and Deletes pass through. Puts counts every attempted write.
type FailingSlots struct {
	Slots
	Err  error
	Fail atomic.Bool
	Puts atomic.Int32
}

func NewFailingSlots(inner Slots, err error) *FailingSlots {
	f := &FailingSlots{Slots: inner, Err: err}
	f.Fail.Store(true)
	return f
}

func (f *FailingSlots) Put(ctx context.Context, key string, value []byte) error {
	f.Puts.Add(1)
	if f.Fail.Load() {
		return f.Err
	}
	return f.Slots.Put(ctx, key, value)
}

// MemorySlots is a map-backed Slots for tests that need no database.
type MemorySlots struct {
	data map[string][]byte
	// NotFound is returned by Get for missing keys.
	NotFound error
}

func NewMemorySlots(notFound error) *MemorySlots {
	return &MemorySlots{data: make(map[string][]byte), NotFound: notFound}
}

func (m *MemorySlots) Get(ctx context.Context, key string) ([]byte, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, m.NotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *MemorySlots) Put(ctx context.Context, key string, value []byte) error {
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemorySlots) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}
