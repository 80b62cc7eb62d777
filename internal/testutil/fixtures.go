package testutil

import (
	"github.com/alexanderramin/ticklist/internal/domain"
	"github.com/google/uuid"
)

// Item options
type ItemOption func(*domain.Item)

func WithID(id string) ItemOption {
	return func(it *domain.Item) {
		it.ID = id
	}
}

func WithDone() ItemOption {
	return func(it *domain.Item) {
		it.Done = true
	}
}

func NewTestItem(text string, opts ...ItemOption) domain.Item {
	it := domain.Item{
		ID:   uuid.New().String(),
		Text: text,
	}
	for _, opt := range opts {
		opt(&it)
	}
	return it
}

// NewTestItems builds one pending item per text, in order.
func NewTestItems(texts ...string) []domain.Item {
	items := make([]domain.Item, 0, len(texts))
	for _, text := range texts {
		items = append(items, NewTestItem(text))
	}
	return items
}
