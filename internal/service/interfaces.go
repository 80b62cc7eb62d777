package service

import (
	"context"

	"github.com/alexanderramin/ticklist/internal/domain"
)

// ItemService owns the in-memory list and keeps storage in step with it.
//
// Toggle, Delete and Edit report changed=false (and no error) when no item
// has the given id. A storage failure after a successful change is returned
// as an error matching *persist.SaveError; the change is kept in memory.
type ItemService interface {
	Items() []domain.Item
	Add(ctx context.Context, text string) (domain.Item, error)
	Toggle(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	Edit(ctx context.Context, id, text string) (bool, error)
	Reload(ctx context.Context)
}

// ListStore loads and saves the whole list. persist.Bridge implements it.
type ListStore interface {
	Load(ctx context.Context) []domain.Item
	Save(ctx context.Context, items []domain.Item) error
}
