package service

import (
	"context"
	"sync"
	"time"

	"github.com/alexanderramin/ticklist/internal/domain"
)

type itemService struct {
	mu       sync.Mutex
	items    []domain.Item
	store    ListStore
	ids      domain.IDGenerator
	observer UseCaseObserver
}

// NewItemService hydrates the list from store once and returns the service.
func NewItemService(ctx context.Context, store ListStore, ids domain.IDGenerator, observers ...UseCaseObserver) ItemService {
	s := &itemService{
		store:    store,
		ids:      ids,
		observer: useCaseObserverOrNoop(observers),
	}
	s.Reload(ctx)
	return s
}

func (s *itemService) Items() []domain.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Clone(s.items)
}

func (s *itemService) Reload(ctx context.Context) {
	startedAt := time.Now().UTC()
	items := s.store.Load(ctx)

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "load",
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   true,
		Fields:    map[string]any{"items": len(items)},
	})
}

func (s *itemService) Add(ctx context.Context, text string) (item domain.Item, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() { s.observe(ctx, "add", startedAt, fields, err) }()

	if err = domain.ValidateText(text); err != nil {
		return domain.Item{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.ids.NewID()
	for domain.Find(s.items, id) >= 0 {
		id = s.ids.NewID()
	}
	s.items = domain.Reduce(s.items, domain.Add(id, text))
	item = s.items[len(s.items)-1]
	fields["id"] = item.ID

	err = s.store.Save(ctx, s.items)
	return item, err
}

func (s *itemService) Toggle(ctx context.Context, id string) (bool, error) {
	return s.dispatch(ctx, domain.Toggle(id))
}

func (s *itemService) Delete(ctx context.Context, id string) (bool, error) {
	return s.dispatch(ctx, domain.Delete(id))
}

func (s *itemService) Edit(ctx context.Context, id, text string) (bool, error) {
	if err := domain.ValidateText(text); err != nil {
		s.observe(ctx, string(domain.ActionEdit), time.Now().UTC(), map[string]any{"id": id}, err)
		return false, err
	}
	return s.dispatch(ctx, domain.Edit(id, text))
}

// dispatch applies a to the list and saves it when the list changed.
func (s *itemService) dispatch(ctx context.Context, a domain.Action) (changed bool, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"id": a.ID}
	defer func() {
		fields["changed"] = changed
		s.observe(ctx, string(a.Kind), startedAt, fields, err)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	next := domain.Reduce(s.items, a)
	if domain.Equal(next, s.items) {
		return false, nil
	}
	s.items = next
	return true, s.store.Save(ctx, s.items)
}

func (s *itemService) observe(ctx context.Context, name string, startedAt time.Time, fields map[string]any, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}
