package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/todo-labs/todo-backend/internal/items/domain"
)

// MemoryStore is the default in-process store. A map holds the items and
// an insertion-ordered slice preserves the tie-break order for listings
// with equal created_at timestamps.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*domain.Item
	order []uuid.UUID
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: make(map[uuid.UUID]*domain.Item),
	}
}

func (s *MemoryStore) Create(_ context.Context, item *domain.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *item
	s.items[cp.ID] = &cp
	s.order = append(s.order, cp.ID)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (*domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	cp := *item
	return &cp, nil
}

func (s *MemoryStore) Update(_ context.Context, item *domain.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[item.ID]; !ok {
		return domain.ErrItemNotFound
	}
	cp := *item
	s.items[cp.ID] = &cp
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return domain.ErrItemNotFound
	}
	delete(s.items, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryStore) List(_ context.Context, filter domain.ListFilter) ([]*domain.Item, error) {
	s.mu.RLock()

	matched := make([]*domain.Item, 0, len(s.order))
	for _, id := range s.order {
		item := s.items[id]
		if filter.Matches(item) {
			cp := *item
			matched = append(matched, &cp)
		}
	}
	s.mu.RUnlock()

	// Stable sort keeps insertion order for equal timestamps.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if filter.Skip >= len(matched) {
		return []*domain.Item{}, nil
	}
	matched = matched[filter.Skip:]
	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (s *MemoryStore) Counts(_ context.Context) (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	completed := 0
	for _, item := range s.items {
		if item.IsDone {
			completed++
		}
	}
	return len(s.items), completed, nil
}
