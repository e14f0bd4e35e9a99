package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/todo-labs/todo-backend/internal/items/domain"
	"github.com/todo-labs/todo-backend/internal/items/repository"
)

// ItemService handles business logic for todo items.
type ItemService struct {
	store repository.Store
}

// NewItemService creates a new ItemService over the given store.
func NewItemService(store repository.Store) *ItemService {
	return &ItemService{store: store}
}

// Create validates the text, assigns an id and creation timestamp and
// persists the new item. UpdatedAt stays nil until the first update.
func (s *ItemService) Create(ctx context.Context, req *domain.CreateItemRequest) (*domain.Item, error) {
	if err := domain.ValidateText(req.Text); err != nil {
		return nil, err
	}

	item := &domain.Item{
		ID:        uuid.New(),
		Text:      req.Text,
		IsDone:    req.IsDone,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Get retrieves an item by its id.
func (s *ItemService) Get(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	return s.store.Get(ctx, id)
}

// Update applies the supplied fields to the stored item. A rejected
// update leaves the item untouched; an update carrying at least one
// field stamps UpdatedAt.
func (s *ItemService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateItemRequest) (*domain.Item, error) {
	// Validate before touching the store so a bad field never causes
	// a partial mutation.
	if req.Text != nil {
		if err := domain.ValidateText(*req.Text); err != nil {
			return nil, err
		}
	}

	item, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Empty() {
		return item, nil
	}

	if req.Text != nil {
		item.Text = *req.Text
	}
	if req.IsDone != nil {
		item.IsDone = *req.IsDone
	}
	now := time.Now().UTC()
	item.UpdatedAt = &now

	if err := s.store.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes an item. Deleting an already removed id reports
// domain.ErrItemNotFound.
func (s *ItemService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.Delete(ctx, id)
}

// List returns items matching the filter, newest first.
func (s *ItemService) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Item, error) {
	return s.store.List(ctx, filter)
}

// Stats aggregates completion counts across all items.
func (s *ItemService) Stats(ctx context.Context) (*domain.Stats, error) {
	total, completed, err := s.store.Counts(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.Stats{
		TotalItems:     total,
		CompletedItems: completed,
		PendingItems:   total - completed,
	}
	if total > 0 {
		rate := float64(completed) / float64(total) * 100
		stats.CompletionRate = math.Round(rate*100) / 100
	}
	return stats, nil
}
