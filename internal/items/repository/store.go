package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/todo-labs/todo-backend/internal/items/domain"
)

// Backend names accepted by config STORE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Store is the persistence boundary for items. All implementations
// return domain.ErrItemNotFound for unknown ids.
type Store interface {
	Create(ctx context.Context, item *domain.Item) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns items matching the filter, newest first, already
	// paged by the filter's Skip and Limit.
	List(ctx context.Context, filter domain.ListFilter) ([]*domain.Item, error)

	// Counts returns the total number of items and how many are done.
	Counts(ctx context.Context) (total, completed int, err error)
}
