package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/todo-labs/todo-backend/internal/items/domain"
)

const (
	itemKeyPrefix = "todo:item:" // Key for item data: todo:item:{id}
	itemIndexKey  = "todo:items" // ZSET of item ids scored by created_at (UnixNano)
)

// RedisStore keeps items as JSON values with a sorted-set index for
// newest-first iteration.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a store backed by the given client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) itemKey(id uuid.UUID) string {
	return itemKeyPrefix + id.String()
}

func (s *RedisStore) Create(ctx context.Context, item *domain.Item) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.itemKey(item.ID), data, 0)
	pipe.ZAdd(ctx, itemIndexKey, redis.Z{
		Score:  float64(item.CreatedAt.UnixNano()),
		Member: item.ID.String(),
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	data, err := s.client.Get(ctx, s.itemKey(id)).Result()
	if err == redis.Nil {
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	var item domain.Item
	if err := json.Unmarshal([]byte(data), &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return &item, nil
}

func (s *RedisStore) Update(ctx context.Context, item *domain.Item) error {
	key := s.itemKey(item.ID)

	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to check item: %w", err)
	}
	if exists == 0 {
		return domain.ErrItemNotFound
	}

	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}
	if err := s.client.Set(ctx, key, data, redis.KeepTTL).Err(); err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id uuid.UUID) error {
	pipe := s.client.TxPipeline()
	delCmd := pipe.Del(ctx, s.itemKey(id))
	pipe.ZRem(ctx, itemIndexKey, id.String())
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	if delCmd.Val() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Item, error) {
	// ZREVRANGE yields ids newest first; filtering happens client side.
	ids, err := s.client.ZRevRange(ctx, itemIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read item index: %w", err)
	}
	if len(ids) == 0 {
		return []*domain.Item{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = itemKeyPrefix + id
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch items: %w", err)
	}

	matched := make([]*domain.Item, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue // index entry without a value, skip
		}
		var item domain.Item
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			return nil, fmt.Errorf("failed to unmarshal item: %w", err)
		}
		if filter.Matches(&item) {
			cp := item
			matched = append(matched, &cp)
		}
	}

	if filter.Skip >= len(matched) {
		return []*domain.Item{}, nil
	}
	matched = matched[filter.Skip:]
	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (s *RedisStore) Counts(ctx context.Context) (int, int, error) {
	items, err := s.List(ctx, domain.ListFilter{})
	if err != nil {
		return 0, 0, err
	}
	completed := 0
	for _, item := range items {
		if item.IsDone {
			completed++
		}
	}
	return len(items), completed, nil
}
